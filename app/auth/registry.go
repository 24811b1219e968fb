package auth

import (
	"fmt"
	"sync"

	"github.com/velato/storefront/app/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedUser is one fixture identity with its demo password. Seeds are
// read-only sample data; the mutable state lives in the Registry built
// from them.
type SeedUser struct {
	User     models.User
	Password string
}

// FixtureUsers returns the demo accounts. All of them sign in with
// "password123".
func FixtureUsers() []SeedUser {
	return []SeedUser{
		{
			User: models.User{
				ID: "1", FirstName: "Isabella", LastName: "Chen",
				Email: "isabella@example.com", Phone: "+1 (555) 123-4567",
				JoinDate: "March 2023",
				Avatar:   "https://images.unsplash.com/photo-1494790108755-2616b612b5bc?w=256",
			},
			Password: "password123",
		},
		{
			User: models.User{
				ID: "2", FirstName: "Alexander", LastName: "Rodriguez",
				Email: "alex@example.com", Phone: "+1 (555) 987-6543",
				JoinDate: "January 2024",
				Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=256",
			},
			Password: "password123",
		},
		{
			User: models.User{
				ID: "3", FirstName: "Sophia", LastName: "Johnson",
				Email: "sophia@example.com", Phone: "+1 (555) 456-7890",
				JoinDate: "February 2024",
				Avatar:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=256",
			},
			Password: "password123",
		},
		{
			User: models.User{
				ID: "4", FirstName: "James", LastName: "Wilson",
				Email: "james@example.com", Phone: "+1 (555) 234-5678",
				JoinDate: "December 2023",
				Avatar:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=256",
			},
			Password: "password123",
		},
	}
}

type account struct {
	user models.User
	hash []byte
}

// Registry is the mutable identity store, initialized from a seed list.
// Email matching is exact and case sensitive throughout.
type Registry struct {
	mu       sync.RWMutex
	accounts []account
}

// NewRegistry hashes each seed credential and registers the identity.
func NewRegistry(seeds []SeedUser) (*Registry, error) {
	r := &Registry{}
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed credential for %s: %w", seed.User.Email, err)
		}
		r.accounts = append(r.accounts, account{user: seed.User, hash: hash})
	}
	return r, nil
}

// Lookup returns the identity whose email and password both match, or
// false. The caller receives a snapshot copy without the credential.
func (r *Registry) Lookup(email, password string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.accounts {
		if r.accounts[i].user.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(r.accounts[i].hash, []byte(password)) == nil {
			return r.accounts[i].user, true
		}
		return models.User{}, false
	}
	return models.User{}, false
}

// Exists reports whether an identity is registered under the email.
func (r *Registry) Exists(email string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.accounts {
		if r.accounts[i].user.Email == email {
			return true
		}
	}
	return false
}

// Register appends a new identity. It fails if the email is taken.
func (r *Registry) Register(user models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash credential: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].user.Email == user.Email {
			return ErrEmailTaken
		}
	}
	r.accounts = append(r.accounts, account{user: user, hash: hash})
	return nil
}
