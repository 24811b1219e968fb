// Package auth models the storefront's mock account system: a seeded
// in-memory credential registry and an authenticator that mimics a remote
// identity service with a fixed response delay. No real network I/O
// happens anywhere in here.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/velato/storefront/app/models"
)

var (
	// ErrInvalidCredentials is the single failure for any login mismatch.
	// It deliberately does not say which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken signals a signup against an already registered email.
	ErrEmailTaken = errors.New("an account with this email already exists")
)

// SignupData carries the signup form fields. Phone is optional.
type SignupData struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// Authenticator performs login and signup against a Registry. Latency is
// slept before every operation to mimic a round trip; tests set it to zero.
type Authenticator struct {
	registry *Registry
	Latency  time.Duration

	// now is swappable for deterministic signup ids and join dates.
	now func() time.Time
}

func NewAuthenticator(registry *Registry) *Authenticator {
	return &Authenticator{
		registry: registry,
		Latency:  time.Second,
		now:      time.Now,
	}
}

// Login resolves the credentials to an identity snapshot. Both email and
// password matching are exact; any mismatch yields ErrInvalidCredentials.
func (a *Authenticator) Login(email, password string) (models.User, error) {
	a.sleep()

	user, ok := a.registry.Lookup(email, password)
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Signup registers a new identity and returns its snapshot. The id is
// derived from the signup instant, the avatar is a generated placeholder
// and the join date records the current month.
func (a *Authenticator) Signup(data SignupData) (models.User, error) {
	a.sleep()

	now := a.now()
	user := models.User{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		JoinDate:  now.Format("January 2006"),
		Avatar: fmt.Sprintf(
			"https://ui-avatars.com/api/?name=%s+%s&background=d4af37&color=fff&size=256",
			data.FirstName, data.LastName,
		),
	}

	if err := a.registry.Register(user, data.Password); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (a *Authenticator) sleep() {
	if a.Latency > 0 {
		time.Sleep(a.Latency)
	}
}
