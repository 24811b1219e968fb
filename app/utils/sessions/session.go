// Package sessions wraps the cookie-backed slot that makes the signed-in
// identity and the cart id survive a page reload. One gorilla session
// cookie holds a JSON identity snapshot under the velato_user key; a
// snapshot that fails to decode is discarded and the visit continues
// anonymously.
package sessions

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/velato/storefront/app/models"
)

const (
	sessionCookieName = "velato-session"

	userSessionKey   = "velato_user"
	cartIDSessionKey = "cart_id"
)

type SessionStore interface {
	GetUser(r *http.Request) *models.User
	SetUser(w http.ResponseWriter, r *http.Request, user models.User) error
	ClearUser(w http.ResponseWriter, r *http.Request) error

	GetCartID(r *http.Request) string
	SetCartID(w http.ResponseWriter, r *http.Request, cartID string) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// A cookie that no longer validates decodes to a fresh session.
		log.Printf("sessions: error getting session: %v", err)
	}
	return session
}

// GetUser restores the persisted identity snapshot, or nil for an
// anonymous visit. A malformed snapshot is treated as no session.
func (c *CookieSessionStore) GetUser(r *http.Request) *models.User {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	raw, ok := session.Values[userSessionKey].(string)
	if !ok || raw == "" {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("sessions: discarding unreadable identity snapshot: %v", err)
		return nil
	}
	if user.ID == "" {
		return nil
	}
	return &user
}

func (c *CookieSessionStore) SetUser(w http.ResponseWriter, r *http.Request, user models.User) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	session.Values[userSessionKey] = string(raw)
	return session.Save(r, w)
}

// ClearUser removes the snapshot. Clearing an anonymous session is fine.
func (c *CookieSessionStore) ClearUser(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	delete(session.Values, userSessionKey)
	return session.Save(r, w)
}

func (c *CookieSessionStore) GetCartID(r *http.Request) string {
	session := c.getSession(r)
	if session == nil {
		return ""
	}
	cartID, ok := session.Values[cartIDSessionKey].(string)
	if !ok {
		return ""
	}
	return cartID
}

func (c *CookieSessionStore) SetCartID(w http.ResponseWriter, r *http.Request, cartID string) error {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	session.Values[cartIDSessionKey] = cartID
	return session.Save(r, w)
}
