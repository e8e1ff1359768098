package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// PreferenceCookieName is the cookie holding browser-local preferences
const PreferenceCookieName = "adminshell_prefs"

// NewCookieBackend returns the signed cookie store shared by the login
// session and the preference cookie.
func NewCookieBackend(secret string, secure bool) *sessions.CookieStore {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.MaxAge(86400 * 30) // 30 days
	cs.Options.Path = "/"
	cs.Options.HttpOnly = true
	cs.Options.Secure = secure
	cs.Options.SameSite = http.SameSiteLaxMode
	return cs
}

// CookieStore keeps preferences in a signed browser cookie, which matches
// the per-browser lifetime of client-side storage. It is bound to one
// request/response pair; Set must run before the response body is written.
type CookieStore struct {
	sessions sessions.Store
	name     string
	r        *http.Request
	w        http.ResponseWriter
}

// NewCookieStore binds a cookie-backed PreferenceStore to a request
func NewCookieStore(s sessions.Store, r *http.Request, w http.ResponseWriter) *CookieStore {
	return &CookieStore{sessions: s, name: PreferenceCookieName, r: r, w: w}
}

func (c *CookieStore) session() (*sessions.Session, error) {
	sess, err := c.sessions.Get(c.r, c.name)
	if err != nil {
		// gorilla still hands back a fresh session when the cookie fails to decode
		return sess, fmt.Errorf("failed to decode preference cookie: %w", err)
	}
	return sess, nil
}

// Get retrieves a value by key
func (c *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	sess, err := c.session()
	if err != nil {
		return "", false, err
	}
	v, ok := sess.Values[key].(string)
	return v, ok, nil
}

// Set stores or updates a value and re-issues the cookie
func (c *CookieStore) Set(_ context.Context, key, value string) error {
	sess, err := c.session()
	if sess == nil {
		return err
	}
	sess.Values[key] = value
	if err := sess.Save(c.r, c.w); err != nil {
		return fmt.Errorf("failed to save preference cookie: %w", err)
	}
	return nil
}

// Delete removes a value and re-issues the cookie
func (c *CookieStore) Delete(_ context.Context, key string) error {
	sess, err := c.session()
	if sess == nil {
		return err
	}
	delete(sess.Values, key)
	if err := sess.Save(c.r, c.w); err != nil {
		return fmt.Errorf("failed to save preference cookie: %w", err)
	}
	return nil
}
