package auth

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghiac/adminshell/model"
)

// SessionName is the cookie holding the login session
const SessionName = "adminshell_session"

// SessionProvider keeps the user in a signed gorilla session cookie
type SessionProvider struct {
	store sessions.Store
}

// NewSessionProvider creates a provider on top of store
func NewSessionProvider(store sessions.Store) *SessionProvider {
	return &SessionProvider{store: store}
}

// CurrentUser reads the user saved by Login
func (p *SessionProvider) CurrentUser(r *http.Request) (*model.User, error) {
	sess, err := p.store.Get(r, SessionName)
	if err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	email, _ := sess.Values["email"].(string)
	if email == "" {
		return nil, ErrNoUser
	}
	role, _ := sess.Values["role"].(string)
	id, _ := sess.Values["user_id"].(string)
	if id == "" {
		id = email
	}
	return model.NewUser(id, email, model.ParseRole(role)), nil
}

// Login stores u in the session cookie
func (p *SessionProvider) Login(w http.ResponseWriter, r *http.Request, u *model.User) error {
	sess, _ := p.store.Get(r, SessionName)
	sess.Values["user_id"] = u.UserID
	sess.Values["email"] = u.Email
	sess.Values["role"] = string(u.Role)
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Logout expires the session cookie
func (p *SessionProvider) Logout(w http.ResponseWriter, r *http.Request) error {
	sess, _ := p.store.Get(r, SessionName)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
