// Package auth resolves the signed-in user for admin console requests.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ghiac/adminshell/model"
)

// ErrNoUser is returned when a request carries no identity
var ErrNoUser = errors.New("no authenticated user")

// Provider resolves the user of a request
type Provider interface {
	CurrentUser(r *http.Request) (*model.User, error)
}

// HeaderProvider trusts identity headers set by an authenticating proxy
type HeaderProvider struct {
	EmailHeader string
	RoleHeader  string
}

// CurrentUser reads the email and role headers
func (p HeaderProvider) CurrentUser(r *http.Request) (*model.User, error) {
	email := strings.TrimSpace(r.Header.Get(p.EmailHeader))
	if email == "" {
		return nil, ErrNoUser
	}
	role := model.ParseRole(r.Header.Get(p.RoleHeader))
	return model.NewUser(email, email, role), nil
}

type userKey struct{}

// WithUser returns a copy of ctx carrying u
func WithUser(ctx context.Context, u *model.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the user placed by Middleware, or nil
func UserFromContext(ctx context.Context) *model.User {
	u, _ := ctx.Value(userKey{}).(*model.User)
	return u
}

// Middleware resolves the user once per request. Requests without a user
// continue anonymously; use Require to guard pages.
func Middleware(p Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u, err := p.CurrentUser(c.Request); err == nil && u != nil {
			c.Request = c.Request.WithContext(WithUser(c.Request.Context(), u))
		}
		c.Next()
	}
}

// Require rejects anonymous requests. When loginPath is set the browser is
// redirected there, otherwise the request fails with 401.
func Require(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFromContext(c.Request.Context()) != nil {
			c.Next()
			return
		}
		if loginPath != "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrNoUser.Error()})
	}
}

// ClientCookieName identifies a browser across anonymous requests
const ClientCookieName = "adminshell_client"

// ClientID returns a stable per-browser identifier, issuing one on first use
func ClientID(c *gin.Context) string {
	if id, err := c.Cookie(ClientCookieName); err == nil {
		if _, perr := uuid.Parse(id); perr == nil {
			return id
		}
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ClientCookieName, id, 86400*365, "/", "", false, true)
	return id
}

// Namespace returns the key namespace used for a request's preferences:
// the user id when signed in, the browser client id otherwise
func Namespace(c *gin.Context) string {
	if u := UserFromContext(c.Request.Context()); u != nil && u.UserID != "" {
		return "user_" + u.UserID
	}
	return "client_" + ClientID(c)
}

// RedirectTarget returns where to send the browser after logout: absolute
// http(s) targets are honored, anything else goes home
func RedirectTarget(next string) string {
	if strings.HasPrefix(next, "http") {
		return next
	}
	return "/"
}
