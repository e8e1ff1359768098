package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghiac/adminshell/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHeaderProvider(t *testing.T) {
	p := HeaderProvider{EmailHeader: "X-Email", RoleHeader: "X-Role"}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := p.CurrentUser(req)
	assert.ErrorIs(t, err, ErrNoUser)

	req.Header.Set("X-Email", "ops@example.com")
	req.Header.Set("X-Role", "curator")
	u, err := p.CurrentUser(req)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", u.Email)
	assert.Equal(t, model.RoleCurator, u.Role)

	req.Header.Del("X-Role")
	u, err = p.CurrentUser(req)
	require.NoError(t, err)
	assert.Equal(t, model.RoleBasic, u.Role)
}

func TestSessionProviderLoginLogout(t *testing.T) {
	p := NewSessionProvider(sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	require.NoError(t, p.Login(w, req, model.NewUser("u1", "admin@example.com", model.RoleAdmin)))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	next := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		next.AddCookie(c)
	}
	u, err := p.CurrentUser(next)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)
	assert.Equal(t, "admin@example.com", u.Email)
	assert.True(t, u.IsAdmin())

	w = httptest.NewRecorder()
	require.NoError(t, p.Logout(w, next))
	cleared := w.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.True(t, cleared[0].MaxAge < 0)

	_, err = p.CurrentUser(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoUser)
}

func TestMiddlewareAndRequire(t *testing.T) {
	p := HeaderProvider{EmailHeader: "X-Email", RoleHeader: "X-Role"}
	r := gin.New()
	r.Use(Middleware(p))
	r.GET("/api", Require(""), func(c *gin.Context) {
		c.String(http.StatusOK, UserFromContext(c.Request.Context()).Email)
	})
	r.GET("/page", Require("/auth/login"), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set("X-Email", "a@b.c")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@b.c", w.Body.String())
}

func TestNamespace(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	ns := Namespace(c)
	assert.Contains(t, ns, "client_")
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, ClientCookieName, cookies[0].Name)

	// A returning browser keeps its id.
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.AddCookie(cookies[0])
	assert.Equal(t, ns, Namespace(c2))
	assert.Empty(t, w2.Result().Cookies())

	c2.Request = c2.Request.WithContext(WithUser(c2.Request.Context(), model.NewUser("42", "x@y.z", model.RoleAdmin)))
	assert.Equal(t, "user_42", Namespace(c2))
}

func TestRedirectTarget(t *testing.T) {
	assert.Equal(t, "https://idp.example.com/logout", RedirectTarget("https://idp.example.com/logout"))
	assert.Equal(t, "/", RedirectTarget("/admin"))
	assert.Equal(t, "/", RedirectTarget(""))
}
