package adminshell

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ghiac/adminshell/auth"
	"github.com/ghiac/adminshell/config"
	"github.com/ghiac/adminshell/log"
	"github.com/ghiac/adminshell/menu"
	"github.com/ghiac/adminshell/model"
	"github.com/ghiac/adminshell/pages"
	"github.com/ghiac/adminshell/settings"
	"github.com/ghiac/adminshell/sidebar"
	"github.com/ghiac/adminshell/store"
	"github.com/ghiac/adminshell/ui"
	"github.com/ghiac/adminshell/visualize"
)

// LoginPath is where dev auth sends anonymous visitors
const LoginPath = "/auth/login"

// extraPages are linked from pages rather than from the menu
var extraPages = []menu.Item{
	{Name: "Create Action from OpenAPI schema", Icon: "filetype-json", Link: "/admin/actions/new"},
	{Name: "Create Action from MCP server", Icon: "hdd-network", Link: "/admin/actions/edit-mcp"},
	{Name: "Embeddings", Icon: "diagram-3", Link: "/admin/embeddings"},
}

// RegisterRoutes registers the console routes on the given gin.Engine
func (s *Shell) RegisterRoutes(router *gin.Engine) {
	router.Use(auth.Middleware(s.auth))

	router.GET("/health", s.handleHealth)
	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/chat") })
	router.GET("/chat", s.handleChat)

	router.GET("/auth/logout-bridge", s.handleLogoutBridge)
	if s.sessions != nil {
		router.GET(LoginPath, s.handleLoginForm)
		router.POST(LoginPath, s.handleLogin)
	}

	loginPath := ""
	if s.cfg.Auth.Mode == config.AuthModeDev {
		loginPath = LoginPath
	}

	assistants := router.Group("/assistants", auth.Require(loginPath))
	assistants.GET("/new", s.handleAssistantEditor)
	assistants.GET("/edit/:id", s.handleAssistantEditor)

	admin := router.Group("/admin",
		auth.Require(loginPath),
		requireAdminArea(),
		sidebar.Middleware(sidebar.ScopeAdmin, s.openPreferences),
	)
	connectorScope := sidebar.Middleware(sidebar.ScopeConnector, s.openPreferences)

	admin.GET("", func(c *gin.Context) { c.Redirect(http.StatusFound, "/admin/indexing/status") })
	admin.GET("/actions", s.handleActions)
	admin.GET("/performance/usage", s.handleUsage)
	admin.GET("/performance/usage/chart", s.handleUsageChart)
	admin.GET("/configuration/llm", s.handleLLM)
	admin.GET("/connectors/:connector", connectorScope, s.handleConnector)

	admin.GET("/api/menu", s.handleMenu)
	admin.GET("/api/sidebar/:scope", connectorScope, s.handleSidebarState)
	admin.POST("/api/sidebar/:scope", connectorScope, s.handleSidebarState)

	handled := map[string]bool{
		"/admin/actions":           true,
		"/admin/performance/usage": true,
		"/admin/configuration/llm": true,
	}
	for _, item := range append(menu.Catalog(), extraPages...) {
		if handled[item.Link] || !strings.HasPrefix(item.Link, "/admin/") {
			continue
		}
		handled[item.Link] = true
		admin.GET(strings.TrimPrefix(item.Link, "/admin"), func(c *gin.Context) {
			s.renderAdmin(c, item.Name, pages.Placeholder(s.view(c), item))
		})
	}
}

// openPreferences picks the storage backing a request's fold controllers
func (s *Shell) openPreferences(c *gin.Context) (sidebar.Storage, error) {
	if s.prefs == nil {
		return store.NewCookieStore(s.cookies, c.Request, c.Writer), nil
	}
	return store.WithNamespace(s.prefs, auth.Namespace(c)), nil
}

// requireAdminArea keeps basic users out of the admin console
func requireAdminArea() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := auth.UserFromContext(c.Request.Context())
		if u == nil || !(u.IsAdmin() || u.Role.IsCurator()) {
			c.Redirect(http.StatusFound, "/chat")
			c.Abort()
			return
		}
		c.Next()
	}
}

// view collects the per-request state pages render from
func (s *Shell) view(c *gin.Context) pages.View {
	ctx := c.Request.Context()
	v := pages.View{
		User:            auth.UserFromContext(ctx),
		Settings:        settings.Snapshot(ctx, s.settings),
		Flags:           s.Flags(),
		SuperAdminEmail: s.cfg.SuperAdminEmail,
		Path:            c.Request.URL.RequestURI(),
		Mobile:          ui.IsMobile(c.Request),
	}
	if ctrl, ok := sidebar.FromContext(ctx, sidebar.ScopeAdmin); ok {
		v.AdminFolded = ctrl.Folded()
	}
	if ctrl, ok := sidebar.FromContext(ctx, sidebar.ScopeConnector); ok {
		v.ConnectorFolded = ctrl.Folded()
	}
	return v
}

// render writes a document through its templ component
func render(c *gin.Context, status int, doc ui.Document) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := ui.Page(doc).Render(c.Request.Context(), c.Writer); err != nil {
		log.Log.Errorf("[routes] failed to render %s: %v", c.Request.URL.Path, err)
	}
}

func (s *Shell) renderAdmin(c *gin.Context, title, content string) {
	render(c, http.StatusOK, pages.Admin(s.view(c), title, content))
}

func (s *Shell) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": Version(),
		"storage": s.cfg.Storage.Backend,
	})
}

func (s *Shell) handleChat(c *gin.Context) {
	v := s.view(c)
	render(c, http.StatusOK, pages.Root(v, "Chat", pages.Chat(v)))
}

func (s *Shell) handleActions(c *gin.Context) {
	v := s.view(c)
	s.renderAdmin(c, "Actions", pages.ActionsPage(c.Request.Context(), v, s.catalog, c.Query("type")))
}

func (s *Shell) handleUsage(c *gin.Context) {
	s.renderAdmin(c, "Usage Statistics", pages.UsagePage(c.Request.Context(), s.catalog))
}

// handleUsageChart serves the standalone echarts page embedded by the usage page
func (s *Shell) handleUsageChart(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(pages.UsageDays)))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return
	}

	points, err := s.catalog.UsageStats(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := visualize.NewUsageChart(points).Render(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	html := strings.ReplaceAll(buf.String(),
		`https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js`,
		`https://cdn.jsdelivr.net/npm/echarts@5/dist/echarts.min.js`)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

func (s *Shell) handleLLM(c *gin.Context) {
	s.renderAdmin(c, "LLM", pages.LLMPage(c.Request.Context(), s.llm))
}

func (s *Shell) handleConnector(c *gin.Context) {
	// Fold state of the wizard belongs to the connector scope only.
	ctrl := sidebar.MustFromContext(c.Request.Context(), sidebar.ScopeConnector)
	v := s.view(c)
	v.ConnectorFolded = ctrl.Folded()

	step, _ := strconv.Atoi(c.Query("step"))
	content := pages.ConnectorWizard(v, pages.ConnectorWizardState{
		Connector: c.Param("connector"),
		FormStep:  step,
	})
	render(c, http.StatusOK, pages.Admin(v, "Add Connector", content))
}

func (s *Shell) handleAssistantEditor(c *gin.Context) {
	v := s.view(c)
	title := "New Assistant"
	if c.Param("id") != "" {
		title = "Edit Assistant"
	}
	body := pages.AssistantEditorPage(c.Request.Context(), s.catalog, c.Param("id"))
	render(c, http.StatusOK, pages.Root(v, title, body))
}

func (s *Shell) handleMenu(c *gin.Context) {
	v := s.view(c)
	c.JSON(http.StatusOK, gin.H{"sections": menu.Build(v.MenuContext())})
}

// handleSidebarState reads or changes a sidebar's fold state. POST takes an
// optional folded=true|false and toggles when it is absent. Form posts are
// redirected back; JSON clients get the new state.
func (s *Shell) handleSidebarState(c *gin.Context) {
	scope, err := sidebar.ParseScope(c.Param("scope"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	ctrl := sidebar.MustFromContext(ctx, scope)

	if c.Request.Method == http.MethodPost {
		switch v := c.PostForm("folded"); v {
		case "":
			ctrl.Toggle(ctx)
		case "true", "false":
			ctrl.SetFolded(ctx, v == "true")
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "folded must be true or false"})
			return
		}
		if !strings.Contains(c.GetHeader("Accept"), "application/json") {
			c.Redirect(http.StatusSeeOther, ui.RedirectBack(c.PostForm("redirect"), "/admin"))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"scope":  scope,
		"key":    ctrl.Key(),
		"folded": ctrl.Folded(),
	})
}

func (s *Shell) handleLoginForm(c *gin.Context) {
	render(c, http.StatusOK, ui.Document{Title: "Sign in", Body: pages.Login("")})
}

func (s *Shell) handleLogin(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	if email == "" {
		render(c, http.StatusBadRequest, ui.Document{Title: "Sign in", Body: pages.Login("Email is required")})
		return
	}
	u := model.NewUser(email, email, model.ParseRole(c.PostForm("role")))
	if err := s.sessions.Login(c.Writer, c.Request, u); err != nil {
		log.Log.Errorf("[auth] login failed for %s: %v", email, err)
		render(c, http.StatusInternalServerError, ui.Document{Title: "Sign in", Body: pages.Login("Could not start a session")})
		return
	}
	log.Log.Infof("[auth] %s signed in as %s", email, u.Role)
	c.Redirect(http.StatusSeeOther, "/admin/indexing/status")
}

// handleLogoutBridge ends the session and forwards to next
func (s *Shell) handleLogoutBridge(c *gin.Context) {
	if s.sessions != nil {
		if err := s.sessions.Logout(c.Writer, c.Request); err != nil {
			log.Log.Errorf("[auth] Logout failed: %v", err)
		}
	}
	c.Redirect(http.StatusFound, auth.RedirectTarget(c.Query("next")))
}
