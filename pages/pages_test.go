package pages

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghiac/adminshell/catalog"
	"github.com/ghiac/adminshell/llm"
	"github.com/ghiac/adminshell/menu"
	"github.com/ghiac/adminshell/model"
)

const superAdmin = "root@example.com"

func activeSettings() *model.CombinedSettings {
	return &model.CombinedSettings{Settings: model.Settings{ApplicationStatus: model.StatusActive}, WebVersion: "v2.0.0"}
}

func adminView(path string) View {
	return View{
		User:            model.NewUser("1", "admin@example.com", model.RoleAdmin),
		Settings:        activeSettings(),
		Flags:           menu.Flags{EnableEnterprise: true},
		SuperAdminEmail: superAdmin,
		Path:            path,
	}
}

func TestRootGating(t *testing.T) {
	v := adminView("/admin/users")

	v.Settings = &model.CombinedSettings{Settings: model.Settings{ApplicationStatus: model.StatusGatedAccess}}
	doc := Root(v, "Users", "<p>body</p>")
	assert.Contains(t, doc.Body, "Access Restricted")
	assert.NotContains(t, doc.Body, "<p>body</p>")

	v.Settings = nil
	assert.Contains(t, Root(v, "Users", "x").Body, "We encountered an issue")

	v.Flags.EnableCloud = true
	assert.Contains(t, Root(v, "Users", "x").Body, "Maintenance in Progress")

	v.Settings = activeSettings()
	doc = Root(v, "Users", "<p>body</p>")
	assert.Equal(t, "<p>body</p>", doc.Body)
	assert.Equal(t, "Users | Cellilox", doc.Title)
}

func TestRootAnalyticsScript(t *testing.T) {
	v := adminView("/chat")
	v.Settings.CustomAnalyticsScript = "track()"
	assert.Empty(t, Root(v, "", "x").HeadScript)

	v.Flags.CustomAnalyticsEnabled = true
	assert.Equal(t, "track()", Root(v, "", "x").HeadScript)
}

func TestAdminLayout(t *testing.T) {
	v := adminView("/admin/users")
	doc := Admin(v, "Users", "<p>users</p>")
	assert.Contains(t, doc.Body, `id="admin-sidebar"`)
	assert.Contains(t, doc.Body, "<p>users</p>")
	assert.Contains(t, doc.Body, "v2.0.0")
	assert.NotContains(t, doc.Body, "payment-banner")

	v.Settings.Settings.ApplicationStatus = model.StatusPaymentReminder
	doc = Admin(v, "Users", "<p>users</p>")
	assert.Contains(t, doc.Body, "Your trial ends in less than 5 days")
	assert.Contains(t, doc.Body, `href="/admin/billing"`)
}

func TestAdminLayoutCustomSidebar(t *testing.T) {
	for _, path := range []string{"/admin/connectors/github", "/admin/embeddings"} {
		doc := Admin(adminView(path), "x", "<p>own</p>")
		assert.NotContains(t, doc.Body, `id="admin-sidebar"`, path)
		assert.Contains(t, doc.Body, "<p>own</p>", path)
	}
	assert.False(t, HasCustomSidebar("/admin/indexing/status"))
}

func TestAdminLayoutMobileUnfold(t *testing.T) {
	v := adminView("/admin/users")
	v.Mobile = true
	assert.NotContains(t, Admin(v, "", "x").Body, "mobile-unfold")

	v.AdminFolded = true
	body := Admin(v, "", "x").Body
	assert.Contains(t, body, "mobile-unfold")
	assert.Contains(t, body, "sidebar-overlay offscreen")
}

func TestActionsPage(t *testing.T) {
	mcp := 9
	src := catalog.NewMemorySource()
	src.AddTool(model.Tool{ID: 1, Name: "search", Description: "Search documents"})
	src.AddTool(model.Tool{ID: 2, Name: "remote", MCPServerID: &mcp})
	src.AddMCPServer(model.MCPServer{ID: mcp, Name: "Remote Tools", ServerURL: "https://mcp.example.com", ToolCount: 1})

	v := adminView("/admin/actions")
	html := ActionsPage(context.Background(), v, src, "")
	assert.Contains(t, html, "search")
	assert.NotContains(t, html, ">remote<")
	assert.Contains(t, html, "Remote Tools")
	assert.Contains(t, html, "1 tool")
	assert.NotContains(t, html, "Create Actions")

	v.User = model.NewUser("2", superAdmin, model.RoleAdmin)
	html = ActionsPage(context.Background(), v, src, FilterMCP)
	assert.Contains(t, html, "Create Actions")
	assert.Contains(t, html, `href="/admin/actions/new"`)
	assert.Contains(t, html, `href="/admin/actions/edit-mcp"`)
	assert.NotContains(t, html, "Search documents")
	assert.Contains(t, html, "filter-button active")
}

type splitSource struct {
	*catalog.MemorySource
	toolErr, mcpErr error
}

func (s splitSource) ListTools(ctx context.Context) ([]model.Tool, error) {
	if s.toolErr != nil {
		return nil, s.toolErr
	}
	return s.MemorySource.ListTools(ctx)
}

func (s splitSource) ListMCPServers(ctx context.Context) (*model.MCPServersResponse, error) {
	if s.mcpErr != nil {
		return nil, s.mcpErr
	}
	return s.MemorySource.ListMCPServers(ctx)
}

func TestLoadActionsErrors(t *testing.T) {
	toolFail := &catalog.ResponseError{Op: "Failed to fetch tools", Status: 500, Body: "db down"}
	mcpFail := &catalog.ResponseError{Op: "Failed to fetch MCP servers", Status: 502, Body: "gateway"}

	_, err := LoadActions(context.Background(), splitSource{catalog.NewMemorySource(), toolFail, mcpFail})
	assert.Equal(t, toolFail, err)

	_, err = LoadActions(context.Background(), splitSource{catalog.NewMemorySource(), nil, mcpFail})
	assert.Equal(t, mcpFail, err)

	malformed := errors.Join(catalog.ErrMalformed)
	data, err := LoadActions(context.Background(), splitSource{catalog.NewMemorySource(), nil, malformed})
	require.NoError(t, err)
	assert.Empty(t, data.MCPServers)

	html := ActionsPage(context.Background(), adminView("/admin/actions"), splitSource{catalog.NewMemorySource(), toolFail, nil}, "")
	assert.Contains(t, html, ErrorTitle)
	assert.Contains(t, html, "Failed to fetch tools - db down")
}

func TestAssistantEditorPage(t *testing.T) {
	src := catalog.NewMemorySource()
	src.AddTool(model.Tool{ID: 4, Name: "search"})
	src.AddAssistant(model.Assistant{ID: "a1", Name: "Support", IsPublic: true, ToolIDs: []int{4}})
	ctx := context.Background()

	html := AssistantEditorPage(ctx, src, "")
	assert.Contains(t, html, "Create Assistant")
	assert.Contains(t, html, `name="add_to_user_preferences"`)
	assert.NotContains(t, html, `id="is_public" checked`)

	html = AssistantEditorPage(ctx, src, "a1")
	assert.Contains(t, html, "Edit Support")
	assert.NotContains(t, html, "add_to_user_preferences")
	assert.Contains(t, html, `id="tool-4" checked`)

	html = AssistantEditorPage(ctx, src, "missing")
	assert.Contains(t, html, ErrorTitle)
}

func TestConnectorWizard(t *testing.T) {
	v := adminView("/admin/connectors/github")
	html := ConnectorWizard(v, ConnectorWizardState{Connector: "github"})
	assert.Contains(t, html, "Admin Page")
	assert.Contains(t, html, "Credential")
	assert.Contains(t, html, "Setup Github")
	assert.Contains(t, html, `href="/admin/connectors/github?step=1" class="btn btn-primary">Continue`)
	assert.NotContains(t, html, "Previous")

	html = ConnectorWizard(v, ConnectorWizardState{Connector: "github", FormStep: 1})
	assert.Contains(t, html, `href="/admin/connectors/github?step=0" class="btn btn-sm btn-outline-secondary">Previous`)

	v.User = model.NewUser("3", "cur@example.com", model.RoleCurator)
	html = ConnectorWizard(v, ConnectorWizardState{Connector: "file", FormStep: 7})
	assert.Contains(t, html, "Curator Page")
	assert.NotContains(t, html, "Credential")
	assert.NotContains(t, html, "Advanced")
	assert.Contains(t, html, "Create Connector")
}

func TestUsagePage(t *testing.T) {
	src := catalog.NewMemorySource()
	src.SetUsage([]model.UsagePoint{{Date: time.Now(), Queries: 11, Likes: 2, ActiveUsers: 3}})
	html := UsagePage(context.Background(), src)
	assert.Contains(t, html, ">11<")
	assert.Contains(t, html, UsageChartPath)

	src.Fail = &catalog.ResponseError{Op: "Failed to fetch usage statistics", Status: http.StatusBadGateway}
	assert.Contains(t, UsagePage(context.Background(), src), ErrorTitle)
}

func TestLLMPage(t *testing.T) {
	assert.Contains(t, LLMPage(context.Background(), nil), "No LLM provider is configured")

	p := llm.ProviderFunc(func(ctx context.Context) ([]llm.Model, error) {
		return []llm.Model{{ID: "gpt-4o", OwnedBy: "openai"}}, nil
	})
	html := LLMPage(context.Background(), p)
	assert.Contains(t, html, "<code>gpt-4o</code>")

	failing := llm.ProviderFunc(func(ctx context.Context) ([]llm.Model, error) {
		return nil, errors.New("bad key")
	})
	assert.Contains(t, LLMPage(context.Background(), failing), "bad key")
}

func TestConnectorLabel(t *testing.T) {
	assert.Equal(t, "Google Drive", connectorLabel("google_drive"))
	assert.Equal(t, "Été Notes", connectorLabel("été_notes"))
	assert.True(t, utf8.ValidString(connectorLabel("élan")))
}

func TestPlaceholderAndLogin(t *testing.T) {
	html := Placeholder(adminView("/admin/users"), menu.Item{Name: "Users", Icon: "person", Link: "/admin/users"})
	assert.Contains(t, html, "Users")
	assert.Contains(t, html, "Related")
	assert.Contains(t, html, `href="/admin/api-key"`)
	assert.NotContains(t, html, `href="/admin/users" class="card`)

	html = Placeholder(adminView("/admin/x"), menu.Item{Name: "Hidden", Icon: "x", Link: "/admin/not-in-menu"})
	assert.NotContains(t, html, "Related")
	assert.True(t, strings.Contains(Login("bad role"), "bad role"))
}
