package ui

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghiac/adminshell/menu"
	"github.com/ghiac/adminshell/model"
)

func adminSections() []menu.Section {
	return menu.Build(menu.Context{
		Role:     model.RoleAdmin,
		Settings: &model.CombinedSettings{Settings: model.Settings{NeedsReindexing: true}},
	})
}

func TestBrandingFor(t *testing.T) {
	b := BrandingFor(nil)
	assert.Equal(t, model.DefaultApplicationName, b.Name)
	assert.Equal(t, DefaultLogoURL, b.LogoURL)
	assert.False(t, b.PoweredBy)

	b = BrandingFor(&model.CombinedSettings{EnterpriseSettings: &model.EnterpriseSettings{
		ApplicationName: "Acme Search",
		UseCustomLogo:   true,
	}})
	assert.Equal(t, "Acme Search", b.Name)
	assert.Equal(t, CustomLogoURL, b.LogoURL)
	assert.True(t, b.PoweredBy)
	assert.Contains(t, Logo(b, false), "Powered by")
	assert.NotContains(t, Logo(b, true), "Acme Search")
}

func TestAdminSidebarDesktop(t *testing.T) {
	html := AdminSidebar(AdminSidebarProps{
		Sections:    adminSections(),
		CurrentPath: "/admin/configuration/llm",
		Version:     "v1.2.3",
		Branding:    BrandingFor(nil),
	})

	assert.Contains(t, html, `<aside id="admin-sidebar" class="app-sidebar">`)
	assert.Contains(t, html, `href="/chat"`)
	assert.Contains(t, html, `<a class="sidebar-tab active" href="/admin/configuration/llm"`)
	assert.Contains(t, html, "error-dot")
	assert.Contains(t, html, "v1.2.3")
	assert.Contains(t, html, `name="folded" value="true"`)
	assert.NotContains(t, html, "sidebar-overlay")
}

func TestAdminSidebarFolded(t *testing.T) {
	html := AdminSidebar(AdminSidebarProps{
		Sections: adminSections(),
		Folded:   true,
		Version:  "v1.2.3",
		Branding: BrandingFor(nil),
	})

	assert.Contains(t, html, `class="app-sidebar folded"`)
	assert.NotContains(t, html, "v1.2.3")
	assert.Contains(t, html, `name="folded" value="false"`)
}

func TestAdminSidebarMobile(t *testing.T) {
	folded := AdminSidebar(AdminSidebarProps{Sections: adminSections(), Folded: true, Mobile: true, Version: "v9"})
	assert.Contains(t, folded, `class="sidebar-overlay offscreen"`)
	// the overlay always holds the expanded panel
	assert.Contains(t, folded, `class="app-sidebar"`)
	assert.Contains(t, folded, "v9")
	assert.NotContains(t, folded, "sidebar-hitbox")

	open := AdminSidebar(AdminSidebarProps{Sections: adminSections(), Mobile: true})
	assert.Contains(t, open, `class="sidebar-overlay"`)
	assert.Contains(t, open, "sidebar-hitbox")
}

func TestConnectorSteps(t *testing.T) {
	steps := ConnectorSteps("github", true, 0, false, false)
	require.Len(t, steps, 3)
	assert.Equal(t, []string{StepCredential, StepConnector, StepAdvanced}, titles(steps))
	assert.True(t, steps[0].Allowed)
	assert.True(t, steps[0].Current)
	assert.False(t, steps[1].Allowed)
	assert.False(t, steps[2].Allowed)

	steps = ConnectorSteps("github", true, 0, true, true)
	assert.True(t, steps[1].Allowed)
	assert.True(t, steps[2].Allowed)

	steps = ConnectorSteps("file", false, 0, false, false)
	assert.Equal(t, []string{StepConnector}, titles(steps))
	assert.True(t, steps[0].Allowed)

	steps = ConnectorSteps("web", false, 1, false, false)
	assert.Equal(t, []string{StepConnector, StepAdvanced}, titles(steps))
	assert.True(t, steps[1].Allowed)
	assert.True(t, steps[1].Reached)
}

func titles(steps []Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Title
	}
	return out
}

func TestStepSidebar(t *testing.T) {
	html := StepSidebar(StepSidebarProps{
		ButtonName:  AdminButtonName(false),
		ButtonHref:  "/admin/add-connector",
		Connector:   "github",
		Steps:       ConnectorSteps("github", true, 0, false, false),
		CurrentPath: "/admin/connectors/github?step=0",
	})
	assert.Contains(t, html, "Curator Page")
	assert.Contains(t, html, `href="/admin/connectors/github?step=0"`)
	assert.NotContains(t, html, `?step=1"`)
	assert.Contains(t, html, "step-line")
	assert.Contains(t, html, ConnectorSidebarAction)

	file := StepSidebar(StepSidebarProps{Connector: "file", Steps: ConnectorSteps("file", false, 0, true, false)})
	assert.NotContains(t, file, "step-line")
}

func TestIsMobile(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsMobile(r))

	r.Header.Set("User-Agent", "Mozilla/5.0 (iPhone) Mobile/15E148")
	assert.True(t, IsMobile(r))

	r.Header.Set("Sec-CH-UA-Mobile", "?0")
	assert.False(t, IsMobile(r))
}

func TestWebResultIcon(t *testing.T) {
	assert.Contains(t, WebResultIcon("https://docs.onyx.app/intro", 0), DefaultLogoURL)
	assert.Contains(t, WebResultIcon("not a url", 18), DefaultLogoURL)

	html := WebResultIcon("https://go.dev/doc", 24)
	assert.Contains(t, html, "faviconV2")
	assert.Contains(t, html, "go.dev")
	assert.Contains(t, html, `width="24"`)
	assert.Contains(t, html, "onerror")
}

func TestRedirectBack(t *testing.T) {
	assert.Equal(t, "/admin/users?x=1", RedirectBack("/admin/users?x=1", "/admin"))
	assert.Equal(t, "/admin", RedirectBack("https://evil.example", "/admin"))
	assert.Equal(t, "/admin", RedirectBack("//evil.example/x", "/admin"))
	assert.Equal(t, "/admin", RedirectBack("", "/admin"))
}

func TestPageComponent(t *testing.T) {
	var buf bytes.Buffer
	err := Page(Document{Title: "A & B", Body: "<main>hi</main>", HeadScript: "window.x=1"}).Render(context.Background(), &buf)
	require.NoError(t, err)
	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>A &amp; B</title>")
	assert.Contains(t, html, "<main>hi</main>")
	assert.Contains(t, html, "<script>window.x=1</script>")
}

func TestSidebarTabSanitizesLink(t *testing.T) {
	html := sidebarTab("Bad", "x", "javascript:alert(1)", false, false)
	assert.NotContains(t, html, "javascript:")
	assert.Contains(t, html, "about:invalid")

	html = sidebarTab("Users", "person", "/admin/users?a=1&b=2", true, false)
	assert.Contains(t, html, `href="/admin/users?a=1&amp;b=2"`)
	assert.Contains(t, html, `class="sidebar-tab active"`)
}
