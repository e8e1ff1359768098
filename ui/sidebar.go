package ui

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/ghiac/adminshell/menu"
	"github.com/ghiac/adminshell/ui/components"
)

// Sidebar state endpoints, one per fold controller
const (
	AdminSidebarAction     = "/admin/api/sidebar/admin"
	ConnectorSidebarAction = "/admin/api/sidebar/connector"
)

// AdminSidebarProps is everything the admin sidebar renders from
type AdminSidebarProps struct {
	Sections    []menu.Section
	CurrentPath string
	Folded      bool
	Mobile      bool
	Version     string
	Branding    Branding
}

// AdminSidebar renders the admin navigation. Desktop renders inline in its
// current fold state. Mobile always renders it expanded inside an overlay
// that slides off-screen when folded.
func AdminSidebar(p AdminSidebarProps) string {
	if !p.Mobile {
		return adminPanel(p, p.Folded)
	}
	return MobileOverlay("admin-sidebar", AdminSidebarAction, p.CurrentPath, p.Folded, adminPanel(p, false))
}

func adminPanel(p AdminSidebarProps, folded bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<aside id="admin-sidebar" class="app-sidebar%s">`, foldedClass(folded))
	b.WriteString(`
    <div class="sidebar-top">`)
	b.WriteString(Logo(p.Branding, folded))
	b.WriteString(FoldToggle("admin-sidebar", AdminSidebarAction, p.CurrentPath, folded, p.Mobile))
	b.WriteString(`</div>
    <nav class="sidebar-body">`)
	b.WriteString(sidebarTab("Exit Admin", "arrow-left-circle", "/chat", false, false))

	for _, section := range p.Sections {
		fmt.Fprintf(&b, `
        <div class="sidebar-section">
            <div class="sidebar-section-title">%s</div>`, template.HTMLEscapeString(section.Name))
		for _, item := range section.Items {
			b.WriteString(sidebarTab(item.Name, item.Icon, item.Link, item.IsActive(p.CurrentPath), item.Error))
		}
		b.WriteString(`
        </div>`)
	}
	b.WriteString(`
    </nav>`)

	if !folded && p.Version != "" {
		fmt.Fprintf(&b, `
    <div class="sidebar-footer">%s</div>`, template.HTMLEscapeString(p.Version))
	}
	b.WriteString(`
</aside>`)
	return b.String()
}

func sidebarTab(name, icon, link string, active, needsAttention bool) string {
	class := "sidebar-tab"
	if active {
		class += " active"
	}
	marker := ""
	if needsAttention {
		marker = `<span class="error-dot" title="Needs attention"></span>`
	}
	return fmt.Sprintf(`
            <a class="%s" href="%s" title="%s"><i class="bi bi-%s"></i><span class="sidebar-label">%s</span>%s</a>`,
		class, components.Href(link), template.HTMLEscapeString(name), icon, template.HTMLEscapeString(name), marker)
}

func foldedClass(folded bool) string {
	if folded {
		return " folded"
	}
	return ""
}

// FoldToggle renders the form that flips a sidebar's fold state. It posts
// the desired state so a replayed submit is harmless, and carries the
// current path so the server can redirect back.
func FoldToggle(target, action, currentPath string, folded, reload bool) string {
	icon := "layout-sidebar-inset"
	label := "Fold sidebar"
	if folded {
		icon = "layout-sidebar"
		label = "Unfold sidebar"
	}
	return fmt.Sprintf(`
        <form class="fold-toggle" method="post" action="%s" data-target="%s" data-reload="%t">
            <input type="hidden" name="folded" value="%t">
            <input type="hidden" name="redirect" value="%s">
            <button type="submit" title="%s" aria-label="%s"><i class="bi bi-%s"></i></button>
        </form>`, action, target, reload, !folded, template.HTMLEscapeString(currentPath), label, label, icon)
}

// MobileOverlay wraps an expanded sidebar panel for small screens. When
// unfolded a click-outside hitbox folds it again.
func MobileOverlay(target, action, currentPath string, folded bool, panel string) string {
	offscreen := ""
	if folded {
		offscreen = " offscreen"
	}
	html := fmt.Sprintf(`<div class="sidebar-overlay%s">%s</div>`, offscreen, panel)
	if !folded {
		html += fmt.Sprintf(`
<form method="post" action="%s" data-target="%s">
    <input type="hidden" name="folded" value="true">
    <input type="hidden" name="redirect" value="%s">
    <button type="submit" class="sidebar-hitbox" aria-label="Close sidebar"></button>
</form>`, action, target, template.HTMLEscapeString(currentPath))
	}
	return html
}

// MobileUnfoldButton is shown above page content when a mobile sidebar is folded
func MobileUnfoldButton(action, currentPath string) string {
	return fmt.Sprintf(`<div class="mobile-unfold">
    <form method="post" action="%s">
        <input type="hidden" name="folded" value="false">
        <input type="hidden" name="redirect" value="%s">
        <button type="submit" class="btn btn-sm btn-light" aria-label="Open sidebar"><i class="bi bi-list"></i></button>
    </form>
</div>`, action, template.HTMLEscapeString(currentPath))
}

// RedirectBack returns a safe local path to return to after a sidebar
// form post. Anything that is not a local absolute path falls back to
// fallback.
func RedirectBack(raw, fallback string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return fallback
	}
	return u.RequestURI()
}
