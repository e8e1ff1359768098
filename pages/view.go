// Package pages renders the admin console pages.
package pages

import (
	"strings"

	"github.com/ghiac/adminshell/menu"
	"github.com/ghiac/adminshell/model"
	"github.com/ghiac/adminshell/ui"
)

// View is the per-request state every page renders from
type View struct {
	User            *model.User
	Settings        *model.CombinedSettings
	Flags           menu.Flags
	SuperAdminEmail string
	// Path is the request path, with query, used for active tabs and redirects
	Path   string
	Mobile bool

	AdminFolded     bool
	ConnectorFolded bool
}

// MenuContext is the navigation input for the current user
func (v View) MenuContext() menu.Context {
	return menu.NewContext(v.User, v.SuperAdminEmail, v.Flags, v.Settings)
}

// IsSuperAdmin reports whether the current user gets super-admin affordances
func (v View) IsSuperAdmin() bool {
	return v.User != nil && menu.IsSuperAdmin(v.User.Email, v.SuperAdminEmail)
}

// Branding is the product name and logo
func (v View) Branding() ui.Branding {
	return ui.BrandingFor(v.Settings)
}

// PathOnly is Path without its query string
func (v View) PathOnly() string {
	if i := strings.IndexByte(v.Path, '?'); i >= 0 {
		return v.Path[:i]
	}
	return v.Path
}

func buildMenu(v View) []menu.Section {
	return menu.Build(v.MenuContext())
}

func (v View) document(title, body string) ui.Document {
	doc := ui.Document{Title: v.Branding().Name, Body: body}
	if title != "" {
		doc.Title = title + " | " + doc.Title
	}
	if v.Flags.CustomAnalyticsEnabled && v.Settings != nil {
		doc.HeadScript = v.Settings.CustomAnalyticsScript
	}
	return doc
}
