package pages

import (
	"fmt"
	"html/template"

	"github.com/ghiac/adminshell/menu"
	"github.com/ghiac/adminshell/ui"
	"github.com/ghiac/adminshell/ui/components"
)

// Placeholder renders a menu destination whose page is served elsewhere,
// with cards linking to the other pages of its menu section
func Placeholder(v View, item menu.Item) string {
	html := ui.PageHeader(item.Name, item.Icon) +
		components.InfoAlert(item.Name+" is managed by the backend service.")

	section, related := relatedItems(buildMenu(v), item.Link)
	if len(related) == 0 {
		return html
	}
	cols := ""
	for _, r := range related {
		cols += ui.Column("col-md-4", components.LinkCard(r.Name, section, r.Icon, r.Link))
	}
	return html + `<h2 class="h6 text-muted mt-4">Related</h2>` + ui.Row(cols)
}

// relatedItems returns the section holding link and its other items
func relatedItems(sections []menu.Section, link string) (string, []menu.Item) {
	for _, s := range sections {
		for _, it := range s.Items {
			if it.Link != link {
				continue
			}
			others := make([]menu.Item, 0, len(s.Items)-1)
			for _, o := range s.Items {
				if o.Link != link {
					others = append(others, o)
				}
			}
			return s.Name, others
		}
	}
	return "", nil
}

// Login renders the development login form
func Login(errMsg string) string {
	alert := ""
	if errMsg != "" {
		alert = components.WarningAlert(errMsg)
	}
	return fmt.Sprintf(`<div class="d-flex justify-content-center align-items-center" style="min-height: 100vh;">
<form method="post" action="/auth/login" class="card p-4" style="width: 24rem;">
    <h1 class="h4 mb-3">Sign in</h1>
    %s
    <div class="mb-3"><label class="form-label" for="email">Email</label><input class="form-control" type="email" id="email" name="email" required></div>
    <div class="mb-3"><label class="form-label" for="role">Role</label>
        <select class="form-select" id="role" name="role">%s</select>
    </div>
    <button type="submit" class="btn btn-primary w-100">Sign in</button>
</form>
</div>`, alert, roleOptions())
}

func roleOptions() string {
	html := ""
	for _, r := range []string{"admin", "curator", "global_curator", "basic"} {
		html += fmt.Sprintf(`<option value="%s">%s</option>`, r, template.HTMLEscapeString(r))
	}
	return html
}

// Chat is the landing page outside the admin area
func Chat(v View) string {
	who := "Guest"
	if v.User != nil {
		who = template.HTMLEscapeString(v.User.Email) + " " + components.RoleBadge(v.User.Role)
	}
	actions := components.Button("Admin Panel", "/admin/indexing/status", "primary") + " " +
		components.Button("New Assistant", "/assistants/new", "outline-primary")
	if v.User != nil {
		actions += " " + components.Button("Log out", "/auth/logout-bridge", "outline-secondary")
	}
	return ui.PageLayout(ui.Logo(v.Branding(), false) +
		`<p class="mt-4">Signed in as <strong>` + who + `</strong></p>` +
		`<div class="d-flex gap-2">` + actions + `</div>`)
}
