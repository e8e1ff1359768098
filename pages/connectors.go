package pages

import (
	"fmt"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ghiac/adminshell/ui"
	"github.com/ghiac/adminshell/ui/components"
)

// credentialTemplates lists the connectors that need a credential before
// they can be created
var credentialTemplates = map[string]bool{
	"github":       true,
	"gitlab":       true,
	"confluence":   true,
	"jira":         true,
	"slack":        true,
	"google_drive": true,
	"gmail":        true,
	"notion":       true,
	"zendesk":      true,
	"salesforce":   true,
	"sharepoint":   true,
	"dropbox":      true,
	"s3":           true,
	"linear":       true,
	"hubspot":      true,
}

// HasCredentialTemplate reports whether connector needs a credential step
func HasCredentialTemplate(connector string) bool {
	return credentialTemplates[connector]
}

// ConnectorWizardState is where the user is in the create-connector flow
type ConnectorWizardState struct {
	Connector string
	FormStep  int
}

// ConnectorWizard renders the connector creation page with its step sidebar
func ConnectorWizard(v View, st ConnectorWizardState) string {
	hasCred := HasCredentialTemplate(st.Connector)
	// Creation is open right away for connectors that need no credential.
	// Advanced settings unlock once the user reaches them.
	steps := ui.ConnectorSteps(st.Connector, hasCred, 0, !hasCred, false)
	formStep := clampStep(st.FormStep, len(steps))
	steps = ui.ConnectorSteps(st.Connector, hasCred, formStep, !hasCred, false)

	side := ui.StepSidebar(ui.StepSidebarProps{
		ButtonName:  ui.AdminButtonName(v.User.IsAdmin()),
		ButtonHref:  "/admin/add-connector",
		Connector:   st.Connector,
		Steps:       steps,
		CurrentPath: v.Path,
		Folded:      v.ConnectorFolded,
		Mobile:      v.Mobile,
		Branding:    v.Branding(),
	})

	var b strings.Builder
	b.WriteString(side)
	b.WriteString(`<div class="flex-grow-1 d-flex flex-column overflow-auto">`)
	if v.Mobile && v.ConnectorFolded {
		b.WriteString(ui.MobileUnfoldButton(ui.ConnectorSidebarAction, v.Path))
	}
	b.WriteString(`<div class="pt-5 pb-3 px-3 px-md-5">`)
	b.WriteString(ui.PageHeader("Setup "+connectorLabel(st.Connector), "plug"))
	b.WriteString(stepForm(v.PathOnly(), steps, formStep))
	b.WriteString(`</div></div>`)
	return b.String()
}

func clampStep(step, n int) int {
	if step < 0 {
		return 0
	}
	if step >= n {
		return n - 1
	}
	return step
}

func connectorLabel(connector string) string {
	words := strings.Fields(strings.ReplaceAll(connector, "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func stepForm(base string, steps []ui.Step, formStep int) string {
	current := steps[formStep]
	var body string
	switch current.Title {
	case ui.StepCredential:
		body = `<p>Select an existing credential or provide a new one to let the connector access the source.</p>`
	case ui.StepConnector:
		body = `<div class="mb-3"><label class="form-label" for="name">Connector name</label><input class="form-control" id="name" name="name"></div>`
	case ui.StepAdvanced:
		body = `<div class="mb-3"><label class="form-label" for="refresh_freq">Refresh frequency (minutes)</label><input class="form-control" id="refresh_freq" name="refresh_freq" type="number" value="30"></div>
<div class="mb-3"><label class="form-label" for="prune_freq">Prune frequency (days)</label><input class="form-control" id="prune_freq" name="prune_freq" type="number" value="30"></div>`
	}

	nav := ""
	if formStep > 0 {
		nav += components.ButtonOutlineSmall("Previous", fmt.Sprintf("%s?step=%d", base, formStep-1), "secondary") + " "
	}
	if formStep < len(steps)-1 {
		nav += components.Button("Continue", fmt.Sprintf("%s?step=%d", base, formStep+1), "primary")
	} else {
		nav += `<button class="btn btn-primary" type="submit">Create Connector</button>`
	}

	return fmt.Sprintf(`<form class="card" method="post" action="%s"><div class="card-body">
    <h5 class="card-title">%s</h5>
    %s
    <div class="mt-3">%s</div>
</div></form>`, components.Href(base), template.HTMLEscapeString(current.Title), body, nav)
}
