package ui

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/ghiac/adminshell/ui/components"
)

// Connector wizard step titles
const (
	StepCredential = "Credential"
	StepConnector  = "Connector"
	StepAdvanced   = "Advanced (optional)"
)

// Step is one entry of the connector wizard sidebar
type Step struct {
	Index   int
	Title   string
	Allowed bool
	Current bool
	// Reached marks steps at or before the current form step
	Reached bool
}

// ConnectorSteps lists the wizard steps for a connector. The credential step
// only exists when the connector has a credential template, and file
// uploads have no advanced step. A step is reachable when it is the
// connector step and creation is allowed, the advanced step and advanced
// settings are allowed, or it is not past the current form step.
func ConnectorSteps(connector string, hasCredential bool, formStep int, allowCreate, allowAdvanced bool) []Step {
	var titles []string
	if hasCredential {
		titles = append(titles, StepCredential)
	}
	titles = append(titles, StepConnector)
	if connector != "file" {
		titles = append(titles, StepAdvanced)
	}

	steps := make([]Step, len(titles))
	for i, title := range titles {
		steps[i] = Step{
			Index: i,
			Title: title,
			Allowed: (title == StepConnector && allowCreate) ||
				(title == StepAdvanced && allowAdvanced) ||
				i <= formStep,
			Current: i == formStep,
			Reached: i <= formStep,
		}
	}
	return steps
}

// AdminButtonName labels the wizard's way back to the admin area
func AdminButtonName(isAdmin bool) string {
	if isAdmin {
		return "Admin Page"
	}
	return "Curator Page"
}

// StepSidebarProps is everything the connector wizard sidebar renders from
type StepSidebarProps struct {
	ButtonName  string
	ButtonHref  string
	Connector   string
	Steps       []Step
	CurrentPath string
	Folded      bool
	Mobile      bool
	Branding    Branding
}

// StepSidebar renders the connector wizard sidebar
func StepSidebar(p StepSidebarProps) string {
	if !p.Mobile {
		return stepPanel(p, p.Folded)
	}
	return MobileOverlay("connector-sidebar", ConnectorSidebarAction, p.CurrentPath, p.Folded, stepPanel(p, false))
}

func stepPanel(p StepSidebarProps, folded bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<aside id="connector-sidebar" class="app-sidebar%s">`, foldedClass(folded))
	b.WriteString(`
    <div class="sidebar-top">`)
	b.WriteString(Logo(p.Branding, folded))
	b.WriteString(FoldToggle("connector-sidebar", ConnectorSidebarAction, p.CurrentPath, folded, p.Mobile))
	b.WriteString(`</div>
    <nav class="sidebar-body">`)
	b.WriteString(sidebarTab(p.ButtonName, "gear", p.ButtonHref, false, false))
	b.WriteString(`
        <div class="step-list">`)
	if p.Connector != "file" {
		b.WriteString(`<div class="step-line"></div>`)
	}

	base := p.CurrentPath
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	for _, s := range p.Steps {
		class := "step"
		if s.Allowed {
			class += " allowed"
		} else {
			class += " disabled"
		}
		if s.Reached {
			class += " reached"
		}
		dot := ""
		if s.Current {
			dot = `<span class="current"></span>`
		}
		label := ""
		if !folded {
			label = fmt.Sprintf(`<span class="sidebar-label">%s</span>`, template.HTMLEscapeString(s.Title))
		}
		if s.Allowed {
			fmt.Fprintf(&b, `
            <a class="%s" href="%s?step=%d" title="%s"><span class="step-dot">%s</span>%s</a>`,
				class, components.Href(base), s.Index, template.HTMLEscapeString(s.Title), dot, label)
		} else {
			fmt.Fprintf(&b, `
            <div class="%s" title="%s"><span class="step-dot">%s</span>%s</div>`,
				class, template.HTMLEscapeString(s.Title), dot, label)
		}
	}
	b.WriteString(`
        </div>
    </nav>
</aside>`)
	return b.String()
}
