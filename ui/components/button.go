// Package components holds small reusable HTML widgets.
package components

import (
	"fmt"
	"html/template"

	"github.com/a-h/templ"
)

// Href makes a link target safe to place in an href attribute. Unsafe
// schemes such as javascript: are replaced by templ's failed-sanitization URL.
func Href(raw string) string {
	return templ.EscapeString(string(templ.URL(raw)))
}

// Button generates a Bootstrap link button
func Button(text, url, variant string) string {
	return fmt.Sprintf(`<a href="%s" class="btn btn-%s">%s</a>`,
		Href(url), variant, template.HTMLEscapeString(text))
}

// ButtonWithIcon generates a link button with a leading Bootstrap icon
func ButtonWithIcon(text, icon, url, variant string) string {
	return fmt.Sprintf(`<a href="%s" class="btn btn-%s"><i class="bi bi-%s me-1"></i>%s</a>`,
		Href(url), variant, icon, template.HTMLEscapeString(text))
}

// ButtonOutlineSmall generates a small outline button
func ButtonOutlineSmall(text, url, variant string) string {
	return fmt.Sprintf(`<a href="%s" class="btn btn-sm btn-outline-%s">%s</a>`,
		Href(url), variant, template.HTMLEscapeString(text))
}

// FilterButtonProps describes a filter chip
type FilterButtonProps struct {
	Label string
	Icon  string
	// Href opens the filter's options
	Href string
	// ClearHref removes the filter; shown only when active
	ClearHref string
	Active    bool
	// Transient marks the filter's menu as currently open
	Transient bool
}

// FilterButton renders a filter chip. Active filters show a clear control,
// inactive ones a chevron that flips while the menu is open.
func FilterButton(p FilterButtonProps) string {
	class := "filter-button"
	if p.Active {
		class += " active"
	}
	if p.Transient {
		class += " transient"
	}
	trailing := `<i class="bi bi-chevron-down"></i>`
	if p.Active {
		trailing = fmt.Sprintf(`<a class="clear" href="%s" aria-label="Clear filter"><i class="bi bi-x"></i></a>`, Href(p.ClearHref))
	}
	return fmt.Sprintf(`<span class="%s"><a class="text-reset text-decoration-none text-nowrap" href="%s"><i class="bi bi-%s me-1"></i>%s</a>%s</span>`,
		class, Href(p.Href), p.Icon, template.HTMLEscapeString(p.Label), trailing)
}
