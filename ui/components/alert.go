package components

import (
	"fmt"
	"html/template"
)

// AlertWithIcon generates an alert with an icon
func AlertWithIcon(message, icon, variant string) string {
	return fmt.Sprintf(`<div class="alert alert-%s">
    <i class="bi bi-%s me-2"></i>%s
</div>`, variant, icon, template.HTMLEscapeString(message))
}

// InfoAlert generates an info alert
func InfoAlert(message string) string {
	return AlertWithIcon(message, "info-circle", "info")
}

// WarningAlert generates a warning alert
func WarningAlert(message string) string {
	return AlertWithIcon(message, "exclamation-triangle", "warning")
}

// ErrorCallout renders a titled failure message, used when a backend fetch fails
func ErrorCallout(title, detail string) string {
	return fmt.Sprintf(`<div class="alert alert-danger" role="alert">
    <h5 class="alert-heading"><i class="bi bi-x-circle me-2"></i>%s</h5>
    <p class="mb-0">%s</p>
</div>`, template.HTMLEscapeString(title), template.HTMLEscapeString(detail))
}
