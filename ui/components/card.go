package components

import (
	"fmt"
	"html/template"
)

// StatCard generates a statistics card
func StatCard(value, label, icon, color string) string {
	return fmt.Sprintf(`
<div class="card text-center h-100">
    <div class="card-body d-flex flex-column justify-content-center">
        <h2 class="card-title text-%s mb-2">%s</h2>
        <p class="card-text mb-0"><i class="bi bi-%s me-1"></i>%s</p>
    </div>
</div>`, color, template.HTMLEscapeString(value), icon, template.HTMLEscapeString(label))
}

// LinkCard generates a clickable card
func LinkCard(title, content, icon, linkURL string) string {
	return fmt.Sprintf(`
<a href="%s" class="card text-decoration-none text-dark h-100">
    <div class="card-body">
        <h6 class="card-title"><i class="bi bi-%s me-2"></i>%s</h6>
        <p class="card-text text-muted small">%s</p>
    </div>
</a>`, Href(linkURL), icon, template.HTMLEscapeString(title), template.HTMLEscapeString(content))
}

// KeyValue is one row of a DetailsCard
type KeyValue struct {
	Label string
	Value string
}

// DetailsCard renders label/value pairs in a card
func DetailsCard(title string, items []KeyValue) string {
	html := fmt.Sprintf(`
<div class="card mb-4">
    <div class="card-header">
        <h5 class="mb-0"><i class="bi bi-gear-fill me-2"></i>%s</h5>
    </div>
    <div class="card-body">
        <table class="table table-sm mb-0">
            <tbody>`, template.HTMLEscapeString(title))

	for _, item := range items {
		html += fmt.Sprintf(`
                <tr>
                    <td class="fw-bold" style="width: 40%%;">%s</td>
                    <td>%s</td>
                </tr>`, template.HTMLEscapeString(item.Label), template.HTMLEscapeString(item.Value))
	}

	html += `
            </tbody>
        </table>
    </div>
</div>`
	return html
}
