package components

import (
	"fmt"
	"html/template"
	"strings"
)

// Table renders a striped, hoverable table. Cells are raw HTML; escape
// user data before passing it in.
func Table(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(`<div class="table-responsive"><table class="table table-striped table-hover align-middle">
    <thead>
        <tr>`)
	for _, h := range headers {
		fmt.Fprintf(&b, `<th class="text-nowrap">%s</th>`, template.HTMLEscapeString(h))
	}
	b.WriteString(`</tr>
    </thead>
    <tbody>`)
	for _, row := range rows {
		b.WriteString(`
        <tr>`)
		for _, cell := range row {
			fmt.Fprintf(&b, `<td>%s</td>`, cell)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`
    </tbody>
</table></div>`)
	return b.String()
}

// EmptyState renders a muted placeholder for empty lists
func EmptyState(message string) string {
	return fmt.Sprintf(`<p class="text-muted text-center my-4">%s</p>`, template.HTMLEscapeString(message))
}
