// Package ui renders the admin console chrome as HTML fragments.
package ui

import (
	"fmt"
	"html/template"

	"github.com/a-h/templ"

	"github.com/ghiac/adminshell/model"
	"github.com/ghiac/adminshell/ui/components"
)

const (
	DefaultLogoURL = "/cellilox-logo.png"
	CustomLogoURL  = "/api/enterprise-settings/logo"
)

// Branding is the product name and logo shown in the chrome
type Branding struct {
	Name    string
	LogoURL string
	// PoweredBy is set when a whitelabel name replaces the default one
	PoweredBy bool
}

// BrandingFor derives branding from a settings snapshot, which may be nil
func BrandingFor(s *model.CombinedSettings) Branding {
	b := Branding{Name: s.ApplicationName(), LogoURL: DefaultLogoURL}
	if s.UseCustomLogo() {
		b.LogoURL = CustomLogoURL
	}
	b.PoweredBy = b.Name != model.DefaultApplicationName
	return b
}

// Logo renders the logo image, with the product name unless folded
func Logo(b Branding, folded bool) string {
	img := fmt.Sprintf(`<img src="%s" alt="Logo" class="brand-logo">`, components.Href(b.LogoURL))
	if folded {
		return img
	}
	html := fmt.Sprintf(`<div class="brand d-flex align-items-center gap-2">%s<span class="brand-name text-truncate">%s</span></div>`,
		img, template.HTMLEscapeString(b.Name))
	if b.PoweredBy {
		html += `<div class="brand-powered text-muted small">Powered by ` + model.DefaultApplicationName + `</div>`
	}
	return html
}

// Document is a full HTML page
type Document struct {
	Title string
	Body  string
	// HeadScript is raw JavaScript injected into <head>, used for custom analytics
	HeadScript string
}

// Page composes the document shell around its body. The body is already
// escaped HTML built by the page functions.
func Page(d Document) templ.Component {
	return templ.Join(
		templ.Raw(Header(d.Title, d.HeadScript)),
		templ.Raw(d.Body),
		templ.Raw(Footer()),
	)
}

// Header generates the HTML header with Bootstrap CDN
func Header(title, headScript string) string {
	script := ""
	if headScript != "" {
		script = "<script>" + headScript + "</script>"
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <link rel="icon" href="%s">
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css" rel="stylesheet" integrity="sha384-T3c6CoIi6uLrA9TneNEoa7RxnatzjcDSCmG1MXxSR1GAsXEV/Dwwykc2MPK8M2HN" crossorigin="anonymous">
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.1/font/bootstrap-icons.css">
    <style>%s</style>
    %s
</head>
<body>`, templ.EscapeString(title), DefaultLogoURL, GetStyles(), script)
}

// Footer generates the HTML footer with scripts
func Footer() string {
	return fmt.Sprintf(`
    <script src="%s" integrity="%s" crossorigin="anonymous"></script>
    <script>%s</script>
</body>
</html>`, GetBootstrapJS(), GetBootstrapJSIntegrity(), GetScripts())
}

// PageLayout centers page content in a fixed-width scroll column
func PageLayout(content string) string {
	return `<div class="page-scroll" id="page-wrapper-scroll-container">
    <div class="page-column">` + content + `</div>
</div>`
}

// PageHeader renders a page title with an icon
func PageHeader(title, icon string) string {
	return fmt.Sprintf(`<div class="page-header d-flex align-items-center gap-2 mb-4">
    <i class="bi bi-%s fs-3"></i><h1 class="h3 mb-0">%s</h1>
</div>`, icon, template.HTMLEscapeString(title))
}

// CardStart returns the opening tags for a card with header
func CardStart(title, icon string) string {
	return fmt.Sprintf(`<div class="card mb-4">
    <div class="card-header">
        <h5 class="mb-0"><i class="bi bi-%s me-2"></i>%s</h5>
    </div>
    <div class="card-body">`, icon, template.HTMLEscapeString(title))
}

// CardStartWithCount returns opening tags for a card with count in header
func CardStartWithCount(title, icon string, count int) string {
	return fmt.Sprintf(`<div class="card mb-4">
    <div class="card-header">
        <h5 class="mb-0"><i class="bi bi-%s me-2"></i>%s (%d)</h5>
    </div>
    <div class="card-body">`, icon, template.HTMLEscapeString(title), count)
}

// CardEnd returns the closing tags for a card
func CardEnd() string {
	return `    </div>
</div>`
}

// Row returns a Bootstrap row wrapper
func Row(content string) string {
	return fmt.Sprintf(`<div class="row g-4 mb-4">%s</div>`, content)
}

// Column returns a Bootstrap column wrapper
func Column(size string, content string) string {
	return fmt.Sprintf(`<div class="%s">%s</div>`, size, content)
}
