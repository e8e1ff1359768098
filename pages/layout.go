package pages

import (
	"strings"

	"github.com/ghiac/adminshell/model"
	"github.com/ghiac/adminshell/ui"
	"github.com/ghiac/adminshell/ui/components"
)

// Root renders body as a full page, unless the product is gated or no
// settings are available, in which case the matching error page replaces it
func Root(v View, title, body string) ui.Document {
	if v.Settings.Status() == model.StatusGatedAccess {
		return v.document("Access Restricted", AccessRestricted())
	}
	if v.Settings == nil {
		if v.Flags.EnableCloud {
			return v.document("Maintenance", CloudError())
		}
		return v.document("Error", SettingsError())
	}
	return v.document(title, body)
}

// HasCustomSidebar reports whether an admin path renders its own sidebar
// instead of the admin navigation
func HasCustomSidebar(path string) bool {
	return strings.HasPrefix(path, "/admin/connectors") ||
		strings.HasPrefix(path, "/admin/embeddings")
}

// Admin renders content inside the admin chrome
func Admin(v View, title, content string) ui.Document {
	var b strings.Builder
	if v.Settings.Status() == model.StatusPaymentReminder {
		b.WriteString(PaymentBanner())
	}

	b.WriteString(`<div class="admin-shell">`)
	if HasCustomSidebar(v.PathOnly()) {
		b.WriteString(`<div class="admin-main d-flex w-100">`)
		b.WriteString(content)
		b.WriteString(`</div>`)
	} else {
		b.WriteString(ui.AdminSidebar(ui.AdminSidebarProps{
			Sections:    buildMenu(v),
			CurrentPath: v.Path,
			Folded:      v.AdminFolded,
			Mobile:      v.Mobile,
			Version:     v.Settings.Version(),
			Branding:    v.Branding(),
		}))
		b.WriteString(`<div class="admin-main d-flex flex-column">`)
		if v.Mobile && v.AdminFolded {
			b.WriteString(ui.MobileUnfoldButton(ui.AdminSidebarAction, v.Path))
		}
		b.WriteString(`<div class="flex-grow-1 pt-5 pb-3 px-3 px-md-5">`)
		b.WriteString(content)
		b.WriteString(`</div></div>`)
	}
	b.WriteString(`</div>`)

	return Root(v, title, b.String())
}

// PaymentBanner warns that the trial is about to end
func PaymentBanner() string {
	return `<div class="payment-banner">
    <strong>Warning:</strong> Your trial ends in less than 5 days and no payment method has been added.
    <div class="mt-2">` + components.Button("Update Billing Information", "/admin/billing", "dark btn-sm") + `</div>
</div>`
}

// ErrorTitle heads every failed backend fetch
const ErrorTitle = "Something went wrong :("

// FetchError renders the callout shown when a backend fetch fails
func FetchError(err error) string {
	return components.ErrorCallout(ErrorTitle, err.Error())
}
