package pages

import "github.com/ghiac/adminshell/ui/components"

func centered(title, icon, message, extra string) string {
	return `<div class="d-flex flex-column align-items-center justify-content-center text-center" style="min-height: 100vh;">
    <i class="bi bi-` + icon + ` display-4 mb-3"></i>
    <h1 class="h3">` + title + `</h1>
    <p class="text-muted" style="max-width: 32rem;">` + message + `</p>` + extra + `
</div>`
}

// AccessRestricted is shown to everyone while the workspace is gated
func AccessRestricted() string {
	return centered("Access Restricted", "lock",
		"Access to this workspace has been suspended because the subscription lapsed. An administrator can restore access by updating billing.",
		components.Button("Update Billing Information", "/admin/billing", "primary"))
}

// CloudError is shown on cloud deployments when settings cannot be loaded
func CloudError() string {
	return centered("Maintenance in Progress", "tools",
		"We are performing scheduled maintenance. Please check back shortly.", "")
}

// SettingsError is shown on self-hosted deployments when settings cannot be loaded
func SettingsError() string {
	return centered("We encountered an issue", "exclamation-octagon",
		"The workspace settings could not be loaded. Check that the backend is running and reachable, then reload this page.", "")
}
