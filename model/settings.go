package model

// ApplicationStatus gates what the product lets users do
type ApplicationStatus string

const (
	StatusActive          ApplicationStatus = "active"
	StatusPaymentReminder ApplicationStatus = "payment_reminder"
	StatusGatedAccess     ApplicationStatus = "gated_access"
)

// QueryHistoryType controls how query history is retained
type QueryHistoryType string

const (
	QueryHistoryNormal     QueryHistoryType = "normal"
	QueryHistoryAnonymized QueryHistoryType = "anonymized"
	QueryHistoryDisabled   QueryHistoryType = "disabled"
)

// DefaultApplicationName is shown when no enterprise branding is configured
const DefaultApplicationName = "Cellilox"

// Settings holds workspace-level product settings
type Settings struct {
	ApplicationStatus ApplicationStatus `yaml:"application_status" json:"application_status"`
	NeedsReindexing   bool              `yaml:"needs_reindexing" json:"needs_reindexing"`
	QueryHistoryType  QueryHistoryType  `yaml:"query_history_type" json:"query_history_type"`
}

// EnterpriseSettings holds whitelabeling options
type EnterpriseSettings struct {
	ApplicationName string `yaml:"application_name" json:"application_name"`
	UseCustomLogo   bool   `yaml:"use_custom_logo" json:"use_custom_logo"`
}

// CombinedSettings is the settings snapshot handed to the presentation layer.
// A nil *CombinedSettings means no snapshot is available; every accessor
// below is nil-safe and reports the feature as absent.
type CombinedSettings struct {
	Settings              Settings            `yaml:"settings" json:"settings"`
	EnterpriseSettings    *EnterpriseSettings `yaml:"enterprise_settings" json:"enterprise_settings,omitempty"`
	WebVersion            string              `yaml:"web_version" json:"web_version,omitempty"`
	CustomAnalyticsScript string              `yaml:"custom_analytics_script" json:"custom_analytics_script,omitempty"`
}

// NeedsReindexing reports whether search settings need attention
func (c *CombinedSettings) NeedsReindexing() bool {
	return c != nil && c.Settings.NeedsReindexing
}

// QueryHistoryDisabled reports whether query history is explicitly disabled
func (c *CombinedSettings) QueryHistoryDisabled() bool {
	return c != nil && c.Settings.QueryHistoryType == QueryHistoryDisabled
}

// Status returns the application status, defaulting to active
func (c *CombinedSettings) Status() ApplicationStatus {
	if c == nil || c.Settings.ApplicationStatus == "" {
		return StatusActive
	}
	return c.Settings.ApplicationStatus
}

// ApplicationName returns the branded application name
func (c *CombinedSettings) ApplicationName() string {
	if c == nil || c.EnterpriseSettings == nil || c.EnterpriseSettings.ApplicationName == "" {
		return DefaultApplicationName
	}
	return c.EnterpriseSettings.ApplicationName
}

// UseCustomLogo reports whether a whitelabel logo was uploaded
func (c *CombinedSettings) UseCustomLogo() bool {
	return c != nil && c.EnterpriseSettings != nil && c.EnterpriseSettings.UseCustomLogo
}

// Version returns the web version string, empty when unknown
func (c *CombinedSettings) Version() string {
	if c == nil {
		return ""
	}
	return c.WebVersion
}
