// Package menu builds the admin console navigation from the current user,
// deployment flags and product settings.
package menu

import (
	"strings"

	"github.com/ghiac/adminshell/model"
)

// Item is a single navigable tab in the sidebar
type Item struct {
	Name string `json:"name"`
	// Icon is a Bootstrap icon name, rendered as "bi bi-<Icon>"
	Icon string `json:"icon"`
	Link string `json:"link"`
	// Error flags a destination that needs attention
	Error bool `json:"error,omitempty"`
}

// IsActive reports whether the item matches the current request path
func (i Item) IsActive(path string) bool {
	return i.Link != "" && strings.HasPrefix(path, i.Link)
}

// Section is a titled group of items. Item order is rendering order.
type Section struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Context is the read-only input of Build
type Context struct {
	Role                   model.Role
	IsSuperAdmin           bool
	EnableCloud            bool
	EnableEnterprise       bool
	KnowledgeGraphExposed  bool
	CustomAnalyticsEnabled bool
	// Settings may be nil; rules that read it treat nil as "feature absent"
	Settings *model.CombinedSettings
}

// Flags are the deployment-level switches that feed a Context
type Flags struct {
	EnableCloud            bool
	EnableEnterprise       bool
	KnowledgeGraphExposed  bool
	CustomAnalyticsEnabled bool
}

// NewContext assembles a Context for the given user. A nil user builds the
// context of a basic, non-super-admin user.
func NewContext(user *model.User, superAdminEmail string, flags Flags, settings *model.CombinedSettings) Context {
	ctx := Context{
		Role:                   model.RoleBasic,
		EnableCloud:            flags.EnableCloud,
		EnableEnterprise:       flags.EnableEnterprise,
		KnowledgeGraphExposed:  flags.KnowledgeGraphExposed,
		CustomAnalyticsEnabled: flags.CustomAnalyticsEnabled,
		Settings:               settings,
	}
	if user != nil {
		ctx.Role = user.Role
		ctx.IsSuperAdmin = IsSuperAdmin(user.Email, superAdminEmail)
	}
	return ctx
}

// IsCurator reports whether the role has curator scope
func IsCurator(role model.Role) bool {
	return role.IsCurator()
}

// IsSuperAdmin compares the user email against the configured super-admin
// email. The comparison is exact; an unset configured email matches nobody.
func IsSuperAdmin(email, configured string) bool {
	return configured != "" && email == configured
}

// SectionNames returns the section names in order
func SectionNames(sections []Section) []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}
	return names
}

// ItemNames returns the item names of the named section, or nil when absent
func ItemNames(sections []Section, section string) []string {
	for _, s := range sections {
		if s.Name != section {
			continue
		}
		names := make([]string, len(s.Items))
		for i, it := range s.Items {
			names[i] = it.Name
		}
		return names
	}
	return nil
}

// Find returns the first item with the given name across all sections
func Find(sections []Section, name string) (Item, bool) {
	for _, s := range sections {
		for _, it := range s.Items {
			if it.Name == name {
				return it, true
			}
		}
	}
	return Item{}, false
}
