package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghiac/adminshell/model"
)

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestBuild_CuratorShortCircuit(t *testing.T) {
	flagSets := []Flags{
		{},
		{EnableEnterprise: true},
		{EnableCloud: true},
		{EnableCloud: true, EnableEnterprise: true, KnowledgeGraphExposed: true, CustomAnalyticsEnabled: true},
	}

	for _, role := range []model.Role{model.RoleCurator, model.RoleGlobalCurator} {
		for _, flags := range flagSets {
			user := model.NewUser("u1", "admin@z.com", role)
			sections := Build(NewContext(user, "admin@z.com", flags, nil))

			require.Len(t, sections, 4, "role=%s flags=%+v", role, flags)
			assert.Equal(t,
				[]string{"Connectors", "Document Management", "Custom Assistants", "User Management"},
				SectionNames(sections))
			assert.Equal(t, []string{"Groups"}, names(sections[3].Items))
		}
	}
}

func TestBuild_GlobalCuratorScenario(t *testing.T) {
	user := model.NewUser("u1", "x@y.com", model.RoleGlobalCurator)
	sections := Build(NewContext(user, "admin@z.com", Flags{}, nil))

	assert.Equal(t,
		[]string{"Connectors", "Document Management", "Custom Assistants", "User Management"},
		SectionNames(sections))
	assert.Equal(t, []string{"Assistants", "Actions"}, ItemNames(sections, "Custom Assistants"))
	assert.Equal(t, []string{"Groups"}, ItemNames(sections, "User Management"))
}

func TestBuild_CuratorNeverSeesSlackBots(t *testing.T) {
	user := model.NewUser("u1", "admin@z.com", model.RoleCurator)
	sections := Build(NewContext(user, "admin@z.com", Flags{EnableEnterprise: true}, nil))

	assert.Equal(t, []string{"Assistants", "Actions", "Standard Answers"}, ItemNames(sections, "Custom Assistants"))
}

func TestBuild_AdminWithoutEnterpriseOrCloud(t *testing.T) {
	user := model.NewUser("u1", "someone@z.com", model.RoleAdmin)
	sections := Build(NewContext(user, "admin@z.com", Flags{}, nil))

	assert.Equal(t,
		[]string{"Connectors", "Document Management", "Custom Assistants", "Configuration", "User Management", "Settings"},
		SectionNames(sections))
	assert.Equal(t,
		[]string{"Default Assistant", "LLM", "Web Search", "Search Settings", "Document Processing"},
		ItemNames(sections, "Configuration"))
	assert.Equal(t, []string{"Users", "API Keys", "Token Rate Limits"}, ItemNames(sections, "User Management"))
	assert.Equal(t, []string{"Workspace Settings"}, ItemNames(sections, "Settings"))
	assert.Nil(t, ItemNames(sections, "Performance"))
}

func TestBuild_SuperAdminEnterpriseCloudScenario(t *testing.T) {
	user := model.NewUser("u1", "admin@z.com", model.RoleAdmin)
	sections := Build(NewContext(user, "admin@z.com", Flags{EnableEnterprise: true, EnableCloud: true}, nil))

	assert.Equal(t,
		[]string{"Assistants", "Slack Bots", "Actions", "Standard Answers"},
		ItemNames(sections, "Custom Assistants"))
	assert.Equal(t,
		[]string{"Workspace Settings", "Whitelabeling", "Billing"},
		ItemNames(sections, "Settings"))
	assert.NotContains(t, ItemNames(sections, "Configuration"), "Search Settings")
	assert.Equal(t, []string{"Users", "Groups", "API Keys", "Token Rate Limits"}, ItemNames(sections, "User Management"))
}

func TestBuild_SlackBotsRequiresExactEmail(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		configured string
		want       bool
	}{
		{"exact match", "admin@z.com", "admin@z.com", true},
		{"different email", "other@z.com", "admin@z.com", false},
		{"case differs", "Admin@z.com", "admin@z.com", false},
		{"nothing configured", "", "", false},
		{"user without email", "", "admin@z.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := model.NewUser("u1", tt.email, model.RoleAdmin)
			items := ItemNames(Build(NewContext(user, tt.configured, Flags{}, nil)), "Custom Assistants")

			if tt.want {
				assert.Equal(t, []string{"Assistants", "Slack Bots", "Actions"}, items)
			} else {
				assert.Equal(t, []string{"Assistants", "Actions"}, items)
			}
		})
	}
}

func TestBuild_SearchSettingsErrorMirrorsReindexing(t *testing.T) {
	settings := &model.CombinedSettings{Settings: model.Settings{NeedsReindexing: true}}
	user := model.NewUser("u1", "a@b.c", model.RoleAdmin)

	item, ok := Find(Build(NewContext(user, "", Flags{}, settings)), "Search Settings")
	require.True(t, ok)
	assert.True(t, item.Error)

	item, ok = Find(Build(NewContext(user, "", Flags{}, nil)), "Search Settings")
	require.True(t, ok)
	assert.False(t, item.Error, "nil settings reads as not needing reindexing")
}

func TestBuild_Performance(t *testing.T) {
	user := model.NewUser("u1", "a@b.c", model.RoleAdmin)

	tests := []struct {
		name     string
		flags    Flags
		settings *model.CombinedSettings
		want     []string
	}{
		{
			name:  "nil settings keeps query history",
			flags: Flags{EnableEnterprise: true},
			want:  []string{"Usage Statistics", "Query History"},
		},
		{
			name:     "disabled query history",
			flags:    Flags{EnableEnterprise: true},
			settings: &model.CombinedSettings{Settings: model.Settings{QueryHistoryType: model.QueryHistoryDisabled}},
			want:     []string{"Usage Statistics"},
		},
		{
			name:  "custom analytics on prem",
			flags: Flags{EnableEnterprise: true, CustomAnalyticsEnabled: true},
			want:  []string{"Usage Statistics", "Query History", "Custom Analytics"},
		},
		{
			name:  "custom analytics hidden in cloud",
			flags: Flags{EnableEnterprise: true, EnableCloud: true, CustomAnalyticsEnabled: true},
			want:  []string{"Usage Statistics", "Query History"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := Build(NewContext(user, "", tt.flags, tt.settings))
			assert.Equal(t, tt.want, ItemNames(sections, "Performance"))
		})
	}
}

func TestBuild_KnowledgeGraph(t *testing.T) {
	user := model.NewUser("u1", "a@b.c", model.RoleAdmin)

	sections := Build(NewContext(user, "", Flags{KnowledgeGraphExposed: true}, nil))
	assert.Equal(t,
		[]string{"Default Assistant", "LLM", "Web Search", "Search Settings", "Document Processing", "Knowledge Graph"},
		ItemNames(sections, "Configuration"))
}

func TestBuild_Deterministic(t *testing.T) {
	user := model.NewUser("u1", "admin@z.com", model.RoleAdmin)
	ctx := NewContext(user, "admin@z.com", Flags{EnableEnterprise: true, KnowledgeGraphExposed: true}, nil)

	first := Build(ctx)
	second := Build(ctx)
	assert.Equal(t, first, second)

	// Mutating one result must not leak into the next build.
	first[0].Items[0].Name = "changed"
	assert.Equal(t, "Existing Connectors", Build(ctx)[0].Items[0].Name)
}

func TestNewContext_NilUser(t *testing.T) {
	ctx := NewContext(nil, "admin@z.com", Flags{}, nil)
	assert.Equal(t, model.RoleBasic, ctx.Role)
	assert.False(t, ctx.IsSuperAdmin)
}

func TestItem_IsActive(t *testing.T) {
	it := Item{Link: "/admin/actions"}
	assert.True(t, it.IsActive("/admin/actions"))
	assert.True(t, it.IsActive("/admin/actions/new"))
	assert.False(t, it.IsActive("/admin/assistants"))
	assert.False(t, Item{}.IsActive("/admin"))
}

func TestCatalog_UniqueLinks(t *testing.T) {
	items := Catalog()
	seen := map[string]bool{}
	for _, it := range items {
		assert.False(t, seen[it.Link], "duplicate link %s", it.Link)
		seen[it.Link] = true
	}
	assert.True(t, seen["/admin/groups"])
	assert.True(t, seen["/admin/billing"])
	assert.True(t, seen["/admin/configuration/search"])
}
