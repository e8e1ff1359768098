package model

import "testing"

func TestFilterNonMCP(t *testing.T) {
	serverID := 3
	tools := []Tool{
		{ID: 1, Name: "search", InCodeToolID: "SearchTool"},
		{ID: 2, Name: "weather", MCPServerID: &serverID},
		{ID: 3, Name: "jira", DisplayName: "Jira"},
	}

	got := FilterNonMCP(tools)
	if len(got) != 2 {
		t.Fatalf("expected 2 non-MCP tools, got %d", len(got))
	}
	for _, tool := range got {
		if tool.IsMCP() {
			t.Errorf("tool %q should have been filtered out", tool.Name)
		}
	}
}

func TestToolLabel(t *testing.T) {
	if got := (Tool{Name: "jira", DisplayName: "Jira"}).Label(); got != "Jira" {
		t.Errorf("expected display name, got %q", got)
	}
	if got := (Tool{Name: "jira"}).Label(); got != "jira" {
		t.Errorf("expected name fallback, got %q", got)
	}
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"admin":          RoleAdmin,
		" Curator ":      RoleCurator,
		"global_curator": RoleGlobalCurator,
		"limited":        RoleLimited,
		"":               RoleBasic,
		"something-else": RoleBasic,
	}
	for in, want := range cases {
		if got := ParseRole(in); got != want {
			t.Errorf("ParseRole(%q) = %q, want %q", in, got, want)
		}
	}
	if !RoleGlobalCurator.IsCurator() || RoleAdmin.IsCurator() {
		t.Error("unexpected IsCurator result")
	}
}
