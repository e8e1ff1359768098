package components

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/ghiac/adminshell/model"
)

// Badge generates a Bootstrap badge
func Badge(text, variant string) string {
	return fmt.Sprintf(`<span class="badge bg-%s">%s</span>`, variant, template.HTMLEscapeString(text))
}

// ToolKindBadge labels a tool as built-in or OpenAPI-defined
func ToolKindBadge(t model.Tool) string {
	if t.InCodeToolID != "" {
		return Badge("Built-in", "secondary")
	}
	return Badge("OpenAPI", "primary")
}

// MCPServerBadges renders the kind, tool count and auth state of an MCP server
func MCPServerBadges(s model.MCPServer) string {
	count := strconv.Itoa(s.ToolCount) + " tools"
	if s.ToolCount == 1 {
		count = "1 tool"
	}
	out := Badge("MCP", "info") + " " + Badge(count, "light text-dark")
	if s.AuthType != "" && s.AuthType != "none" && !s.IsAuthed {
		out += " " + Badge("Not authenticated", "warning text-dark")
	}
	return out
}

// RoleBadge renders a user role; admins stand out, curators are muted
func RoleBadge(role model.Role) string {
	switch {
	case role == model.RoleAdmin:
		return Badge("Admin", "danger")
	case role.IsCurator():
		return Badge("Curator", "primary")
	default:
		return Badge(string(role), "secondary")
	}
}
