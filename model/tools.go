package model

// Tool is an action an assistant can call
type Tool struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	Description  string `json:"description"`
	InCodeToolID string `json:"in_code_tool_id,omitempty"`
	// MCPServerID is set for tools discovered through an MCP server
	MCPServerID *int `json:"mcp_server_id,omitempty"`
}

// IsMCP reports whether the tool is provided by an MCP server
func (t Tool) IsMCP() bool {
	return t.MCPServerID != nil
}

// Label returns the display name, falling back to the name
func (t Tool) Label() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Name
}

// MCPServer is a Model Context Protocol server registered with the backend
type MCPServer struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ServerURL   string `json:"server_url"`
	AuthType    string `json:"auth_type"`
	IsAuthed    bool   `json:"is_authenticated"`
	ToolCount   int    `json:"tool_count"`
}

// MCPServersResponse is the backend payload for the MCP server listing
type MCPServersResponse struct {
	MCPServers []MCPServer `json:"mcp_servers"`
}

// FilterNonMCP returns the tools that are not provided by an MCP server
func FilterNonMCP(tools []Tool) []Tool {
	out := make([]Tool, 0, len(tools))
	for _, t := range tools {
		if !t.IsMCP() {
			out = append(out, t)
		}
	}
	return out
}
