package pages

import (
	"context"
	"errors"
	"html/template"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ghiac/adminshell/catalog"
	"github.com/ghiac/adminshell/log"
	"github.com/ghiac/adminshell/model"
	"github.com/ghiac/adminshell/ui"
	"github.com/ghiac/adminshell/ui/components"
)

// ActionsData is what the actions page lists
type ActionsData struct {
	Tools      []model.Tool
	MCPServers []model.MCPServer
}

// LoadActions fetches tools and MCP servers concurrently. A tool failure
// takes precedence over an MCP failure. An MCP listing that does not decode
// is treated as empty.
func LoadActions(ctx context.Context, src catalog.Source) (*ActionsData, error) {
	var (
		tools           []model.Tool
		servers         *model.MCPServersResponse
		toolErr, mcpErr error
		g               errgroup.Group
	)
	g.Go(func() error {
		tools, toolErr = src.ListTools(ctx)
		return toolErr
	})
	g.Go(func() error {
		servers, mcpErr = src.ListMCPServers(ctx)
		return mcpErr
	})
	_ = g.Wait()

	if toolErr != nil {
		return nil, toolErr
	}
	data := &ActionsData{Tools: model.FilterNonMCP(tools)}
	switch {
	case errors.Is(mcpErr, catalog.ErrMalformed):
		log.Log.Warnf("[actions] Error parsing MCP servers response: %v", mcpErr)
	case mcpErr != nil:
		return nil, mcpErr
	case servers != nil:
		data.MCPServers = servers.MCPServers
	}
	return data, nil
}

// Action listing filters
const (
	FilterOpenAPI = "openapi"
	FilterMCP     = "mcp"
)

// Actions renders the actions page body. filter narrows the listing to one
// kind of action; empty shows everything.
func Actions(v View, data *ActionsData, filter string) string {
	var b strings.Builder
	b.WriteString(`<div class="container">`)
	b.WriteString(ui.PageHeader("Actions", "lightning-charge"))
	b.WriteString(`<p class="mb-2">Actions allow assistants to retrieve information or take actions.</p>`)

	if v.IsSuperAdmin() {
		b.WriteString(`<hr><h5>Create Actions</h5><div class="d-flex gap-3 mt-2 align-items-center">`)
		b.WriteString(components.ButtonWithIcon("From OpenAPI schema", "plus-lg", "/admin/actions/new", "outline-primary"))
		b.WriteString(components.ButtonWithIcon("From MCP server", "plus-lg", "/admin/actions/edit-mcp", "outline-primary"))
		b.WriteString(`<i class="bi bi-question-circle" title="MCP (Model Context Protocol) servers provide structured ways for AI models to interact with external systems and data sources. They offer a standardized interface for tools and resources."></i>`)
		b.WriteString(`</div>`)
	}

	b.WriteString(`<hr><h5>Existing Actions</h5><div class="d-flex gap-2 mb-3">`)
	b.WriteString(components.FilterButton(components.FilterButtonProps{
		Label: "OpenAPI", Icon: "filetype-json", Href: "?type=" + FilterOpenAPI, ClearHref: "?", Active: filter == FilterOpenAPI,
	}))
	b.WriteString(components.FilterButton(components.FilterButtonProps{
		Label: "MCP servers", Icon: "hdd-network", Href: "?type=" + FilterMCP, ClearHref: "?", Active: filter == FilterMCP,
	}))
	b.WriteString(`</div>`)
	b.WriteString(actionsTable(filterActions(data, filter)))
	b.WriteString(`</div>`)
	return b.String()
}

func filterActions(data *ActionsData, filter string) *ActionsData {
	switch filter {
	case FilterOpenAPI:
		return &ActionsData{Tools: data.Tools}
	case FilterMCP:
		return &ActionsData{MCPServers: data.MCPServers}
	}
	return data
}

func actionsTable(data *ActionsData) string {
	if len(data.Tools) == 0 && len(data.MCPServers) == 0 {
		return components.EmptyState("No actions configured yet.")
	}
	rows := make([][]string, 0, len(data.Tools)+len(data.MCPServers))
	for _, t := range data.Tools {
		rows = append(rows, []string{
			template.HTMLEscapeString(t.Label()),
			template.HTMLEscapeString(t.Description),
			components.ToolKindBadge(t),
		})
	}
	for _, s := range data.MCPServers {
		desc := s.Description
		if desc == "" {
			desc = s.ServerURL
		}
		rows = append(rows, []string{
			ui.WebResultIcon(s.ServerURL, 16) + " " + template.HTMLEscapeString(s.Name),
			template.HTMLEscapeString(desc),
			components.MCPServerBadges(s),
		})
	}
	return components.Table([]string{"Name", "Description", "Type"}, rows)
}

// ActionsPage loads and renders the actions page, or the fetch error
func ActionsPage(ctx context.Context, v View, src catalog.Source, filter string) string {
	data, err := LoadActions(ctx, src)
	if err != nil {
		log.Log.Errorf("[actions] %v", err)
		return FetchError(err)
	}
	return Actions(v, data, filter)
}
