package pages

import (
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/ghiac/adminshell/catalog"
	"github.com/ghiac/adminshell/log"
	"github.com/ghiac/adminshell/model"
	"github.com/ghiac/adminshell/ui"
	"github.com/ghiac/adminshell/ui/components"
)

// AssistantEditorOptions tune the editor for create versus edit
type AssistantEditorOptions struct {
	DefaultPublic bool
	// AddToUserPreferences pins a newly created assistant for its creator
	AddToUserPreferences bool
}

// AssistantEditorPage loads editor info and renders the editor. id is empty
// when creating.
func AssistantEditorPage(ctx context.Context, src catalog.Source, id string) string {
	info, err := src.AssistantEditorInfo(ctx, id)
	if err != nil {
		log.Log.Errorf("[assistants] failed to load editor info for %q: %v", id, err)
		return `<div class="px-3 px-md-5 py-4">` + FetchError(err) + `</div>`
	}
	opts := AssistantEditorOptions{DefaultPublic: false}
	if id == "" {
		opts.AddToUserPreferences = true
	}
	return ui.PageLayout(AssistantEditor(info, opts))
}

// AssistantEditor renders the editor form
func AssistantEditor(info *model.AssistantEditorInfo, opts AssistantEditorOptions) string {
	existing := info.Existing
	title, action := "Create Assistant", "/assistants/new"
	name, desc := "", ""
	public := opts.DefaultPublic
	selected := map[int]bool{}
	if existing != nil {
		title = "Edit " + existing.Name
		action = "/assistants/edit/" + url.PathEscape(existing.ID)
		name, desc = existing.Name, existing.Description
		public = existing.IsPublic
		for _, id := range existing.ToolIDs {
			selected[id] = true
		}
	}

	var b strings.Builder
	b.WriteString(ui.PageHeader(title, "robot"))
	fmt.Fprintf(&b, `<form method="post" action="%s" class="card"><div class="card-body">`, action)
	fmt.Fprintf(&b, `
    <div class="mb-3"><label class="form-label" for="name">Name</label><input class="form-control" id="name" name="name" value="%s"></div>
    <div class="mb-3"><label class="form-label" for="description">Description</label><textarea class="form-control" id="description" name="description">%s</textarea></div>`,
		template.HTMLEscapeString(name), template.HTMLEscapeString(desc))

	b.WriteString(`
    <div class="mb-3"><div class="form-label">Actions</div>`)
	if len(info.Tools) == 0 {
		b.WriteString(components.EmptyState("No actions available."))
	}
	for _, t := range info.Tools {
		fmt.Fprintf(&b, `
        <div class="form-check"><input class="form-check-input" type="checkbox" name="tool_ids" value="%d" id="tool-%d"%s><label class="form-check-label" for="tool-%d">%s</label></div>`,
			t.ID, t.ID, checked(selected[t.ID]), t.ID, template.HTMLEscapeString(t.Label()))
	}
	b.WriteString(`</div>`)

	b.WriteString(components.DetailsCard("Available resources", []components.KeyValue{
		{Label: "Document sets", Value: joinOrDash(info.DocumentSets)},
		{Label: "LLM providers", Value: joinOrDash(info.LLMProviders)},
	}))

	fmt.Fprintf(&b, `
    <div class="form-check mb-3"><input class="form-check-input" type="checkbox" name="is_public" value="true" id="is_public"%s><label class="form-check-label" for="is_public">Public</label></div>`,
		checked(public))
	if opts.AddToUserPreferences {
		b.WriteString(`<input type="hidden" name="add_to_user_preferences" value="true">`)
	}
	b.WriteString(`
    <button type="submit" class="btn btn-primary">Save</button>
</div></form>`)
	return b.String()
}

func checked(v bool) string {
	if v {
		return " checked"
	}
	return ""
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
