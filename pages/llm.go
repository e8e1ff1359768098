package pages

import (
	"context"
	"html/template"
	"strings"

	"github.com/ghiac/adminshell/llm"
	"github.com/ghiac/adminshell/log"
	"github.com/ghiac/adminshell/ui"
	"github.com/ghiac/adminshell/ui/components"
)

// LLMPage lists the models the configured provider offers. A nil provider
// renders a hint to configure one.
func LLMPage(ctx context.Context, provider llm.Provider) string {
	var b strings.Builder
	b.WriteString(ui.PageHeader("LLM", "cpu"))
	if provider == nil {
		b.WriteString(components.InfoAlert("No LLM provider is configured. Set ADMINSHELL_LLM_API_KEY to list available models."))
		return b.String()
	}

	models, err := provider.ListModels(ctx)
	if err != nil {
		log.Log.Errorf("[llm] %v", err)
		b.WriteString(FetchError(err))
		return b.String()
	}

	b.WriteString(ui.CardStartWithCount("Available models", "stars", len(models)))
	if len(models) == 0 {
		b.WriteString(components.EmptyState("The provider returned no models."))
	} else {
		rows := make([][]string, len(models))
		for i, m := range models {
			rows[i] = []string{
				"<code>" + template.HTMLEscapeString(m.ID) + "</code>",
				template.HTMLEscapeString(m.OwnedBy),
			}
		}
		b.WriteString(components.Table([]string{"Model", "Owner"}, rows))
	}
	b.WriteString(ui.CardEnd())
	return b.String()
}
