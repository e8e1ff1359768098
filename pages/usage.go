package pages

import (
	"context"
	"strconv"
	"strings"

	"github.com/ghiac/adminshell/catalog"
	"github.com/ghiac/adminshell/log"
	"github.com/ghiac/adminshell/ui"
	"github.com/ghiac/adminshell/ui/components"
	"github.com/ghiac/adminshell/visualize"
)

// UsageDays is the window shown on the usage statistics page
const UsageDays = 30

// UsageChartPath serves the standalone chart embedded by the usage page
const UsageChartPath = "/admin/performance/usage/chart"

// UsagePage renders totals for the last UsageDays days and embeds the chart
func UsagePage(ctx context.Context, src catalog.Source) string {
	points, err := src.UsageStats(ctx, UsageDays)
	if err != nil {
		log.Log.Errorf("[usage] %v", err)
		return FetchError(err)
	}
	totals := visualize.NewUsageChart(points).Totals()

	var b strings.Builder
	b.WriteString(ui.PageHeader("Usage Statistics", "bar-chart"))
	b.WriteString(ui.Row(
		ui.Column("col-md-3", components.StatCard(strconv.Itoa(totals.Queries), "Queries", "search", "primary")) +
			ui.Column("col-md-3", components.StatCard(strconv.Itoa(totals.ActiveUsers), "Peak active users", "people", "success")) +
			ui.Column("col-md-3", components.StatCard(strconv.Itoa(totals.Likes), "Likes", "hand-thumbs-up", "success")) +
			ui.Column("col-md-3", components.StatCard(strconv.Itoa(totals.Dislikes), "Dislikes", "hand-thumbs-down", "danger")),
	))
	b.WriteString(ui.CardStart("Last "+strconv.Itoa(UsageDays)+" days", "graph-up"))
	if len(points) == 0 {
		b.WriteString(components.EmptyState("No usage recorded yet."))
	} else {
		b.WriteString(`<iframe src="` + UsageChartPath + `?days=` + strconv.Itoa(UsageDays) + `" title="Usage chart" style="width: 100%; height: 780px; border: 0;"></iframe>`)
	}
	b.WriteString(ui.CardEnd())
	return b.String()
}
