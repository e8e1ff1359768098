// Package visualize renders the usage statistics charts.
package visualize

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ghiac/adminshell/model"
)

// UsageChart draws daily query and feedback counts
type UsageChart struct {
	points []model.UsagePoint
	width  string
	height string
}

// NewUsageChart creates a chart over points, oldest first
func NewUsageChart(points []model.UsagePoint) *UsageChart {
	return &UsageChart{
		points: points,
		width:  "100%",
		height: "360px",
	}
}

// Totals sums the series
func (uc *UsageChart) Totals() model.UsagePoint {
	var t model.UsagePoint
	for _, p := range uc.points {
		t.Queries += p.Queries
		t.Likes += p.Likes
		t.Dislikes += p.Dislikes
		if p.ActiveUsers > t.ActiveUsers {
			t.ActiveUsers = p.ActiveUsers
		}
	}
	return t
}

func (uc *UsageChart) dates() []string {
	out := make([]string, len(uc.points))
	for i, p := range uc.points {
		out[i] = p.Date.Format("Jan 2")
	}
	return out
}

// QueriesChart plots queries and active users per day
func (uc *UsageChart) QueriesChart(title string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d queries over %d days", uc.Totals().Queries, len(uc.points)),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  uc.width,
			Height: uc.height,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	queries := make([]opts.LineData, len(uc.points))
	users := make([]opts.LineData, len(uc.points))
	for i, p := range uc.points {
		queries[i] = opts.LineData{Value: p.Queries}
		users[i] = opts.LineData{Value: p.ActiveUsers}
	}

	line.SetXAxis(uc.dates()).
		AddSeries("Queries", queries).
		AddSeries("Active users", users).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

// FeedbackChart plots likes and dislikes per day
func (uc *UsageChart) FeedbackChart(title string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  uc.width,
			Height: uc.height,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	likes := make([]opts.BarData, len(uc.points))
	dislikes := make([]opts.BarData, len(uc.points))
	for i, p := range uc.points {
		likes[i] = opts.BarData{Value: p.Likes}
		dislikes[i] = opts.BarData{Value: p.Dislikes}
	}

	bar.SetXAxis(uc.dates()).
		AddSeries("Likes", likes).
		AddSeries("Dislikes", dislikes)
	return bar
}

// Render writes a standalone HTML page with both charts
func (uc *UsageChart) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "Usage Statistics"
	page.AddCharts(
		uc.QueriesChart("Queries"),
		uc.FeedbackChart("Feedback"),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render usage chart: %w", err)
	}
	return nil
}
