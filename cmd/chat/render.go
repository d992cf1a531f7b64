package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	chartlib "github.com/wcharczuk/go-chart/v2"

	"github.com/vizierhq/vizier/explore"
)

var errHeatmapUnsupported = errors.New("heatmap rendering is not supported yet; try bar, line, pie, or scatter")

// renderChart draws the aggregated result rows as a static PNG and returns
// the saved path. An empty path with a nil error means there was nothing to
// draw (no rows or no metrics).
func renderChart(dir string, rows []map[string]string, viz explore.VizSpec, metrics []explore.Metric) (string, error) {
	if len(rows) == 0 || len(metrics) == 0 {
		return "", nil
	}
	if viz.ChartType == "heatmap" {
		return "", errHeatmapUnsupported
	}

	labels := composeLabels(rows, append(append([]string{}, viz.XFields...), viz.Breakdowns...))
	series := make(map[string][]float64, len(metrics))
	for _, m := range metrics {
		vals := make([]float64, len(rows))
		for i, row := range rows {
			vals[i] = asNumeric(row[m.Alias])
		}
		series[m.Alias] = vals
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("chart dir: %w", err)
	}
	id := uuid.New()
	path := filepath.Join(dir, fmt.Sprintf("chart_%s_%x.png", viz.ChartType, id[:4]))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch viz.ChartType {
	case "pie":
		err = renderPie(f, labels, metrics[0], series[metrics[0].Alias])
	case "line", "scatter":
		err = renderXY(f, viz.ChartType, labels, metrics, series)
	default:
		err = renderBars(f, labels, metrics, series)
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

func renderPie(f *os.File, labels []string, m explore.Metric, values []float64) error {
	pie := chartlib.PieChart{
		Title:  m.Label(),
		Width:  600,
		Height: 600,
	}
	for i, v := range values {
		if v <= 0 {
			continue
		}
		pie.Values = append(pie.Values, chartlib.Value{Label: labels[i], Value: v})
	}
	if len(pie.Values) == 0 {
		return errors.New("pie chart needs at least one positive value")
	}
	return pie.Render(chartlib.PNG, f)
}

func renderXY(f *os.File, chartType string, labels []string, metrics []explore.Metric, series map[string][]float64) error {
	ticks := make([]chartlib.Tick, len(labels))
	xs := make([]float64, len(labels))
	for i, l := range labels {
		ticks[i] = chartlib.Tick{Value: float64(i), Label: l}
		xs[i] = float64(i)
	}

	graph := chartlib.Chart{
		Title:  chartTitle(metrics),
		Width:  chartWidth(len(labels)),
		Height: 480,
		XAxis:  chartlib.XAxis{Ticks: ticks},
	}
	for _, m := range metrics {
		style := chartlib.Style{}
		if chartType == "scatter" {
			style = chartlib.Style{StrokeWidth: chartlib.Disabled, DotWidth: 5}
		}
		graph.Series = append(graph.Series, chartlib.ContinuousSeries{
			Name:    m.Label(),
			XValues: xs,
			YValues: series[m.Alias],
			Style:   style,
		})
	}
	return graph.Render(chartlib.PNG, f)
}

func renderBars(f *os.File, labels []string, metrics []explore.Metric, series map[string][]float64) error {
	if len(metrics) == 1 {
		bar := chartlib.BarChart{
			Title:    metrics[0].Label(),
			Width:    chartWidth(len(labels)),
			Height:   480,
			BarWidth: 40,
		}
		for i, v := range series[metrics[0].Alias] {
			bar.Bars = append(bar.Bars, chartlib.Value{Label: labels[i], Value: v})
		}
		return bar.Render(chartlib.PNG, f)
	}

	// Multiple metrics stack per label.
	stacked := chartlib.StackedBarChart{
		Title:  chartTitle(metrics),
		Width:  chartWidth(len(labels)),
		Height: 480,
	}
	for i, label := range labels {
		sb := chartlib.StackedBar{Name: label}
		for _, m := range metrics {
			sb.Values = append(sb.Values, chartlib.Value{Label: m.Alias, Value: series[m.Alias][i]})
		}
		stacked.Bars = append(stacked.Bars, sb)
	}
	return stacked.Render(chartlib.PNG, f)
}

// composeLabels builds one x-axis label per row by joining the row's values
// for the given fields with " | ". A row with no label fields becomes "All".
func composeLabels(rows []map[string]string, fields []string) []string {
	labels := make([]string, len(rows))
	for i, row := range rows {
		var parts []string
		for _, field := range fields {
			if v := row[field]; v != "" && v != "NULL" {
				parts = append(parts, v)
			}
		}
		label := strings.Join(parts, " | ")
		if label == "" {
			label = "All"
		}
		labels[i] = label
	}
	return labels
}

func asNumeric(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func chartTitle(metrics []explore.Metric) string {
	names := make([]string, len(metrics))
	for i, m := range metrics {
		names[i] = m.Label()
	}
	return strings.Join(names, ", ")
}

func chartWidth(labels int) int {
	w := labels * 80
	if w < 600 {
		return 600
	}
	return w
}
