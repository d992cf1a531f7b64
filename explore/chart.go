package explore

import (
	"regexp"
	"strings"

	"github.com/vizierhq/vizier/catalog"
)

// Metric is one aggregated measure computed per group.
type Metric struct {
	Agg    string `json:"aggregation"`
	Column string `json:"column"`
	Alias  string `json:"alias"`
}

// Label returns a human-friendly name for legends and axis titles.
func (m Metric) Label() string {
	agg := m.Agg
	if agg != "" {
		agg = strings.ToUpper(agg[:1]) + agg[1:]
	}
	return agg + " of " + m.Column
}

// ChartTypes lists the chart types the directive grammar accepts.
var ChartTypes = []string{"bar", "line", "pie", "scatter", "heatmap"}

var aggregations = map[string]bool{
	"sum": true, "avg": true, "count": true, "min": true, "max": true,
}

// VizSpec is the renderer-agnostic description of the requested chart.
// Empty lists are legal and mean "not configured yet"; downstream rendering
// decides whether that is sufficient.
type VizSpec struct {
	ChartType  string   `json:"chart_type"`
	XFields    []string `json:"x_fields"`
	YMeasures  []string `json:"y_measures"`
	Breakdowns []string `json:"breakdowns"`
}

// Configured reports whether a chart type has been chosen.
func (v VizSpec) Configured() bool {
	return v.ChartType != ""
}

var directivePattern = regexp.MustCompile(`([a-z_]+)\s*=\s*([^\s]+)`)

// ParseDirective extracts the key=value pairs of a chart directive,
// normalising the alias keys the dialog accepts (type, dimensions, metrics,
// group_by). It returns false when the text contains no recognisable pairs.
func ParseDirective(text string) (map[string]string, bool) {
	matches := directivePattern.FindAllStringSubmatch(strings.ToLower(text), -1)
	if len(matches) == 0 {
		return nil, false
	}
	params := make(map[string]string, len(matches))
	for _, m := range matches {
		key := m[1]
		switch key {
		case "type":
			key = "chart"
		case "dimensions":
			key = "x"
		case "metrics":
			key = "y"
		case "group_by":
			key = "breakdowns"
		}
		params[key] = m[2]
	}
	return params, true
}

// ApplyChartDirective parses a directive such as
//
//	chart=bar x=region,plan_type y=sum:monthly_spend breakdowns=status
//
// and merges it into the state. Keys are order-insensitive; an absent key
// leaves the corresponding selection untouched, so the chart can be refined
// across turns. The whole directive is validated before anything is
// committed: on error the state is unchanged.
func (s *State) ApplyChartDirective(text string) error {
	d, err := s.requireDataset()
	if err != nil {
		return err
	}
	params, ok := ParseDirective(text)
	if !ok {
		return validationErr(KindUnknownChartType, strings.TrimSpace(text))
	}

	chartType, hasChart := params["chart"]
	if hasChart && !isChartType(chartType) {
		return validationErr(KindUnknownChartType, chartType)
	}

	var xFields, breakdowns []string
	if raw, ok := params["x"]; ok {
		if xFields, err = splitColumns(d, raw); err != nil {
			return err
		}
	}
	if raw, ok := params["breakdowns"]; ok {
		if breakdowns, err = splitColumns(d, raw); err != nil {
			return err
		}
	}

	var metrics []Metric
	if raw, ok := params["y"]; ok {
		if metrics, err = parseMeasures(d, raw); err != nil {
			return err
		}
	}

	if hasChart {
		s.chartType = chartType
	}
	s.dimensions = mergeDistinct(s.dimensions, xFields)
	s.breakdowns = mergeDistinct(s.breakdowns, breakdowns)
	s.metrics = mergeMetrics(s.metrics, metrics)
	return nil
}

// Visualization assembles the current selections into a descriptor.
func (s *State) Visualization() VizSpec {
	spec := VizSpec{
		ChartType:  s.chartType,
		XFields:    make([]string, 0, len(s.dimensions)),
		YMeasures:  make([]string, 0, len(s.metrics)),
		Breakdowns: make([]string, 0, len(s.breakdowns)),
	}
	spec.XFields = append(spec.XFields, s.dimensions...)
	for _, m := range s.metrics {
		spec.YMeasures = append(spec.YMeasures, m.Alias)
	}
	spec.Breakdowns = append(spec.Breakdowns, s.breakdowns...)
	return spec
}

func isChartType(name string) bool {
	for _, t := range ChartTypes {
		if t == name {
			return true
		}
	}
	return false
}

// splitColumns parses a comma-separated column list, validating each column
// against the dataset.
func splitColumns(d *catalog.Dataset, raw string) ([]string, error) {
	var cols []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := d.Column(part); !ok {
			return nil, validationErr(KindUnknownColumn, part)
		}
		cols = append(cols, part)
	}
	return cols, nil
}

// parseMeasures parses a comma-separated measure list of agg:column entries;
// a bare column defaults to sum.
func parseMeasures(d *catalog.Dataset, raw string) ([]Metric, error) {
	var metrics []Metric
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		agg, column := "sum", part
		if idx := strings.Index(part, ":"); idx >= 0 {
			agg = strings.TrimSpace(part[:idx])
			column = strings.TrimSpace(part[idx+1:])
		}
		if !aggregations[agg] {
			return nil, validationErr(KindUnknownAggregation, agg)
		}
		col, ok := d.Column(column)
		if !ok {
			return nil, validationErr(KindUnknownColumn, column)
		}
		if !col.Aggregatable {
			return nil, validationErr(KindNonAggregatableColumn, column)
		}
		metrics = append(metrics, Metric{
			Agg:    agg,
			Column: column,
			Alias:  agg + "_" + column,
		})
	}
	return metrics, nil
}

// mergeDistinct appends the items of add not already present in base,
// preserving both orders.
func mergeDistinct(base, add []string) []string {
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}
	for _, v := range add {
		if !seen[v] {
			seen[v] = true
			base = append(base, v)
		}
	}
	return base
}

// mergeMetrics appends metrics not already present, keyed by (agg, column).
func mergeMetrics(base, add []Metric) []Metric {
	seen := make(map[string]bool, len(base))
	for _, m := range base {
		seen[m.Alias] = true
	}
	for _, m := range add {
		if !seen[m.Alias] {
			seen[m.Alias] = true
			base = append(base, m)
		}
	}
	return base
}
