package explore

import (
	"reflect"
	"testing"

	"github.com/vizierhq/vizier/internal/testutil"
)

func TestParseDirective(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want map[string]string
		ok   bool
	}{
		{
			name: "canonical keys",
			text: "chart=bar x=region y=sum:monthly_spend breakdowns=status",
			want: map[string]string{"chart": "bar", "x": "region", "y": "sum:monthly_spend", "breakdowns": "status"},
			ok:   true,
		},
		{
			name: "alias keys normalised",
			text: "type=line dimensions=join_date metrics=avg:monthly_spend group_by=plan_type",
			want: map[string]string{"chart": "line", "x": "join_date", "y": "avg:monthly_spend", "breakdowns": "plan_type"},
			ok:   true,
		},
		{
			name: "spaces around equals",
			text: "chart = pie x = region",
			want: map[string]string{"chart": "pie", "x": "region"},
			ok:   true,
		},
		{
			name: "mixed case folded",
			text: "CHART=BAR X=region",
			want: map[string]string{"chart": "bar", "x": "region"},
			ok:   true,
		},
		{
			name: "no pairs",
			text: "please draw something nice",
			want: nil,
			ok:   false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseDirective(tt.text)
			testutil.AssertEqual(t, ok, tt.ok)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestApplyChartDirective(t *testing.T) {
	t.Parallel()
	s := newSubscribers(t)
	err := s.ApplyChartDirective("chart=bar x=region,plan_type y=sum:monthly_spend breakdowns=status")
	testutil.AssertNoError(t, err)

	viz := s.Visualization()
	testutil.AssertEqual(t, viz.ChartType, "bar")
	if !reflect.DeepEqual(viz.XFields, []string{"region", "plan_type"}) {
		t.Errorf("x fields: %v", viz.XFields)
	}
	if !reflect.DeepEqual(viz.YMeasures, []string{"sum_monthly_spend"}) {
		t.Errorf("y measures: %v", viz.YMeasures)
	}
	if !reflect.DeepEqual(viz.Breakdowns, []string{"status"}) {
		t.Errorf("breakdowns: %v", viz.Breakdowns)
	}
}

func TestApplyChartDirectivePartialUpdate(t *testing.T) {
	t.Parallel()
	s := newSubscribers(t)
	err := s.ApplyChartDirective("chart=bar x=region y=sum:monthly_spend")
	testutil.AssertNoError(t, err)

	// A later directive that only names the chart type keeps the rest.
	err = s.ApplyChartDirective("chart=line")
	testutil.AssertNoError(t, err)

	viz := s.Visualization()
	testutil.AssertEqual(t, viz.ChartType, "line")
	if !reflect.DeepEqual(viz.XFields, []string{"region"}) {
		t.Errorf("x fields lost on partial update: %v", viz.XFields)
	}
	if !reflect.DeepEqual(viz.YMeasures, []string{"sum_monthly_spend"}) {
		t.Errorf("y measures lost on partial update: %v", viz.YMeasures)
	}
}

func TestApplyChartDirectiveMergesWithoutDuplicates(t *testing.T) {
	t.Parallel()
	s := newSubscribers(t)
	err := s.ApplyChartDirective("chart=bar x=region y=sum:monthly_spend")
	testutil.AssertNoError(t, err)
	err = s.ApplyChartDirective("x=region,plan_type y=sum:monthly_spend,avg:monthly_spend")
	testutil.AssertNoError(t, err)

	viz := s.Visualization()
	if !reflect.DeepEqual(viz.XFields, []string{"region", "plan_type"}) {
		t.Errorf("x fields: %v", viz.XFields)
	}
	if !reflect.DeepEqual(viz.YMeasures, []string{"sum_monthly_spend", "avg_monthly_spend"}) {
		t.Errorf("y measures: %v", viz.YMeasures)
	}
}

func TestApplyChartDirectiveDefaultsToSum(t *testing.T) {
	t.Parallel()
	s := newSubscribers(t)
	err := s.ApplyChartDirective("chart=bar x=region y=monthly_spend")
	testutil.AssertNoError(t, err)

	metrics := s.Metrics()
	testutil.AssertEqual(t, len(metrics), 1)
	testutil.AssertEqual(t, metrics[0].Agg, "sum")
	testutil.AssertEqual(t, metrics[0].Alias, "sum_monthly_spend")
}

func TestApplyChartDirectiveRejections(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		kind ErrorKind
	}{
		{"unknown chart type", "chart=sunburst x=region", KindUnknownChartType},
		{"no recognisable pairs", "draw a graph", KindUnknownChartType},
		{"unknown x column", "chart=bar x=postcode", KindUnknownColumn},
		{"unknown breakdown column", "chart=bar x=region breakdowns=postcode", KindUnknownColumn},
		{"unknown metric column", "chart=bar y=sum:postcode", KindUnknownColumn},
		{"non-aggregatable metric", "chart=bar y=sum:region", KindNonAggregatableColumn},
		{"unknown aggregation", "chart=bar y=median:monthly_spend", KindUnknownAggregation},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := newSubscribers(t)
			err := s.ApplyChartDirective(tt.text)
			testutil.AssertError(t, err)
			testutil.AssertEqual(t, KindOf(err), tt.kind)
		})
	}
}

func TestApplyChartDirectiveRejectionLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	s := newSubscribers(t)
	err := s.ApplyChartDirective("chart=bar x=region y=sum:monthly_spend")
	testutil.AssertNoError(t, err)
	before := s.Visualization()

	// x is valid, y is not; nothing may be committed.
	err = s.ApplyChartDirective("chart=pie x=plan_type y=sum:region")
	testutil.AssertError(t, err)

	after := s.Visualization()
	if !reflect.DeepEqual(after, before) {
		t.Errorf("state changed on rejected directive:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestApplyChartDirectiveWithoutDataset(t *testing.T) {
	t.Parallel()
	s := NewState(nil)
	err := s.ApplyChartDirective("chart=bar x=region")
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, KindOf(err), KindEmptySelection)
}

func TestMetricLabel(t *testing.T) {
	t.Parallel()
	m := Metric{Agg: "sum", Column: "monthly_spend", Alias: "sum_monthly_spend"}
	testutil.AssertEqual(t, m.Label(), "Sum of monthly_spend")
}
