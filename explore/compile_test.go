package explore

import (
	"testing"

	"github.com/vizierhq/vizier/catalog"
	"github.com/vizierhq/vizier/internal/testutil"
)

func newSubscribers(t *testing.T) *State {
	t.Helper()
	s := NewState(catalog.Builtin())
	if _, err := s.SelectDataset("subscribers"); err != nil {
		t.Fatalf("select subscribers: %v", err)
	}
	return s
}

func TestCompileBareDataset(t *testing.T) {
	t.Parallel()
	s := newSubscribers(t)
	sql, err := s.Compile()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql, "SELECT * FROM subscribers LIMIT 100;")
}

func TestCompileFullSession(t *testing.T) {
	t.Parallel()
	s := newSubscribers(t)
	_, err := s.AddFilter("join_date", OpBetween, "2025-08-01", "2025-10-15")
	testutil.AssertNoError(t, err)
	err = s.ApplyChartDirective("chart=bar x=region,plan_type y=sum:monthly_spend breakdowns=status")
	testutil.AssertNoError(t, err)

	sql, err := s.Compile()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql,
		"SELECT region, plan_type, status, SUM(monthly_spend) AS sum_monthly_spend"+
			" FROM subscribers"+
			" WHERE join_date BETWEEN '2025-08-01' AND '2025-10-15'"+
			" GROUP BY region, plan_type, status"+
			" ORDER BY region, plan_type, status"+
			" LIMIT 100;")
}

func TestCompileIsIdempotent(t *testing.T) {
	t.Parallel()
	s := newSubscribers(t)
	_, err := s.AddFilter("region", OpEquals, "Europe")
	testutil.AssertNoError(t, err)
	err = s.ApplyChartDirective("chart=line x=join_date y=avg:monthly_spend")
	testutil.AssertNoError(t, err)

	first, err := s.Compile()
	testutil.AssertNoError(t, err)
	second, err := s.Compile()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, second, first)
}

func TestCompileDimensionsWithoutMetrics(t *testing.T) {
	t.Parallel()
	s := newSubscribers(t)
	err := s.ApplyChartDirective("chart=bar x=region,plan_type")
	testutil.AssertNoError(t, err)

	sql, err := s.Compile()
	testutil.AssertNoError(t, err)
	// No metric selected: no GROUP BY, no ORDER BY.
	testutil.AssertEqual(t, sql, "SELECT region, plan_type FROM subscribers LIMIT 100;")
}

func TestCompileDeduplicatesOverlappingBreakdown(t *testing.T) {
	t.Parallel()
	s := newSubscribers(t)
	err := s.ApplyChartDirective("chart=bar x=region y=sum:monthly_spend breakdowns=region,status")
	testutil.AssertNoError(t, err)

	sql, err := s.Compile()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql,
		"SELECT region, status, SUM(monthly_spend) AS sum_monthly_spend"+
			" FROM subscribers"+
			" GROUP BY region, status"+
			" ORDER BY region, status"+
			" LIMIT 100;")
}

func TestCompileMultipleMetrics(t *testing.T) {
	t.Parallel()
	s := NewState(catalog.Builtin())
	_, err := s.SelectDataset("business_units")
	testutil.AssertNoError(t, err)
	err = s.ApplyChartDirective("chart=bar x=region y=sum:revenue,avg:headcount")
	testutil.AssertNoError(t, err)

	sql, err := s.Compile()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sql,
		"SELECT region, SUM(revenue) AS sum_revenue, AVG(headcount) AS avg_headcount"+
			" FROM business_units"+
			" GROUP BY region"+
			" ORDER BY region"+
			" LIMIT 100;")
}

func TestCompileWithoutDataset(t *testing.T) {
	t.Parallel()
	s := NewState(catalog.Builtin())
	_, err := s.Compile()
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, KindOf(err), KindEmptySelection)
}

func TestCompileUnchangedAfterRejectedCommand(t *testing.T) {
	t.Parallel()
	s := newSubscribers(t)
	_, err := s.AddFilter("region", OpEquals, "Europe")
	testutil.AssertNoError(t, err)
	before, err := s.Compile()
	testutil.AssertNoError(t, err)

	_, err = s.AddFilter("no_such_column", OpEquals, "x")
	testutil.AssertError(t, err)
	err = s.ApplyChartDirective("chart=bar y=sum:region")
	testutil.AssertError(t, err)

	after, err := s.Compile()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, after, before)
}
