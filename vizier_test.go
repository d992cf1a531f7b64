package vizier

import "testing"

// End-to-end smoke test of the re-exported API: the demo flow from dataset
// selection through compiled SQL.
func TestDemoFlow(t *testing.T) {
	t.Parallel()
	state := NewState(BuiltinCatalog())

	if _, err := state.SelectDataset("subscribers"); err != nil {
		t.Fatalf("SelectDataset: %v", err)
	}
	if _, err := state.AddFilter("region", "", "India"); err != nil {
		t.Fatalf("AddFilter: %v", err)
	}
	if err := state.ApplyChartDirective("chart=bar x=region y=sum:monthly_spend breakdowns=status"); err != nil {
		t.Fatalf("ApplyChartDirective: %v", err)
	}

	payload, err := state.Assemble()
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if payload.Dataset != "subscribers" {
		t.Errorf("dataset: got %q", payload.Dataset)
	}
	expected := "SELECT region, status, SUM(monthly_spend) AS sum_monthly_spend" +
		" FROM subscribers WHERE region = 'India'" +
		" GROUP BY region, status ORDER BY region, status LIMIT 100;"
	if payload.SQL != expected {
		t.Errorf("sql:\nexpected: %s\ngot:      %s", expected, payload.SQL)
	}
}

func TestSuggestRelatedReexport(t *testing.T) {
	t.Parallel()
	related, err := SuggestRelated(BuiltinCatalog(), "subscribers")
	if err != nil {
		t.Fatalf("SuggestRelated: %v", err)
	}
	if len(related) == 0 {
		t.Fatal("expected related datasets for subscribers")
	}
}
