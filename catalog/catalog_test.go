package catalog

import (
	"errors"
	"testing"
)

func TestBuiltinDatasetsSorted(t *testing.T) {
	t.Parallel()
	reg := Builtin()
	got := reg.Datasets()
	expected := []string{"business_units", "logins", "payments", "subscribers", "tickets"}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i, name := range expected {
		if got[i] != name {
			t.Errorf("Datasets()[%d]: expected %q, got %q", i, name, got[i])
		}
	}
}

func TestDatasetLookup(t *testing.T) {
	t.Parallel()
	reg := Builtin()
	d, err := reg.Dataset("subscribers")
	if err != nil {
		t.Fatalf("Dataset failed: %v", err)
	}
	if d.Table != "subscribers" {
		t.Errorf("table: expected %q, got %q", "subscribers", d.Table)
	}
	col, ok := d.Column("monthly_spend")
	if !ok {
		t.Fatal("monthly_spend not found")
	}
	if col.Kind != Numeric || !col.Aggregatable {
		t.Errorf("monthly_spend: expected aggregatable numeric, got %+v", col)
	}
}

func TestDatasetLookupUnknown(t *testing.T) {
	t.Parallel()
	reg := Builtin()
	_, err := reg.Dataset("nope")
	if err == nil {
		t.Fatal("expected error for unknown dataset")
	}
	if !errors.Is(err, ErrUnknownDataset) {
		t.Errorf("expected ErrUnknownDataset, got %v", err)
	}
}

func TestColumnNamesOrder(t *testing.T) {
	t.Parallel()
	reg := Builtin()
	d, err := reg.Dataset("logins")
	if err != nil {
		t.Fatalf("Dataset failed: %v", err)
	}
	names := d.ColumnNames()
	expected := []string{"user_id", "login_date", "login_count", "device_type", "region", "plan_type"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("ColumnNames()[%d]: expected %q, got %q", i, name, names[i])
		}
	}
}

func TestColumnMissing(t *testing.T) {
	t.Parallel()
	reg := Builtin()
	d, _ := reg.Dataset("payments")
	if _, ok := d.Column("monthly_spend"); ok {
		t.Error("monthly_spend should not exist on payments")
	}
}

func TestIdentifierFlags(t *testing.T) {
	t.Parallel()
	reg := Builtin()
	d, _ := reg.Dataset("tickets")
	var ids []string
	for _, c := range d.Columns {
		if c.Identifier {
			ids = append(ids, c.Name)
		}
	}
	if len(ids) != 2 || ids[0] != "ticket_id" || ids[1] != "user_id" {
		t.Errorf("expected [ticket_id user_id], got %v", ids)
	}
}
