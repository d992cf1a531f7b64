package main

import (
	"reflect"
	"testing"
)

func TestParseFilter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		input  string
		column string
		values []string
		ok     bool
	}{
		{"equals", "region=Europe", "region", []string{"Europe"}, true},
		{"equals with spaces", "  region = Europe ", "region", []string{"Europe"}, true},
		{"colon separator", "status: active", "status", []string{"active"}, true},
		{"value list", "status=active,paused", "status", []string{"active", "paused"}, true},
		{"between", "join_date between 2025-01-01 and 2025-12-31", "join_date", []string{"2025-01-01", "2025-12-31"}, true},
		{"between case-insensitive", "monthly_spend BETWEEN 10 AND 200", "monthly_spend", []string{"10", "200"}, true},
		{"no separator", "region Europe", "", nil, false},
		{"empty value", "region=", "", nil, false},
		{"empty column", "=Europe", "", nil, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			column, values, ok := parseFilter(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok: expected %v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if column != tt.column {
				t.Errorf("column: expected %q, got %q", tt.column, column)
			}
			if !reflect.DeepEqual(values, tt.values) {
				t.Errorf("values: expected %v, got %v", tt.values, values)
			}
		})
	}
}

func TestMatchDataset(t *testing.T) {
	t.Parallel()
	names := []string{"business_units", "logins", "payments", "subscribers", "tickets"}
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"subscribers", "subscribers", true},
		{"  Payments ", "payments", true},
		{"let's look at the tickets data", "tickets", true},
		{"show me business_units please", "business_units", true},
		{"orders", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := matchDataset(names, tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("matchDataset(%q): expected (%q, %v), got (%q, %v)", tt.input, tt.want, tt.ok, got, ok)
		}
	}
}

func TestLooksLikeDirective(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  bool
	}{
		{"chart=bar x=region y=sum:monthly_spend", true},
		{"y=avg:monthly_spend", true},
		{"group_by=status", true},
		{"type=pie", true},
		{"filter region=Europe", false},
		{"refresh", false},
	}
	for _, tt := range tests {
		if got := looksLikeDirective(tt.input); got != tt.want {
			t.Errorf("looksLikeDirective(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}
