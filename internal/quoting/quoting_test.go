package quoting

import "testing"

func TestEscapeString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no quotes", "hello", "hello"},
		{"single quote", "it's", "it''s"},
		{"double single quote", "it''s", "it''''s"},
		{"multiple quotes", "a'b'c", "a''b''c"},
		{"only quote", "'", "''"},
		{"leading quote", "'hello", "''hello"},
		{"trailing quote", "hello'", "hello''"},
		{"backslash", `hello\world`, `hello\\world`},
		{"unicode", "café", "café"},
		{"unicode with quote", "café's", "café''s"},
		{"injection attempt", "'; DROP TABLE users; --", "''; DROP TABLE users; --"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeString(tt.input)
			if got != tt.want {
				t.Errorf("EscapeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSingleQuote(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Premium", "'Premium'"},
		{"empty", "", "''"},
		{"with quote", "O'Brien", "'O''Brien'"},
		{"date", "2025-08-01", "'2025-08-01'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SingleQuote(tt.input)
			if got != tt.want {
				t.Errorf("SingleQuote(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
