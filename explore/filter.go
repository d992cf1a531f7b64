package explore

import (
	"strconv"
	"strings"

	"github.com/vizierhq/vizier/catalog"
	"github.com/vizierhq/vizier/internal/quoting"
)

// Operator is the comparison applied by a filter.
type Operator string

const (
	OpEquals  Operator = "equals"
	OpBetween Operator = "between"
	OpIn      Operator = "in"
)

// Filter restricts rows of the current dataset by one column's value(s).
// Values are kept in validated textual form; Kind drives literal quoting
// when the predicate is rendered.
type Filter struct {
	Column string       `json:"column"`
	Op     Operator     `json:"operator"`
	Values []string     `json:"values"`
	Kind   catalog.Kind `json:"kind"`
}

// AddFilter validates and records a filter, replacing any existing filter on
// the same column. When op is empty it is inferred from the value shape: one
// value means equals, two mean a between range, more mean a set membership
// test. Numeric columns reject values that do not parse as numbers.
func (s *State) AddFilter(column string, op Operator, values ...string) (Filter, error) {
	d, err := s.requireDataset()
	if err != nil {
		return Filter{}, err
	}
	col, ok := d.Column(column)
	if !ok {
		return Filter{}, validationErr(KindUnknownColumn, column)
	}

	if op == "" {
		switch len(values) {
		case 1:
			op = OpEquals
		case 2:
			op = OpBetween
		default:
			op = OpIn
		}
	}
	switch op {
	case OpEquals:
		if len(values) != 1 {
			return Filter{}, validationErr(KindTypeMismatch, strings.Join(values, ","))
		}
	case OpBetween:
		if len(values) != 2 {
			return Filter{}, validationErr(KindTypeMismatch, strings.Join(values, ","))
		}
	case OpIn:
		if len(values) == 0 {
			return Filter{}, validationErr(KindTypeMismatch, "")
		}
	default:
		return Filter{}, validationErr(KindTypeMismatch, string(op))
	}

	if col.Kind == catalog.Numeric {
		for _, v := range values {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return Filter{}, validationErr(KindTypeMismatch, v)
			}
		}
	}

	f := Filter{
		Column: column,
		Op:     op,
		Values: append([]string(nil), values...),
		Kind:   col.Kind,
	}
	s.filters[column] = f
	return f, nil
}

// RemoveFilter drops the filter on the given column; no-op if absent.
func (s *State) RemoveFilter(column string) {
	delete(s.filters, column)
}

// Predicate renders the active filter set as one conjunctive boolean
// expression in column-name-sorted order. The empty string means no WHERE
// clause is needed.
func (s *State) Predicate() string {
	filters := s.Filters()
	if len(filters) == 0 {
		return ""
	}
	clauses := make([]string, len(filters))
	for i, f := range filters {
		clauses[i] = f.render()
	}
	return strings.Join(clauses, " AND ")
}

func (f Filter) render() string {
	switch f.Op {
	case OpBetween:
		return f.Column + " BETWEEN " + f.literal(f.Values[0]) + " AND " + f.literal(f.Values[1])
	case OpIn:
		quoted := make([]string, len(f.Values))
		for i, v := range f.Values {
			quoted[i] = f.literal(v)
		}
		return f.Column + " IN (" + strings.Join(quoted, ", ") + ")"
	default:
		return f.Column + " = " + f.literal(f.Values[0])
	}
}

// literal quotes a value per the column's semantic type: numeric values are
// rendered bare, everything else single-quoted.
func (f Filter) literal(v string) string {
	if f.Kind == catalog.Numeric {
		return v
	}
	return quoting.SingleQuote(v)
}
