package explore

import (
	"fmt"
	"strings"
)

// DefaultLimit caps every compiled preview query.
const DefaultLimit = 100

// Compile renders the session into a complete SQL statement with stable
// column and row ordering. Compilation is pure: calling it repeatedly
// without intervening mutation yields byte-identical output.
//
// The shape is:
//
//	SELECT <grouping cols, metrics as FUNC(col) AS alias | *>
//	FROM <table> [WHERE <predicate>]
//	[GROUP BY <grouping cols> ORDER BY <grouping cols>]
//	LIMIT 100;
//
// GROUP BY (and the matching ORDER BY) appear only when at least one metric
// is selected; browsing plain dimensions stays ungrouped.
func (s *State) Compile() (string, error) {
	d, err := s.requireDataset()
	if err != nil {
		return "", err
	}

	grouping := s.groupingColumns()

	var sel []string
	sel = append(sel, grouping...)
	for _, m := range s.metrics {
		sel = append(sel, fmt.Sprintf("%s(%s) AS %s", strings.ToUpper(m.Agg), m.Column, m.Alias))
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	if len(sel) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(sel, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(d.Table)

	if pred := s.Predicate(); pred != "" {
		b.WriteString(" WHERE ")
		b.WriteString(pred)
	}

	if len(s.metrics) > 0 && len(grouping) > 0 {
		cols := strings.Join(grouping, ", ")
		b.WriteString(" GROUP BY ")
		b.WriteString(cols)
		b.WriteString(" ORDER BY ")
		b.WriteString(cols)
	}

	fmt.Fprintf(&b, " LIMIT %d;", DefaultLimit)
	return b.String(), nil
}
