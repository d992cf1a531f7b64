// Package explore implements the conversation core of an exploration
// session: the mutable selection state accumulated across dialog turns and
// its deterministic compilation into SQL text and a chart descriptor.
package explore

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vizierhq/vizier/catalog"
)

// State is the full accumulated model of one exploration session: the
// selected dataset plus filters, dimensions, metrics, breakdowns, and the
// requested chart type. It is owned by a single session and mutated only
// through its methods; every compilation is a pure function of its contents.
type State struct {
	reg        catalog.Registry
	dataset    *catalog.Dataset
	filters    map[string]Filter
	dimensions []string
	metrics    []Metric
	breakdowns []string
	chartType  string
}

// NewState creates an empty session over the given catalog.
func NewState(reg catalog.Registry) *State {
	return &State{
		reg:     reg,
		filters: make(map[string]Filter),
	}
}

// Datasets returns the catalog's dataset names for prompting.
func (s *State) Datasets() []string {
	return s.reg.Datasets()
}

// Dataset returns the currently selected dataset.
func (s *State) Dataset() (catalog.Dataset, bool) {
	if s.dataset == nil {
		return catalog.Dataset{}, false
	}
	return *s.dataset, true
}

// SelectDataset switches the session to the named dataset, discarding all
// filters, dimensions, metrics, breakdowns, and the chart selection.
func (s *State) SelectDataset(name string) (catalog.Dataset, error) {
	d, err := s.reg.Dataset(name)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownDataset) {
			return catalog.Dataset{}, validationErr(KindUnknownDataset, name)
		}
		return catalog.Dataset{}, fmt.Errorf("select dataset: %w", err)
	}
	s.Reset()
	s.dataset = &d
	return d, nil
}

// Reset clears the session back to the pre-selection state.
func (s *State) Reset() {
	s.dataset = nil
	s.filters = make(map[string]Filter)
	s.dimensions = nil
	s.metrics = nil
	s.breakdowns = nil
	s.chartType = ""
}

// Filters returns the active filters sorted by column name.
func (s *State) Filters() []Filter {
	out := make([]Filter, 0, len(s.filters))
	for _, f := range s.filters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Column < out[j].Column })
	return out
}

// Dimensions returns a copy of the x-axis dimension list.
func (s *State) Dimensions() []string {
	return append([]string(nil), s.dimensions...)
}

// Metrics returns a copy of the metric list.
func (s *State) Metrics() []Metric {
	return append([]Metric(nil), s.metrics...)
}

// Breakdowns returns a copy of the breakdown list.
func (s *State) Breakdowns() []string {
	return append([]string(nil), s.breakdowns...)
}

// SuggestFilters proposes filter prompts for the current dataset's columns.
func (s *State) SuggestFilters() []string {
	if s.dataset == nil {
		return nil
	}
	var suggestions []string
	for _, c := range s.dataset.Columns {
		if c.Identifier {
			continue
		}
		switch c.Kind {
		case catalog.Temporal:
			suggestions = append(suggestions, fmt.Sprintf("Filter by %s date range", c.Name))
		case catalog.Categorical:
			suggestions = append(suggestions, fmt.Sprintf("Filter by %s category", c.Name))
		case catalog.Numeric:
			suggestions = append(suggestions, fmt.Sprintf("Filter by %s numeric range", c.Name))
		}
	}
	return suggestions
}

// groupingColumns returns the dimension and breakdown lists unioned,
// deduplicated preserving first-seen order. This is the GROUP BY / ORDER BY
// column list and also the leading SELECT columns.
func (s *State) groupingColumns() []string {
	seen := make(map[string]bool, len(s.dimensions)+len(s.breakdowns))
	var out []string
	for _, lists := range [][]string{s.dimensions, s.breakdowns} {
		for _, col := range lists {
			if !seen[col] {
				seen[col] = true
				out = append(out, col)
			}
		}
	}
	return out
}

// requireDataset returns the current dataset or an EmptySelection error.
func (s *State) requireDataset() (*catalog.Dataset, error) {
	if s.dataset == nil {
		return nil, validationErr(KindEmptySelection, "")
	}
	return s.dataset, nil
}
