package explore

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vizierhq/vizier/catalog"
)

// SuggestRelated proposes datasets worth comparing with the named one,
// ranked by how many identifier (key-like) columns they share, ties broken
// by name ascending. It is read-only: acting on a suggestion is a separate
// SelectDataset call.
func SuggestRelated(reg catalog.Registry, name string) ([]string, error) {
	base, err := reg.Dataset(name)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownDataset) {
			return nil, validationErr(KindUnknownDataset, name)
		}
		return nil, fmt.Errorf("suggest related: %w", err)
	}

	keys := make(map[string]bool)
	for _, c := range base.Columns {
		if c.Identifier {
			keys[c.Name] = true
		}
	}

	type candidate struct {
		name   string
		shared int
	}
	var candidates []candidate
	for _, other := range reg.Datasets() {
		if other == name {
			continue
		}
		d, err := reg.Dataset(other)
		if err != nil {
			return nil, fmt.Errorf("suggest related: %w", err)
		}
		shared := 0
		for _, c := range d.Columns {
			if c.Identifier && keys[c.Name] {
				shared++
			}
		}
		if shared > 0 {
			candidates = append(candidates, candidate{name: other, shared: shared})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].shared != candidates[j].shared {
			return candidates[i].shared > candidates[j].shared
		}
		return candidates[i].name < candidates[j].name
	})

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names, nil
}

// SuggestRelated proposes datasets related to the currently selected one.
func (s *State) SuggestRelated() ([]string, error) {
	d, err := s.requireDataset()
	if err != nil {
		return nil, err
	}
	return SuggestRelated(s.reg, d.Name)
}
