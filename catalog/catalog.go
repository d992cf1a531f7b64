// Package catalog describes the datasets available to an exploration
// session: logical names, backing tables, and the column metadata the core
// needs to validate field references.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownDataset is wrapped by Registry lookups for absent datasets.
var ErrUnknownDataset = errors.New("unknown dataset")

// Kind is the semantic type of a column. It drives filter value coercion and
// literal quoting when predicates are rendered.
type Kind string

const (
	Categorical Kind = "categorical"
	Numeric     Kind = "numeric"
	Temporal    Kind = "temporal"
)

// Column carries the metadata recorded for one dataset field.
type Column struct {
	Name         string
	Kind         Kind
	Aggregatable bool   // legal target for SUM/AVG/... metrics
	Identifier   bool   // key-like column, used to rank related datasets
	Description  string // optional prompt text
}

// Dataset is a named tabular source with a fixed schema.
type Dataset struct {
	Name    string
	Table   string
	Columns []Column
	Related []string // curated hints shown after selection; informational only
}

// Column returns the named column's metadata.
func (d Dataset) Column(name string) (Column, bool) {
	for _, c := range d.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames returns the column names in schema order.
func (d Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Registry exposes dataset lookup to the session core. Implementations are
// read-only within a session.
type Registry interface {
	// Datasets returns the available dataset names in ascending order.
	Datasets() []string
	// Dataset returns the named dataset, or an error wrapping
	// ErrUnknownDataset when it is not registered.
	Dataset(name string) (Dataset, error)
}

type registry struct {
	byName map[string]Dataset
}

// New builds a Registry from the given datasets.
func New(datasets ...Dataset) Registry {
	byName := make(map[string]Dataset, len(datasets))
	for _, d := range datasets {
		byName[d.Name] = d
	}
	return &registry{byName: byName}
}

func (r *registry) Datasets() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *registry) Dataset(name string) (Dataset, error) {
	d, ok := r.byName[name]
	if !ok {
		return Dataset{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	return d, nil
}
