// Package vizier provides a conversational data-exploration core: a session
// state accumulated across dialog turns that compiles into SQL and a chart
// descriptor.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/vizierhq/vizier/explore (session state and compilation)
//   - github.com/vizierhq/vizier/catalog (dataset metadata)
package vizier

import (
	"github.com/vizierhq/vizier/catalog"
	"github.com/vizierhq/vizier/explore"
)

// --- Core Types ---

// State is the full mutable model of one exploration session.
type State = explore.State

// Filter restricts rows of the current dataset by one column's value(s).
type Filter = explore.Filter

// Metric is one aggregated measure computed per group.
type Metric = explore.Metric

// VizSpec is the renderer-agnostic description of the requested chart.
type VizSpec = explore.VizSpec

// Payload is the serialisable snapshot of a session.
type Payload = explore.Payload

// ValidationError reports a rejected command, leaving state unchanged.
type ValidationError = explore.ValidationError

// --- Catalog Types ---

// Dataset is a named tabular source with a fixed schema.
type Dataset = catalog.Dataset

// Column carries the metadata recorded for one dataset field.
type Column = catalog.Column

// Registry exposes dataset lookup to the session core.
type Registry = catalog.Registry

// --- Constructors ---

// NewState creates an empty session over the given catalog.
func NewState(reg catalog.Registry) *explore.State {
	return explore.NewState(reg)
}

// BuiltinCatalog returns the demo dataset registry.
func BuiltinCatalog() catalog.Registry {
	return catalog.Builtin()
}

// SuggestRelated ranks datasets related to the named one by shared
// identifier columns.
func SuggestRelated(reg catalog.Registry, name string) ([]string, error) {
	return explore.SuggestRelated(reg, name)
}
