package explore

// Payload is the serialisable projection of a session handed to display and
// to the execution/rendering collaborators. It is a pure snapshot: no field
// re-validates anything, and Dimensions carries the full grouping column
// list (x-fields followed by breakdowns, deduplicated).
type Payload struct {
	Dataset       string   `json:"dataset"`
	Filters       []Filter `json:"filters"`
	Dimensions    []string `json:"dimensions"`
	Metrics       []Metric `json:"metrics"`
	Visualization VizSpec  `json:"visualization"`
	SQL           string   `json:"sql"`
}

// Assemble packages the current dataset, filters, grouping columns, metrics,
// visualization descriptor, and compiled SQL into one payload.
func (s *State) Assemble() (Payload, error) {
	d, err := s.requireDataset()
	if err != nil {
		return Payload{}, err
	}
	sql, err := s.Compile()
	if err != nil {
		return Payload{}, err
	}
	return Payload{
		Dataset:       d.Name,
		Filters:       s.Filters(),
		Dimensions:    s.groupingColumns(),
		Metrics:       s.Metrics(),
		Visualization: s.Visualization(),
		SQL:           sql,
	}, nil
}
