package explore

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a recoverable validation failure.
type ErrorKind string

const (
	KindUnknownDataset        ErrorKind = "unknown_dataset"
	KindUnknownColumn         ErrorKind = "unknown_column"
	KindTypeMismatch          ErrorKind = "type_mismatch"
	KindNonAggregatableColumn ErrorKind = "non_aggregatable_column"
	KindUnknownAggregation    ErrorKind = "unknown_aggregation"
	KindUnknownChartType      ErrorKind = "unknown_chart_type"
	KindEmptySelection        ErrorKind = "empty_selection"
)

// ValidationError reports a rejected command. The state it was raised
// against is left unchanged, so the caller can display it and continue.
type ValidationError struct {
	Kind  ErrorKind
	Token string // the offending dataset, column, value, or directive token
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindUnknownDataset:
		return fmt.Sprintf("unknown dataset %q", e.Token)
	case KindUnknownColumn:
		return fmt.Sprintf("column %q is not available on the current dataset", e.Token)
	case KindTypeMismatch:
		return fmt.Sprintf("value %q does not match the column's type", e.Token)
	case KindNonAggregatableColumn:
		return fmt.Sprintf("column %q cannot be aggregated", e.Token)
	case KindUnknownAggregation:
		return fmt.Sprintf("unknown aggregation %q (choose: sum, avg, count, min, max)", e.Token)
	case KindUnknownChartType:
		return fmt.Sprintf("unknown chart type %q", e.Token)
	case KindEmptySelection:
		return "no dataset selected"
	}
	return fmt.Sprintf("validation failed on %q", e.Token)
}

func validationErr(kind ErrorKind, token string) *ValidationError {
	return &ValidationError{Kind: kind, Token: token}
}

// KindOf returns the ErrorKind carried by err, or "" when err is not a
// ValidationError.
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
