package macrolens

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a malformed input point: a zero or negative price
// or macro value. Index construction divides by the first aligned values, so
// non-positive inputs are rejected before any ratio is computed.
type InvalidInputError struct {
	Column string // "price" or "macro"
	Date   Date
	Value  float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s value %g on %s: must be strictly positive", e.Column, e.Value, e.Date)
}

// InsufficientDataError reports that alignment produced an empty table: the
// requested range is outside the available data, or the two series share no
// overlapping dates.
type InsufficientDataError struct {
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %s", e.Reason)
}

// ErrUndefinedCorrelation is returned when the Pearson correlation is
// mathematically undefined because one of the index columns has zero
// variance. It is reported as a typed failure rather than a NaN value.
var ErrUndefinedCorrelation = errors.New("correlation is undefined: an index column has zero variance")
