package macrolens

import (
	"iter"
	"slices"
	"sort"
)

// Series stores a chronological series of float64 values, each associated with
// a specific date. It ensures that dates are unique and the series is always
// sorted. A Series has no implied frequency: equity prices are business-daily,
// consumer-price indices are monthly or quarterly, both fit.
type Series struct {
	days   []Date
	values []float64
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.days) }

// First returns the earliest date and value in the series.
// If the series is empty, it returns zero values.
func (s *Series) First() (day Date, value float64) {
	if len(s.days) == 0 {
		return Date{}, 0
	}
	return s.days[0], s.values[0]
}

// Latest returns the latest date and value in the series.
// If the series is empty, it returns zero values.
func (s *Series) Latest() (day Date, value float64) {
	last := len(s.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return s.days[last], s.values[last]
}

// chronological is a private implementation to make this series chronologically sorted.
type chronological struct{ *Series }

func (c chronological) Len() int           { return len(c.days) }
func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }
func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.values[i], c.values[j] = c.values[j], c.values[i]
}

// sort sorts the series in chronological order.
func (s *Series) sort() { sort.Sort(chronological{s}) }

// Append adds a point to the series.
//
// Existing value at that date is overwritten.
func (s *Series) Append(on Date, v float64) *Series {
	if i := slices.Index(s.days, on); i >= 0 {
		// Found a point at that exact date. We choose to replace, giving
		// higher priority to the last data.
		s.values[i] = v
		return s
	}
	s.days, s.values = append(s.days, on), append(s.values, v)
	s.sort()
	return s
}

// Values returns an iterator over all date/value pairs in the series, in chronological order.
func (s *Series) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true, or zero and false.
func (s *Series) Get(day Date) (float64, bool) {
	if i := slices.Index(s.days, day); i >= 0 {
		return s.values[i], true
	}
	return 0, false
}

// ValueAsOf returns the value on a given day, or the most recent value before
// it. This is the forward-fill lookup: the last known reading carries forward
// until a new one arrives. It returns the value and true if found, otherwise
// zero and false (no reading exists on or before that day).
func (s *Series) ValueAsOf(day Date) (float64, bool) {
	// The days slice is sorted, so we can use binary search.
	i, found := slices.BinarySearchFunc(s.days, day, func(d, t Date) int {
		if d.After(t) {
			return 1
		}
		if d.Before(t) {
			return -1
		}
		return 0
	})

	if found {
		return s.values[i], true
	}

	// Not found. `i` is the index where `day` would be inserted.
	// The value we want is at `i-1`, the last entry before the target date.
	if i == 0 {
		return 0, false
	}
	return s.values[i-1], true
}

// Truncate returns a new Series restricted to the points whose date falls
// within r, boundaries included. The receiver is left untouched.
//
// Providers may return readings dated before the requested range start; the
// contract of AlignAndIndex is that its caller excludes them, and Truncate is
// how the caller does so.
func (s *Series) Truncate(r Range) *Series {
	out := &Series{}
	for i, on := range s.days {
		if r.Contains(on) {
			out.days = append(out.days, on)
			out.values = append(out.values, s.values[i])
		}
	}
	return out
}
