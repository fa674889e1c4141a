package macrolens

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo caches analysis reports by their full key (price source, macro source,
// date range). It is a convenience at the boundary, not a correctness
// requirement: the engine itself is referentially transparent.
//
// Concurrent calls for the same key are collapsed into a single underlying
// Run, so a burst of identical requests triggers at most one pair of fetches.
type Memo struct {
	mu      sync.RWMutex
	reports map[string]*Report
	group   singleflight.Group
}

// NewMemo creates an empty Memo.
func NewMemo() *Memo {
	return &Memo{reports: make(map[string]*Report)}
}

// Run returns the cached report for the analysis and range, computing it at
// most once. Failed runs are not cached: the next call retries.
func (m *Memo) Run(a *Analysis, r Range) (*Report, error) {
	key := a.Key(r)

	m.mu.RLock()
	report, ok := m.reports[key]
	m.mu.RUnlock()
	if ok {
		return report, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		report, err := a.Run(r)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.reports[key] = report
		m.mu.Unlock()
		return report, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Report), nil
}

// Invalidate drops the cached report for the analysis and range, if any.
func (m *Memo) Invalidate(a *Analysis, r Range) {
	m.mu.Lock()
	delete(m.reports, a.Key(r))
	m.mu.Unlock()
}

// Len returns the number of cached reports.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.reports)
}
