// Package macrolens measures the divergence between nominal equity-index
// growth and inflation-adjusted ("real") purchasing power over a user-chosen
// date range.
//
// The core of the package is the alignment and indexing engine: it merges a
// daily equity price series with a lower-frequency macro series (typically a
// monthly consumer-price index) onto the equity trading calendar by forward
// fill, drops the warm-up rows that cannot be filled, rebases both series to
// Base 100, and derives the real-value ratio. Everything else (fetching,
// rendering, commentary) is glue around that engine.
//
// The main entry points are:
//   - AlignAndIndex: the pure alignment/indexing function.
//   - Summarize: derived scalars (nominal return, real return, erosion,
//     correlation) over an aligned table.
//   - Analysis: the I/O boundary that wires price and macro providers to the
//     engine and memoizes results per date range.
//
// This package serves as the foundational logic for the `mlens` command-line
// tool.
package macrolens
