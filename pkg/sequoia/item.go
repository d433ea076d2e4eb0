// Package sequoia mines frequent, optionally closed, subsequences from a
// prepared transaction database under unique-item-occurrence semantics:
// within one transaction, each distinct item contributes at most one
// occurrence to a candidate match, and the i-th pattern item binds to the
// i-th left-to-right, non-overlapping position of that item.
//
// The package does not parse transaction files, sort or dedupe the
// database, recode items by frequency, or write pattern-spectrum files —
// those are the caller's responsibility. It consumes an already-prepared
// Database and drives a caller-supplied Reporter.
package sequoia

import "github.com/gitrdm/sequoia/internal/arena"

// Item is a dense item identifier in [0, M).
type Item = arena.Item

// Sentinel marks end-of-sequence inside a transaction.
const Sentinel = arena.Sentinel

// Cell is one transaction slot: an item and, for the item-weighted
// flavor, its weight.
type Cell = arena.Cell

// Support is the sum of transaction weights a pattern matches.
type Support = int64
