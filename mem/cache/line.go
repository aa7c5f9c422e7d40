// Package cache implements a single set-associative cache level: storage
// organized into sets of lines, with pluggable FIFO/LRU/LFU line
// replacement.
//
// The set/line layout is adapted from akita's
// mem/cache/internal/tagging.TagArray (itself a refinement of the older
// memory/cache.Directory design): a fixed grid of per-set lines looked up
// by tag, with an access-order or frequency structure threaded through
// for replacement. Both akita designs are for a single fixed (LRU)
// policy wired to an event-driven pipeline; this package keeps the grid
// and the lookup/update shape but generalizes the replacement side to
// FIFO, LRU, and LFU as a tagged-variant switch, and drops the
// event-timing concerns entirely.
package cache

import "github.com/ishantbhartii/memsim/common"

// Line is one cache line: a tag, validity/dirty bits, the owning process
// at time of fill, and the bytes it holds.
type Line struct {
	Tag   uint64
	Valid bool
	Dirty bool
	PID   common.ProcessId
	Data  []byte
}
