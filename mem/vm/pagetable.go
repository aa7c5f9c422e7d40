// Package vm implements the demand-paged virtual-memory manager: the
// frame table, per-process page tables, page-fault handling, and the
// FIFO/LRU/CLOCK victim-selection policies.
//
// The page-table design is adapted from akita's mem/vm/pagetable.go,
// which keyed a per-process table by a map from virtual address to a page
// entry for direct lookup. This package keeps that map-keyed-by-address
// idea but drops the doubly-linked list and the mutex: the integrated
// system that owns every VMM runs single-threaded and cooperative, so
// no internal locking is required.
package vm

import "github.com/ishantbhartii/memsim/common"

// PageTableEntry is one mapping from a virtual page number to a physical
// frame, plus the bookkeeping bits the replacement policies need.
type PageTableEntry struct {
	Frame      int
	Present    bool
	Referenced bool
	Modified   bool
	PID        common.ProcessId
}

// PageTable holds the virtual-page-number-to-entry mapping for a single
// process.
type PageTable struct {
	PID      common.ProcessId
	PageSize common.Size
	entries  map[uint64]*PageTableEntry
}

func newPageTable(pid common.ProcessId, pageSize common.Size) *PageTable {
	return &PageTable{
		PID:      pid,
		PageSize: pageSize,
		entries:  make(map[uint64]*PageTableEntry),
	}
}

// Lookup returns the entry for the given virtual page number, if present
// in the table (it may exist but have Present=false after an eviction).
func (t *PageTable) Lookup(vpn uint64) (*PageTableEntry, bool) {
	e, ok := t.entries[vpn]
	return e, ok
}

// IsPresent reports whether vpn has a present mapping.
func (t *PageTable) IsPresent(vpn uint64) bool {
	e, ok := t.entries[vpn]
	return ok && e.Present
}

// Insert creates a present mapping from vpn to frame, overwriting any
// stale (evicted) entry for the same vpn.
func (t *PageTable) Insert(vpn uint64, frame int) {
	t.entries[vpn] = &PageTableEntry{
		Frame:   frame,
		Present: true,
		PID:     t.PID,
	}
}

// InvalidateFrame clears Present/Referenced/Modified on every entry of
// this table that currently maps to frame. Used when frame is chosen as
// an eviction victim.
func (t *PageTable) InvalidateFrame(frame int) {
	for _, e := range t.entries {
		if e.Present && e.Frame == frame {
			e.Present = false
			e.Referenced = false
			e.Modified = false
		}
	}
}

// PresentFrames returns the frame number of every entry this table
// currently marks present.
func (t *PageTable) PresentFrames() []int {
	frames := make([]int, 0, len(t.entries))
	for _, e := range t.entries {
		if e.Present {
			frames = append(frames, e.Frame)
		}
	}
	return frames
}

// Entries returns every virtual page number currently mapped (present or
// not) in this table, keyed by virtual page number.
func (t *PageTable) Entries() map[uint64]*PageTableEntry {
	return t.entries
}
