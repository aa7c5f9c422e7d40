// Package hierarchy composes three cache.Cache levels into an inclusive
// L1/L2/L3 hierarchy, probing top-down on every access and, on a total
// miss, filling every level bottom-up from main memory.
//
// Grounded on akita's layered mem/cache design (a single level
// wired bottom-to-top through comp.go's top/bottom ports) and on
// cache_hierarchy.cpp's read/write control flow. Fills after a total miss
// go through cache.Cache.Fill rather than re-reading each level, so they
// do not count as accesses.
package hierarchy

import (
	"fmt"

	"github.com/ishantbhartii/memsim/common"
	"github.com/ishantbhartii/memsim/mem/cache"
)

const (
	l1Time  = 1.0
	l2Time  = 10.0
	l3Time  = 50.0
	memTime = 200.0
)

// Hierarchy is an inclusive three-level cache stack sitting in front of
// main memory.
type Hierarchy struct {
	l1, l2, l3 *cache.Cache

	totalAccesses      int
	mainMemoryAccesses int
}

// LevelConfig describes the size/line-size/associativity/policy of one
// cache level.
type LevelConfig struct {
	Size          common.Size
	LineSize      common.Size
	Associativity int
	Policy        cache.Policy
}

// New constructs an inclusive hierarchy from per-level configuration.
func New(l1, l2, l3 LevelConfig) (*Hierarchy, error) {
	l1Cache, err := cache.New(l1.Size, l1.LineSize, l1.Associativity, l1.Policy)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: l1: %w", err)
	}

	l2Cache, err := cache.New(l2.Size, l2.LineSize, l2.Associativity, l2.Policy)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: l2: %w", err)
	}

	l3Cache, err := cache.New(l3.Size, l3.LineSize, l3.Associativity, l3.Policy)
	if err != nil {
		return nil, fmt.Errorf("hierarchy: l3: %w", err)
	}

	return &Hierarchy{l1: l1Cache, l2: l2Cache, l3: l3Cache}, nil
}

// Read probes L1, then L2, then L3, for address. On a total miss it
// fills L3, L2, and L1 in that order from main memory and returns false.
func (h *Hierarchy) Read(address common.Address, pid common.ProcessId) bool {
	return h.access(address, pid, false)
}

// Write probes L1, then L2, then L3, for address, marking a hit dirty at
// whichever level it is found. On a total miss it fills L3, L2, and L1
// with a dirty line and returns false.
func (h *Hierarchy) Write(address common.Address, pid common.ProcessId) bool {
	return h.access(address, pid, true)
}

func (h *Hierarchy) access(address common.Address, pid common.ProcessId, isWrite bool) bool {
	h.totalAccesses++

	if h.l1.Access(address, pid, isWrite) {
		return true
	}

	if h.l2.Access(address, pid, isWrite) {
		return true
	}

	if h.l3.Access(address, pid, isWrite) {
		return true
	}

	h.mainMemoryAccesses++
	h.l3.Fill(address, pid, isWrite)
	h.l2.Fill(address, pid, isWrite)
	h.l1.Fill(address, pid, isWrite)

	return false
}

// L1, L2, and L3 expose the underlying cache levels for inspection.
func (h *Hierarchy) L1() *cache.Cache { return h.l1 }
func (h *Hierarchy) L2() *cache.Cache { return h.l2 }
func (h *Hierarchy) L3() *cache.Cache { return h.l3 }

// Stats is a snapshot of a hierarchy's per-level and aggregate
// statistics.
type Stats struct {
	L1, L2, L3          cache.Stats
	TotalAccesses       int
	MainMemoryAccesses  int
	AvgMemoryAccessTime float64
}

// Stats reports the hierarchy's current counters and average memory
// access time (AMAT), computed over hits at each level plus main-memory
// accesses weighted by their respective latencies.
func (h *Hierarchy) Stats() Stats {
	l1 := h.l1.Stats()
	l2 := h.l2.Stats()
	l3 := h.l3.Stats()

	return Stats{
		L1:                  l1,
		L2:                  l2,
		L3:                  l3,
		TotalAccesses:       h.totalAccesses,
		MainMemoryAccesses:  h.mainMemoryAccesses,
		AvgMemoryAccessTime: h.calculateAccessTime(l1, l2, l3),
	}
}

func (h *Hierarchy) calculateAccessTime(l1, l2, l3 cache.Stats) float64 {
	if h.totalAccesses == 0 {
		return 0
	}

	totalTime := float64(l1.Hits)*l1Time +
		float64(l2.Hits)*l2Time +
		float64(l3.Hits)*l3Time +
		float64(h.mainMemoryAccesses)*memTime

	return totalTime / float64(h.totalAccesses)
}

// ResetStats zeroes every level's counters along with the hierarchy's own
// aggregate counters.
func (h *Hierarchy) ResetStats() {
	h.l1.ResetStats()
	h.l2.ResetStats()
	h.l3.ResetStats()
	h.totalAccesses = 0
	h.mainMemoryAccesses = 0
}
