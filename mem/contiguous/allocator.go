// Package contiguous implements the first-fit/best-fit/worst-fit family of
// allocators over a single linear memory region, with splitting on
// allocation and coalescing on free.
package contiguous

import (
	"sort"

	"github.com/ishantbhartii/memsim/common"
)

// Strategy selects which free block an allocation request is satisfied
// from.
type Strategy int

const (
	// FirstFit picks the first free block, in address order, that is big
	// enough.
	FirstFit Strategy = iota
	// BestFit picks the smallest free block that is big enough, breaking
	// ties by lower address.
	BestFit
	// WorstFit picks the largest free block, breaking ties by lower
	// address.
	WorstFit
)

func (s Strategy) String() string {
	switch s {
	case BestFit:
		return "best-fit"
	case WorstFit:
		return "worst-fit"
	default:
		return "first-fit"
	}
}

// Allocator manages an ordered partition of [0, total) into FREE and
// ALLOCATED MemoryBlocks. It is not safe for concurrent use; the
// integrated system that owns it runs single-threaded.
type Allocator struct {
	strategy Strategy
	total    common.Size
	blocks   []common.MemoryBlock
	nextID   common.BlockId

	requests  int
	successes int
	failures  int
	internalFrag common.Size
}

// New creates an Allocator over total bytes using strategy. The block list
// starts as a single FREE block spanning [0, total).
func New(strategy Strategy, total common.Size) *Allocator {
	a := &Allocator{strategy: strategy}
	a.Initialize(total)
	return a
}

// Initialize resets the allocator to a single FREE block of size total,
// clearing all counters. Mirrors akita's builder Build() + the
// original allocator's initialize().
func (a *Allocator) Initialize(total common.Size) {
	a.total = total
	a.nextID = 0
	a.requests = 0
	a.successes = 0
	a.failures = 0
	a.internalFrag = 0

	a.blocks = []common.MemoryBlock{
		{Start: 0, Size: total, Status: common.Free, OwningPID: common.NoProcess, BlockID: a.allocID()},
	}
}

func (a *Allocator) allocID() common.BlockId {
	id := a.nextID
	a.nextID++
	return id
}

// Allocate attempts to satisfy req by selecting a free block per the
// allocator's strategy, splitting it if it is strictly larger than
// requested.
func (a *Allocator) Allocate(req common.AllocationRequest) common.AllocationResult {
	a.requests++

	if req.Size == 0 {
		a.failures++
		return common.FailedAllocation()
	}

	idx := a.selectFreeBlock(req.Size)
	if idx < 0 {
		a.failures++
		return common.FailedAllocation()
	}

	block := a.blocks[idx]
	address := block.Start
	blockID := block.BlockID

	if block.Size > req.Size {
		a.internalFrag += block.Size - req.Size
		a.splitBlock(idx, req.Size)
	}

	for i := range a.blocks {
		if a.blocks[i].BlockID == blockID {
			a.blocks[i].Status = common.Allocated
			a.blocks[i].OwningPID = req.PID
			a.blocks[i].RequestedSize = req.Size
			break
		}
	}

	a.successes++
	return common.AllocationResult{Success: true, Address: address, BlockID: blockID}
}

// selectFreeBlock returns the index of the block chosen by the allocator's
// strategy, or -1 if no free block is big enough.
func (a *Allocator) selectFreeBlock(size common.Size) int {
	switch a.strategy {
	case BestFit:
		return a.selectBestFit(size)
	case WorstFit:
		return a.selectWorstFit(size)
	default:
		return a.selectFirstFit(size)
	}
}

func (a *Allocator) selectFirstFit(size common.Size) int {
	for i, b := range a.blocks {
		if b.IsFree() && b.Size >= size {
			return i
		}
	}
	return -1
}

func (a *Allocator) selectBestFit(size common.Size) int {
	best := -1
	for i, b := range a.blocks {
		if !b.IsFree() || b.Size < size {
			continue
		}
		if best < 0 || b.Size < a.blocks[best].Size {
			best = i
		}
	}
	return best
}

func (a *Allocator) selectWorstFit(size common.Size) int {
	worst := -1
	for i, b := range a.blocks {
		if !b.IsFree() || b.Size < size {
			continue
		}
		if worst < 0 || b.Size > a.blocks[worst].Size {
			worst = i
		}
	}
	return worst
}

// splitBlock shrinks the block at idx to requested bytes and inserts a new
// FREE block holding the remainder immediately after it. The front block
// keeps its original BlockID and Start.
func (a *Allocator) splitBlock(idx int, requested common.Size) {
	original := a.blocks[idx]

	remainder := common.MemoryBlock{
		Start:     original.Start + common.Address(requested),
		Size:      original.Size - requested,
		Status:    common.Free,
		OwningPID: common.NoProcess,
		BlockID:   a.allocID(),
	}

	a.blocks[idx].Size = requested

	tail := make([]common.MemoryBlock, 0, len(a.blocks)-idx)
	tail = append(tail, remainder)
	tail = append(tail, a.blocks[idx+1:]...)
	a.blocks = append(a.blocks[:idx+1], tail...)
}

// Deallocate frees the block identified by blockID, then coalesces. It
// returns false if the block does not exist or is not currently
// ALLOCATED.
func (a *Allocator) Deallocate(blockID common.BlockId) bool {
	for i := range a.blocks {
		if a.blocks[i].BlockID != blockID {
			continue
		}
		if a.blocks[i].Status != common.Allocated {
			return false
		}

		a.blocks[i].Status = common.Free
		a.blocks[i].OwningPID = common.NoProcess
		a.blocks[i].RequestedSize = 0

		a.Coalesce()
		return true
	}

	return false
}

// Coalesce sorts blocks by start address and merges every pair of
// address-contiguous FREE neighbors. Idempotent: a second call with no
// intervening allocation/deallocation is a no-op.
func (a *Allocator) Coalesce() {
	if len(a.blocks) < 2 {
		return
	}

	sort.Slice(a.blocks, func(i, j int) bool {
		return a.blocks[i].Start < a.blocks[j].Start
	})

	merged := a.blocks[:1]
	for _, next := range a.blocks[1:] {
		last := &merged[len(merged)-1]

		if last.Status == common.Free && next.Status == common.Free &&
			last.Start+common.Address(last.Size) == next.Start {
			last.Size += next.Size
			continue
		}

		merged = append(merged, next)
	}

	a.blocks = merged
}

// Blocks returns the current block partition, ordered by start address.
func (a *Allocator) Blocks() []common.MemoryBlock {
	out := make([]common.MemoryBlock, len(a.blocks))
	copy(out, a.blocks)
	return out
}

// Stats reports the allocator's current aggregate statistics.
// AllocatedBlocks is always recomputed from the live block list, not from
// the cumulative successes counter.
func (a *Allocator) Stats() common.MemoryStats {
	stats := common.MemoryStats{
		Total:                 a.total,
		TotalBlocks:           len(a.blocks),
		InternalFragmentation: a.internalFrag,
		Requests:              a.requests,
		Successes:             a.successes,
		Failures:              a.failures,
	}

	for _, b := range a.blocks {
		if b.Status == common.Allocated {
			stats.Used += b.Size
			stats.AllocatedBlocks++
		} else {
			stats.Free += b.Size
			stats.FreeBlocks++
			if b.Size > stats.LargestFreeBlock {
				stats.LargestFreeBlock = b.Size
			}
		}
	}

	stats.Finalize()
	return stats
}

// Strategy returns the allocator's current fit strategy.
func (a *Allocator) Strategy() Strategy {
	return a.strategy
}
