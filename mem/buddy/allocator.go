// Package buddy implements a power-of-two buddy allocator: per-order free
// lists and recursive buddy merging on free.
package buddy

import (
	"fmt"

	"github.com/ishantbhartii/memsim/common"
)

type allocation struct {
	order int
	pid   common.ProcessId
}

// Allocator manages a power-of-two memory domain as a set of per-order
// free lists with recursive buddy merging on free. Unlike the contiguous
// allocator, a buddy block's address doubles as its BlockId.
type Allocator struct {
	total    common.Size
	maxOrder int
	// freeLists[k] holds the addresses of free blocks of size 2^k, in the
	// order they were freed (oldest first, so the head is stable FIFO
	// within an order).
	freeLists [][]common.Address
	allocated map[common.Address]allocation

	requests      int
	successes     int
	failures      int
	internalFrag  common.Size
}

// New creates an Allocator over total bytes, which must be a positive
// power of two. Returns an error otherwise, mirroring the original's
// constructor throwing on a non-power-of-two domain.
func New(total common.Size) (*Allocator, error) {
	if !common.IsPowerOfTwo(total) {
		return nil, fmt.Errorf("buddy: total memory %d is not a power of two", total)
	}

	a := &Allocator{
		total:    total,
		maxOrder: common.Log2Floor(total),
	}
	a.Reset()

	return a, nil
}

// Reset clears all state and reseeds a single free block spanning the
// entire domain at the top order.
func (a *Allocator) Reset() {
	a.freeLists = make([][]common.Address, a.maxOrder+1)
	a.allocated = make(map[common.Address]allocation)
	a.requests = 0
	a.successes = 0
	a.failures = 0
	a.internalFrag = 0

	a.freeLists[a.maxOrder] = append(a.freeLists[a.maxOrder], 0)
}

func orderSize(order int) common.Size {
	return 1 << uint(order)
}

// Allocate rounds req.Size up to the next power of two, finds the
// smallest order with a non-empty free list at or above the required
// order, and splits blocks down to the required order.
func (a *Allocator) Allocate(req common.AllocationRequest) common.AllocationResult {
	a.requests++

	if req.Size == 0 || req.Size > a.total {
		a.failures++
		return common.FailedAllocation()
	}

	actualSize := common.NextPowerOfTwo(req.Size)
	required := common.Log2Floor(actualSize)

	order := required
	for order <= a.maxOrder && len(a.freeLists[order]) == 0 {
		order++
	}

	if order > a.maxOrder {
		a.failures++
		return common.FailedAllocation()
	}

	for order > required {
		a.splitBlock(order)
		order--
	}

	address := a.freeLists[required][0]
	a.freeLists[required] = a.freeLists[required][1:]

	a.allocated[address] = allocation{order: required, pid: req.PID}
	a.internalFrag += actualSize - req.Size
	a.successes++

	return common.AllocationResult{
		Success: true,
		Address: address,
		BlockID: common.BlockId(address),
	}
}

// splitBlock removes the head of freeLists[order] and pushes its two
// halves onto freeLists[order-1].
func (a *Allocator) splitBlock(order int) {
	address := a.freeLists[order][0]
	a.freeLists[order] = a.freeLists[order][1:]

	half := orderSize(order - 1)
	a.freeLists[order-1] = append(a.freeLists[order-1], address, address+common.Address(half))
}

// Deallocate frees address, then merges it with its buddy recursively as
// long as the buddy is also free. Returns false if address is not
// currently allocated.
func (a *Allocator) Deallocate(address common.Address) bool {
	alloc, ok := a.allocated[address]
	if !ok {
		return false
	}

	delete(a.allocated, address)
	a.merge(alloc.order, address)

	return true
}

func (a *Allocator) merge(order int, address common.Address) {
	if order == a.maxOrder {
		a.freeLists[order] = append(a.freeLists[order], address)
		return
	}

	buddy := address ^ common.Address(orderSize(order))

	if idx := a.indexOf(order, buddy); idx >= 0 {
		a.freeLists[order] = removeAt(a.freeLists[order], idx)

		merged := address
		if buddy < address {
			merged = buddy
		}
		a.merge(order+1, merged)
		return
	}

	a.freeLists[order] = append(a.freeLists[order], address)
}

func (a *Allocator) indexOf(order int, address common.Address) int {
	for i, addr := range a.freeLists[order] {
		if addr == address {
			return i
		}
	}
	return -1
}

func removeAt(list []common.Address, idx int) []common.Address {
	return append(list[:idx], list[idx+1:]...)
}

// Stats reports the allocator's current aggregate statistics.
func (a *Allocator) Stats() common.MemoryStats {
	stats := common.MemoryStats{
		Total:                 a.total,
		InternalFragmentation: a.internalFrag,
		Requests:              a.requests,
		Successes:             a.successes,
		Failures:              a.failures,
	}

	for _, alloc := range a.allocated {
		stats.Used += orderSize(alloc.order)
	}
	stats.AllocatedBlocks = len(a.allocated)
	stats.Free = a.total - stats.Used

	for order, list := range a.freeLists {
		stats.FreeBlocks += len(list)
		if len(list) > 0 {
			if size := orderSize(order); size > stats.LargestFreeBlock {
				stats.LargestFreeBlock = size
			}
		}
	}
	stats.TotalBlocks = stats.AllocatedBlocks + stats.FreeBlocks

	stats.Finalize()
	return stats
}

// FreeListSizes returns, for every order 0..=maxOrder, the number of free
// blocks currently held at that order. Useful for tests.
func (a *Allocator) FreeListSizes() []int {
	sizes := make([]int, len(a.freeLists))
	for i, list := range a.freeLists {
		sizes[i] = len(list)
	}
	return sizes
}

// MaxOrder returns log2(total memory).
func (a *Allocator) MaxOrder() int {
	return a.maxOrder
}

// Total returns the total memory managed by the allocator.
func (a *Allocator) Total() common.Size {
	return a.total
}

// IsAllocated reports whether address is currently an allocated block, and
// if so its owning PID.
func (a *Allocator) IsAllocated(address common.Address) (common.ProcessId, bool) {
	alloc, ok := a.allocated[address]
	if !ok {
		return common.NoProcess, false
	}
	return alloc.pid, true
}
