// Package system composes the contiguous allocator, the buddy allocator,
// the virtual-memory manager, and the cache hierarchy into a single
// per-process memory service, mirroring the coordinating role of the
// teacher's idealmemcontroller sitting in front of the lower-level mem
// subsystems, but wired to this module's own allocator/VMM/cache types
// rather than akita's request/event protocol.
package system

import (
	"fmt"

	"github.com/ishantbhartii/memsim/common"
	"github.com/ishantbhartii/memsim/mem/buddy"
	"github.com/ishantbhartii/memsim/mem/cache"
	"github.com/ishantbhartii/memsim/mem/cache/hierarchy"
	"github.com/ishantbhartii/memsim/mem/contiguous"
	"github.com/ishantbhartii/memsim/mem/vm"
)

// AllocationMode selects how System.Allocate routes a request between the
// buddy and the contiguous allocator.
type AllocationMode int

const (
	// Auto uses the buddy allocator when the request size is a power of
	// two and the buddy allocator can satisfy it, falling back to the
	// contiguous allocator otherwise.
	Auto AllocationMode = iota
	// Buddy always routes to the buddy allocator.
	Buddy
	// Physical always routes to the contiguous allocator.
	Physical
	// Forced behaves like Buddy: the caller is forcing a buddy
	// allocation regardless of size.
	Forced
)

func (m AllocationMode) String() string {
	switch m {
	case Buddy:
		return "buddy"
	case Physical:
		return "physical"
	case Forced:
		return "forced"
	default:
		return "auto"
	}
}

const (
	l1Size, l1Assoc = common.Size(32 * 1024), 8
	l2Size, l2Assoc = common.Size(256 * 1024), 16
	l3Size, l3Assoc = common.Size(2 * 1024 * 1024), 16
	cacheLineSize   = common.Size(64)
)

// System is the integrated memory-management core: process registry,
// allocation routing, the VMM-backed access pipeline, and aggregate
// statistics.
type System struct {
	totalMemory common.Size
	pageSize    common.Size

	mode     AllocationMode
	strategy contiguous.Strategy
	policy   vm.ReplacementPolicy

	physical *contiguous.Allocator
	buddyA   *buddy.Allocator
	vmm      *vm.Manager
	caches   *hierarchy.Hierarchy

	processAllocations map[common.ProcessId][]common.Address

	totalOperations int
	cacheHits       int
	cacheMisses     int
}

// New builds every subsystem over totalMemory bytes of pageSize-byte
// pages, using strategy for the contiguous allocator and policy for the
// VMM. The buddy allocator is sized to half of totalMemory, rounded up to
// the next power of two if that half is not already one, mirroring
// initialize()'s buddy_memory derivation.
func New(totalMemory, pageSize common.Size, strategy contiguous.Strategy, policy vm.ReplacementPolicy) (*System, error) {
	physical := contiguous.New(strategy, totalMemory)

	buddyMemory := totalMemory / 2
	if !common.IsPowerOfTwo(buddyMemory) {
		buddyMemory = common.NextPowerOfTwo(buddyMemory)
	}

	buddyA, err := buddy.New(buddyMemory)
	if err != nil {
		return nil, fmt.Errorf("system: building buddy allocator: %w", err)
	}

	vmm, err := vm.New(totalMemory, pageSize, policy)
	if err != nil {
		return nil, fmt.Errorf("system: building virtual memory manager: %w", err)
	}

	caches, err := hierarchy.MakeBuilder().
		WithL1(hierarchy.LevelConfig{Size: l1Size, LineSize: cacheLineSize, Associativity: l1Assoc, Policy: cache.LRU}).
		WithL2(hierarchy.LevelConfig{Size: l2Size, LineSize: cacheLineSize, Associativity: l2Assoc, Policy: cache.LRU}).
		WithL3(hierarchy.LevelConfig{Size: l3Size, LineSize: cacheLineSize, Associativity: l3Assoc, Policy: cache.LRU}).
		Build()
	if err != nil {
		return nil, fmt.Errorf("system: building cache hierarchy: %w", err)
	}

	return &System{
		totalMemory:         totalMemory,
		pageSize:            pageSize,
		mode:                Auto,
		strategy:            strategy,
		policy:              policy,
		physical:            physical,
		buddyA:              buddyA,
		vmm:                 vmm,
		caches:              caches,
		processAllocations: make(map[common.ProcessId][]common.Address),
	}, nil
}

// CreateProcess registers pid in the process registry and in the VMM.
// Fails if pid is already registered.
func (s *System) CreateProcess(pid common.ProcessId) bool {
	if _, exists := s.processAllocations[pid]; exists {
		return false
	}

	s.processAllocations[pid] = []common.Address{}
	return s.vmm.CreateProcess(pid)
}

// TerminateProcess deallocates every live allocation belonging to pid,
// drops it from the registry, and terminates its VMM state. Fails if pid
// is unknown.
func (s *System) TerminateProcess(pid common.ProcessId) bool {
	addrs, exists := s.processAllocations[pid]
	if !exists {
		return false
	}

	for _, addr := range append([]common.Address{}, addrs...) {
		s.Deallocate(pid, addr)
	}

	delete(s.processAllocations, pid)
	return s.vmm.TerminateProcess(pid)
}

// HasProcess reports whether pid is registered.
func (s *System) HasProcess(pid common.ProcessId) bool {
	_, ok := s.processAllocations[pid]
	return ok
}

// Allocate routes a size-byte request for pid according to the system's
// AllocationMode, and records the resulting address against pid on
// success.
func (s *System) Allocate(pid common.ProcessId, size common.Size) common.AllocationResult {
	s.totalOperations++

	addrs, exists := s.processAllocations[pid]
	if !exists {
		return common.FailedAllocation()
	}

	req := common.AllocationRequest{Size: size, PID: pid}

	switch s.mode {
	case Buddy, Forced:
		return s.recordIfSuccess(pid, addrs, s.buddyA.Allocate(req))
	case Physical:
		return s.recordIfSuccess(pid, addrs, s.physical.Allocate(req))
	default:
		if common.IsPowerOfTwo(size) {
			if result := s.buddyA.Allocate(req); result.Success {
				return s.recordIfSuccess(pid, addrs, result)
			}
		}
		return s.recordIfSuccess(pid, addrs, s.physical.Allocate(req))
	}
}

func (s *System) recordIfSuccess(pid common.ProcessId, addrs []common.Address, result common.AllocationResult) common.AllocationResult {
	if result.Success {
		s.processAllocations[pid] = append(addrs, result.Address)
	}
	return result
}

// Deallocate tries the buddy allocator first, interpreting handle as an
// address; on failure it retries the contiguous allocator, reinterpreting
// the same numeric value as a BlockId. This is the canonical dual
// interpretation the integration layer uses for a single deallocation
// handle.
func (s *System) Deallocate(pid common.ProcessId, handle common.Address) bool {
	addrs, exists := s.processAllocations[pid]
	if !exists {
		return false
	}

	if s.buddyA.Deallocate(handle) {
		s.processAllocations[pid] = removeAddress(addrs, handle)
		return true
	}

	if s.physical.Deallocate(common.BlockId(handle)) {
		s.processAllocations[pid] = removeAddress(addrs, handle)
		return true
	}

	return false
}

func removeAddress(addrs []common.Address, target common.Address) []common.Address {
	out := addrs[:0]
	for _, a := range addrs {
		if a != target {
			out = append(out, a)
		}
	}
	return out
}

// Access forwards a virtual access to the VMM; on success it computes the
// physical address (identity mapping) and funnels the access through the
// cache hierarchy, updating aggregate cache hit/miss counters. Returns
// true iff the VMM accepted the access.
func (s *System) Access(pid common.ProcessId, va common.Address, isWrite bool) bool {
	if !s.vmm.Access(pid, va, isWrite) {
		return false
	}

	physicalAddress := s.translate(va)

	var hit bool
	if isWrite {
		hit = s.caches.Write(physicalAddress, pid)
	} else {
		hit = s.caches.Read(physicalAddress, pid)
	}

	if hit {
		s.cacheHits++
	} else {
		s.cacheMisses++
	}

	return true
}

// translate computes the physical address for a virtual address. This
// simulator uses an identity mapping.
func (s *System) translate(va common.Address) common.Address {
	return va
}

// SetMode changes the allocation routing mode.
func (s *System) SetMode(mode AllocationMode) {
	s.mode = mode
}

// Mode returns the current allocation routing mode.
func (s *System) Mode() AllocationMode {
	return s.mode
}

// SwitchAllocationStrategy rebuilds the contiguous allocator from scratch
// under the new strategy. Its prior block list is lost; the buddy
// allocator and the process registry are left as they are.
func (s *System) SwitchAllocationStrategy(strategy contiguous.Strategy) {
	s.strategy = strategy
	s.physical = contiguous.New(strategy, s.totalMemory)
}

// SwitchPageReplacementPolicy rebuilds the VMM under the new policy and
// reissues CreateProcess for every pid already known to the system. Live
// allocator state is untouched.
func (s *System) SwitchPageReplacementPolicy(policy vm.ReplacementPolicy) error {
	s.policy = policy

	vmm, err := vm.New(s.totalMemory, s.pageSize, policy)
	if err != nil {
		return fmt.Errorf("system: rebuilding virtual memory manager: %w", err)
	}
	s.vmm = vmm

	for pid := range s.processAllocations {
		s.vmm.CreateProcess(pid)
	}

	return nil
}

// ProcessAllocations returns the live allocation addresses for pid.
func (s *System) ProcessAllocations(pid common.ProcessId) ([]common.Address, bool) {
	addrs, ok := s.processAllocations[pid]
	return addrs, ok
}

// ProcessIDs returns every registered process id, in no particular order.
func (s *System) ProcessIDs() []common.ProcessId {
	ids := make([]common.ProcessId, 0, len(s.processAllocations))
	for pid := range s.processAllocations {
		ids = append(ids, pid)
	}
	return ids
}

// PhysicalBlocks returns the contiguous allocator's current block
// partition.
func (s *System) PhysicalBlocks() []common.MemoryBlock {
	return s.physical.Blocks()
}

// PhysicalAllocatorStats, BuddyAllocatorStats, and VMMStats expose each
// subsystem's statistics record.
func (s *System) PhysicalAllocatorStats() common.MemoryStats { return s.physical.Stats() }
func (s *System) BuddyAllocatorStats() common.MemoryStats    { return s.buddyA.Stats() }

// VMMStats is a snapshot of the virtual-memory manager's counters.
type VMMStats struct {
	PageAccesses     int
	PageFaults       int
	PageReplacements int
	NumFrames        int
}

// VMMStats returns the VMM's current counters.
func (s *System) VMMStats() VMMStats {
	return VMMStats{
		PageAccesses:     s.vmm.PageAccesses(),
		PageFaults:       s.vmm.PageFaults(),
		PageReplacements: s.vmm.PageReplacements(),
		NumFrames:        s.vmm.NumFrames(),
	}
}

// CacheHierarchyStats returns the cache hierarchy's current statistics.
func (s *System) CacheHierarchyStats() hierarchy.Stats {
	return s.caches.Stats()
}

// Stats is the system-wide aggregate statistics record.
type Stats struct {
	TotalOperations int
	CacheHits       int
	CacheMisses     int
}

// Stats returns the system's own aggregate counters.
func (s *System) Stats() Stats {
	return Stats{
		TotalOperations: s.totalOperations,
		CacheHits:       s.cacheHits,
		CacheMisses:     s.cacheMisses,
	}
}
