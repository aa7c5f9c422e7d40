package main

import (
	"github.com/ishantbhartii/memsim/common"
	"github.com/ishantbhartii/memsim/mem/cache/hierarchy"
	"github.com/ishantbhartii/memsim/mem/contiguous"
	"github.com/ishantbhartii/memsim/mem/vm"
	"github.com/ishantbhartii/memsim/system"
)

// Engine is the subset of the integrated system's public operations the
// shell dispatches commands against. It exists as an interface so shell
// parsing/formatting can be tested with a generated fake in place of a
// live system, mirroring akita's mem/vm/gmmu mock-boundary
// convention at the one seam in this module that benefits from it.
type Engine interface {
	CreateProcess(pid common.ProcessId) bool
	TerminateProcess(pid common.ProcessId) bool
	HasProcess(pid common.ProcessId) bool
	ProcessAllocations(pid common.ProcessId) ([]common.Address, bool)
	ProcessIDs() []common.ProcessId

	Allocate(pid common.ProcessId, size common.Size) common.AllocationResult
	Deallocate(pid common.ProcessId, handle common.Address) bool

	Access(pid common.ProcessId, va common.Address, isWrite bool) bool

	SetMode(mode system.AllocationMode)
	Mode() system.AllocationMode
	SwitchAllocationStrategy(strategy contiguous.Strategy)
	SwitchPageReplacementPolicy(policy vm.ReplacementPolicy) error

	PhysicalBlocks() []common.MemoryBlock
	PhysicalAllocatorStats() common.MemoryStats
	BuddyAllocatorStats() common.MemoryStats
	VMMStats() system.VMMStats
	CacheHierarchyStats() hierarchy.Stats
	Stats() system.Stats
}

var _ Engine = (*system.System)(nil)
