package vm

import "github.com/ishantbhartii/memsim/common"

// Builder builds a Manager, following the same fluent With* pattern as
// mem/contiguous.Builder and akita's mem/cache.Builder.
type Builder struct {
	physicalMemorySize common.Size
	pageSize           common.Size
	policy             ReplacementPolicy
}

// MakeBuilder creates a new Builder defaulting to LRU.
func MakeBuilder() Builder {
	return Builder{policy: LRU}
}

// WithPhysicalMemorySize sets the total physical memory managed by the
// frame table.
func (b Builder) WithPhysicalMemorySize(size common.Size) Builder {
	b.physicalMemorySize = size
	return b
}

// WithPageSize sets the page size.
func (b Builder) WithPageSize(size common.Size) Builder {
	b.pageSize = size
	return b
}

// WithPolicy sets the page-replacement policy.
func (b Builder) WithPolicy(policy ReplacementPolicy) Builder {
	b.policy = policy
	return b
}

// Build constructs the Manager.
func (b Builder) Build() (*Manager, error) {
	return New(b.physicalMemorySize, b.pageSize, b.policy)
}
