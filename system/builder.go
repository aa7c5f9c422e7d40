package system

import (
	"github.com/ishantbhartii/memsim/common"
	"github.com/ishantbhartii/memsim/mem/contiguous"
	"github.com/ishantbhartii/memsim/mem/vm"
)

// Builder constructs a System fluently, mirroring akita's
// mem/cache.Builder pattern at the integration-layer level. Defaults
// match the documented startup defaults: 1 MiB total memory, 4 KiB
// pages, first-fit, LRU.
type Builder struct {
	totalMemory common.Size
	pageSize    common.Size
	strategy    contiguous.Strategy
	policy      vm.ReplacementPolicy
}

// MakeBuilder returns a Builder preset to the system's documented
// defaults.
func MakeBuilder() Builder {
	return Builder{
		totalMemory: 1 << 20,
		pageSize:    4 << 10,
		strategy:    contiguous.FirstFit,
		policy:      vm.LRU,
	}
}

func (b Builder) WithTotalMemory(total common.Size) Builder {
	b.totalMemory = total
	return b
}

func (b Builder) WithPageSize(pageSize common.Size) Builder {
	b.pageSize = pageSize
	return b
}

func (b Builder) WithStrategy(strategy contiguous.Strategy) Builder {
	b.strategy = strategy
	return b
}

func (b Builder) WithPolicy(policy vm.ReplacementPolicy) Builder {
	b.policy = policy
	return b
}

// Build validates the builder's parameters and constructs the System.
func (b Builder) Build() (*System, error) {
	return New(b.totalMemory, b.pageSize, b.strategy, b.policy)
}
