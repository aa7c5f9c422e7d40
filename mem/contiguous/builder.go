package contiguous

import "github.com/ishantbhartii/memsim/common"

// Builder builds an Allocator. It follows the same fluent With* pattern as
// akita's mem/cache.Builder.
type Builder struct {
	st    Strategy
	total common.Size
}

// MakeBuilder creates a new Builder defaulting to first-fit over zero
// bytes; callers must set WithTotal before Build.
func MakeBuilder() Builder {
	return Builder{st: FirstFit}
}

// WithStrategy sets the fit strategy.
func (b Builder) WithStrategy(st Strategy) Builder {
	b.st = st
	return b
}

// WithTotal sets the total memory managed by the allocator.
func (b Builder) WithTotal(total common.Size) Builder {
	b.total = total
	return b
}

// Build constructs the Allocator.
func (b Builder) Build() *Allocator {
	return New(b.st, b.total)
}
