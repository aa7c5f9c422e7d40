package buddy

import "github.com/ishantbhartii/memsim/common"

// Builder builds an Allocator, following the same fluent pattern as
// mem/contiguous.Builder and akita's mem/cache.Builder.
type Builder struct {
	total common.Size
}

// MakeBuilder creates a new Builder; callers must set WithTotal before
// Build.
func MakeBuilder() Builder {
	return Builder{}
}

// WithTotal sets the total memory managed by the allocator. It must be a
// power of two.
func (b Builder) WithTotal(total common.Size) Builder {
	b.total = total
	return b
}

// Build constructs the Allocator.
func (b Builder) Build() (*Allocator, error) {
	return New(b.total)
}
