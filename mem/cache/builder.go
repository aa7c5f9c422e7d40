package cache

import "github.com/ishantbhartii/memsim/common"

// Builder constructs a Cache fluently, mirroring akita's
// mem/cache.Builder pattern.
type Builder struct {
	size          common.Size
	lineSize      common.Size
	associativity int
	policy        Policy
}

// MakeBuilder returns a Builder defaulting to LRU replacement.
func MakeBuilder() Builder {
	return Builder{policy: LRU}
}

func (b Builder) WithSize(size common.Size) Builder {
	b.size = size
	return b
}

func (b Builder) WithLineSize(lineSize common.Size) Builder {
	b.lineSize = lineSize
	return b
}

func (b Builder) WithAssociativity(associativity int) Builder {
	b.associativity = associativity
	return b
}

func (b Builder) WithPolicy(policy Policy) Builder {
	b.policy = policy
	return b
}

// Build validates the builder's parameters and constructs the Cache.
func (b Builder) Build() (*Cache, error) {
	return New(b.size, b.lineSize, b.associativity, b.policy)
}
