package hierarchy

// Builder constructs a Hierarchy fluently, mirroring akita's
// mem/cache.Builder pattern one level up.
type Builder struct {
	l1, l2, l3 LevelConfig
}

// MakeBuilder returns an empty Builder; every level must be configured
// with WithL1/WithL2/WithL3 before Build.
func MakeBuilder() Builder {
	return Builder{}
}

func (b Builder) WithL1(cfg LevelConfig) Builder {
	b.l1 = cfg
	return b
}

func (b Builder) WithL2(cfg LevelConfig) Builder {
	b.l2 = cfg
	return b
}

func (b Builder) WithL3(cfg LevelConfig) Builder {
	b.l3 = cfg
	return b
}

// Build validates every level's configuration and constructs the
// Hierarchy.
func (b Builder) Build() (*Hierarchy, error) {
	return New(b.l1, b.l2, b.l3)
}
