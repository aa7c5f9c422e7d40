package cache

import (
	"fmt"

	"github.com/ishantbhartii/memsim/common"
)

// Policy selects which valid line within a set is evicted on a miss, once
// every line in the set is already valid.
type Policy int

const (
	// FIFO evicts lines round-robin per set, in the order they were
	// originally filled.
	FIFO Policy = iota
	// LRU evicts the least-recently-touched line in the set.
	LRU
	// LFU evicts the line with the fewest accesses, resetting its
	// counter to 1 on reuse.
	LFU
)

func (p Policy) String() string {
	switch p {
	case LRU:
		return "lru"
	case LFU:
		return "lfu"
	default:
		return "fifo"
	}
}

// Cache is one set-associative cache level.
type Cache struct {
	size          common.Size
	lineSize      common.Size
	associativity int
	numSets       int
	policy        Policy

	sets []set

	hits      int
	misses    int
	accesses  int
}

// New creates a Cache of size bytes, organized into lines of lineSize
// bytes with associativity ways per set. size must be evenly divisible by
// lineSize*associativity, and none of the three may be zero.
func New(size, lineSize common.Size, associativity int, policy Policy) (*Cache, error) {
	if size == 0 || lineSize == 0 || associativity == 0 {
		return nil, fmt.Errorf("cache: size, line size, and associativity must all be non-zero")
	}

	setBytes := uint64(lineSize) * uint64(associativity)
	if uint64(size)%setBytes != 0 {
		return nil, fmt.Errorf(
			"cache: size %d is not divisible by line_size*associativity (%d)",
			size, setBytes)
	}

	numSets := int(uint64(size) / setBytes)

	c := &Cache{
		size:          size,
		lineSize:      lineSize,
		associativity: associativity,
		numSets:       numSets,
		policy:        policy,
		sets:          make([]set, numSets),
	}

	for i := range c.sets {
		c.sets[i] = newSet(associativity)
	}

	return c, nil
}

// decode splits addr into the set index and tag used to locate its line:
// lineAddress = addr/lineSize, setIndex = lineAddress%numSets,
// tag = lineAddress/numSets.
func (c *Cache) decode(addr common.Address) (setIndex int, tag uint64) {
	lineAddress := uint64(addr) / uint64(c.lineSize)
	setIndex = int(lineAddress % uint64(c.numSets))
	tag = lineAddress / uint64(c.numSets)
	return setIndex, tag
}

// Access probes the cache for addr. On a hit, it updates the set's
// replacement-policy bookkeeping and, for a write, marks the line dirty.
// On a miss, it installs a new line via the configured replacement
// policy. Returns true iff the access was a hit.
func (c *Cache) Access(addr common.Address, pid common.ProcessId, isWrite bool) bool {
	c.accesses++

	setIndex, tag := c.decode(addr)
	s := &c.sets[setIndex]

	if way, ok := s.lookup(tag); ok {
		c.hits++
		c.onHit(s, way, isWrite)
		return true
	}

	c.misses++
	c.handleMiss(s, tag, pid, isWrite)
	return false
}

// Fill installs a line for addr without counting the operation as an
// access, hit, or miss. It is used by cache hierarchies to populate
// upper levels after a total miss, without the act of filling itself
// inflating those levels' traffic statistics.
func (c *Cache) Fill(addr common.Address, pid common.ProcessId, isWrite bool) {
	setIndex, tag := c.decode(addr)
	s := &c.sets[setIndex]

	if way, ok := s.lookup(tag); ok {
		c.onHit(s, way, isWrite)
		return
	}

	c.handleMiss(s, tag, pid, isWrite)
}

func (c *Cache) onHit(s *set, way int, isWrite bool) {
	if isWrite {
		s.lines[way].Dirty = true
	}

	switch c.policy {
	case LRU:
		s.moveToFront(way)
	case LFU:
		s.frequency[way]++
	case FIFO:
		// FIFO makes no access-order update on hit.
	}
}

func (c *Cache) handleMiss(s *set, tag uint64, pid common.ProcessId, isWrite bool) {
	victim := c.selectVictimLine(s)

	s.lines[victim] = Line{
		Tag:   tag,
		Valid: true,
		Dirty: isWrite,
		PID:   pid,
		Data:  make([]byte, c.lineSize),
	}

	switch c.policy {
	case LRU:
		s.moveToFront(victim)
	case LFU:
		s.frequency[victim] = 1
	case FIFO:
		// victim selection already advanced the round-robin counter.
	}
}

// selectVictimLine returns the first invalid slot if any, otherwise the
// policy-selected victim among currently-valid lines.
func (c *Cache) selectVictimLine(s *set) int {
	if idx := s.firstInvalid(); idx >= 0 {
		return idx
	}

	switch c.policy {
	case LRU:
		return s.accessOrder[len(s.accessOrder)-1]
	case LFU:
		return c.selectLFUVictim(s)
	default:
		return c.selectFIFOVictim(s)
	}
}

func (c *Cache) selectFIFOVictim(s *set) int {
	victim := s.fifoCounter
	s.fifoCounter = (s.fifoCounter + 1) % c.associativity
	return victim
}

func (c *Cache) selectLFUVictim(s *set) int {
	victim := 0
	min := s.frequency[0]

	for i := 1; i < len(s.frequency); i++ {
		if s.frequency[i] < min {
			min = s.frequency[i]
			victim = i
		}
	}

	return victim
}

// Hits, Misses, and Accesses report the cache's lifetime counters.
func (c *Cache) Hits() int     { return c.hits }
func (c *Cache) Misses() int   { return c.misses }
func (c *Cache) Accesses() int { return c.accesses }

// NumSets and Associativity expose the cache's geometry.
func (c *Cache) NumSets() int       { return c.numSets }
func (c *Cache) Associativity() int { return c.associativity }

// ReplacementPolicy returns the cache's configured line-replacement policy.
func (c *Cache) ReplacementPolicy() Policy { return c.policy }

// Stats is a snapshot of a cache's hit/miss counters.
type Stats struct {
	Hits     int
	Misses   int
	Accesses int
	HitRate  float64
	MissRate float64
}

// Stats returns the cache's current hit/miss statistics.
func (c *Cache) Stats() Stats {
	var hitRate, missRate float64
	if c.accesses > 0 {
		hitRate = float64(c.hits) / float64(c.accesses)
		missRate = float64(c.misses) / float64(c.accesses)
	}

	return Stats{
		Hits:     c.hits,
		Misses:   c.misses,
		Accesses: c.accesses,
		HitRate:  hitRate,
		MissRate: missRate,
	}
}

// ResetStats zeroes the cache's hit/miss counters without disturbing its
// stored lines.
func (c *Cache) ResetStats() {
	c.hits = 0
	c.misses = 0
	c.accesses = 0
}
