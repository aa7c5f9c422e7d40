package cache

// set holds the lines, and replacement-policy bookkeeping, for one
// set-associative bucket. Only the fields relevant to the cache's
// configured Policy are kept up to date; unused fields stay at their zero
// value.
type set struct {
	lines []Line

	// accessOrder is LRU state: line indices, most-recently-used at the
	// front. Mirrors tagging.Set.LRUQueue in akita's mem/cache, generalized to
	// a plain slice manipulated by index removal instead of a
	// doubly-linked list, since sets here are small (associativity is at
	// most a few dozen).
	accessOrder []int

	// fifoCounter is FIFO state: the next victim way within this set,
	// advanced round-robin each time it picks a victim. A miss that fills
	// an invalid slot leaves it unchanged.
	fifoCounter int

	// frequency is LFU state: a per-line access counter.
	frequency []int
}

func newSet(associativity int) set {
	accessOrder := make([]int, associativity)
	for i := range accessOrder {
		accessOrder[i] = i
	}

	return set{
		lines:       make([]Line, associativity),
		accessOrder: accessOrder,
		frequency:   make([]int, associativity),
	}
}

// firstInvalid returns the index of the first invalid line in the set, or
// -1 if every line is valid. Invalid slots always take priority over any
// policy-selected victim, for every policy.
func (s *set) firstInvalid() int {
	for i := range s.lines {
		if !s.lines[i].Valid {
			return i
		}
	}
	return -1
}

func (s *set) lookup(tag uint64) (int, bool) {
	for i, line := range s.lines {
		if line.Valid && line.Tag == tag {
			return i, true
		}
	}
	return -1, false
}

func (s *set) moveToFront(way int) {
	filtered := s.accessOrder[:0:0]
	for _, w := range s.accessOrder {
		if w != way {
			filtered = append(filtered, w)
		}
	}
	s.accessOrder = append([]int{way}, filtered...)
}
