package vm

import "github.com/ishantbhartii/memsim/common"

// noFrame is the sentinel returned when no free frame is available.
const noFrame = -1

// frameTable is a fixed-length arena of physical frames, tracked as a
// slice of booleans indexed by frame number. The VMM is the single owner
// of this table; page tables hold frame indices, never pointers into it.
type frameTable struct {
	allocated []bool
}

func newFrameTable(physicalMemorySize, pageSize common.Size) (*frameTable, error) {
	if pageSize == 0 || physicalMemorySize%pageSize != 0 {
		return nil, errNonDivisiblePageSize(physicalMemorySize, pageSize)
	}

	numFrames := physicalMemorySize / pageSize
	return &frameTable{allocated: make([]bool, numFrames)}, nil
}

// allocate performs a linear scan for the first free frame, marks it
// allocated, and returns its index. Returns noFrame if the table is full.
func (f *frameTable) allocate() int {
	for i, used := range f.allocated {
		if !used {
			f.allocated[i] = true
			return i
		}
	}
	return noFrame
}

func (f *frameTable) free(frame int) {
	f.allocated[frame] = false
}

func (f *frameTable) isAllocated(frame int) bool {
	return f.allocated[frame]
}

func (f *frameTable) numFrames() int {
	return len(f.allocated)
}
