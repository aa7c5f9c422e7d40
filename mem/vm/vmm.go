package vm

import (
	"log"

	"github.com/ishantbhartii/memsim/common"
)

// ReplacementPolicy selects which present frame is evicted when a page
// fault occurs with no free frame available.
type ReplacementPolicy int

const (
	// FIFO evicts the first allocated frame in index order.
	FIFO ReplacementPolicy = iota
	// LRU evicts the present page with the oldest recorded access time.
	LRU
	// CLOCK sweeps a persistent hand over the frame table, evicting the
	// first allocated frame it finds.
	CLOCK
)

func (p ReplacementPolicy) String() string {
	switch p {
	case LRU:
		return "lru"
	case CLOCK:
		return "clock"
	default:
		return "fifo"
	}
}

// Manager is the virtual-memory manager: the frame pool, every process's
// page table, and page-fault/victim-selection handling. It owns the
// global LRU timestamp counter and the CLOCK hand as fields on itself,
// not as package-level statics, so that switching policies or rebuilding
// the manager is fully deterministic.
type Manager struct {
	physicalMemorySize common.Size
	pageSize           common.Size
	policy             ReplacementPolicy

	frames *frameTable
	tables map[common.ProcessId]*PageTable

	clockHand  int
	globalTime uint64
	// accessTimes[pid][vpn] is the LRU timestamp of the last access to
	// that page. A field on the Manager, not a package-wide singleton.
	accessTimes map[common.ProcessId]map[uint64]uint64

	pageAccesses     int
	pageFaults       int
	pageReplacements int
}

// New creates a Manager over physicalMemorySize bytes of pageSize-byte
// pages. physicalMemorySize must be divisible by pageSize.
func New(physicalMemorySize, pageSize common.Size, policy ReplacementPolicy) (*Manager, error) {
	frames, err := newFrameTable(physicalMemorySize, pageSize)
	if err != nil {
		return nil, err
	}

	return &Manager{
		physicalMemorySize: physicalMemorySize,
		pageSize:           pageSize,
		policy:             policy,
		frames:             frames,
		tables:             make(map[common.ProcessId]*PageTable),
		accessTimes:        make(map[common.ProcessId]map[uint64]uint64),
	}, nil
}

// CreateProcess registers an empty page table for pid. Fails if pid
// already has a table.
func (m *Manager) CreateProcess(pid common.ProcessId) bool {
	if _, exists := m.tables[pid]; exists {
		return false
	}

	m.tables[pid] = newPageTable(pid, m.pageSize)
	m.accessTimes[pid] = make(map[uint64]uint64)
	return true
}

// TerminateProcess frees every frame the process's present entries hold
// and drops its page table. Fails if pid is unknown.
func (m *Manager) TerminateProcess(pid common.ProcessId) bool {
	table, exists := m.tables[pid]
	if !exists {
		return false
	}

	for _, frame := range table.PresentFrames() {
		m.frames.free(frame)
	}

	delete(m.tables, pid)
	delete(m.accessTimes, pid)
	return true
}

// HasProcess reports whether pid has a registered page table.
func (m *Manager) HasProcess(pid common.ProcessId) bool {
	_, ok := m.tables[pid]
	return ok
}

// Access translates a virtual access for pid, faulting in the containing
// page if necessary. It returns false only if pid is unknown or the fault
// handler could not place the page (no free frame and no victim
// available).
func (m *Manager) Access(pid common.ProcessId, va common.Address, isWrite bool) bool {
	m.pageAccesses++

	table, exists := m.tables[pid]
	if !exists {
		return false
	}

	vpn := uint64(va) / uint64(m.pageSize)

	if !table.IsPresent(vpn) {
		m.pageFaults++
		if !m.handlePageFault(pid, vpn) {
			return false
		}
	}

	m.updatePageAccess(pid, vpn)

	entry, ok := table.Lookup(vpn)
	if !ok {
		log.Panicf("vm: page %d for pid %d missing immediately after fault handling", vpn, pid)
	}

	entry.Referenced = true
	if isWrite {
		entry.Modified = true
	}

	return true
}

// handlePageFault places vpn into a frame for pid, evicting a victim if
// the frame pool is exhausted.
func (m *Manager) handlePageFault(pid common.ProcessId, vpn uint64) bool {
	frame := m.frames.allocate()

	if frame == noFrame {
		frame = m.selectVictimFrame()
		if frame == noFrame {
			return false
		}

		m.invalidatePageUsingFrame(frame)
		m.pageReplacements++
	}

	table, exists := m.tables[pid]
	if !exists {
		return false
	}

	table.Insert(vpn, frame)
	return true
}

// invalidatePageUsingFrame scans every process's page table and clears the
// present/referenced/modified bits of any entry that maps to frame.
func (m *Manager) invalidatePageUsingFrame(frame int) {
	for _, table := range m.tables {
		table.InvalidateFrame(frame)
	}
}

func (m *Manager) selectVictimFrame() int {
	switch m.policy {
	case LRU:
		return m.selectLRUVictim()
	case CLOCK:
		return m.selectClockVictim()
	default:
		return m.selectFIFOVictim()
	}
}

func (m *Manager) selectFIFOVictim() int {
	for i := 0; i < m.frames.numFrames(); i++ {
		if m.frames.isAllocated(i) {
			return i
		}
	}
	return noFrame
}

func (m *Manager) selectLRUVictim() int {
	victim := noFrame
	var oldest uint64

	for pid, table := range m.tables {
		for vpn, entry := range table.Entries() {
			if !entry.Present {
				continue
			}

			t, ok := m.accessTimes[pid][vpn]
			if !ok {
				t = 0
			}

			if victim == noFrame || t < oldest {
				oldest = t
				victim = entry.Frame
			}
		}
	}

	return victim
}

func (m *Manager) selectClockVictim() int {
	n := m.frames.numFrames()

	for i := 0; i < n; i++ {
		frame := (m.clockHand + i) % n
		if m.frames.isAllocated(frame) {
			m.clockHand = (frame + 1) % n
			return frame
		}
	}

	return noFrame
}

// updatePageAccess records per-policy access metadata. FIFO and CLOCK
// record nothing; LRU stamps the page with the Manager's monotonic
// counter.
func (m *Manager) updatePageAccess(pid common.ProcessId, vpn uint64) {
	if m.policy != LRU {
		return
	}

	if _, ok := m.accessTimes[pid]; !ok {
		m.accessTimes[pid] = make(map[uint64]uint64)
	}

	m.accessTimes[pid][vpn] = m.globalTime
	m.globalTime++
}

// Policy returns the manager's current page-replacement policy.
func (m *Manager) Policy() ReplacementPolicy {
	return m.policy
}

// PageAccesses, PageFaults, and PageReplacements report the manager's
// lifetime counters.
func (m *Manager) PageAccesses() int     { return m.pageAccesses }
func (m *Manager) PageFaults() int       { return m.pageFaults }
func (m *Manager) PageReplacements() int { return m.pageReplacements }

// NumFrames returns the size of the frame table.
func (m *Manager) NumFrames() int {
	return m.frames.numFrames()
}

// PageTableOf returns the page table for pid, if any.
func (m *Manager) PageTableOf(pid common.ProcessId) (*PageTable, bool) {
	t, ok := m.tables[pid]
	return t, ok
}
