package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ishantbhartii/memsim/common"
	"github.com/ishantbhartii/memsim/mem/vm"
)

var _ = Describe("Manager", func() {
	var m *vm.Manager

	Describe("LRU eviction", func() {
		BeforeEach(func() {
			var err error
			m, err = vm.New(8192, 4096, vm.LRU)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.CreateProcess(1)).To(BeTrue())
		})

		It("evicts the least-recently-used page when frames run out", func() {
			Expect(m.Access(1, 0, false)).To(BeTrue())      // vp0 -> frame 0, fault
			Expect(m.Access(1, 4096, false)).To(BeTrue())   // vp1 -> frame 1, fault
			Expect(m.Access(1, 0, false)).To(BeTrue())       // vp0 hit, refreshes LRU order
			Expect(m.Access(1, 8192, false)).To(BeTrue())    // vp2 faults, evicts vp1 (LRU)

			Expect(m.PageFaults()).To(Equal(3))
			Expect(m.PageReplacements()).To(Equal(1))

			table, ok := m.PageTableOf(1)
			Expect(ok).To(BeTrue())

			vp0, ok := table.Lookup(0)
			Expect(ok).To(BeTrue())
			Expect(vp0.Present).To(BeTrue())

			vp1, ok := table.Lookup(1)
			Expect(ok).To(BeTrue())
			Expect(vp1.Present).To(BeFalse())

			vp2, ok := table.Lookup(2)
			Expect(ok).To(BeTrue())
			Expect(vp2.Present).To(BeTrue())
			Expect(vp2.Frame).To(Equal(vp1.Frame))
		})
	})

	Describe("FIFO eviction", func() {
		BeforeEach(func() {
			var err error
			m, err = vm.New(8192, 4096, vm.FIFO)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.CreateProcess(1)).To(BeTrue())
		})

		It("evicts the first allocated frame in index order", func() {
			Expect(m.Access(1, 0, false)).To(BeTrue())
			Expect(m.Access(1, 4096, false)).To(BeTrue())
			Expect(m.Access(1, 0, false)).To(BeTrue()) // hit; FIFO ignores recency
			Expect(m.Access(1, 8192, false)).To(BeTrue())

			Expect(m.PageReplacements()).To(Equal(1))

			table, _ := m.PageTableOf(1)
			vp0, _ := table.Lookup(0)
			Expect(vp0.Present).To(BeFalse()) // frame 0 was evicted, not frame 1
		})
	})

	Describe("CLOCK eviction", func() {
		BeforeEach(func() {
			var err error
			m, err = vm.New(8192, 4096, vm.CLOCK)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.CreateProcess(1)).To(BeTrue())
		})

		It("sweeps the hand forward across successive faults", func() {
			Expect(m.Access(1, 0, false)).To(BeTrue())
			Expect(m.Access(1, 4096, false)).To(BeTrue())
			Expect(m.Access(1, 8192, false)).To(BeTrue()) // evicts frame 0 (hand starts at 0)

			table, _ := m.PageTableOf(1)
			vp0, _ := table.Lookup(0)
			Expect(vp0.Present).To(BeFalse())
			vp1, _ := table.Lookup(1)
			Expect(vp1.Present).To(BeTrue())
		})
	})

	Describe("unknown process", func() {
		It("fails access without creating any state", func() {
			m, err := vm.New(8192, 4096, vm.LRU)
			Expect(err).NotTo(HaveOccurred())

			Expect(m.Access(common.ProcessId(42), 0, false)).To(BeFalse())
			Expect(m.PageFaults()).To(Equal(0))
		})
	})
})
