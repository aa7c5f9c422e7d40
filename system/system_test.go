package system_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ishantbhartii/memsim/common"
	"github.com/ishantbhartii/memsim/mem/contiguous"
	"github.com/ishantbhartii/memsim/mem/vm"
	"github.com/ishantbhartii/memsim/system"
)

var _ = Describe("System", func() {
	var sys *system.System

	BeforeEach(func() {
		var err error
		sys, err = system.MakeBuilder().
			WithTotalMemory(1024).
			WithPageSize(256).
			WithStrategy(contiguous.FirstFit).
			WithPolicy(vm.LRU).
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("process lifecycle", func() {
		It("rejects creating the same process twice", func() {
			Expect(sys.CreateProcess(1)).To(BeTrue())
			Expect(sys.CreateProcess(1)).To(BeFalse())
		})

		It("frees every live allocation on termination", func() {
			Expect(sys.CreateProcess(1)).To(BeTrue())

			result := sys.Allocate(1, 64)
			Expect(result.Success).To(BeTrue())

			Expect(sys.TerminateProcess(1)).To(BeTrue())

			addrs, ok := sys.ProcessAllocations(1)
			Expect(ok).To(BeFalse())
			Expect(addrs).To(BeEmpty())
		})
	})

	Describe("allocation routing under AUTO", func() {
		BeforeEach(func() {
			sys.CreateProcess(1)
		})

		It("routes a power-of-two size to the buddy allocator", func() {
			result := sys.Allocate(1, 64)
			Expect(result.Success).To(BeTrue())

			buddyStats := sys.BuddyAllocatorStats()
			Expect(buddyStats.Used).To(Equal(common.Size(64)))
		})

		It("falls back to the contiguous allocator for non-power-of-two sizes", func() {
			result := sys.Allocate(1, 100)
			Expect(result.Success).To(BeTrue())

			physStats := sys.PhysicalAllocatorStats()
			Expect(physStats.Used).To(Equal(common.Size(100)))
		})
	})

	Describe("allocation routing under PHYSICAL", func() {
		BeforeEach(func() {
			sys.CreateProcess(1)
			sys.SetMode(system.Physical)
		})

		It("routes even a power-of-two size to the contiguous allocator", func() {
			result := sys.Allocate(1, 64)
			Expect(result.Success).To(BeTrue())

			Expect(sys.PhysicalAllocatorStats().Used).To(Equal(common.Size(64)))
			Expect(sys.BuddyAllocatorStats().Used).To(Equal(common.Size(0)))
		})
	})

	Describe("deallocation handle resolution", func() {
		BeforeEach(func() {
			sys.CreateProcess(1)
		})

		It("deallocates a buddy allocation by its address", func() {
			result := sys.Allocate(1, 64)
			Expect(result.Success).To(BeTrue())

			Expect(sys.Deallocate(1, result.Address)).To(BeTrue())
			Expect(sys.BuddyAllocatorStats().Used).To(Equal(common.Size(0)))
		})

		It("falls back to the BlockId interpretation for a contiguous allocation", func() {
			result := sys.Allocate(1, 100)
			Expect(result.Success).To(BeTrue())

			Expect(sys.Deallocate(1, result.Address)).To(BeTrue())
			Expect(sys.PhysicalAllocatorStats().Used).To(Equal(common.Size(0)))
		})
	})

	Describe("access pipeline", func() {
		BeforeEach(func() {
			sys.CreateProcess(1)
		})

		It("faults through the VMM and records a cache miss on first touch", func() {
			ok := sys.Access(1, 0, false)
			Expect(ok).To(BeTrue())

			Expect(sys.VMMStats().PageFaults).To(Equal(1))
			Expect(sys.Stats().CacheMisses).To(Equal(1))
		})

		It("fails for an unregistered process without mutating state", func() {
			ok := sys.Access(42, 0, false)
			Expect(ok).To(BeFalse())
			Expect(sys.VMMStats().PageFaults).To(Equal(0))
		})
	})

	Describe("policy switching", func() {
		It("rebuilds the VMM and re-registers every known process", func() {
			sys.CreateProcess(1)
			sys.CreateProcess(2)

			Expect(sys.SwitchPageReplacementPolicy(vm.FIFO)).To(Succeed())

			Expect(sys.HasProcess(1)).To(BeTrue())
			Expect(sys.HasProcess(2)).To(BeTrue())
			Expect(sys.VMMStats().PageFaults).To(Equal(0))
		})

		It("rebuilds the contiguous allocator, losing its prior state", func() {
			sys.CreateProcess(1)
			sys.Allocate(1, 100)

			sys.SwitchAllocationStrategy(contiguous.BestFit)

			Expect(sys.PhysicalAllocatorStats().Used).To(Equal(common.Size(0)))
		})
	})
})
