package hierarchy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ishantbhartii/memsim/common"
	"github.com/ishantbhartii/memsim/mem/cache"
	"github.com/ishantbhartii/memsim/mem/cache/hierarchy"
)

func singleLineLevel() hierarchy.LevelConfig {
	return hierarchy.LevelConfig{
		Size:          8,
		LineSize:      8,
		Associativity: 1,
		Policy:        cache.LRU,
	}
}

var _ = Describe("Hierarchy", func() {
	var h *hierarchy.Hierarchy

	BeforeEach(func() {
		var err error
		h, err = hierarchy.MakeBuilder().
			WithL1(singleLineLevel()).
			WithL2(singleLineLevel()).
			WithL3(singleLineLevel()).
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a misconfigured level", func() {
		_, err := hierarchy.New(
			hierarchy.LevelConfig{Size: 10, LineSize: 8, Associativity: 1, Policy: cache.LRU},
			singleLineLevel(),
			singleLineLevel(),
		)
		Expect(err).To(HaveOccurred())
	})

	It("fills every level on a total miss and then hits at L1", func() {
		hit := h.Read(common.Address(0), common.ProcessId(1))
		Expect(hit).To(BeFalse())

		stats := h.Stats()
		Expect(stats.MainMemoryAccesses).To(Equal(1))
		Expect(stats.L1.Misses).To(Equal(1))
		Expect(stats.L2.Misses).To(Equal(1))
		Expect(stats.L3.Misses).To(Equal(1))

		hit = h.Read(common.Address(0), common.ProcessId(1))
		Expect(hit).To(BeTrue())

		stats = h.Stats()
		Expect(stats.L1.Hits).To(Equal(1))
		Expect(stats.MainMemoryAccesses).To(Equal(1), "second access should not touch main memory again")
	})

	It("computes average memory access time over L1/L2/L3 hit latencies and main memory", func() {
		h.Read(common.Address(0), common.ProcessId(1)) // total miss
		h.Read(common.Address(0), common.ProcessId(1)) // L1 hit

		stats := h.Stats()
		Expect(stats.AvgMemoryAccessTime).To(BeNumerically("~", 100.5, 0.001))
	})

	It("fills on a write miss so the next write to that line hits", func() {
		hit := h.Write(common.Address(0), common.ProcessId(1))
		Expect(hit).To(BeFalse())

		hit = h.Write(common.Address(0), common.ProcessId(1))
		Expect(hit).To(BeTrue())
	})

	It("resets every level's counters along with its own", func() {
		h.Read(common.Address(0), common.ProcessId(1))
		h.ResetStats()

		stats := h.Stats()
		Expect(stats.TotalAccesses).To(Equal(0))
		Expect(stats.MainMemoryAccesses).To(Equal(0))
		Expect(stats.L1.Accesses).To(Equal(0))
	})
})
