package main

import (
	"fmt"

	"github.com/ishantbhartii/memsim/common"
	"github.com/ishantbhartii/memsim/mem/cache"
)

func (s *Shell) handleStats() {
	if !s.requireInitialized() {
		return
	}

	c := s.color
	fmt.Fprintf(s.out, "%s\n================ SYSTEM STATISTICS ================\n\n%s", c.cyan(), c.reset())

	overall := s.engine.Stats()
	fmt.Fprintf(s.out, "Total Operations        : %d\n", overall.TotalOperations)

	phys := s.engine.PhysicalAllocatorStats()
	fmt.Fprintf(s.out, "%s\n[Physical Allocator]\n%s", c.blue(), c.reset())
	fmt.Fprintf(s.out, "  Used Memory           : %s\n", common.FormatSize(phys.Used))
	fmt.Fprintf(s.out, "  Free Memory           : %s\n", common.FormatSize(phys.Free))
	fmt.Fprintf(s.out, "  External Fragmentation: %s%.2f %%%s\n", fragColor(c, phys.FragmentationRatio*100), phys.FragmentationRatio*100, c.reset())
	fmt.Fprintf(s.out, "  Requests              : %d\n", phys.Requests)
	fmt.Fprintf(s.out, "  Success / Failure     : %d / %d\n", phys.Successes, phys.Failures)
	fmt.Fprintf(s.out, "  Utilization           : %.2f %%\n", phys.Utilization*100)

	buddyStats := s.engine.BuddyAllocatorStats()
	fmt.Fprintf(s.out, "%s\n[Buddy Allocator]\n%s", c.blue(), c.reset())
	fmt.Fprintf(s.out, "  Used Memory           : %s\n", common.FormatSize(buddyStats.Used))
	fmt.Fprintf(s.out, "  Free Memory           : %s\n", common.FormatSize(buddyStats.Free))
	fmt.Fprintf(s.out, "  Internal Fragmentation: %s%s%s\n", c.yellow(), common.FormatSize(buddyStats.InternalFragmentation), c.reset())
	fmt.Fprintf(s.out, "  Requests              : %d\n", buddyStats.Requests)
	fmt.Fprintf(s.out, "  Success / Failure     : %d / %d\n", buddyStats.Successes, buddyStats.Failures)
	fmt.Fprintf(s.out, "  Utilization           : %.2f %%\n", buddyStats.Utilization*100)

	vmm := s.engine.VMMStats()
	var faultRate float64
	if vmm.PageAccesses > 0 {
		faultRate = float64(vmm.PageFaults) / float64(vmm.PageAccesses) * 100
	}
	fmt.Fprintf(s.out, "%s\n[Virtual Memory]\n%s", c.blue(), c.reset())
	fmt.Fprintf(s.out, "  Page Faults           : %s%d%s\n", c.red(), vmm.PageFaults, c.reset())
	fmt.Fprintf(s.out, "  Page Replacements     : %d\n", vmm.PageReplacements)
	fmt.Fprintf(s.out, "  Page Fault Rate       : %s%.2f %%%s\n", fragColor(c, faultRate), faultRate, c.reset())
	fmt.Fprintf(s.out, "  Num Frames            : %d\n", vmm.NumFrames)

	hStats := s.engine.CacheHierarchyStats()
	fmt.Fprintf(s.out, "%s\n[CACHE HIERARCHY]\n%s", c.blue(), c.reset())
	printCacheLevel(s, "L1 Cache", hStats.L1)
	printCacheLevel(s, "L2 Cache", hStats.L2)
	printCacheLevel(s, "L3 Cache", hStats.L3)
	fmt.Fprintf(s.out, "  Main Memory Accesses  : %d\n", hStats.MainMemoryAccesses)
	fmt.Fprintf(s.out, "  AMAT                  : %.2f cycles\n", hStats.AvgMemoryAccessTime)

	fmt.Fprintln(s.out, "\n==================================================")
}

func printCacheLevel(s *Shell, name string, stats cache.Stats) {
	c := s.color
	hitRatio := stats.HitRate * 100

	fmt.Fprintf(s.out, "  %s\n", name)
	fmt.Fprintf(s.out, "    Hits / Misses       : %d / %d\n", stats.Hits, stats.Misses)

	color := c.red()
	switch {
	case hitRatio >= 70:
		color = c.green()
	case hitRatio >= 30:
		color = c.yellow()
	}
	fmt.Fprintf(s.out, "    Hit Ratio           : %s%.2f %%%s\n", color, hitRatio, c.reset())
}

func fragColor(c colorSet, pct float64) string {
	switch {
	case pct > 30:
		return c.red()
	case pct > 10:
		return c.yellow()
	default:
		return c.green()
	}
}
