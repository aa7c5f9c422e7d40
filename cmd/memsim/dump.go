package main

import (
	"fmt"
	"strings"

	"github.com/ishantbhartii/memsim/common"
)

func (s *Shell) handleDump(args []string) {
	if !s.requireInitialized() {
		return
	}

	if len(args) > 0 && args[0] == "bar" {
		s.dumpBar()
		return
	}

	s.dumpTable()
}

func (s *Shell) dumpTable() {
	fmt.Fprintln(s.out, "=== MEMORY DUMP ===")
	for _, block := range s.engine.PhysicalBlocks() {
		fmt.Fprintf(s.out, "0x%08x %10s %s\n", uint32(block.Start), common.FormatSize(block.Size), block.Status)
	}
}

// dumpBar renders an ASCII bar chart of the contiguous allocator's
// partition, scaled to a fixed terminal width. Grounded in the original's
// printMemoryDump/formatSize helpers, generalized from a tabular listing
// to a proportional bar.
func (s *Shell) dumpBar() {
	const width = 60

	blocks := s.engine.PhysicalBlocks()
	if len(blocks) == 0 {
		fmt.Fprintln(s.out, "(empty)")
		return
	}

	var total common.Size
	for _, b := range blocks {
		total += b.Size
	}
	if total == 0 {
		fmt.Fprintln(s.out, "(empty)")
		return
	}

	fmt.Fprintln(s.out, "=== MEMORY BAR ===")
	for _, block := range blocks {
		cells := int(float64(block.Size) / float64(total) * float64(width))
		if cells == 0 {
			cells = 1
		}

		fill := "#"
		color := s.color.green()
		if block.IsFree() {
			fill = "."
			color = s.color.yellow()
		}

		bar := strings.Repeat(fill, cells)
		fmt.Fprintf(s.out, "0x%08x %s%s%s %s\n", uint32(block.Start), color, bar, s.color.reset(), common.FormatSize(block.Size))
	}
}
