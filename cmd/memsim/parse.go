package main

import (
	"strconv"
	"strings"

	"github.com/ishantbhartii/memsim/common"
	"github.com/ishantbhartii/memsim/mem/contiguous"
	"github.com/ishantbhartii/memsim/mem/vm"
)

// parseProcessId parses a decimal process id, returning common.NoProcess
// on any parse failure.
func parseProcessId(s string) common.ProcessId {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return common.NoProcess
	}
	return common.ProcessId(n)
}

// parseAddress parses a decimal or 0x-prefixed hexadecimal address,
// returning 0 on any parse failure.
func parseAddress(s string) common.Address {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0
		}
		return common.Address(n)
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return common.Address(n)
}

// parseSize parses a byte count with an optional case-insensitive b/kb/mb
// suffix, returning 0 on any parse failure.
func parseSize(s string) common.Size {
	lower := strings.ToLower(s)

	multiplier := uint64(1)
	switch {
	case strings.HasSuffix(lower, "kb"):
		multiplier = 1024
		lower = strings.TrimSuffix(lower, "kb")
	case strings.HasSuffix(lower, "mb"):
		multiplier = 1024 * 1024
		lower = strings.TrimSuffix(lower, "mb")
	case strings.HasSuffix(lower, "b"):
		lower = strings.TrimSuffix(lower, "b")
	}

	n, err := strconv.ParseUint(lower, 10, 32)
	if err != nil {
		return 0
	}
	return common.Size(n * multiplier)
}

func parseStrategy(s string) (contiguous.Strategy, bool) {
	switch s {
	case "first":
		return contiguous.FirstFit, true
	case "best":
		return contiguous.BestFit, true
	case "worst":
		return contiguous.WorstFit, true
	default:
		return contiguous.FirstFit, false
	}
}

func parsePolicy(s string) (vm.ReplacementPolicy, bool) {
	switch s {
	case "fifo":
		return vm.FIFO, true
	case "lru":
		return vm.LRU, true
	case "clock":
		return vm.CLOCK, true
	default:
		return vm.LRU, false
	}
}
