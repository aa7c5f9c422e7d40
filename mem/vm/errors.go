package vm

import (
	"fmt"

	"github.com/ishantbhartii/memsim/common"
)

func errNonDivisiblePageSize(physicalMemorySize, pageSize common.Size) error {
	return fmt.Errorf(
		"vm: physical memory size %d must be divisible by page size %d",
		physicalMemorySize, pageSize)
}
