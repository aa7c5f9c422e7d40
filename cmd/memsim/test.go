package main

import (
	"fmt"

	"github.com/ishantbhartii/memsim/common"
)

// handleTest runs a canned allocate/access sequence against a scratch
// process, then prints statistics. Grounded in the original's
// runMemoryTest; the "name" argument is accepted but every canned
// scenario runs the same sequence, matching the original's behavior.
func (s *Shell) handleTest(args []string) {
	if !s.requireInitialized() {
		return
	}

	name := "default"
	if len(args) > 0 {
		name = args[0]
	}

	fmt.Fprintf(s.out, "Running test: %s\n", name)

	pid := common.ProcessId(999)
	s.engine.CreateProcess(pid)

	r1 := s.engine.Allocate(pid, 1024)
	r2 := s.engine.Allocate(pid, 2048)
	s.engine.Allocate(pid, 512)

	if r1.Success {
		s.engine.Access(pid, r1.Address, false)
	}
	if r2.Success {
		s.engine.Access(pid, r2.Address, true)
	}

	s.handleStats()
	s.engine.TerminateProcess(pid)
}
