package main

import (
	"fmt"

	"github.com/ishantbhartii/memsim/common"
	"github.com/ishantbhartii/memsim/internal/trace"
	"github.com/ishantbhartii/memsim/system"
)

func (s *Shell) handleCreate(args []string) {
	if !s.requireInitialized() || len(args) != 1 {
		return
	}

	pid := parseProcessId(args[0])
	if !s.engine.CreateProcess(pid) {
		fmt.Fprintln(s.out, "Failed to create process: already exists")
	}
}

func (s *Shell) handleSetProc(args []string) {
	if !s.requireInitialized() || len(args) != 1 {
		return
	}

	pid := parseProcessId(args[0])
	if !s.engine.HasProcess(pid) {
		fmt.Fprintln(s.out, "Error: process does not exist.")
		return
	}

	s.currentProcess = pid
}

func (s *Shell) handleTerminate(args []string) {
	if !s.requireInitialized() || len(args) != 1 {
		return
	}

	pid := parseProcessId(args[0])
	if !s.engine.TerminateProcess(pid) {
		fmt.Fprintln(s.out, "Failed to terminate: unknown process")
		return
	}

	if s.currentProcess == pid {
		s.currentProcess = common.NoProcess
	}
}

func (s *Shell) handleAlloc(args []string) {
	if !s.requireInitialized() {
		return
	}

	pid := s.currentProcess
	var size common.Size

	switch len(args) {
	case 1:
		size = parseSize(args[0])
	case 2:
		pid = parseProcessId(args[0])
		size = parseSize(args[1])
	default:
		fmt.Fprintln(s.out, "Usage: alloc <size> or alloc <pid> <size>")
		return
	}

	if pid == common.NoProcess {
		fmt.Fprintln(s.out, "Error: no process selected. Use 'create' and 'setproc'.")
		return
	}

	if size == 0 {
		fmt.Fprintln(s.out, "Usage: alloc <size> or alloc <pid> <size>")
		return
	}

	result := s.engine.Allocate(pid, size)
	if !result.Success {
		fmt.Fprintln(s.out, "Allocation failed. Did you create the process?")
		return
	}

	fmt.Fprintf(s.out, "Allocated %s at address %d (block %d)\n", common.FormatSize(size), result.Address, result.BlockID)
}

func (s *Shell) handleFree(args []string) {
	if !s.requireInitialized() || len(args) != 2 {
		fmt.Fprintln(s.out, "Usage: free <pid> <addr>")
		return
	}

	pid := parseProcessId(args[0])
	addr := parseAddress(args[1])

	if !s.engine.Deallocate(pid, addr) {
		fmt.Fprintln(s.out, "Free failed: invalid address or permission denied")
	}
}

func (s *Shell) handleAccess(args []string) {
	if !s.requireInitialized() {
		return
	}

	pid := s.currentProcess
	var addr common.Address
	isWrite := false

	switch {
	case len(args) == 1:
		addr = parseAddress(args[0])
	case len(args) == 2:
		pid = parseProcessId(args[0])
		addr = parseAddress(args[1])
	case len(args) == 3 && args[2] == "write":
		pid = parseProcessId(args[0])
		addr = parseAddress(args[1])
		isWrite = true
	default:
		fmt.Fprintln(s.out, "Usage: access <addr> or access <pid> <addr> [write]")
		return
	}

	if pid == common.NoProcess {
		fmt.Fprintln(s.out, "Error: no process selected. Use 'create' and 'setproc'.")
		return
	}

	var before system.VMMStats
	if s.verbose {
		before = s.engine.VMMStats()
	}

	if !s.engine.Access(pid, addr, isWrite) {
		fmt.Fprintln(s.out, "Access failed: unknown process")
		return
	}

	if s.verbose {
		after := s.engine.VMMStats()
		if after.PageFaults > before.PageFaults {
			id := trace.New()
			verb := "read"
			if isWrite {
				verb = "write"
			}
			fmt.Fprintf(s.out, "%s[trace %s] page fault on %s by pid %d at 0x%x%s\n",
				s.color.yellow(), id, verb, pid, uint32(addr), s.color.reset())
		}
		if after.PageReplacements > before.PageReplacements {
			id := trace.New()
			fmt.Fprintf(s.out, "%s[trace %s] page replacement triggered for pid %d%s\n",
				s.color.yellow(), id, pid, s.color.reset())
		}
	}
}

func (s *Shell) handleMode(args []string) {
	if !s.requireInitialized() || len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: mode auto | buddy | physical | forced")
		return
	}

	var mode system.AllocationMode
	switch args[0] {
	case "auto":
		mode = system.Auto
	case "buddy":
		mode = system.Buddy
	case "physical":
		mode = system.Physical
	case "forced":
		mode = system.Forced
	default:
		fmt.Fprintln(s.out, "Unknown mode. Use auto | buddy | physical | forced")
		return
	}

	s.engine.SetMode(mode)
	fmt.Fprintf(s.out, "[INFO] Allocation mode set to %s\n", mode)
}

func (s *Shell) handleStrategy(args []string) {
	if !s.requireInitialized() || len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: strategy first | best | worst")
		return
	}

	strategy, ok := parseStrategy(args[0])
	if !ok {
		fmt.Fprintln(s.out, "Unknown strategy. Use first | best | worst")
		return
	}

	s.engine.SwitchAllocationStrategy(strategy)
	s.cfg.Strategy = strategy
}

func (s *Shell) handlePolicy(args []string) {
	if !s.requireInitialized() || len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: policy fifo | lru | clock")
		return
	}

	policy, ok := parsePolicy(args[0])
	if !ok {
		fmt.Fprintln(s.out, "Unknown policy. Use fifo | lru | clock")
		return
	}

	if err := s.engine.SwitchPageReplacementPolicy(policy); err != nil {
		fmt.Fprintf(s.out, "Failed to switch policy: %v\n", err)
		return
	}
	s.cfg.Policy = policy
}

func (s *Shell) handleProcess(args []string) {
	if !s.requireInitialized() {
		return
	}

	pid := s.currentProcess
	if len(args) > 0 {
		pid = parseProcessId(args[0])
	}

	if pid == common.NoProcess || !s.engine.HasProcess(pid) {
		fmt.Fprintln(s.out, "Error: process does not exist.")
		return
	}

	addrs, _ := s.engine.ProcessAllocations(pid)
	fmt.Fprintf(s.out, "Process %d allocations: %d\n", pid, len(addrs))
	for _, a := range addrs {
		fmt.Fprintf(s.out, "  0x%x\n", uint32(a))
	}
}

func (s *Shell) handleColor(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: color on | off")
		return
	}

	switch args[0] {
	case "on":
		s.color.enabled = true
		fmt.Fprintln(s.out, "Color output enabled")
	case "off":
		s.color.enabled = false
		fmt.Fprintln(s.out, "Color output disabled")
	default:
		fmt.Fprintln(s.out, "Usage: color on | off")
	}
}

func (s *Shell) printHelp() {
	c := s.color
	fmt.Fprintf(s.out, "%s\n================ AVAILABLE COMMANDS ================\n%s", c.cyan(), c.reset())

	sections := []struct {
		title string
		cmds  [][2]string
	}{
		{"System", [][2]string{
			{"init", "Initialize memory system"},
			{"quit", "Exit simulator"},
			{"help", "Show this help"},
		}},
		{"Process", [][2]string{
			{"create <pid>", "Create a new process"},
			{"setproc <pid>", "Set current process"},
			{"terminate <pid>", "Terminate a process"},
			{"process [pid]", "Show process information"},
		}},
		{"Memory Allocation", [][2]string{
			{"alloc <size>", "Allocate memory (B / KB / MB)"},
			{"free <pid> <addr>", "Free allocated memory"},
			{"mode <auto|buddy|physical|forced>", "Set allocation mode"},
			{"strategy <first|best|worst>", "Set physical allocation strategy"},
		}},
		{"Virtual Memory", [][2]string{
			{"access <pid> <addr> [write]", "Access virtual address (access <addr> reads as current process)"},
			{"policy <fifo|lru|clock>", "Set page replacement policy"},
		}},
		{"Inspection", [][2]string{
			{"dump", "Dump physical memory layout"},
			{"stats", "Show system statistics"},
			{"bench [alloc|cache]", "Run benchmarks"},
			{"test [name]", "Run memory tests"},
		}},
		{"UI / UX", [][2]string{
			{"color <on|off>", "Toggle colored output"},
		}},
	}

	for _, section := range sections {
		fmt.Fprintf(s.out, "%s\n%s\n%s", c.cyan(), section.title, c.reset())
		for _, cmd := range section.cmds {
			fmt.Fprintf(s.out, "  %-34s%s\n", cmd[0], cmd[1])
		}
	}

	fmt.Fprintf(s.out, "%s\n====================================================\n%s", c.cyan(), c.reset())
}
