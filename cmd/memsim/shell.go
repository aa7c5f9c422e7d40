// The shell implements the line-oriented command loop that drives the
// integrated memory system: command parsing, formatting, and the cobra
// root command that starts it. Grounded on the original CLI's
// register/dispatch loop (cli.cpp) and akita's own cmd/root.go
// command idiom.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ishantbhartii/memsim/common"
	"github.com/ishantbhartii/memsim/mem/contiguous"
	"github.com/ishantbhartii/memsim/mem/vm"
	"github.com/ishantbhartii/memsim/system"
)

// Config holds the startup parameters accepted on the command line.
type Config struct {
	TotalMemory common.Size
	PageSize    common.Size
	Strategy    contiguous.Strategy
	Policy      vm.ReplacementPolicy
	Verbose     bool
}

// DefaultConfig returns the documented startup defaults: 1 MiB total
// memory, 4 KiB pages, first-fit, LRU.
func DefaultConfig() Config {
	return Config{
		TotalMemory: 1 << 20,
		PageSize:    4 << 10,
		Strategy:    contiguous.FirstFit,
		Policy:      vm.LRU,
	}
}

// EngineFactory builds the Engine that `init` wires up.
type EngineFactory func(Config) (Engine, error)

// defaultEngineFactory builds a real system.System.
func defaultEngineFactory(cfg Config) (Engine, error) {
	return system.New(cfg.TotalMemory, cfg.PageSize, cfg.Strategy, cfg.Policy)
}

// Shell is the interactive command loop. It owns no subsystem state
// directly; everything before `init` succeeds is just configuration.
type Shell struct {
	cfg       Config
	newEngine EngineFactory
	engine    Engine

	initialized    bool
	currentProcess common.ProcessId
	color          colorSet
	verbose        bool

	out io.Writer
}

// NewShell constructs a Shell with the given startup configuration. If
// newEngine is nil, it defaults to building a real system.System.
func NewShell(cfg Config, newEngine EngineFactory, out io.Writer) *Shell {
	if newEngine == nil {
		newEngine = defaultEngineFactory
	}

	return &Shell{
		cfg:            cfg,
		newEngine:      newEngine,
		currentProcess: common.NoProcess,
		color:          colorSet{enabled: true},
		verbose:        cfg.Verbose,
		out:            out,
	}
}

// Run reads lines from r until EOF or a `quit` command, writing responses
// to the Shell's configured output.
func (s *Shell) Run(r io.Reader) int {
	fmt.Fprintln(s.out, "=== Memory Management Simulator ===")
	fmt.Fprintln(s.out, "Type 'help' for available commands or 'quit' to exit.")

	scanner := bufio.NewScanner(r)
	running := true
	exitCode := 0

	for running && scanner.Scan() {
		s.printPrompt()

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		running, exitCode = s.dispatch(line)
	}

	return exitCode
}

func (s *Shell) printPrompt() {
	proc := "NO-PROC"
	if s.currentProcess != common.NoProcess {
		proc = fmt.Sprintf("P%d", s.currentProcess)
	}

	mode := "auto"
	policy := s.cfg.Policy.String()
	if s.engine != nil {
		mode = s.engine.Mode().String()
	}

	fmt.Fprintf(s.out, "%smemsim[%s | %s | %s]> %s", s.color.cyan(), proc, mode, policy, s.color.reset())
}

// dispatch executes one command line, returning whether the shell should
// keep running and the process exit code to use if it should not.
func (s *Shell) dispatch(line string) (bool, int) {
	args := strings.Fields(line)
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "init":
		s.handleInit()
	case "create":
		s.handleCreate(rest)
	case "setproc":
		s.handleSetProc(rest)
	case "terminate":
		s.handleTerminate(rest)
	case "alloc":
		s.handleAlloc(rest)
	case "free":
		s.handleFree(rest)
	case "access":
		s.handleAccess(rest)
	case "mode":
		s.handleMode(rest)
	case "strategy":
		s.handleStrategy(rest)
	case "policy":
		s.handlePolicy(rest)
	case "dump":
		s.handleDump(rest)
	case "stats":
		s.handleStats()
	case "process":
		s.handleProcess(rest)
	case "bench":
		s.handleBench(rest)
	case "test":
		s.handleTest(rest)
	case "color":
		s.handleColor(rest)
	case "help":
		s.printHelp()
	case "quit":
		return false, 0
	default:
		fmt.Fprintf(s.out, "Unknown command: %s\n", cmd)
	}

	return true, 0
}

func (s *Shell) requireInitialized() bool {
	if !s.initialized {
		fmt.Fprintln(s.out, "Error: system not initialized. Run 'init' first.")
		return false
	}
	return true
}

func (s *Shell) handleInit() {
	if s.initialized {
		fmt.Fprintln(s.out, "Already initialized")
		return
	}

	engine, err := s.newEngine(s.cfg)
	if err != nil {
		fmt.Fprintf(s.out, "Failed to initialize memory system: %v\n", err)
		return
	}

	s.engine = engine
	s.initialized = true

	fmt.Fprintln(s.out, "Memory system initialized successfully")
	fmt.Fprintf(s.out, "Total memory: %s\n", common.FormatSize(s.cfg.TotalMemory))
	fmt.Fprintf(s.out, "Page size: %s\n", common.FormatSize(s.cfg.PageSize))
}
