package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	flagMemory   string
	flagPageSize string
	flagStrategy string
	flagPolicy   string
	flagVerbose  bool
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "memsim",
	Short: "An interactive memory-management simulator",
	Long: "memsim is an interactive shell over a simulated contiguous allocator, buddy allocator, " +
		"virtual-memory manager, and inclusive cache hierarchy. Run 'init' inside the shell to start " +
		"the simulated system with the configured defaults, then 'help' for the command surface.",
	RunE: runShell,
}

func init() {
	rootCmd.Flags().StringVar(&flagMemory, "memory", "", "total physical memory (e.g. 1mb, 65536); overrides MEMSIM_MEMORY")
	rootCmd.Flags().StringVar(&flagPageSize, "page-size", "", "virtual memory page size (e.g. 4kb); overrides MEMSIM_PAGE_SIZE")
	rootCmd.Flags().StringVar(&flagStrategy, "strategy", "", "physical allocation strategy: first | best | worst")
	rootCmd.Flags().StringVar(&flagPolicy, "page-policy", "", "page replacement policy: fifo | lru | clock")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log page faults and replacements as they happen")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable ANSI colored output")
}

func runShell(cmd *cobra.Command, args []string) error {
	if err := loadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	cfg := envDefaults(DefaultConfig())

	if flagMemory != "" {
		cfg.TotalMemory = parseSize(flagMemory)
	}
	if flagPageSize != "" {
		cfg.PageSize = parseSize(flagPageSize)
	}
	if flagStrategy != "" {
		if strategy, ok := parseStrategy(flagStrategy); ok {
			cfg.Strategy = strategy
		} else {
			return fmt.Errorf("unknown --strategy %q: use first | best | worst", flagStrategy)
		}
	}
	if flagPolicy != "" {
		if policy, ok := parsePolicy(flagPolicy); ok {
			cfg.Policy = policy
		} else {
			return fmt.Errorf("unknown --page-policy %q: use fifo | lru | clock", flagPolicy)
		}
	}
	cfg.Verbose = flagVerbose

	if cfg.TotalMemory == 0 || cfg.PageSize == 0 {
		return fmt.Errorf("total memory and page size must both be non-zero")
	}

	shell := NewShell(cfg, nil, os.Stdout)
	if flagNoColor {
		shell.color.enabled = false
	}

	atexit.Register(func() {
		if shell.initialized {
			shell.handleStats()
		}
	})

	exitCode := shell.Run(os.Stdin)
	atexit.Exit(exitCode)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
}
