package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ishantbhartii/memsim/common"
)

// loadDotEnv loads a .env file from the working directory if one exists,
// populating process environment variables that envDefaults then reads.
// A missing file is not an error; an unparseable one is reported to the
// caller so startup can decide whether to continue.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// envDefaults overlays MEMSIM_* environment variables onto cfg, leaving
// fields untouched when the corresponding variable is unset or malformed.
// Command-line flags applied after this call still take precedence.
func envDefaults(cfg Config) Config {
	if v, ok := os.LookupEnv("MEMSIM_MEMORY"); ok {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.TotalMemory = common.Size(n)
		}
	}
	if v, ok := os.LookupEnv("MEMSIM_PAGE_SIZE"); ok {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.PageSize = common.Size(n)
		}
	}
	if v, ok := os.LookupEnv("MEMSIM_STRATEGY"); ok {
		if strategy, ok := parseStrategy(v); ok {
			cfg.Strategy = strategy
		}
	}
	if v, ok := os.LookupEnv("MEMSIM_PAGE_POLICY"); ok {
		if policy, ok := parsePolicy(v); ok {
			cfg.Policy = policy
		}
	}
	return cfg
}
