// Package config loads engine defaults from an optional TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Engine option limits shared with the UCI option surface.
const (
	DefaultThreads = 1
	MaxThreads     = 64
	DefaultHashMB  = 16
	MaxHashMB      = 4096
)

// Config holds the startup settings. Every field stays adjustable at
// runtime through setoption.
type Config struct {
	Threads int  `toml:"threads"`
	HashMB  int  `toml:"hash"`
	Debug   bool `toml:"debug"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Threads: DefaultThreads,
		HashMB:  DefaultHashMB,
	}
}

// Load reads a TOML config file. A missing file yields the defaults;
// out-of-range values are clamped.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}

	cfg.Threads = ClampThreads(cfg.Threads)
	cfg.HashMB = ClampHashMB(cfg.HashMB)
	return cfg, nil
}

// ClampThreads bounds a thread count to the pool limits.
func ClampThreads(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxThreads {
		return MaxThreads
	}
	return n
}

// ClampHashMB bounds a hash size to the table limits.
func ClampHashMB(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxHashMB {
		return MaxHashMB
	}
	return n
}
