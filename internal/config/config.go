// Package config loads an optional vroom.toml file supplying CLI defaults
// (input/output paths, log level, time budget, move-kind toggles), so
// repeated invocations against the same instance don't need to repeat the
// same flags.
//
// Grounded on github.com/Bootes2022-Arcturus/forwarding/cmd/main.go's
// loadConfig (BurntSushi/toml.DecodeFile into a struct-tagged Config,
// tolerating a missing file with a default).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds CLI defaults read from a vroom.toml file.
type Config struct {
	Input       string `toml:"input"`
	Output      string `toml:"output"`
	LogLevel    int    `toml:"log_level"`
	TimeBudget  string `toml:"time_budget"`
	Enable2Opt  bool   `toml:"two_opt"`
	EnableOrOpt bool   `toml:"or_opt"`
}

// Default returns the built-in defaults used when no config file is
// present.
func Default() Config {
	return Config{
		LogLevel:    2,
		Enable2Opt:  true,
		EnableOrOpt: true,
	}
}

// Load reads path as TOML into a Config seeded with Default(). A missing
// file is not an error: the defaults are returned unchanged, since
// vroom.toml is opt-in configuration (spec §A.3).
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
