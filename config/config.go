/*
Package config loads the tunable constants of spec §6 from an optional TOML
file, following dekarrin-tunaq's config-loading convention (BurntSushi/toml
plus a defaults struct) — gorgo itself has no equivalent top-level config, so
this package borrows the pattern from the rest of the retrieval pack.
*/
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable constants from spec §6. All are overridable; the
// zero value of Config is meaningless — use Default() or Load().
type Config struct {
	MaxWordLen          int     `toml:"max_word_len"`
	MaxGenerators       int     `toml:"max_generators"`
	MaxFilenameLen      int     `toml:"max_filename_len"`
	MaxRootOutputLength int     `toml:"max_root_output_length"`
	MaxNestedWordLen    int     `toml:"max_nested_word_len"`
	Epsilon             float64 `toml:"epsilon"`
	TraceLevel          string  `toml:"trace_level"`
	DefaultMatrixPath   string  `toml:"default_matrix_path"`
}

// Default returns the constants from spec §6.
func Default() Config {
	return Config{
		MaxWordLen:          200,
		MaxGenerators:       10,
		MaxFilenameLen:      200,
		MaxRootOutputLength: 255,
		MaxNestedWordLen:    10,
		Epsilon:             1e-5,
		TraceLevel:          "Info",
	}
}

// Load reads path as a TOML document overlaying Default(); a missing path is
// not an error — it returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: loading %q: %w", path, err)
	}
	return cfg, nil
}
