// Package config loads the optional CLI configuration file for
// cmd/sol25 (SPEC_FULL.md "+AMBIENT STACK"). SOL25's language
// semantics expose no configuration surface — this exists purely for
// CLI ergonomics (persisting --trace/--dump-ast defaults) the way a
// user would expect from any cobra-based tool in this corpus.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the persistent defaults for cmd/sol25's run command.
// Flags passed on the command line always take precedence over these.
type Config struct {
	Trace   bool `yaml:"trace"`
	DumpAST bool `yaml:"dump_ast"`
}

// Load reads and decodes a YAML config file at path. A missing file is
// not an error — it simply yields the zero-value Config (all features
// off), matching cobra's own "flag not given" default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
