// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/symstrip/pkg/batch"
	"github.com/walteh/symstrip/pkg/discover"
	"github.com/walteh/symstrip/pkg/symbols"
)

// DefaultExtension is the suffix files need to be picked up from a directory
const DefaultExtension = discover.DefaultSuffix

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	Extension   string   `json:"extension,omitempty" yaml:"extension,omitempty"`     // Suffix for directory walks
	Patterns    []string `json:"patterns,omitempty" yaml:"patterns,omitempty"`       // Symbol globs to remove
	Annotations bool     `json:"annotations,omitempty" yaml:"annotations,omitempty"` // Remove matching annotations too
	DryRun      bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`         // Print diffs instead of writing
	Jobs        int      `json:"jobs,omitempty" yaml:"jobs,omitempty"`               // Worker count, 0 means one per CPU
	Exclude     []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`         // Globs pruned from directory walks
}

// 🏭 Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{Extension: DefaultExtension}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and fills in defaults
func (cfg *Config) Validate() error {
	if cfg.Jobs < 0 {
		return errors.Errorf("jobs must not be negative, got %d", cfg.Jobs)
	}

	if _, err := symbols.NewMatcher(cfg.Patterns); err != nil {
		return errors.Errorf("patterns: %w", err)
	}

	for _, x := range cfg.Exclude {
		if !doublestar.ValidatePattern(x) {
			return errors.Errorf("invalid exclude pattern %q", x)
		}
	}

	// Set defaults
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}

	return nil
}

// ⚙️ Options returns the per-file options handed to every worker
func (cfg *Config) Options() symbols.Options {
	return symbols.Options{
		Patterns:    append([]string(nil), cfg.Patterns...),
		Annotations: cfg.Annotations,
		DryRun:      cfg.DryRun,
	}
}

// Workers resolves the pool size
func (cfg *Config) Workers() int {
	if cfg.Jobs > 0 {
		return cfg.Jobs
	}
	return batch.DefaultWorkers()
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%d patterns on *%s (jobs=%d annotations=%t dry_run=%t)",
		len(cfg.Patterns), cfg.Extension, cfg.Jobs, cfg.Annotations, cfg.DryRun)
}
