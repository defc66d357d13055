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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestJSONParsing tests JSON config parsing
func TestJSONParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:   "valid_minimal_json",
			config: `{"patterns": ["org.junit.**"]}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"org.junit.**"}, cfg.Patterns)
				assert.Empty(t, cfg.Extension, "defaults are applied by Validate")
			},
		},
		{
			name: "valid_full_json",
			config: `{
				"extension": ".java",
				"patterns": ["org.junit.**"],
				"annotations": true,
				"dry_run": true,
				"jobs": 2,
				"exclude": ["build/**"]
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, &Config{
					Extension:   ".java",
					Patterns:    []string{"org.junit.**"},
					Annotations: true,
					DryRun:      true,
					Jobs:        2,
					Exclude:     []string{"build/**"},
				}, cfg)
			},
		},
		{
			name:        "unknown_field",
			config:      `{"patterns": [], "threads": 4}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "invalid_json",
			config:      `{"patterns": [`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
	}

	parser := &JSONParser{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Parse(ctx, []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
