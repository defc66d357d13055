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

package opts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/symstrip/pkg/config"
)

func TestApply(t *testing.T) {
	fileCfg := func() *config.Config {
		return &config.Config{
			Extension: ".java",
			Patterns:  []string{"org.junit.**"},
			Jobs:      2,
			Exclude:   []string{"gen/**"},
		}
	}

	flags := &RootOpts{
		Annotations: true,
		DryRun:      true,
		Patterns:    []string{"javax.annotation.*"},
		Jobs:        8,
		Extension:   ".jav",
		Exclude:     []string{"build/**"},
	}

	tests := []struct {
		name    string
		changed []string
		want    *config.Config
	}{
		{
			name:    "nothing_set_keeps_file_values",
			changed: nil,
			want:    fileCfg(),
		},
		{
			name:    "set_flags_win",
			changed: []string{FlagPattern, FlagJobs, FlagAnnotations},
			want: &config.Config{
				Extension:   ".java",
				Patterns:    []string{"javax.annotation.*"},
				Annotations: true,
				Jobs:        8,
				Exclude:     []string{"gen/**"},
			},
		},
		{
			name:    "everything_set",
			changed: []string{FlagAnnotations, FlagDryRun, FlagPattern, FlagJobs, FlagExtension, FlagExclude},
			want: &config.Config{
				Extension:   ".jav",
				Patterns:    []string{"javax.annotation.*"},
				Annotations: true,
				DryRun:      true,
				Jobs:        8,
				Exclude:     []string{"build/**"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := map[string]bool{}
			for _, name := range tt.changed {
				set[name] = true
			}

			cfg := fileCfg()
			require.NoError(t, flags.Apply(cfg, func(name string) bool { return set[name] }))
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestApplyValidates(t *testing.T) {
	o := &RootOpts{Jobs: -2}
	err := o.Apply(config.Default(), func(name string) bool { return name == FlagJobs })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jobs must not be negative")
}
