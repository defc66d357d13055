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

package symbols

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Matcher tests qualified Java names against symbol globs.
//
// Dots are treated as path separators, so * stays inside one package segment
// and ** spans any number of them.
type Matcher struct {
	patterns []string
}

// NewMatcher validates and compiles patterns
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		glob := toPath(strings.TrimSpace(p))
		if glob == "" {
			continue
		}
		if !doublestar.ValidatePattern(glob) {
			return nil, errors.Errorf("invalid symbol pattern %q", p)
		}
		m.patterns = append(m.patterns, glob)
	}
	return m, nil
}

// Match reports whether name matches any pattern
func (m *Matcher) Match(name string) bool {
	path := toPath(name)
	for _, p := range m.patterns {
		if doublestar.MatchUnvalidated(p, path) {
			return true
		}
	}
	return false
}

// Empty reports whether there is nothing to match
func (m *Matcher) Empty() bool {
	return len(m.patterns) == 0
}

func toPath(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
