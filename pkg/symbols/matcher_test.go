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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		symbol  string
		want    bool
	}{
		{name: "double_star_direct_child", pattern: "org.junit.**", symbol: "org.junit.Test", want: true},
		{name: "double_star_nested", pattern: "org.junit.**", symbol: "org.junit.jupiter.api.Test", want: true},
		{name: "double_star_respects_segments", pattern: "org.junit.**", symbol: "org.junitx.Foo", want: false},
		{name: "single_star_direct_child", pattern: "org.junit.*", symbol: "org.junit.Test", want: true},
		{name: "single_star_not_nested", pattern: "org.junit.*", symbol: "org.junit.jupiter.api.Test", want: false},
		{name: "partial_segment", pattern: "com.foo.*Test", symbol: "com.foo.BarTest", want: true},
		{name: "partial_segment_miss", pattern: "com.foo.*Test", symbol: "com.foo.Bar", want: false},
		{name: "exact", pattern: "org.junit.Test", symbol: "org.junit.Test", want: true},
		{name: "exact_is_not_prefix", pattern: "org.junit.Test", symbol: "org.junit.TestCase", want: false},
		{name: "any_package", pattern: "**.Nullable", symbol: "javax.annotation.Nullable", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher([]string{tt.pattern})
			require.NoError(t, err, "pattern should be valid")
			assert.Equal(t, tt.want, m.Match(tt.symbol), "match %q against %q", tt.symbol, tt.pattern)
		})
	}
}

func TestNewMatcher(t *testing.T) {
	m, err := NewMatcher([]string{"", "  ", "org.junit.**"})
	require.NoError(t, err)
	assert.False(t, m.Empty(), "blank patterns are ignored, the rest kept")

	empty, err := NewMatcher(nil)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	assert.False(t, empty.Match("org.junit.Test"), "no patterns match nothing")

	_, err = NewMatcher([]string{"org.[junit"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid symbol pattern "org.[junit"`)
}
