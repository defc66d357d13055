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
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/symstrip/pkg/log"
)

const testSource = `package a;

import org.junit.Test;
import java.util.List;

class ATest {
    @Test
    public void works() {}
}
`

func setupRemover(t *testing.T, files map[string]string) (billy.Filesystem, *Remover, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	fs := memfs.New()
	for path, content := range files {
		require.NoError(t, util.WriteFile(fs, path, []byte(content), 0o640))
	}
	buf := &bytes.Buffer{}
	return fs, NewRemover(fs, log.New(buf, zerolog.Disabled)), buf
}

func testContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func readFile(t *testing.T, fs billy.Filesystem, path string) string {
	t.Helper()
	data, err := util.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestRemoverWritesStrippedFile(t *testing.T) {
	fs, r, console := setupRemover(t, map[string]string{"/src/ATest.java": testSource})

	err := r.Process(testContext(t), "/src/ATest.java", Options{
		Patterns:    []string{"org.junit.**"},
		Annotations: true,
	})
	require.NoError(t, err)

	assert.Equal(t, `package a;

import java.util.List;

class ATest {
    public void works() {}
}
`, readFile(t, fs, "/src/ATest.java"))

	info, err := fs.Stat("/src/ATest.java")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm(), "permissions should be preserved")

	_, err = fs.Stat("/src/ATest.java" + tempSuffix)
	assert.True(t, os.IsNotExist(err), "temp file should be gone")

	assert.Contains(t, console.String(), "STRIPPED")
	assert.Contains(t, console.String(), "-1 imports -1 annot")
}

func TestRemoverDryRun(t *testing.T) {
	fs, r, console := setupRemover(t, map[string]string{"/src/ATest.java": testSource})

	err := r.Process(testContext(t), "/src/ATest.java", Options{
		Patterns:    []string{"org.junit.**"},
		Annotations: true,
		DryRun:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, testSource, readFile(t, fs, "/src/ATest.java"), "dry run must not write")

	out := console.String()
	assert.Contains(t, out, "DRY RUN")
	assert.Contains(t, out, "--- /src/ATest.java")
	assert.Contains(t, out, "-import org.junit.Test;")
	assert.Contains(t, out, "-    @Test")
}

func TestRemoverUnchangedFile(t *testing.T) {
	src := "class Plain {}\n"
	fs, r, console := setupRemover(t, map[string]string{"/Plain.java": src})

	err := r.Process(testContext(t), "/Plain.java", Options{Patterns: []string{"org.junit.**"}, Annotations: true})
	require.NoError(t, err)

	assert.Equal(t, src, readFile(t, fs, "/Plain.java"))
	assert.Empty(t, console.String(), "untouched files are not reported")
}

func TestRemoverErrors(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		opts        Options
		errContains string
	}{
		{
			name:        "missing_file",
			path:        "/nope.java",
			opts:        Options{Patterns: []string{"org.junit.**"}},
			errContains: "stat:",
		},
		{
			name:        "invalid_pattern",
			path:        "/Broken.java",
			opts:        Options{Patterns: []string{"org.[junit"}},
			errContains: "invalid symbol pattern",
		},
		{
			name:        "unbalanced_annotation",
			path:        "/Broken.java",
			opts:        Options{Patterns: []string{"org.junit.**"}, Annotations: true},
			errContains: "unbalanced parentheses",
		},
	}

	broken := "class Broken {\n    @org.junit.Test(timeout = \n}\n"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, r, _ := setupRemover(t, map[string]string{"/Broken.java": broken})

			err := r.Process(testContext(t), tt.path, tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.NotContains(t, err.Error(), tt.path, "the caller adds the path")

			assert.Equal(t, broken, readFile(t, fs, "/Broken.java"), "failed files are left untouched")
		})
	}
}
