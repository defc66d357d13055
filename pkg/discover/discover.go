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

// Package discover turns a list of roots into the ordered list of files a batch
// run will process.
package discover

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultRoot is walked when no roots are given
	DefaultRoot = "."
	// DefaultSuffix selects files during directory walks
	DefaultSuffix = ".java"
)

// ❌ Error reports a root or entry that could not be discovered.
// Any Error aborts the whole run.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("discovering %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// 🔍 Discoverer walks roots on a filesystem
type Discoverer struct {
	fs      billy.Filesystem
	suffix  string
	exclude []string
}

// Option configures a Discoverer
type Option func(*Discoverer)

// WithSuffix sets the suffix directory entries must end with
func WithSuffix(suffix string) Option {
	return func(d *Discoverer) {
		d.suffix = suffix
	}
}

// WithExclude sets doublestar globs, relative to each directory root, that are
// skipped during walks. Matching directories are pruned.
func WithExclude(patterns ...string) Option {
	return func(d *Discoverer) {
		d.exclude = append(d.exclude, patterns...)
	}
}

// 🏭 New creates a discoverer over fs
func New(fs billy.Filesystem, opts ...Option) *Discoverer {
	d := &Discoverer{
		fs:     fs,
		suffix: DefaultSuffix,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// 🔍 Discover returns the files under roots.
//
// A root that is a regular file is returned as is. A directory root is walked
// recursively and only regular files ending with the configured suffix are
// kept. Roots keep their given order and each directory is listed in lexical
// order, so the result is stable for an unchanged tree.
func (d *Discoverer) Discover(ctx context.Context, roots []string) ([]string, error) {
	if len(roots) == 0 {
		roots = []string{DefaultRoot}
	}

	logger := zerolog.Ctx(ctx)
	files := make([]string, 0, 256)

	for _, root := range roots {
		info, err := d.fs.Stat(root)
		if err != nil {
			return nil, &Error{Path: root, Err: err}
		}

		switch {
		case info.Mode().IsRegular():
			files = append(files, root)
		case info.IsDir():
			found, err := d.walk(root)
			if err != nil {
				return nil, err
			}
			logger.Debug().Str("root", root).Int("files", len(found)).Msg("walked root")
			files = append(files, found...)
		default:
			return nil, &Error{Path: root, Err: errors.Errorf("not a regular file or directory (mode %s)", info.Mode())}
		}
	}

	return files, nil
}

func (d *Discoverer) walk(root string) ([]string, error) {
	var files []string

	visit := func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return &Error{Path: path, Err: walkErr}
		}

		if path != root && d.isExcluded(root, path) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		if strings.HasSuffix(path, d.suffix) {
			files = append(files, path)
		}
		return nil
	}

	starts, err := d.walkStarts(root)
	if err != nil {
		return nil, err
	}

	for _, start := range starts {
		if err := util.Walk(d.fs, start, visit); err != nil {
			var derr *Error
			if errors.As(err, &derr) {
				return nil, derr
			}
			return nil, &Error{Path: root, Err: err}
		}
	}

	return files, nil
}

// walkStarts returns where util.Walk should begin for root. Walk never
// descends into a symlink, so a symlinked root is started from its entries.
func (d *Discoverer) walkStarts(root string) ([]string, error) {
	li, err := d.fs.Lstat(root)
	if err != nil {
		return nil, &Error{Path: root, Err: err}
	}
	if li.Mode()&os.ModeSymlink == 0 {
		return []string{root}, nil
	}

	entries, err := d.fs.ReadDir(root)
	if err != nil {
		return nil, &Error{Path: root, Err: err}
	}
	starts := make([]string, 0, len(entries))
	for _, e := range entries {
		starts = append(starts, filepath.Join(root, e.Name()))
	}
	sort.Strings(starts)
	return starts, nil
}

func (d *Discoverer) isExcluded(root, path string) bool {
	if len(d.exclude) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range d.exclude {
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}
	return false
}
