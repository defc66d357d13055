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
	"context"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/symstrip/pkg/log"
)

const tempSuffix = ".symstrip.tmp"

// 🔪 Remover strips symbols from one Java file per Process call.
// It holds no per-file state and is safe to share between workers.
type Remover struct {
	fs      billy.Filesystem
	console *log.Logger
}

// 🏗️ NewRemover creates a Remover that reads and writes through fs and
// reports every processed file to console
func NewRemover(fs billy.Filesystem, console *log.Logger) *Remover {
	return &Remover{
		fs:      fs,
		console: console,
	}
}

// Process strips the file at path according to opts.
// Returned errors do not name the path, the caller does that.
func (r *Remover) Process(ctx context.Context, path string, opts Options) error {
	logger := zerolog.Ctx(ctx)

	matcher, err := NewMatcher(opts.Patterns)
	if err != nil {
		return err
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		return errors.Errorf("stat: %w", err)
	}

	data, err := util.ReadFile(r.fs, path)
	if err != nil {
		return errors.Errorf("reading file: %w", err)
	}

	result, err := Strip(string(data), matcher, opts.Annotations)
	if err != nil {
		return err
	}

	change := log.FileChange{
		Path:        path,
		Imports:     len(result.Imports),
		Annotations: len(result.Annotations),
		IsDryRun:    opts.DryRun,
	}

	if !result.Changed() {
		logger.Debug().Str("path", path).Msg("nothing to strip")
		return nil
	}

	if opts.DryRun {
		r.console.LogDryRun(ctx, change, LineDiff(string(data), result.Output))
		return nil
	}

	if err := r.writeAtomic(path, []byte(result.Output), info.Mode().Perm()); err != nil {
		return err
	}

	logger.Debug().
		Str("path", path).
		Strs("imports", result.Imports).
		Strs("annotations", result.Annotations).
		Msg("stripped file")
	r.console.LogFileChange(ctx, change)
	return nil
}

// writeAtomic writes to a sibling temp file and renames it over path
func (r *Remover) writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp := path + tempSuffix
	if err := util.WriteFile(r.fs, tmp, data, perm); err != nil {
		_ = r.fs.Remove(tmp)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := r.fs.Rename(tmp, path); err != nil {
		_ = r.fs.Remove(tmp)
		return errors.Errorf("replacing file: %w", err)
	}
	return nil
}
