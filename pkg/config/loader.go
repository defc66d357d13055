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
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultFiles are looked up, in order, when no config file is named
var DefaultFiles = []string{
	".symstrip.hcl",
	".symstrip.yaml",
	".symstrip.yml",
	".symstrip.json",
}

// 🔍 Find returns the first of DefaultFiles present in dir, or "" if none is
func Find(dir string) (string, error) {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", errors.Errorf("checking %s: %w", path, err)
		}
	}
	return "", nil
}

// 🎯 Resolve loads path when it is set. Otherwise it loads the first default
// file in dir, falling back to Default when there is none.
func Resolve(ctx context.Context, dir, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}

	found, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if found == "" {
		zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no config file, using defaults")
		return Default(), nil
	}
	return Load(ctx, found)
}
