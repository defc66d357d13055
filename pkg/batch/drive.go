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

package batch

import (
	"context"

	"github.com/rs/zerolog"
)

// 🔍 Discoverer produces the files of a run
type Discoverer interface {
	Discover(ctx context.Context, roots []string) ([]string, error)
}

// 🚀 Drive discovers the files under roots and runs them through r.
//
// A discovery error is returned as is and no worker is started. Otherwise the
// report is always returned, together with report.Err().
func Drive[O any](ctx context.Context, d Discoverer, r *Runner[O], roots []string, opts O) (*Report, error) {
	files, err := d.Discover(ctx, roots)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Strs("roots", roots).Int("files", len(files)).Msg("discovered files")

	report := r.Run(ctx, files, opts)
	return report, report.Err()
}
