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
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/symstrip/pkg/partition"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🔧 Processor is the per-file operation a run applies.
// It is called concurrently from different workers and must not retain opts.
type Processor[O any] interface {
	Process(ctx context.Context, path string, opts O) error
}

// ProcessorFunc adapts a function to Processor
type ProcessorFunc[O any] func(ctx context.Context, path string, opts O) error

// Process calls f
func (f ProcessorFunc[O]) Process(ctx context.Context, path string, opts O) error {
	return f(ctx, path, opts)
}

// DefaultWorkers is the number of CPUs, never less than one
func DefaultWorkers() int {
	return max(1, runtime.NumCPU())
}

// 🏃 Runner executes a Processor over a file list on a fixed pool
type Runner[O any] struct {
	processor Processor[O]
	workers   int
}

// 🏗️ NewRunner creates a runner with the given pool size, floored to one
func NewRunner[O any](processor Processor[O], workers int) *Runner[O] {
	return &Runner[O]{
		processor: processor,
		workers:   max(1, workers),
	}
}

// Workers returns the pool size
func (r *Runner[O]) Workers() int {
	return r.workers
}

// 🏃 Run processes files and blocks until every worker has returned.
//
// Each worker owns one contiguous slice of files and walks it in order. A
// failing or panicking file is recorded and the worker moves on to the next
// one, so every file is attempted exactly once.
func (r *Runner[O]) Run(ctx context.Context, files []string, opts O) *Report {
	logger := zerolog.Ctx(ctx)
	started := time.Now()

	slices := partition.Compute(len(files), r.workers)
	parts := partition.Split(files, r.workers)
	failures := &FailureLog{}
	processed := make([]int, len(parts))

	logger.Debug().
		Int("files", len(files)).
		Int("workers", len(slices)).
		Msg("starting worker pool")

	var g errgroup.Group
	for id, work := range parts {
		g.Go(func() error {
			processed[id] = r.work(ctx, id, work, opts, failures)
			return nil
		})
	}
	// workers never return an error, Wait is only the join barrier
	_ = g.Wait()

	report := &Report{
		Files:    len(files),
		Workers:  len(slices),
		Slices:   slices,
		Failures: failures.Drain(),
		Duration: time.Since(started),
	}
	for _, n := range processed {
		report.Processed += n
	}

	logger.Info().
		Int("files", report.Files).
		Int("workers", report.Workers).
		Int("failures", len(report.Failures)).
		Dur("duration", report.Duration).
		Msg("batch complete")

	return report
}

// work processes one slice and returns the number of Process invocations
func (r *Runner[O]) work(ctx context.Context, id int, files []string, opts O, failures *FailureLog) int {
	wlog := zerolog.Ctx(ctx).With().Int("worker", id).Logger()
	if len(files) == 0 {
		wlog.Debug().Msg("worker idle")
		return 0
	}
	wctx := wlog.WithContext(ctx)

	for _, path := range files {
		wlog.Debug().Str("path", path).Msg("processing file")
		if err := r.processOne(wctx, path, opts); err != nil {
			wlog.Warn().Err(err).Str("path", path).Msg("processing file failed")
			failures.Record(fmt.Sprintf("%s: %v", path, err))
		}
	}

	return len(files)
}

func (r *Runner[O]) processOne(ctx context.Context, path string, opts O) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("panic: %v", rec)
		}
	}()
	return r.processor.Process(ctx, path, opts)
}
