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
	"strings"
	"time"

	"github.com/walteh/symstrip/pkg/partition"
)

const aggregateHeader = "errors occurred while processing files:"

// 📊 Report summarises a finished run
type Report struct {
	Files     int               // Files handed to the pool
	Workers   int               // Pool size, idle workers included
	Slices    []partition.Slice // Slice owned by each worker
	Processed int               // Process invocations across all workers
	Failures  []string          // One message per failed file, completion order
	Duration  time.Duration
}

// Success reports whether no file failed
func (r *Report) Success() bool {
	return len(r.Failures) == 0
}

// Err returns nil on success and an *AggregateError otherwise
func (r *Report) Err() error {
	if r.Success() {
		return nil
	}
	return &AggregateError{Messages: r.Failures}
}

// ❌ AggregateError carries every per-file failure of a run
type AggregateError struct {
	Messages []string
}

// Error renders a header followed by one bullet line per failure
func (e *AggregateError) Error() string {
	var b strings.Builder
	b.WriteString(aggregateHeader)
	for _, msg := range e.Messages {
		b.WriteString("\n* ")
		b.WriteString(msg)
	}
	return b.String()
}
