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

// Package partition splits a list of work items into contiguous, near-equal
// slices, one per worker.
package partition

import "fmt"

// 📏 Slice is the half-open range [Begin, Begin+Length) owned by one worker
type Slice struct {
	Begin  int
	Length int
}

// End returns the exclusive end of the slice
func (s Slice) End() int {
	return s.Begin + s.Length
}

// Empty reports whether the worker owning this slice has nothing to do
func (s Slice) Empty() bool {
	return s.Length == 0
}

func (s Slice) String() string {
	return fmt.Sprintf("[%d,%d)", s.Begin, s.End())
}

// 🔪 Compute splits total items across workers.
//
// Exactly max(workers, 1) slices are returned, in increasing order with no gaps.
// The first total%workers slices get one extra item, so lengths never differ by
// more than one. Slices may be empty when total < workers.
func Compute(total, workers int) []Slice {
	if workers < 1 {
		workers = 1
	}
	if total < 0 {
		total = 0
	}

	base := total / workers
	remainder := total % workers

	slices := make([]Slice, workers)
	begin := 0
	for i := range slices {
		length := base
		if i < remainder {
			length++
		}
		slices[i] = Slice{Begin: begin, Length: length}
		begin += length
	}

	return slices
}

// Split applies Compute to items and returns one sub-slice per worker.
//
// The sub-slices share the backing array of items and are capacity-capped, so
// appending to one can never write into a neighbour's range.
func Split[T any](items []T, workers int) [][]T {
	slices := Compute(len(items), workers)
	out := make([][]T, len(slices))
	for i, s := range slices {
		out[i] = items[s.Begin:s.End():s.End()]
	}
	return out
}
