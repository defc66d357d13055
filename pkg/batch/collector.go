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

import "sync"

// 📥 FailureLog is an append-only list of failure messages shared by all
// workers of one run.
//
// Messages are kept in the order Record was called, which is completion order
// and differs between runs.
type FailureLog struct {
	mu       sync.Mutex
	messages []string
}

// Record appends msg. Safe for concurrent use.
func (l *FailureLog) Record(msg string) {
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
}

// Len returns the number of recorded messages
func (l *FailureLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}

// Drain returns every recorded message and empties the log.
// Callers must only drain once all writers have stopped.
func (l *FailureLog) Drain() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.messages
	l.messages = nil
	return out
}
