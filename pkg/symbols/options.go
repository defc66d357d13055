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

// ⚙️ Options controls what the Remover strips from each file
type Options struct {
	Patterns    []string // Symbol globs such as org.junit.** or com.foo.*Test
	Annotations bool     // Also remove annotations naming a removed symbol
	DryRun      bool     // Print a diff instead of writing
}
