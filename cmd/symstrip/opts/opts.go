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

package opts

import (
	"github.com/walteh/symstrip/pkg/config"
)

// Flag names shared by the command and Apply
const (
	FlagConfig      = "config"
	FlagDebug       = "debug"
	FlagAnnotations = "annotations"
	FlagDryRun      = "dry-run"
	FlagPattern     = "pattern"
	FlagJobs        = "jobs"
	FlagExtension   = "extension"
	FlagExclude     = "exclude"
)

// RootOpts holds the raw flag values of the root command
type RootOpts struct {
	ConfigFile  string
	Debug       bool
	Annotations bool
	DryRun      bool
	Patterns    []string
	Jobs        int
	Extension   string
	Exclude     []string
}

// Apply overrides cfg with every flag the user set explicitly and validates
// the result. changed reports whether a flag was set, usually
// cmd.Flags().Changed.
func (o *RootOpts) Apply(cfg *config.Config, changed func(name string) bool) error {
	if changed(FlagAnnotations) {
		cfg.Annotations = o.Annotations
	}
	if changed(FlagDryRun) {
		cfg.DryRun = o.DryRun
	}
	if changed(FlagPattern) {
		cfg.Patterns = append([]string(nil), o.Patterns...)
	}
	if changed(FlagJobs) {
		cfg.Jobs = o.Jobs
	}
	if changed(FlagExtension) {
		cfg.Extension = o.Extension
	}
	if changed(FlagExclude) {
		cfg.Exclude = append([]string(nil), o.Exclude...)
	}
	return cfg.Validate()
}
