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

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/symstrip/cmd/symstrip/opts"
	"github.com/walteh/symstrip/pkg/batch"
	"github.com/walteh/symstrip/pkg/config"
	"github.com/walteh/symstrip/pkg/discover"
	"github.com/walteh/symstrip/pkg/log"
	"github.com/walteh/symstrip/pkg/symbols"
)

// newRootCmd creates the symstrip command
func newRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "symstrip [flags] [roots...]",
		Short: "Remove imports and annotations of unwanted symbols from Java sources",
		Long: `symstrip walks the given roots (the working directory by default), picks up
every .java file, and removes the imports naming a symbol that matches one of
the patterns. With --annotations the matching annotations go too.

Files are split evenly across a fixed pool of workers. A file that fails does
not stop the others; all failures are reported together at the end.`,
		Example: `  symstrip -p 'org.junit.**' -a src/test
  symstrip --dry-run -p 'javax.annotation.*' -j 4 .`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(o.Debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args)
		},
	}

	addRootFlags(cmd, o)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds the flags of the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, opts.FlagConfig, "c", "", "config file path (default: .symstrip.hcl, .yaml or .json if present)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, opts.FlagDebug, "d", false, "enable debug logging")

	cmd.Flags().BoolVarP(&o.Annotations, opts.FlagAnnotations, "a", false, "also remove annotations naming a removed symbol")
	cmd.Flags().BoolVar(&o.DryRun, opts.FlagDryRun, false, "print a diff instead of writing files")
	cmd.Flags().StringArrayVarP(&o.Patterns, opts.FlagPattern, "p", nil, "symbol glob to remove, e.g. 'org.junit.**' (repeatable)")
	cmd.Flags().IntVarP(&o.Jobs, opts.FlagJobs, "j", 0, "number of workers (default: one per CPU)")
	cmd.Flags().StringVar(&o.Extension, opts.FlagExtension, config.DefaultExtension, "suffix of files picked up from directories")
	cmd.Flags().StringArrayVarP(&o.Exclude, opts.FlagExclude, "x", nil, "glob, relative to each root, excluded from directory walks (repeatable)")
}

// setupLogging sets the global level; the logger itself lives in the command context
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// run strips every file under args and returns the aggregate failure, if any
func run(cmd *cobra.Command, o *opts.RootOpts, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	cfg, err := config.Resolve(ctx, ".", o.ConfigFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	if err := o.Apply(cfg, cmd.Flags().Changed); err != nil {
		return errors.Errorf("applying flags: %w", err)
	}
	logger.Debug().Stringer("config", cfg).Strs("roots", args).Msg("resolved configuration")

	console := log.New(cmd.OutOrStdout(), zerolog.GlobalLevel())

	fs := discover.OSFS()
	discoverer := discover.New(fs,
		discover.WithSuffix(cfg.Extension),
		discover.WithExclude(cfg.Exclude...),
	)
	runner := batch.NewRunner[symbols.Options](symbols.NewRemover(fs, console), cfg.Workers())

	console.Header(cfg.String())
	if len(cfg.Patterns) == 0 {
		console.Warning("no patterns given, nothing will be removed")
	}

	report, err := batch.Drive(ctx, discoverer, runner, args, cfg.Options())
	if err != nil {
		return err
	}

	NewUserLogger(ctx).LogReport(report, console.Changed())
	return nil
}
