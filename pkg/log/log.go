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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	nameWidth    = 35 // Base width for filename
	removedWidth = 22 // Width for the removal summary
	statusWidth  = 10 // Width for status text
)

// 🎯 FileChange describes what the transform did to one file
type FileChange struct {
	Path        string // File path
	Imports     int    // Import lines removed
	Annotations int    // Annotations removed
	IsDryRun    bool   // Nothing was written
}

// Changed reports whether anything was (or would be) removed
func (c FileChange) Changed() bool {
	return c.Imports+c.Annotations > 0
}

// Status is the short label shown for the change
func (c FileChange) Status() string {
	switch {
	case !c.Changed():
		return "no change"
	case c.IsDryRun:
		return "DRY RUN"
	default:
		return "STRIPPED"
	}
}

// 🎯 Logger writes user facing output to a console and mirrors it to zerolog.
// It is shared by all workers of a run.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	changed int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 formatFileChange formats a file change for display
func (l *Logger) formatFileChange(change FileChange) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case !change.Changed():
		symbol = '•'
		symbolColor = color.FgCyan
	case change.IsDryRun:
		symbol = '?'
		symbolColor = color.FgYellow
	default:
		symbol = '✗'
		symbolColor = color.FgRed
	}

	removed := fmt.Sprintf("-%d imports -%d annot", change.Imports, change.Annotations)

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, change.Path),
		color.New(color.FgBlue).Sprint(fmt.Sprintf("%-*s", removedWidth, removed)),
		fmt.Sprintf("%-*s", statusWidth, change.Status()))
}

// 📝 LogFileChange prints one file change
func (l *Logger) LogFileChange(ctx context.Context, change FileChange) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writeFileChange(change)
}

// 📝 LogDryRun prints a file change followed by its line diff as one block
func (l *Logger) LogDryRun(ctx context.Context, change FileChange, diff string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writeFileChange(change)
	l.writeDiff(change.Path, diff)
}

// writeFileChange expects l.mu to be held
func (l *Logger) writeFileChange(change FileChange) {
	if change.Changed() {
		l.changed++
	}

	fmt.Fprintln(l.console, l.formatFileChange(change))

	l.zlog.Debug().
		Str("file", change.Path).
		Int("imports", change.Imports).
		Int("annotations", change.Annotations).
		Bool("dry_run", change.IsDryRun).
		Msg("file change")
}

// writeDiff expects l.mu to be held
func (l *Logger) writeDiff(path string, diff string) {
	if diff == "" {
		return
	}

	fmt.Fprintf(l.console, "%s %s\n",
		color.New(color.Bold).Sprint("---"),
		color.New(color.FgCyan).Sprint(path))

	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(l.console, color.New(color.FgRed).Sprint(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(l.console, color.New(color.FgGreen).Sprint(line))
		default:
			fmt.Fprintln(l.console, line)
		}
	}
}

// Changed returns the number of files reported as changed so far
func (l *Logger) Changed() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.changed
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("symstrip")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}
