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

import (
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var importLine = regexp.MustCompile(`^\s*import\s+(static\s+)?([\w$.]+(?:\.\*)?)\s*;\s*$`)

// 📄 Result is the outcome of stripping one source text
type Result struct {
	Output      string
	Imports     []string // Qualified names of the removed imports
	Annotations []string // Names of the removed annotations, as written
}

// Changed reports whether anything was removed
func (r *Result) Changed() bool {
	return len(r.Imports)+len(r.Annotations) > 0
}

type span struct {
	start, end int
	trim       bool // also drop the blanks that follow
}

// stripper is a single pass scanner over Java source. It understands just
// enough of the lexical grammar to skip comments and literals.
type stripper struct {
	src         string
	matcher     *Matcher
	annotations bool

	spans    []span
	imported map[string]bool // simple names brought in by removed imports
	result   Result
}

// 🔪 Strip removes imports matching m from src, and with annotations set also
// removes annotations whose name matches m or was imported by a removed import.
func Strip(src string, m *Matcher, annotations bool) (*Result, error) {
	s := &stripper{
		src:         src,
		matcher:     m,
		annotations: annotations,
		imported:    map[string]bool{},
	}
	if err := s.scan(); err != nil {
		return nil, err
	}
	s.result.Output = s.apply()
	return &s.result, nil
}

func (s *stripper) scan() error {
	src := s.src
	n := len(src)

	for i := 0; i < n; {
		if i == 0 || src[i-1] == '\n' {
			if end, ok := s.importAt(i); ok {
				i = end
				continue
			}
		}

		switch c := src[i]; {
		case strings.HasPrefix(src[i:], "//"):
			i = skipLineComment(src, i)
		case strings.HasPrefix(src[i:], "/*"):
			i = skipBlockComment(src, i)
		case strings.HasPrefix(src[i:], `"""`):
			i = skipTextBlock(src, i)
		case c == '"' || c == '\'':
			i = skipQuoted(src, i)
		case c == '@' && s.annotations:
			end, err := s.annotationAt(i)
			if err != nil {
				return err
			}
			i = end
		default:
			i++
		}
	}
	return nil
}

// importAt checks the line starting at i for a removable import and returns
// the offset just past it
func (s *stripper) importAt(i int) (int, bool) {
	lineEnd := strings.IndexByte(s.src[i:], '\n')
	next := len(s.src)
	if lineEnd >= 0 {
		next = i + lineEnd + 1
		lineEnd += i
	} else {
		lineEnd = len(s.src)
	}

	match := importLine.FindStringSubmatch(s.src[i:lineEnd])
	if match == nil || !s.matcher.Match(match[2]) {
		return 0, false
	}

	name := match[2]
	s.spans = append(s.spans, span{start: i, end: next})
	s.result.Imports = append(s.result.Imports, name)
	if simple := name[strings.LastIndexByte(name, '.')+1:]; simple != "*" {
		s.imported[simple] = true
	}
	return next, true
}

// annotationAt handles the '@' at i and returns where scanning resumes
func (s *stripper) annotationAt(i int) (int, error) {
	src := s.src
	j := i + 1
	for j < len(src) && isIdentStart(src[j]) {
		for j < len(src) && isIdentPart(src[j]) {
			j++
		}
		if j+1 < len(src) && src[j] == '.' && isIdentStart(src[j+1]) {
			j++
			continue
		}
		break
	}

	name := src[i+1 : j]
	if name == "" || name == "interface" {
		return j, nil
	}
	if !s.matcher.Match(name) && !s.imported[name] {
		return j, nil
	}

	end := j
	k := j
	for k < len(src) && (src[k] == ' ' || src[k] == '\t') {
		k++
	}
	if k < len(src) && src[k] == '(' {
		closed, ok := balancedParen(src, k)
		if !ok {
			return 0, errors.Errorf("unbalanced parentheses in annotation @%s at line %d", name, lineOf(src, i))
		}
		end = closed
	}

	s.spans = append(s.spans, span{start: i, end: end, trim: true})
	s.result.Annotations = append(s.result.Annotations, name)
	return end, nil
}

// apply removes every span. Trailing blanks after a removed annotation go
// with it, and a line left blank by removals is dropped entirely.
func (s *stripper) apply() string {
	if len(s.spans) == 0 {
		return s.src
	}

	src := s.src
	removed := make([]bool, len(src))
	for _, sp := range s.spans {
		end := sp.end
		for sp.trim && end < len(src) && (src[end] == ' ' || src[end] == '\t') {
			end++
		}
		for k := sp.start; k < end; k++ {
			removed[k] = true
		}
	}

	var out strings.Builder
	out.Grow(len(src))
	for start := 0; start < len(src); {
		end := strings.IndexByte(src[start:], '\n')
		if end < 0 {
			end = len(src)
		} else {
			end += start + 1
		}

		var kept strings.Builder
		touched := false
		for k := start; k < end; k++ {
			if removed[k] {
				touched = true
				continue
			}
			kept.WriteByte(src[k])
		}

		if !touched || strings.TrimSpace(kept.String()) != "" {
			out.WriteString(kept.String())
		}
		start = end
	}
	return out.String()
}

func balancedParen(src string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(src); {
		switch c := src[i]; {
		case strings.HasPrefix(src[i:], "//"):
			i = skipLineComment(src, i)
		case strings.HasPrefix(src[i:], "/*"):
			i = skipBlockComment(src, i)
		case strings.HasPrefix(src[i:], `"""`):
			i = skipTextBlock(src, i)
		case c == '"' || c == '\'':
			i = skipQuoted(src, i)
		case c == '(':
			depth++
			i++
		case c == ')':
			depth--
			i++
			if depth == 0 {
				return i, true
			}
		default:
			i++
		}
	}
	return 0, false
}

func skipLineComment(src string, i int) int {
	if end := strings.IndexByte(src[i:], '\n'); end >= 0 {
		return i + end
	}
	return len(src)
}

func skipBlockComment(src string, i int) int {
	if end := strings.Index(src[i+2:], "*/"); end >= 0 {
		return i + 2 + end + 2
	}
	return len(src)
}

func skipTextBlock(src string, i int) int {
	for j := i + 3; j < len(src); j++ {
		if src[j] == '\\' {
			j++
			continue
		}
		if strings.HasPrefix(src[j:], `"""`) {
			return j + 3
		}
	}
	return len(src)
}

// skipQuoted skips a string or char literal. Literals cannot span lines, so an
// unterminated one stops at the newline.
func skipQuoted(src string, i int) int {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j + 1
		case '\n':
			return j
		}
	}
	return len(src)
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func lineOf(src string, i int) int {
	return strings.Count(src[:i], "\n") + 1
}
