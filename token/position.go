// Copyright 2026 The Dhall-Go Authors
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

// Package token describes source positions for the Dhall parser: byte
// ranges into an original source string ("spans"), and the human-readable
// line/column form of a point within one.
package token

import "fmt"

// Span is a byte range [Start, End) into an original source string, plus a
// shared handle to that string and an optional filename. Every node the
// parser builds carries a Span as its note; note-free trees (ast.DhallExpr)
// carry none, while ast.ResolvedExpr keeps the Spans.
//
// Two Spans referring to the same range of the same source compare equal;
// AST equality ignores Spans entirely (see ast.SubExpr.Equal), so Span is
// only ever consulted for diagnostics.
type Span struct {
	filename string
	source   *string
	start    int
	end      int
}

// NoSpan is the zero value of Span; it carries no source text.
var NoSpan = Span{}

// NewSpan builds a Span over [start, end) of source, tagged with filename
// for diagnostics. source is shared by every Span built from the same
// parse, never copied.
func NewSpan(filename string, source *string, start, end int) Span {
	return Span{filename: filename, source: source, start: start, end: end}
}

// IsValid reports whether s carries an actual source range.
func (s Span) IsValid() bool { return s.source != nil }

// Start returns the byte offset of the first byte in the span.
func (s Span) Start() int { return s.start }

// End returns the byte offset one past the last byte in the span.
func (s Span) End() int { return s.end }

// Filename returns the name associated with the span's source, if any.
func (s Span) Filename() string { return s.filename }

// Text returns the source text covered by the span, or "" if the span is
// invalid or out of bounds.
func (s Span) Text() string {
	if s.source == nil {
		return ""
	}
	src := *s.source
	start, end := s.start, s.end
	if start < 0 {
		start = 0
	}
	if end > len(src) {
		end = len(src)
	}
	if start > end {
		return ""
	}
	return src[start:end]
}

// Merge returns the smallest span covering both s and other. Both must
// share the same source; Merge panics otherwise, as merging spans from two
// different parses is always a bug in the caller.
func (s Span) Merge(other Span) Span {
	if !s.IsValid() {
		return other
	}
	if !other.IsValid() {
		return s
	}
	if s.source != other.source {
		panic("token: Merge of spans from different sources")
	}
	start, end := s.start, s.end
	if other.start < start {
		start = other.start
	}
	if other.end > end {
		end = other.end
	}
	return Span{filename: s.filename, source: s.source, start: start, end: end}
}

// Position computes the human-readable line/column of the span's start.
func (s Span) Position() Position {
	if s.source == nil {
		return Position{}
	}
	return positionFor(s.filename, *s.source, s.start)
}

// String renders the span as "file:line:col" (or "line:col" without a
// filename), matching Position.String.
func (s Span) String() string {
	return s.Position().String()
}

// Position describes an arbitrary, printable source position: a byte
// offset plus its 1-based line and column (column counts bytes, matching
// the rest of the Dhall toolchain's diagnostics).
//
// A Position is valid if Line > 0.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// IsValid reports whether the position is valid.
func (p Position) IsValid() bool { return p.Line > 0 }

// String returns a human-readable rendering of the position.
func (p Position) String() string {
	s := p.Filename
	if p.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// positionFor computes the 1-based line/column of offset within src by
// counting newlines. Diagnostics are rare relative to parses, so this
// trades the line-offset table cue/token.File maintains for a direct O(n)
// scan done only when an error is actually rendered.
func positionFor(filename, src string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Filename: filename, Offset: offset, Line: line, Column: col}
}
