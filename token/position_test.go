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

package token

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestNoSpanIsInvalid(t *testing.T) {
	qt.Assert(t, qt.IsTrue(!NoSpan.IsValid()))
	qt.Assert(t, qt.Equals(NoSpan.Text(), ""))
}

func TestSpanText(t *testing.T) {
	src := "let x = 1 in x"
	s := NewSpan("test", &src, 4, 5)
	qt.Assert(t, qt.IsTrue(s.IsValid()))
	qt.Assert(t, qt.Equals(s.Text(), "x"))
	qt.Assert(t, qt.Equals(s.Start(), 4))
	qt.Assert(t, qt.Equals(s.End(), 5))
	qt.Assert(t, qt.Equals(s.Filename(), "test"))
}

func TestSpanTextClampsOutOfBounds(t *testing.T) {
	src := "abc"
	s := NewSpan("test", &src, 1, 100)
	qt.Assert(t, qt.Equals(s.Text(), "bc"))

	inverted := NewSpan("test", &src, 2, 1)
	qt.Assert(t, qt.Equals(inverted.Text(), ""))
}

func TestSpanMergeExpandsRange(t *testing.T) {
	src := "abcdef"
	a := NewSpan("test", &src, 1, 2)
	b := NewSpan("test", &src, 3, 5)
	merged := a.Merge(b)
	qt.Assert(t, qt.Equals(merged.Start(), 1))
	qt.Assert(t, qt.Equals(merged.End(), 5))
}

func TestSpanMergeWithInvalidReturnsOther(t *testing.T) {
	src := "abcdef"
	a := NewSpan("test", &src, 1, 2)
	qt.Assert(t, qt.Equals(a.Merge(NoSpan), a))
	qt.Assert(t, qt.Equals(NoSpan.Merge(a), a))
}

func TestSpanMergeDifferentSourcesPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic merging spans from different sources")
		}
	}()
	src1, src2 := "abc", "abc"
	a := NewSpan("a", &src1, 0, 1)
	b := NewSpan("b", &src2, 0, 1)
	a.Merge(b)
}

func TestSpanPositionLineColumn(t *testing.T) {
	src := "abc\ndef\nghi"
	s := NewSpan("test", &src, 9, 10) // the 'h' in "ghi", line 3 col 2
	pos := s.Position()
	qt.Assert(t, qt.Equals(pos.Line, 3))
	qt.Assert(t, qt.Equals(pos.Column, 2))
}

func TestSpanPositionOfNoSpan(t *testing.T) {
	pos := NoSpan.Position()
	qt.Assert(t, qt.IsTrue(!pos.IsValid()))
}

func TestPositionString(t *testing.T) {
	p := Position{Filename: "foo.dhall", Line: 2, Column: 5}
	qt.Assert(t, qt.Equals(p.String(), "foo.dhall:2:5"))

	noFile := Position{Line: 1, Column: 1}
	qt.Assert(t, qt.Equals(noFile.String(), "1:1"))

	invalid := Position{}
	qt.Assert(t, qt.Equals(invalid.String(), "-"))
}

func TestSpanStringDelegatesToPosition(t *testing.T) {
	src := "x\ny"
	s := NewSpan("f.dhall", &src, 2, 3)
	qt.Assert(t, qt.Equals(s.String(), "f.dhall:2:1"))
}
