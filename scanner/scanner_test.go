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

package scanner

import (
	"testing"

	"github.com/dhall-lang/dhall-go/token"
	"github.com/go-quicktest/qt"
)

type elt struct {
	kind Kind
	text string
}

func scanAll(src string) []elt {
	s := New("test", src, nil)
	var got []elt
	for {
		tok := s.Scan()
		if tok.Kind == EOF {
			return got
		}
		got = append(got, elt{tok.Kind, tok.Text})
	}
}

func TestScanIdentsAndKeywords(t *testing.T) {
	got := scanAll("foo let Bool forall")
	qt.Assert(t, qt.DeepEquals(got, []elt{
		{Ident, "foo"},
		{Keyword, "let"},
		{Ident, "Bool"},
		{Forall, "forall"},
	}))
}

func TestScanNumbers(t *testing.T) {
	got := scanAll("42 +7 -3 3.14 1e10")
	qt.Assert(t, qt.DeepEquals(got, []elt{
		{NaturalLit, "42"},
		{IntegerLit, "+7"},
		{IntegerLit, "-3"},
		{DoubleLit, "3.14"},
		{DoubleLit, "1e10"},
	}))
}

func TestScanPunctuationAndOperators(t *testing.T) {
	got := scanAll("(){}[],:=@.")
	qt.Assert(t, qt.DeepEquals(got, []elt{
		{LParen, ""},
		{RParen, ""},
		{LBrace, ""},
		{RBrace, ""},
		{LBracket, ""},
		{RBracket, ""},
		{Comma, ""},
		{Colon, ""},
		{Equal, ""},
		{At, ""},
		{Dot, ""},
	}))
}

func TestScanArrowAndLambda(t *testing.T) {
	got := scanAll(`\(x : Bool) -> x`)
	qt.Assert(t, qt.DeepEquals(got, []elt{
		{Lambda, ""},
		{LParen, ""},
		{Ident, "x"},
		{Colon, ""},
		{Ident, "Bool"},
		{RParen, ""},
		{Arrow, ""},
		{Ident, "x"},
	}))
}

func TestScanUnicodeGlyphs(t *testing.T) {
	got := scanAll(`λ(x : Bool) → x`)
	qt.Assert(t, qt.DeepEquals(got, []elt{
		{Lambda, ""},
		{LParen, ""},
		{Ident, "x"},
		{Colon, ""},
		{Ident, "Bool"},
		{RParen, ""},
		{Arrow, ""},
		{Ident, "x"},
	}))
}

func TestScanDoubleQuoteLiteralPlain(t *testing.T) {
	s := New("test", `"hello"`, nil)
	tok := s.Scan()
	qt.Assert(t, qt.Equals(tok.Kind, DoubleQuoteStringPart))
	qt.Assert(t, qt.Equals(tok.Text, "hello"))
	qt.Assert(t, qt.Equals(s.Scan().Kind, EOF))
}

func TestScanDoubleQuoteLiteralWithInterpolation(t *testing.T) {
	s := New("test", `"a${x}b"`, nil)
	tok := s.Scan()
	qt.Assert(t, qt.Equals(tok.Kind, DoubleInterpStart))
	qt.Assert(t, qt.Equals(tok.Text, "a"))

	tok = s.Scan()
	qt.Assert(t, qt.Equals(tok.Kind, Ident))
	qt.Assert(t, qt.Equals(tok.Text, "x"))

	tok = s.Scan()
	qt.Assert(t, qt.Equals(tok.Kind, RBrace))

	tok = s.ResumeDoubleQuote()
	qt.Assert(t, qt.Equals(tok.Kind, DoubleQuoteStringPart))
	qt.Assert(t, qt.Equals(tok.Text, "b"))
}

func TestScanSingleQuoteLiteralWithInterpolation(t *testing.T) {
	s := New("test", "''a${x}b''", nil)
	tok := s.Scan()
	qt.Assert(t, qt.Equals(tok.Kind, SingleInterpStart))
	qt.Assert(t, qt.Equals(tok.Text, "a"))

	tok = s.Scan()
	qt.Assert(t, qt.Equals(tok.Kind, Ident))
	qt.Assert(t, qt.Equals(tok.Text, "x"))

	tok = s.Scan()
	qt.Assert(t, qt.Equals(tok.Kind, RBrace))

	tok = s.ResumeSingleQuote()
	qt.Assert(t, qt.Equals(tok.Kind, SingleQuoteStringPart))
	qt.Assert(t, qt.Equals(tok.Text, "b"))
}

func TestScanBacktickLabel(t *testing.T) {
	got := scanAll("`let`")
	qt.Assert(t, qt.DeepEquals(got, []elt{{Ident, "let"}}))
}

func TestScanComments(t *testing.T) {
	got := scanAll("x -- line comment\ny {- block {- nested -} comment -} z")
	qt.Assert(t, qt.DeepEquals(got, []elt{
		{Ident, "x"},
		{Ident, "y"},
		{Ident, "z"},
	}))
}

func TestScanIllegalCharacter(t *testing.T) {
	var errs []string
	s := New("test", "x \x01 y", func(_ token.Span, msg string) {
		errs = append(errs, msg)
	})
	got := scanAllFrom(s)
	qt.Assert(t, qt.DeepEquals(got, []elt{
		{Ident, "x"},
		{Illegal, ""},
		{Ident, "y"},
	}))
	qt.Assert(t, qt.Equals(len(errs), 1))
}

func scanAllFrom(s *Scanner) []elt {
	var got []elt
	for {
		tok := s.Scan()
		if tok.Kind == EOF {
			return got
		}
		got = append(got, elt{tok.Kind, tok.Text})
	}
}
