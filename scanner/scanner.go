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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhall-lang/dhall-go/token"
)

// Scanner tokenizes Dhall source text. Like cue/scanner.Scanner it reads
// one rune ahead of the token boundary it is currently deciding, and it
// does not scan the interior of a quoted text literal eagerly: when it
// meets "${" it emits a DoubleInterpStart/SingleInterpStart token and
// stops, so the parser can parse the interpolated expression and then
// call ResumeDoubleQuote/ResumeSingleQuote to pick scanning back up
// afterward, mirroring cue/scanner's INTERPOLATION/ResumeInterpolation
// split.
type Scanner struct {
	filename string
	src      string

	ch       rune
	offset   int
	rdOffset int

	err func(pos token.Span, msg string)
}

// New creates a Scanner over src. err, if non-nil, is called for lexical
// errors the scanner itself detects (unterminated literals, illegal
// bytes); the parser detects grammar-level errors on its own.
func New(filename, src string, err func(token.Span, string)) *Scanner {
	s := &Scanner{filename: filename, src: src, err: err}
	s.next()
	return s
}

func (s *Scanner) next() {
	if s.rdOffset < len(s.src) {
		s.offset = s.rdOffset
		r, w := rune(s.src[s.rdOffset]), 1
		if r >= utf8.RuneSelf {
			r, w = utf8.DecodeRuneInString(s.src[s.rdOffset:])
		}
		s.rdOffset += w
		s.ch = r
	} else {
		s.offset = len(s.src)
		s.ch = -1
	}
}

func (s *Scanner) span(start int) token.Span {
	return token.NewSpan(s.filename, &s.src, start, s.offset)
}

func (s *Scanner) errorf(start int, msg string) {
	if s.err != nil {
		s.err(s.span(start), msg)
	}
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || (unicode.IsLetter(r) && r != 'λ')
}

func isIdentPart(r rune) bool {
	return r == '_' || r == '-' || r == '/' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case isWhitespace(s.ch):
			s.next()
		case s.ch == '-' && s.peek() == '-':
			for s.ch != '\n' && s.ch != -1 {
				s.next()
			}
		case s.ch == '{' && s.peek() == '-':
			s.next()
			s.next()
			depth := 1
			for depth > 0 && s.ch != -1 {
				if s.ch == '{' && s.peek() == '-' {
					depth++
					s.next()
					s.next()
				} else if s.ch == '-' && s.peek() == '}' {
					depth--
					s.next()
					s.next()
				} else {
					s.next()
				}
			}
		default:
			return
		}
	}
}

func (s *Scanner) peek() rune {
	if s.rdOffset < len(s.src) {
		r, _ := utf8.DecodeRuneInString(s.src[s.rdOffset:])
		return r
	}
	return -1
}

// Scan returns the next token, skipping whitespace and comments first.
func (s *Scanner) Scan() Token {
	s.skipWhitespaceAndComments()
	start := s.offset

	switch {
	case s.ch == -1:
		return Token{Kind: EOF, Span: s.span(start)}
	case s.ch == '"':
		s.next()
		return s.scanDoubleQuote(start)
	case s.ch == '\'' && s.peek() == '\'':
		s.next()
		s.next()
		return s.scanSingleQuote(start)
	case s.ch == '`':
		return s.scanBacktickLabel(start)
	case isIdentStart(s.ch):
		return s.scanIdentOrKeyword(start)
	case isDigit(s.ch):
		return s.scanNumber(start)
	case s.ch == '+' && isDigit(s.peek()):
		s.next()
		return s.finishNumber(start, IntegerLit)
	case s.ch == '-' && isDigit(s.peek()):
		s.next()
		return s.finishNumber(start, IntegerLit)
	case s.ch == '-' && strings.HasPrefix(s.src[s.offset:], "-Infinity"):
		for i := 0; i < len("-Infinity"); i++ {
			s.next()
		}
		return Token{Kind: DoubleLit, Text: "-Infinity", Span: s.span(start)}
	default:
		return s.scanOperator(start)
	}
}

func (s *Scanner) scanIdentOrKeyword(start int) Token {
	for isIdentPart(s.ch) {
		s.next()
	}
	text := s.src[start:s.offset]
	kind := Ident
	switch text {
	case "forall":
		kind = Forall
	default:
		if IsKeyword(text) {
			kind = Keyword
		}
	}
	return Token{Kind: kind, Text: text, Span: s.span(start)}
}

func (s *Scanner) scanBacktickLabel(start int) Token {
	s.next()
	bodyStart := s.offset
	for s.ch != '`' && s.ch != -1 {
		s.next()
	}
	text := s.src[bodyStart:s.offset]
	if s.ch == '`' {
		s.next()
	} else {
		s.errorf(start, "unterminated backtick-quoted label")
	}
	return Token{Kind: Ident, Text: text, Span: s.span(start)}
}

func (s *Scanner) scanNumber(start int) Token {
	return s.finishNumber(start, NaturalLit)
}

func (s *Scanner) finishNumber(start int, signedKind Kind) Token {
	for isDigit(s.ch) {
		s.next()
	}
	isDouble := false
	if s.ch == '.' && isDigit(s.peek()) {
		isDouble = true
		s.next()
		for isDigit(s.ch) {
			s.next()
		}
	}
	if s.ch == 'e' || s.ch == 'E' {
		isDouble = true
		s.next()
		if s.ch == '+' || s.ch == '-' {
			s.next()
		}
		for isDigit(s.ch) {
			s.next()
		}
	}
	text := s.src[start:s.offset]
	kind := NaturalLit
	if strings.HasPrefix(text, "+") || strings.HasPrefix(text, "-") {
		kind = signedKind
	}
	if isDouble {
		kind = DoubleLit
	}
	return Token{Kind: kind, Text: text, Span: s.span(start)}
}

func (s *Scanner) scanOperator(start int) Token {
	switch s.ch {
	case '-':
		s.next()
		if s.ch == '>' {
			s.next()
			return Token{Kind: Arrow, Span: s.span(start)}
		}
	case '(':
		s.next()
		return Token{Kind: LParen, Span: s.span(start)}
	case ')':
		s.next()
		return Token{Kind: RParen, Span: s.span(start)}
	case '{':
		s.next()
		return Token{Kind: LBrace, Span: s.span(start)}
	case '}':
		s.next()
		return Token{Kind: RBrace, Span: s.span(start)}
	case '[':
		s.next()
		return Token{Kind: LBracket, Span: s.span(start)}
	case ']':
		s.next()
		return Token{Kind: RBracket, Span: s.span(start)}
	case ',':
		s.next()
		return Token{Kind: Comma, Span: s.span(start)}
	case ':':
		s.next()
		if s.ch == ':' {
			s.next()
			return Token{Kind: DoubleColon, Span: s.span(start)}
		}
		return Token{Kind: Colon, Span: s.span(start)}
	case '=':
		s.next()
		if s.ch == '=' {
			s.next()
			if s.ch == '=' {
				s.next()
				return Token{Kind: Operator, Text: "≡", Span: s.span(start)}
			}
			return Token{Kind: Operator, Text: "==", Span: s.span(start)}
		}
		return Token{Kind: Equal, Span: s.span(start)}
	case '@':
		s.next()
		return Token{Kind: At, Span: s.span(start)}
	case '.':
		s.next()
		return Token{Kind: Dot, Span: s.span(start)}
	case '?':
		s.next()
		return Token{Kind: Operator, Text: "?", Span: s.span(start)}
	case '*':
		s.next()
		return Token{Kind: Operator, Text: "*", Span: s.span(start)}
	case '#':
		s.next()
		return Token{Kind: Operator, Text: "#", Span: s.span(start)}
	case '\\':
		s.next()
		return Token{Kind: Lambda, Span: s.span(start)}
	case 'λ':
		s.next()
		return Token{Kind: Lambda, Span: s.span(start)}
	case '∀':
		s.next()
		return Token{Kind: Forall, Span: s.span(start)}
	case '→':
		s.next()
		return Token{Kind: Arrow, Span: s.span(start)}
	case '∧':
		s.next()
		return Token{Kind: Operator, Text: "∧", Span: s.span(start)}
	case '⩓':
		s.next()
		return Token{Kind: Operator, Text: "⩓", Span: s.span(start)}
	case '⫽':
		s.next()
		return Token{Kind: Operator, Text: "⫽", Span: s.span(start)}
	case '≡':
		s.next()
		return Token{Kind: Operator, Text: "≡", Span: s.span(start)}
	case '~':
		s.next()
		return Token{Kind: Tilde, Span: s.span(start)}
	case '+':
		s.next()
		if s.ch == '+' {
			s.next()
			return Token{Kind: Operator, Text: "++", Span: s.span(start)}
		}
		return Token{Kind: Operator, Text: "+", Span: s.span(start)}
	case '&':
		s.next()
		if s.ch == '&' {
			s.next()
			return Token{Kind: Operator, Text: "&&", Span: s.span(start)}
		}
	case '|':
		s.next()
		if s.ch == '|' {
			s.next()
			return Token{Kind: Operator, Text: "||", Span: s.span(start)}
		}
		return Token{Kind: Operator, Text: "|", Span: s.span(start)}
	case '!':
		s.next()
		if s.ch == '=' {
			s.next()
			return Token{Kind: Operator, Text: "!=", Span: s.span(start)}
		}
	case '<':
		s.next()
		return Token{Kind: Operator, Text: "<", Span: s.span(start)}
	case '>':
		s.next()
		return Token{Kind: Operator, Text: ">", Span: s.span(start)}
	case '/':
		s.next()
		if s.ch == '/' {
			s.next()
			if s.ch == '\\' {
				s.next()
				if s.ch == '\\' {
					s.next()
				}
				return Token{Kind: Operator, Text: "⩓", Span: s.span(start)}
			}
			return Token{Kind: Operator, Text: "⫽", Span: s.span(start)}
		}
		if s.ch == '\\' {
			s.next()
			return Token{Kind: Operator, Text: "∧", Span: s.span(start)}
		}
		return Token{Kind: Slash, Span: s.span(start)}
	}
	s.errorf(start, "illegal character")
	s.next()
	return Token{Kind: Illegal, Span: s.span(start)}
}

// scanDoubleQuote scans a double-quoted text literal from just after its
// opening quote, stopping and returning a DoubleInterpStart token if it
// meets "${"; otherwise it runs to the closing quote and returns
// DoubleQuoteStringPart with the raw (still-escaped) text between. A
// backslash only ever introduces an escape sequence here, never an
// interpolation: Dhall spells interpolation "${...}", unlike CUE's
// "\(...)".
func (s *Scanner) scanDoubleQuote(start int) Token {
	bodyStart := s.offset
	for {
		switch s.ch {
		case -1:
			s.errorf(start, "unterminated double-quoted string literal")
			return Token{Kind: DoubleQuoteStringPart, Text: s.src[bodyStart:s.offset], Span: s.span(start)}
		case '"':
			text := s.src[bodyStart:s.offset]
			s.next()
			return Token{Kind: DoubleQuoteStringPart, Text: text, Span: s.span(start)}
		case '\\':
			s.next()
			s.next()
		case '$':
			if s.peek() == '{' {
				text := s.src[bodyStart:s.offset]
				s.next()
				s.next()
				return Token{Kind: DoubleInterpStart, Text: text, Span: s.span(start)}
			}
			s.next()
		default:
			s.next()
		}
	}
}

// ResumeDoubleQuote continues scanning a double-quoted literal after the
// "}" that closed an interpolation's expression.
func (s *Scanner) ResumeDoubleQuote() Token {
	start := s.offset
	return s.scanDoubleQuote(start)
}

// scanSingleQuote scans a single-quoted ('' ... '') multiline literal
// from just after its opening quotes, with the same
// interpolation-start-then-Resume split (here SingleInterpStart) as
// double-quoted literals for "${"
// interpolations. Escapes do not exist in this form except "''${" and
// "'''" for literal "${" / "''".
// scanSingleQuote scans a multiline (single-quoted) text literal body. Its
// only two escapes are "''${" (a literal "${", not an interpolation
// start) and "'''" (a literal "''", not the closing quote); since both
// change the body's length relative to the source, the decoded text is
// built up in body rather than sliced from s.src.
func (s *Scanner) scanSingleQuote(start int) Token {
	var body strings.Builder
	for {
		rest := s.src[s.offset:]
		switch {
		case s.ch == -1:
			s.errorf(start, "unterminated single-quoted string literal")
			return Token{Kind: SingleQuoteStringPart, Text: body.String(), Span: s.span(start)}
		case strings.HasPrefix(rest, "''${"):
			body.WriteString("${")
			for i := 0; i < 4; i++ {
				s.next()
			}
		case strings.HasPrefix(rest, "'''"):
			body.WriteString("''")
			for i := 0; i < 3; i++ {
				s.next()
			}
		case s.ch == '\'' && s.peek() == '\'':
			s.next()
			s.next()
			return Token{Kind: SingleQuoteStringPart, Text: body.String(), Span: s.span(start)}
		case s.ch == '$' && s.peek() == '{':
			s.next()
			s.next()
			return Token{Kind: SingleInterpStart, Text: body.String(), Span: s.span(start)}
		default:
			body.WriteRune(s.ch)
			s.next()
		}
	}
}

// ResumeSingleQuote continues scanning a single-quoted literal after the
// "}" that closed an interpolation's expression.
func (s *Scanner) ResumeSingleQuote() Token {
	start := s.offset
	return s.scanSingleQuote(start)
}

func isPathChar(r rune) bool {
	switch r {
	case '/', '?', ' ', '\t', '\r', '\n', -1:
		return false
	}
	return true
}

// ScanPathComponent consumes one unquoted local-import path component
// (everything up to the next "/", "?" or whitespace), used by the parser once
// it has recognized a path prefix (".", "..", "~" or a bare "/"). Unlike
// scanIdentOrKeyword this allows "." so that file extensions like
// ".dhall" scan as part of the component instead of a separate Dot token.
func (s *Scanner) ScanPathComponent() Token {
	start := s.offset
	for isPathChar(s.ch) {
		s.next()
	}
	return Token{Kind: Ident, Text: s.src[start:s.offset], Span: s.span(start)}
}

// AtPathChar reports whether the scanner's current rune could start or
// continue an unquoted path component, letting the parser decide whether
// to call ScanPathComponent instead of Scan.
func (s *Scanner) AtPathChar() bool { return isPathChar(s.ch) }

// Peek exposes the scanner's one-rune lookahead for the parser's
// path-prefix disambiguation (distinguishing "." from "./", "..", "../").
func (s *Scanner) Peek() rune { return s.ch }

// PeekAfter exposes the rune after the current one.
func (s *Scanner) PeekAfter() rune { return s.peek() }

// ConsumeLiteral advances past lit (an ASCII string) if it appears next in
// the source, reporting whether it matched. Import syntax (the "://" after
// a URL scheme, for instance) is easier to match this way than to carve
// into generic tokens.
func (s *Scanner) ConsumeLiteral(lit string) bool {
	if !strings.HasPrefix(s.src[s.offset:], lit) {
		return false
	}
	for range lit {
		s.next()
	}
	return true
}

// ScanRawUntilAny consumes and returns raw source text up to (but not
// including) the next rune in stops, or the next whitespace/EOF, used for
// the host/path/query pieces of a remote import's URL that don't fit
// ordinary label tokenization.
func (s *Scanner) ScanRawUntilAny(stops string) string {
	start := s.offset
	for s.ch != -1 && !isWhitespace(s.ch) && !strings.ContainsRune(stops, s.ch) {
		s.next()
	}
	return s.src[start:s.offset]
}

// ScanRawUntilRune consumes and returns raw source text up to (but not
// including) the next occurrence of stop, without stopping at whitespace.
// Used inside a quoted path component or environment-variable name, where
// the quotes alone delimit the content.
func (s *Scanner) ScanRawUntilRune(stop rune) string {
	start := s.offset
	for s.ch != -1 && s.ch != stop {
		s.next()
	}
	return s.src[start:s.offset]
}
