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

// Package scanner implements a hand-written lexer for Dhall source text,
// producing a flat stream of spanned tokens for the parser package to
// consume; grounded on cue/scanner/scanner.go's Scanner shape, adapted to
// Dhall's own token set.
package scanner

import "github.com/dhall-lang/dhall-go/token"

// Kind discriminates the tokens Scan produces.
type Kind int

const (
	EOF Kind = iota
	Illegal

	Ident       // simple or backtick-quoted label
	NaturalLit  // 0-9+, no sign
	IntegerLit  // explicit + or - sign, digits
	DoubleLit   // decimal, or the "-Infinity" spelling (Infinity and NaN scan as keywords)
	DoubleQuoteStringPart
	SingleQuoteStringPart
	DoubleInterpStart // literal text of a "..." literal up to its "${"
	SingleInterpStart // literal text of a ''...'' literal up to its "${"

	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Colon
	Equal // the "=" of a let-binding or union alternative default
	At    // "@" of a de Bruijn index

	Lambda    // "\" or "λ"
	Forall    // "forall" or "∀"
	Arrow     // "->" or "→"
	Combine   // "/\" or "∧"
	Prefer    // "//" or "⫽"
	CombineTy // "//\\" or "⩓"
	DoubleColon // "::"

	Dot
	Question
	Slash // bare "/", the start of an absolute local import path
	Tilde // "~", the start of a home-anchored local import path

	// Operators recognized directly as BinOp tokens; the parser maps their
	// text to an ast.BinOp.
	Operator

	Keyword // reserved word recognized by the parser (let, in, if, ...)
)

// Token is one lexical unit together with its source span and, for
// literal-shaped tokens, its decoded text.
type Token struct {
	Kind Kind
	Text string
	Span token.Span
}

var keywords = map[string]bool{
	"if": true, "then": true, "else": true,
	"let": true, "in": true,
	"as": true, "using": true,
	"merge": true, "missing": true, "Infinity": true, "NaN": true,
	"Some": true, "toMap": true, "assert": true,
	"forall": true,
	"Type": true, "Kind": true, "Sort": true,
	"with": true,
}

// IsKeyword reports whether s is a reserved word that cannot be used bare
// as a label (it must be backtick-quoted to be used as one).
func IsKeyword(s string) bool { return keywords[s] }

var kindNames = map[Kind]string{
	EOF: "end of input", Illegal: "illegal character",
	Ident: "identifier", NaturalLit: "natural literal",
	IntegerLit: "integer literal", DoubleLit: "double literal",
	DoubleQuoteStringPart: "string literal", SingleQuoteStringPart: "string literal",
	DoubleInterpStart: "string literal", SingleInterpStart: "string literal",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]", Comma: ",", Colon: ":",
	Equal: "=", At: "@", Lambda: "λ", Forall: "forall", Arrow: "->",
	Combine: "/\\", Prefer: "//", CombineTy: "//\\\\", DoubleColon: "::",
	Dot: ".", Question: "?", Slash: "/", Tilde: "~", Operator: "operator", Keyword: "keyword",
}

// String renders k for use in diagnostics.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "token"
}
