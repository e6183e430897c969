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

package ast

// BinOp enumerates Dhall's infix operators, declared lowest-precedence
// first so that int(op) doubles as a precedence rank for the parser's
// operator-expression climber. Equivalence is the thirteenth,
// highest-precedence level: it is parsed but nothing in this module
// accepts or rejects its use the way a type-checker would (see
// DESIGN.md's Open Question decisions).
type BinOp int

const (
	ImportAlt BinOp = iota
	Or
	Plus
	TextAppend
	ListAppend
	And
	Combine
	Prefer
	CombineTypes
	Times
	Equal
	NotEqual
	Equivalence
)

var binOpGlyphs = map[BinOp]string{
	ImportAlt:    "?",
	Or:           "||",
	Plus:         "+",
	TextAppend:   "++",
	ListAppend:   "#",
	And:          "&&",
	Combine:      "∧",
	Prefer:       "⫽",
	CombineTypes: "⩓",
	Times:        "*",
	Equal:        "==",
	NotEqual:     "!=",
	Equivalence:  "≡",
}

// String renders op with its canonical Unicode glyph.
func (op BinOp) String() string {
	if g, ok := binOpGlyphs[op]; ok {
		return g
	}
	return "<invalid BinOp>"
}

// Precedence returns op's precedence rank: higher binds tighter. It is
// simply int(op), exposed as a named accessor so parser code reads
// "op.Precedence()" rather than relying on the BinOp's own representation.
func (op BinOp) Precedence() int { return int(op) }
