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

package statictype

import (
	"github.com/dhall-lang/dhall-go/ast"
	"github.com/dhall-lang/dhall-go/token"
)

// Pair is the SimpleStaticType for a Go pair ⟨A, B⟩, mapping to the
// two-field record `{ _1 : ⟦A⟧, _2 : ⟦B⟧ }`.
type Pair[A, B SimpleStaticType] struct {
	First  A
	Second B
}

func (p Pair[A, B]) DhallSimpleType() ast.Expr {
	fields, _, dup := ast.NewOrderedMap([]ast.MapEntry[ast.Expr]{
		ast.Entry[ast.Expr]("_1", p.First.DhallSimpleType()),
		ast.Entry[ast.Expr]("_2", p.Second.DhallSimpleType()),
	})
	if dup {
		panic("statictype: Pair field labels must never collide")
	}
	return ast.NewSubExpr(ast.NewRecordTypeExpr[ast.Expr, ast.Label, ast.Import](fields), token.NoSpan)
}

// Optional is the SimpleStaticType for a Go optional ⟨T⟩, mapping to
// `Optional ⟦T⟧`.
type Optional[T SimpleStaticType] struct {
	Elem T
}

func (o Optional[T]) DhallSimpleType() ast.Expr {
	return appExpr(builtinExpr(ast.Optional), o.Elem.DhallSimpleType())
}

// Sequence is the SimpleStaticType for a Go sequence ⟨T⟩ (slice-shaped),
// mapping to `List ⟦T⟧`.
type Sequence[T SimpleStaticType] struct {
	Elem T
}

func (s Sequence[T]) DhallSimpleType() ast.Expr {
	return appExpr(builtinExpr(ast.List), s.Elem.DhallSimpleType())
}

// Phantom is the SimpleStaticType for a Go phantom marker ⟨T⟩ (a type
// parameter that never appears in any field), mapping to the empty record
// type `{}`: T itself contributes nothing to the shape.
type Phantom[T any] struct{}

func (Phantom[T]) DhallSimpleType() ast.Expr {
	empty, _, _ := ast.NewOrderedMap[ast.Expr](nil)
	return ast.NewSubExpr(ast.NewRecordTypeExpr[ast.Expr, ast.Label, ast.Import](empty), token.NoSpan)
}

// Result is the SimpleStaticType for a Go ok/err tagged union ⟨T, E⟩,
// mapping to `< Ok : ⟦T⟧ | Err : ⟦E⟧ >`.
type Result[T, E SimpleStaticType] struct {
	Ok  T
	Err E
}

func (r Result[T, E]) DhallSimpleType() ast.Expr {
	okType := r.Ok.DhallSimpleType()
	errType := r.Err.DhallSimpleType()
	alts, _, dup := ast.NewOrderedMap([]ast.MapEntry[*ast.Expr]{
		ast.Entry[*ast.Expr]("Ok", &okType),
		ast.Entry[*ast.Expr]("Err", &errType),
	})
	if dup {
		panic("statictype: Result alternative labels must never collide")
	}
	return ast.NewSubExpr(ast.NewUnionTypeExpr[ast.Expr, ast.Label, ast.Import](alts), token.NoSpan)
}

// Borrowed is the SimpleStaticType for a borrowed view &T: Dhall has no
// concept of ownership, so a borrowed T reports exactly T's own type,
// unchanged.
type Borrowed[T SimpleStaticType] struct {
	Value T
}

func (b Borrowed[T]) DhallSimpleType() ast.Expr {
	return b.Value.DhallSimpleType()
}

func appExpr(fn, arg ast.Expr) ast.Expr {
	return ast.NewSubExpr(ast.NewAppExpr[ast.Expr, ast.Label, ast.Import](fn, arg), token.NoSpan)
}
