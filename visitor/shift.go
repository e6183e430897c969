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

package visitor

import "github.com/dhall-lang/dhall-go/ast"

// Shift adjusts the de Bruijn index of every free occurrence of v in e by
// delta, following dhall_syntax::shift: a Var node is rewritten directly
// via ast.V.Shift, and every other node recurses one layer through MapRef,
// bumping v's index by one whenever a binder of the same name is crossed.
func Shift[N, E any](delta int, v ast.V[ast.Label], e ast.SubExpr[N, E]) ast.SubExpr[N, E] {
	expr := e.Expr()
	if vr, ok := expr.AsVar(); ok {
		shifted := vr.Shift(delta, v)
		return e.Rewrap(ast.NewVarExpr[ast.SubExpr[N, E], ast.Label, E](shifted))
	}
	return MapRef[N, E, N, E](e, shiftVisitor[N, E]{delta: delta, v: v})
}

type shiftVisitor[N, E any] struct {
	delta int
	v     ast.V[ast.Label]
}

func (s shiftVisitor[N, E]) VisitSubExpr(e ast.SubExpr[N, E]) ast.SubExpr[N, E] {
	return Shift(s.delta, s.v, e)
}

func (s shiftVisitor[N, E]) VisitUnderBinder(label ast.Label, body ast.SubExpr[N, E]) ast.SubExpr[N, E] {
	innerV := s.v.Shift(1, ast.NewV(label, 0))
	return Shift(s.delta, innerV, body)
}

func (s shiftVisitor[N, E]) VisitEmbed(e E) E { return e }
func (s shiftVisitor[N, E]) VisitNote(n N) N  { return n }
