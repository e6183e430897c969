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

// Subst replaces every free occurrence of v in e with replacement,
// shifting replacement by one for each binder of v's name crossed on the
// way down, and renumbering the indices of other same-named free
// variables that were counting past v. Neither this nor Shift performs
// normalization; both are plain one-layer traversals, left for a later
// evaluation phase to build on.
func Subst[N, E any](v ast.V[ast.Label], replacement ast.SubExpr[N, E], e ast.SubExpr[N, E]) ast.SubExpr[N, E] {
	expr := e.Expr()
	if vr, ok := expr.AsVar(); ok {
		switch {
		case vr == v:
			return replacement
		case vr.Name == v.Name && vr.Index > v.Index:
			shifted := ast.NewV(vr.Name, vr.Index-1)
			return e.Rewrap(ast.NewVarExpr[ast.SubExpr[N, E], ast.Label, E](shifted))
		default:
			return e
		}
	}
	return MapRef[N, E, N, E](e, substVisitor[N, E]{v: v, replacement: replacement})
}

type substVisitor[N, E any] struct {
	v           ast.V[ast.Label]
	replacement ast.SubExpr[N, E]
}

func (s substVisitor[N, E]) VisitSubExpr(e ast.SubExpr[N, E]) ast.SubExpr[N, E] {
	return Subst(s.v, s.replacement, e)
}

func (s substVisitor[N, E]) VisitUnderBinder(label ast.Label, body ast.SubExpr[N, E]) ast.SubExpr[N, E] {
	innerV := s.v
	if label == s.v.Name {
		innerV.Index++
	}
	innerReplacement := Shift(1, ast.NewV(label, 0), s.replacement)
	return Subst(innerV, innerReplacement, body)
}

func (s substVisitor[N, E]) VisitEmbed(e E) E { return e }
func (s substVisitor[N, E]) VisitNote(n N) N  { return n }
