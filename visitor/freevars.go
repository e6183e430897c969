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

// FreeVars collects the names of every variable in e that is free
// (has no enclosing binder of the same name at or past its index), in the
// order first encountered, each name appearing once. It is built on the
// same one-layer MapRef traversal as Shift/Subst, tracking open-binder
// counts the way cue/ast/astutil's scope-stack walk tracks declared names,
// but discarding MapRef's rebuilt tree since FreeVars only needs the
// side-effect of visiting every node.
func FreeVars[N, E any](e ast.SubExpr[N, E]) []ast.Label {
	counts := map[ast.Label]int{}
	seen := map[ast.Label]bool{}
	var result []ast.Label

	var walk func(e ast.SubExpr[N, E])
	walk = func(e ast.SubExpr[N, E]) {
		expr := e.Expr()
		if vr, ok := expr.AsVar(); ok {
			if vr.Index >= counts[vr.Name] {
				if !seen[vr.Name] {
					seen[vr.Name] = true
					result = append(result, vr.Name)
				}
			}
			return
		}
		MapRef[N, E, N, E](e, freeVarsVisitor[N, E]{walk: walk, counts: counts})
	}
	walk(e)
	return result
}

type freeVarsVisitor[N, E any] struct {
	walk   func(ast.SubExpr[N, E])
	counts map[ast.Label]int
}

func (f freeVarsVisitor[N, E]) VisitSubExpr(e ast.SubExpr[N, E]) ast.SubExpr[N, E] {
	f.walk(e)
	return e
}

func (f freeVarsVisitor[N, E]) VisitUnderBinder(label ast.Label, body ast.SubExpr[N, E]) ast.SubExpr[N, E] {
	f.counts[label]++
	f.walk(body)
	f.counts[label]--
	return body
}

func (f freeVarsVisitor[N, E]) VisitEmbed(e E) E { return e }
func (f freeVarsVisitor[N, E]) VisitNote(n N) N  { return n }
