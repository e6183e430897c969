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

// V is a variable reference: a name plus a de Bruijn index counting how
// many binders of that same name are crossed between the reference and
// its binding site. V is generic over the label type so the visitor
// package can instantiate it with types other than Label when
// shift/substitution need an intermediate representation.
type V[L comparable] struct {
	Name  L
	Index int
}

// NewV builds a variable reference with the given de Bruijn index.
func NewV[L comparable](name L, index int) V[L] {
	return V[L]{Name: name, Index: index}
}

// Shift adjusts v's index by delta when crossing a binder for `under`,
// exactly following dhall_syntax::V::shift: only variables sharing the
// binder's name, and whose index is at least as large as the binder's
// newly introduced index (min_idx), move; everything else is returned
// unchanged. delta must not make the index negative.
func (v V[L]) Shift(delta int, under V[L]) V[L] {
	if v.Name != under.Name || v.Index < under.Index {
		return v
	}
	newIndex := addInt(v.Index, delta)
	return V[L]{Name: v.Name, Index: newIndex}
}

func addInt(base, delta int) int {
	result := base + delta
	if result < 0 {
		panic("ast: V.Shift produced a negative de Bruijn index")
	}
	return result
}
