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

// SubExpr is a shared handle to one ExprF node plus an optional Note (the
// original's Rc<(Expr, Option<Note>)>: the sharing itself needs no
// explicit reference count here, since a *sharedNode is reclaimed by the
// garbage collector once nothing points at it any more, see DESIGN.md).
//
// N is the note type (token.Span while parsing, ast.Never once notes have
// been stripped); E is the embed type (ast.Import while unresolved,
// ast.Never once import resolution has replaced every embed).
type SubExpr[N any, E any] struct {
	node *sharedNode[N, E]
}

type sharedNode[N any, E any] struct {
	expr ExprF[SubExpr[N, E], Label, E]
	note N
}

// NewSubExpr wraps expr with note, allocating a fresh shared node.
func NewSubExpr[N any, E any](expr ExprF[SubExpr[N, E], Label, E], note N) SubExpr[N, E] {
	return SubExpr[N, E]{node: &sharedNode[N, E]{expr: expr, note: note}}
}

// FromExprNoNote wraps expr with the zero value of N, for callers that
// build trees without source positions.
func FromExprNoNote[N any, E any](expr ExprF[SubExpr[N, E], Label, E]) SubExpr[N, E] {
	var zero N
	return NewSubExpr(expr, zero)
}

// Expr returns the wrapped ExprF layer.
func (s SubExpr[N, E]) Expr() ExprF[SubExpr[N, E], Label, E] {
	return s.node.expr
}

// Note returns the note attached to s.
func (s SubExpr[N, E]) Note() N {
	return s.node.note
}

// IsValid reports whether s wraps an actual node (the zero SubExpr is
// invalid and must never be dereferenced).
func (s SubExpr[N, E]) IsValid() bool {
	return s.node != nil
}

// Rewrap returns a new SubExpr holding expr but reusing s's note, matching
// the original's SubExpr::rewrap (used when a traversal replaces a node's
// content but wants to keep its source position for diagnostics).
func (s SubExpr[N, E]) Rewrap(expr ExprF[SubExpr[N, E], Label, E]) SubExpr[N, E] {
	return NewSubExpr(expr, s.node.note)
}

// Equal compares s and other structurally, ignoring notes — two nodes
// parsed from different source positions can still be the same
// expression; it panics if either SubExpr is invalid.
func (s SubExpr[N, E]) Equal(other SubExpr[N, E], embedEqual func(E, E) bool) bool {
	return exprFEqual(s.Expr(), other.Expr(), embedEqual)
}

func exprFEqual[N, E any](a, b ExprF[SubExpr[N, E], Label, E], embedEqual func(E, E) bool) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindConst:
		av, _ := a.AsConst()
		bv, _ := b.AsConst()
		return av == bv
	case KindVar:
		av, _ := a.AsVar()
		bv, _ := b.AsVar()
		return av == bv
	case KindLam:
		al, at, ab, _ := a.AsLam()
		bl, bt, bb, _ := b.AsLam()
		return al == bl && at.Equal(bt, embedEqual) && ab.Equal(bb, embedEqual)
	case KindPi:
		al, at, ab, _ := a.AsPi()
		bl, bt, bb, _ := b.AsPi()
		return al == bl && at.Equal(bt, embedEqual) && ab.Equal(bb, embedEqual)
	case KindApp:
		af, aa, _ := a.AsApp()
		bf, ba, _ := b.AsApp()
		return af.Equal(bf, embedEqual) && aa.Equal(ba, embedEqual)
	case KindLet:
		al, aan, av, ab, _ := a.AsLet()
		bl, ban, bv, bb, _ := b.AsLet()
		if al != bl || !av.Equal(bv, embedEqual) || !ab.Equal(bb, embedEqual) {
			return false
		}
		return optSubExprEqual(aan, ban, embedEqual)
	case KindAnnot:
		av, aan, _ := a.AsAnnot()
		bv, ban, _ := b.AsAnnot()
		return av.Equal(bv, embedEqual) && aan.Equal(ban, embedEqual)
	case KindBuiltin:
		av, _ := a.AsBuiltin()
		bv, _ := b.AsBuiltin()
		return av == bv
	case KindBinOp:
		ao, al, ar, _ := a.AsBinOp()
		bo, bl, br, _ := b.AsBinOp()
		return ao == bo && al.Equal(bl, embedEqual) && ar.Equal(br, embedEqual)
	case KindBoolLit:
		av, _ := a.AsBoolLit()
		bv, _ := b.AsBoolLit()
		return av == bv
	case KindBoolIf:
		ac, at, ae, _ := a.AsBoolIf()
		bc, bt, be, _ := b.AsBoolIf()
		return ac.Equal(bc, embedEqual) && at.Equal(bt, embedEqual) && ae.Equal(be, embedEqual)
	case KindNaturalLit:
		av, _ := a.AsNaturalLit()
		bv, _ := b.AsNaturalLit()
		return av == bv
	case KindIntegerLit:
		av, _ := a.AsIntegerLit()
		bv, _ := b.AsIntegerLit()
		return av == bv
	case KindDoubleLit:
		av, _ := a.AsDoubleLit()
		bv, _ := b.AsDoubleLit()
		return av.Equal(bv)
	case KindTextLit:
		av, _ := a.AsTextLit()
		bv, _ := b.AsTextLit()
		return interpolatedTextEqual(av, bv, embedEqual)
	case KindEmptyListLit:
		av, _ := a.AsEmptyListLit()
		bv, _ := b.AsEmptyListLit()
		return av.Equal(bv, embedEqual)
	case KindNEListLit:
		av, _ := a.AsNEListLit()
		bv, _ := b.AsNEListLit()
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !av[i].Equal(bv[i], embedEqual) {
				return false
			}
		}
		return true
	case KindOldOptionalLit:
		av, at, _ := a.AsOldOptionalLit()
		bv, bt, _ := b.AsOldOptionalLit()
		if !at.Equal(bt, embedEqual) {
			return false
		}
		return optSubExprPtrEqual(av, bv, embedEqual)
	case KindSomeLit:
		av, _ := a.AsSomeLit()
		bv, _ := b.AsSomeLit()
		return av.Equal(bv, embedEqual)
	case KindRecordType:
		av, _ := a.AsRecordType()
		bv, _ := b.AsRecordType()
		return orderedMapSubExprEqual(av, bv, embedEqual)
	case KindRecordLit:
		av, _ := a.AsRecordLit()
		bv, _ := b.AsRecordLit()
		return orderedMapSubExprEqual(av, bv, embedEqual)
	case KindUnionType:
		av, _ := a.AsUnionType()
		bv, _ := b.AsUnionType()
		return orderedMapOptSubExprEqual(av, bv, embedEqual)
	case KindUnionLit:
		al, aval, aalt, _ := a.AsUnionLit()
		bl, bval, balt, _ := b.AsUnionLit()
		return al == bl && aval.Equal(bval, embedEqual) && orderedMapOptSubExprEqual(aalt, balt, embedEqual)
	case KindMerge:
		ah, au, aan, _ := a.AsMerge()
		bh, bu, ban, _ := b.AsMerge()
		return ah.Equal(bh, embedEqual) && au.Equal(bu, embedEqual) && optSubExprEqual(aan, ban, embedEqual)
	case KindToMap:
		ar, aan, _ := a.AsToMap()
		br, ban, _ := b.AsToMap()
		return ar.Equal(br, embedEqual) && optSubExprEqual(aan, ban, embedEqual)
	case KindAssert:
		av, _ := a.AsAssert()
		bv, _ := b.AsAssert()
		return av.Equal(bv, embedEqual)
	case KindField:
		ar, al, _ := a.AsField()
		br, bl, _ := b.AsField()
		return al == bl && ar.Equal(br, embedEqual)
	case KindProjection:
		ar, al, _ := a.AsProjection()
		br, bl, _ := b.AsProjection()
		if len(al) != len(bl) {
			return false
		}
		for i := range al {
			if al[i] != bl[i] {
				return false
			}
		}
		return ar.Equal(br, embedEqual)
	case KindProjectionByExpr:
		ar, as_, _ := a.AsProjectionByExpr()
		br, bs, _ := b.AsProjectionByExpr()
		return ar.Equal(br, embedEqual) && as_.Equal(bs, embedEqual)
	case KindEmbed:
		ae, _ := a.AsEmbed()
		be, _ := b.AsEmbed()
		return embedEqual(ae, be)
	default:
		return false
	}
}

func optSubExprEqual[N, E any](a, b *SubExpr[N, E], embedEqual func(E, E) bool) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	return a.Equal(*b, embedEqual)
}

func optSubExprPtrEqual[N, E any](a, b *SubExpr[N, E], embedEqual func(E, E) bool) bool {
	return optSubExprEqual(a, b, embedEqual)
}

func interpolatedTextEqual[N, E any](a, b InterpolatedText[SubExpr[N, E]], embedEqual func(E, E) bool) bool {
	if a.Head != b.Head || len(a.Tail) != len(b.Tail) {
		return false
	}
	for i := range a.Tail {
		if a.Tail[i].Text != b.Tail[i].Text {
			return false
		}
		if !a.Tail[i].Expr.Equal(b.Tail[i].Expr, embedEqual) {
			return false
		}
	}
	return true
}

func orderedMapSubExprEqual[N, E any](a, b OrderedMap[SubExpr[N, E]], embedEqual func(E, E) bool) bool {
	al, bl := a.Labels(), b.Labels()
	if len(al) != len(bl) {
		return false
	}
	for i := range al {
		if al[i] != bl[i] {
			return false
		}
		av, _ := a.Get(al[i])
		bv, _ := b.Get(bl[i])
		if !av.Equal(bv, embedEqual) {
			return false
		}
	}
	return true
}

func orderedMapOptSubExprEqual[N, E any](a, b OrderedMap[*SubExpr[N, E]], embedEqual func(E, E) bool) bool {
	al, bl := a.Labels(), b.Labels()
	if len(al) != len(bl) {
		return false
	}
	for i := range al {
		if al[i] != bl[i] {
			return false
		}
		av, _ := a.Get(al[i])
		bv, _ := b.Get(bl[i])
		if !optSubExprEqual(av, bv, embedEqual) {
			return false
		}
	}
	return true
}
