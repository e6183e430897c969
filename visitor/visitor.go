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

// Package visitor implements the one-layer traversal framework every
// structural AST operation (shift, substitution, note-stripping, import
// resolution, free-variable collection) is built from, rather than each
// writing its own ad hoc recursion over ast.ExprF's variant list.
//
// A GenericVisitor describes how to turn the immediate children of one
// ExprF node into the children of a new one. MapRef applies a visitor to
// exactly one layer; recursion, when wanted, happens because a visitor's
// own callbacks call back into MapRef on their way down.
package visitor

import "github.com/dhall-lang/dhall-go/ast"

// GenericVisitor is implemented by every structural traversal. N1/E1 are
// the note/embed types of the tree being read; N2/E2 are those of the
// tree being built.
type GenericVisitor[N1, E1, N2, E2 any] interface {
	// VisitSubExpr is called for every immediate child that is not the
	// body of a binder (Lam/Pi/Let).
	VisitSubExpr(ast.SubExpr[N1, E1]) ast.SubExpr[N2, E2]

	// VisitUnderBinder is called for the body of a Lam/Pi/Let, with the
	// label the binder introduces, so the visitor can track scope depth.
	VisitUnderBinder(label ast.Label, body ast.SubExpr[N1, E1]) ast.SubExpr[N2, E2]

	// VisitEmbed converts an embedded import/value.
	VisitEmbed(E1) E2

	// VisitNote converts a note (a token.Span while parsing, ast.Never once
	// notes have been stripped).
	VisitNote(N1) N2
}

// MapRef applies v to every immediate child of e's ExprF layer, rebuilding
// a new SubExpr with v's results, but does not itself recurse: v's own
// VisitSubExpr/VisitUnderBinder implementations decide whether to call
// MapRef again on what they're given. This mirrors
// dhall_syntax::SubExpr::map_subexprs_with_special_handling_of_binders.
func MapRef[N1, E1, N2, E2 any](e ast.SubExpr[N1, E1], v GenericVisitor[N1, E1, N2, E2]) ast.SubExpr[N2, E2] {
	expr := e.Expr()
	var out ast.ExprF[ast.SubExpr[N2, E2], ast.Label, E2]

	switch expr.Kind() {
	case ast.KindConst:
		c, _ := expr.AsConst()
		out = ast.NewConstExpr[ast.SubExpr[N2, E2], ast.Label, E2](c)
	case ast.KindVar:
		vr, _ := expr.AsVar()
		out = ast.NewVarExpr[ast.SubExpr[N2, E2], ast.Label, E2](vr)
	case ast.KindLam:
		label, typ, body, _ := expr.AsLam()
		out = ast.NewLamExpr[ast.SubExpr[N2, E2], ast.Label, E2](label, v.VisitSubExpr(typ), v.VisitUnderBinder(label, body))
	case ast.KindPi:
		label, typ, body, _ := expr.AsPi()
		out = ast.NewPiExpr[ast.SubExpr[N2, E2], ast.Label, E2](label, v.VisitSubExpr(typ), v.VisitUnderBinder(label, body))
	case ast.KindApp:
		fn, arg, _ := expr.AsApp()
		out = ast.NewAppExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitSubExpr(fn), v.VisitSubExpr(arg))
	case ast.KindLet:
		label, annot, value, body, _ := expr.AsLet()
		out = ast.NewLetExpr[ast.SubExpr[N2, E2], ast.Label, E2](label, mapOptSubExpr(annot, v.VisitSubExpr), v.VisitSubExpr(value), v.VisitUnderBinder(label, body))
	case ast.KindAnnot:
		value, annot, _ := expr.AsAnnot()
		out = ast.NewAnnotExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitSubExpr(value), v.VisitSubExpr(annot))
	case ast.KindBuiltin:
		b, _ := expr.AsBuiltin()
		out = ast.NewBuiltinExpr[ast.SubExpr[N2, E2], ast.Label, E2](b)
	case ast.KindBinOp:
		op, l, r, _ := expr.AsBinOp()
		out = ast.NewBinOpExpr[ast.SubExpr[N2, E2], ast.Label, E2](op, v.VisitSubExpr(l), v.VisitSubExpr(r))
	case ast.KindBoolLit:
		b, _ := expr.AsBoolLit()
		out = ast.NewBoolLitExpr[ast.SubExpr[N2, E2], ast.Label, E2](b)
	case ast.KindBoolIf:
		cond, then, els, _ := expr.AsBoolIf()
		out = ast.NewBoolIfExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitSubExpr(cond), v.VisitSubExpr(then), v.VisitSubExpr(els))
	case ast.KindNaturalLit:
		n, _ := expr.AsNaturalLit()
		out = ast.NewNaturalLitExpr[ast.SubExpr[N2, E2], ast.Label, E2](n)
	case ast.KindIntegerLit:
		n, _ := expr.AsIntegerLit()
		out = ast.NewIntegerLitExpr[ast.SubExpr[N2, E2], ast.Label, E2](n)
	case ast.KindDoubleLit:
		d, _ := expr.AsDoubleLit()
		out = ast.NewDoubleLitExpr[ast.SubExpr[N2, E2], ast.Label, E2](d)
	case ast.KindTextLit:
		t, _ := expr.AsTextLit()
		out = ast.NewTextLitExpr[ast.SubExpr[N2, E2], ast.Label, E2](ast.MapInterpolatedText(t, v.VisitSubExpr))
	case ast.KindEmptyListLit:
		typ, _ := expr.AsEmptyListLit()
		out = ast.NewEmptyListLitExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitSubExpr(typ))
	case ast.KindNEListLit:
		exprs, _ := expr.AsNEListLit()
		out = ast.NewNEListLitExpr[ast.SubExpr[N2, E2], ast.Label, E2](mapSlice(exprs, v.VisitSubExpr))
	case ast.KindOldOptionalLit:
		value, typ, _ := expr.AsOldOptionalLit()
		out = ast.NewOldOptionalLitExpr[ast.SubExpr[N2, E2], ast.Label, E2](mapOptSubExpr(value, v.VisitSubExpr), v.VisitSubExpr(typ))
	case ast.KindSomeLit:
		value, _ := expr.AsSomeLit()
		out = ast.NewSomeLitExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitSubExpr(value))
	case ast.KindRecordType:
		fields, _ := expr.AsRecordType()
		out = ast.NewRecordTypeExpr[ast.SubExpr[N2, E2], ast.Label, E2](ast.MapOrderedMap(fields, v.VisitSubExpr))
	case ast.KindRecordLit:
		fields, _ := expr.AsRecordLit()
		out = ast.NewRecordLitExpr[ast.SubExpr[N2, E2], ast.Label, E2](ast.MapOrderedMap(fields, v.VisitSubExpr))
	case ast.KindUnionType:
		alts, _ := expr.AsUnionType()
		out = ast.NewUnionTypeExpr[ast.SubExpr[N2, E2], ast.Label, E2](ast.MapOrderedMap(alts, func(p *ast.SubExpr[N1, E1]) *ast.SubExpr[N2, E2] {
			return mapOptSubExpr(p, v.VisitSubExpr)
		}))
	case ast.KindUnionLit:
		label, value, alts, _ := expr.AsUnionLit()
		out = ast.NewUnionLitExpr[ast.SubExpr[N2, E2], ast.Label, E2](label, v.VisitSubExpr(value), ast.MapOrderedMap(alts, func(p *ast.SubExpr[N1, E1]) *ast.SubExpr[N2, E2] {
			return mapOptSubExpr(p, v.VisitSubExpr)
		}))
	case ast.KindMerge:
		handlers, union, annot, _ := expr.AsMerge()
		out = ast.NewMergeExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitSubExpr(handlers), v.VisitSubExpr(union), mapOptSubExpr(annot, v.VisitSubExpr))
	case ast.KindToMap:
		record, annot, _ := expr.AsToMap()
		out = ast.NewToMapExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitSubExpr(record), mapOptSubExpr(annot, v.VisitSubExpr))
	case ast.KindAssert:
		annot, _ := expr.AsAssert()
		out = ast.NewAssertExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitSubExpr(annot))
	case ast.KindField:
		record, label, _ := expr.AsField()
		out = ast.NewFieldExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitSubExpr(record), label)
	case ast.KindProjection:
		record, labels, _ := expr.AsProjection()
		out = ast.NewProjectionExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitSubExpr(record), labels)
	case ast.KindProjectionByExpr:
		record, selector, _ := expr.AsProjectionByExpr()
		out = ast.NewProjectionByExprExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitSubExpr(record), v.VisitSubExpr(selector))
	case ast.KindEmbed:
		embed, _ := expr.AsEmbed()
		out = ast.NewEmbedExpr[ast.SubExpr[N2, E2], ast.Label, E2](v.VisitEmbed(embed))
	default:
		panic("visitor: unhandled ExprF kind " + expr.Kind().String())
	}

	return ast.NewSubExpr(out, v.VisitNote(e.Note()))
}

func mapSlice[A, B any](in []A, f func(A) B) []B {
	if in == nil {
		return nil
	}
	out := make([]B, len(in))
	for i, x := range in {
		out[i] = f(x)
	}
	return out
}

func mapOptSubExpr[N1, E1, N2, E2 any](p *ast.SubExpr[N1, E1], f func(ast.SubExpr[N1, E1]) ast.SubExpr[N2, E2]) *ast.SubExpr[N2, E2] {
	if p == nil {
		return nil
	}
	v := f(*p)
	return &v
}

// Absurd panics: it is called where a traversal reaches an Embed holding
// ast.Never, which cannot happen if the tree's invariants hold (DESIGN.md).
func Absurd(n ast.Never) { ast.AbsurdNever(n) }

// NoteAbsurd strips notes from a tree whose Note type is already
// ast.Never, which is simply the identity function: there is nothing left
// to strip.
func NoteAbsurd[E any](e ast.SubExpr[ast.Never, E]) ast.SubExpr[ast.Never, E] {
	return e
}

// TraverseEmbed rebuilds e with every embed replaced by the result of
// applying f, leaving notes and structure otherwise untouched. It is the
// traversal import resolution is built from: f fetches and parses the
// import, and the Embed type parameter changes from ast.Import on the way
// in to whatever f produces on the way out.
func TraverseEmbed[N, E1, E2 any](e ast.SubExpr[N, E1], f func(E1) (E2, error)) (ast.SubExpr[N, E2], error) {
	var outerErr error
	result := MapRef[N, E1, N, E2](e, traverseEmbedVisitor[N, E1, E2]{f: f, err: &outerErr})
	return result, outerErr
}

type traverseEmbedVisitor[N, E1, E2 any] struct {
	f   func(E1) (E2, error)
	err *error
}

func (t traverseEmbedVisitor[N, E1, E2]) VisitSubExpr(e ast.SubExpr[N, E1]) ast.SubExpr[N, E2] {
	out, err := TraverseEmbed(e, t.f)
	if err != nil && *t.err == nil {
		*t.err = err
	}
	return out
}

func (t traverseEmbedVisitor[N, E1, E2]) VisitUnderBinder(_ ast.Label, e ast.SubExpr[N, E1]) ast.SubExpr[N, E2] {
	return t.VisitSubExpr(e)
}

func (t traverseEmbedVisitor[N, E1, E2]) VisitEmbed(e E1) E2 {
	out, err := t.f(e)
	if err != nil && *t.err == nil {
		*t.err = err
	}
	return out
}

func (t traverseEmbedVisitor[N, E1, E2]) VisitNote(n N) N { return n }
