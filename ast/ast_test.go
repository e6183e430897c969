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

import (
	"testing"

	"github.com/dhall-lang/dhall-go/token"
	"github.com/go-quicktest/qt"
)

func boolLit(v bool) Expr {
	return NewSubExpr(NewBoolLitExpr[Expr, Label, Import](v), token.NoSpan)
}

func natLit(n uint64) Expr {
	return NewSubExpr(NewNaturalLitExpr[Expr, Label, Import](n), token.NoSpan)
}

func varExpr(name string, index int) Expr {
	return NewSubExpr(NewVarExpr[Expr, Label, Import](NewV(Label(name), index)), token.NoSpan)
}

func TestKindString(t *testing.T) {
	qt.Assert(t, qt.Equals(KindBoolLit.String(), "BoolLit"))
	qt.Assert(t, qt.Equals(KindEmbed.String(), "Embed"))
	qt.Assert(t, qt.Equals(ExprKind(999).String(), "<invalid Kind>"))
}

func TestExprFConstructorsRoundtrip(t *testing.T) {
	e := boolLit(true)
	v, ok := e.Expr().AsBoolLit()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(v))

	lam := NewSubExpr(NewLamExpr[Expr, Label, Import]("x", boolLit(true), varExpr("x", 0)), token.NoSpan)
	label, typ, body, ok := lam.Expr().AsLam()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(label, Label("x")))
	tv, _ := typ.Expr().AsBoolLit()
	qt.Assert(t, qt.IsTrue(tv))
	bv, _ := body.Expr().AsVar()
	qt.Assert(t, qt.Equals(bv, NewV(Label("x"), 0)))
}

func TestExprFWrongVariantAccessorFails(t *testing.T) {
	e := boolLit(false)
	_, ok := e.Expr().AsNaturalLit()
	qt.Assert(t, qt.IsTrue(!ok))
}

func TestLetAnnotOptional(t *testing.T) {
	annot := boolLit(true)
	withAnnot := NewSubExpr(NewLetExpr[Expr, Label, Import]("x", &annot, natLit(1), varExpr("x", 0)), token.NoSpan)
	_, a, _, _, ok := withAnnot.Expr().AsLet()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Not(qt.IsNil(a)))

	withoutAnnot := NewSubExpr(NewLetExpr[Expr, Label, Import]("x", nil, natLit(1), varExpr("x", 0)), token.NoSpan)
	_, a2, _, _, ok := withoutAnnot.Expr().AsLet()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsNil(a2))
}

func TestSubExprEqualIgnoresNote(t *testing.T) {
	embedEqual := func(a, b Import) bool { return a.Mode == b.Mode }

	src := "True"
	a := NewSubExpr(NewBoolLitExpr[Expr, Label, Import](true), token.NoSpan)
	b := NewSubExpr(NewBoolLitExpr[Expr, Label, Import](true), token.NewSpan("f", &src, 0, 4))
	qt.Assert(t, qt.IsTrue(a.Equal(b, embedEqual)))

	c := NewSubExpr(NewBoolLitExpr[Expr, Label, Import](false), token.NoSpan)
	qt.Assert(t, qt.IsTrue(!a.Equal(c, embedEqual)))
}

func TestSubExprEqualStructural(t *testing.T) {
	embedEqual := func(a, b Import) bool { return false }

	lam1 := NewSubExpr(NewLamExpr[Expr, Label, Import]("x", boolLit(true), varExpr("x", 0)), token.NoSpan)
	lam2 := NewSubExpr(NewLamExpr[Expr, Label, Import]("x", boolLit(true), varExpr("x", 0)), token.NoSpan)
	qt.Assert(t, qt.IsTrue(lam1.Equal(lam2, embedEqual)))

	lam3 := NewSubExpr(NewLamExpr[Expr, Label, Import]("y", boolLit(true), varExpr("y", 0)), token.NoSpan)
	qt.Assert(t, qt.IsTrue(!lam1.Equal(lam3, embedEqual)))
}

func TestSubExprRewrapKeepsNote(t *testing.T) {
	orig := natLit(1)
	rewrapped := orig.Rewrap(NewNaturalLitExpr[Expr, Label, Import](2))
	n, _ := rewrapped.Expr().AsNaturalLit()
	qt.Assert(t, qt.Equals(n, uint64(2)))
	qt.Assert(t, qt.Equals(rewrapped.Note(), orig.Note()))
}

func TestSubExprIsValid(t *testing.T) {
	var zero Expr
	qt.Assert(t, qt.IsTrue(!zero.IsValid()))
	qt.Assert(t, qt.IsTrue(natLit(0).IsValid()))
}

func TestLabelBacktickQuoting(t *testing.T) {
	qt.Assert(t, qt.Equals(NewLabel("`type`"), Label("type")))
	qt.Assert(t, qt.Equals(NewLabel("foo"), Label("foo")))
	qt.Assert(t, qt.IsTrue(Label("_x").IsReservedPrefixed()))
	qt.Assert(t, qt.IsTrue(!Label("x").IsReservedPrefixed()))
}

func TestVShift(t *testing.T) {
	x := NewV(Label("x"), 2)
	// Crossing a binder for x at index 0: x's own index bumps.
	shifted := x.Shift(1, NewV(Label("x"), 0))
	qt.Assert(t, qt.Equals(shifted.Index, 3))

	// A different name is untouched.
	y := NewV(Label("y"), 2)
	shiftedY := y.Shift(1, NewV(Label("x"), 0))
	qt.Assert(t, qt.Equals(shiftedY.Index, 2))

	// Index below the binder's threshold is untouched.
	low := NewV(Label("x"), 0)
	shiftedLow := low.Shift(1, NewV(Label("x"), 1))
	qt.Assert(t, qt.Equals(shiftedLow.Index, 0))
}

func TestVShiftNegativePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on negative de Bruijn index")
		}
	}()
	x := NewV(Label("x"), 0)
	x.Shift(-1, NewV(Label("x"), 0))
}

func TestOrderedMapSortsAndDetectsDuplicates(t *testing.T) {
	m, dup, hadDup := NewOrderedMap([]MapEntry[int]{
		Entry[int]("b", 2),
		Entry[int]("a", 1),
	})
	qt.Assert(t, qt.IsTrue(!hadDup))
	qt.Assert(t, qt.DeepEquals(m.Labels(), []Label{"a", "b"}))
	v, ok := m.Get("a")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 1))
	qt.Assert(t, qt.Equals(dup, Label("")))
}

func TestOrderedMapDuplicateLabel(t *testing.T) {
	_, dup, hadDup := NewOrderedMap([]MapEntry[int]{
		Entry[int]("a", 1),
		Entry[int]("a", 2),
	})
	qt.Assert(t, qt.IsTrue(hadDup))
	qt.Assert(t, qt.Equals(dup, Label("a")))
}

func TestOrderedMapRangeIsSorted(t *testing.T) {
	m, _, _ := NewOrderedMap([]MapEntry[int]{
		Entry[int]("z", 1),
		Entry[int]("a", 2),
		Entry[int]("m", 3),
	})
	var seen []Label
	m.Range(func(l Label, v int) { seen = append(seen, l) })
	qt.Assert(t, qt.DeepEquals(seen, []Label{"a", "m", "z"}))
}

func TestMapOrderedMapPreservesLabels(t *testing.T) {
	m, _, _ := NewOrderedMap([]MapEntry[int]{Entry[int]("a", 1), Entry[int]("b", 2)})
	doubled := MapOrderedMap(m, func(v int) int { return v * 2 })
	v, ok := doubled.Get("b")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 4))
}

func TestNaiveDoubleBitwiseEquality(t *testing.T) {
	nan1 := NewNaiveDouble(nanValue())
	nan2 := NewNaiveDouble(nanValue())
	qt.Assert(t, qt.IsTrue(nan1.Equal(nan2)))

	posZero := NewNaiveDouble(0.0)
	negZero := NewNaiveDouble(negZeroValue())
	qt.Assert(t, qt.IsTrue(!posZero.Equal(negZero)))
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func negZeroValue() float64 {
	var zero float64
	return -zero
}

func TestNaiveDoubleString(t *testing.T) {
	qt.Assert(t, qt.Equals(NewNaiveDouble(1.0).String(), "1.0"))
	qt.Assert(t, qt.Equals(NewNaiveDouble(nanValue()).String(), "NaN"))
}

func TestConstParseAndString(t *testing.T) {
	c, ok := ParseConst("Kind")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(c, Kind))
	qt.Assert(t, qt.Equals(Type.String(), "Type"))
	_, ok = ParseConst("Bogus")
	qt.Assert(t, qt.IsTrue(!ok))
}

func TestBuiltinParseAndString(t *testing.T) {
	b, ok := ParseBuiltin("Natural/subtract")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(b, NaturalSubtract))
	qt.Assert(t, qt.Equals(b.String(), "Natural/subtract"))
	_, ok = ParseBuiltin("Natural/frobnicate")
	qt.Assert(t, qt.IsTrue(!ok))
}

func TestBinOpPrecedenceOrdering(t *testing.T) {
	qt.Assert(t, qt.IsTrue(ImportAlt.Precedence() < Or.Precedence()))
	qt.Assert(t, qt.IsTrue(Equal.Precedence() < Equivalence.Precedence()))
	qt.Assert(t, qt.Equals(Combine.String(), "∧"))
	qt.Assert(t, qt.IsTrue(Combine.Precedence() < Prefer.Precedence()))
	qt.Assert(t, qt.IsTrue(Prefer.Precedence() < CombineTypes.Precedence()))
}

func TestInterpolatedTextPushChunk(t *testing.T) {
	txt := NewInterpolatedText[Expr]("pre")
	txt = txt.PushChunk(boolLit(true), "post")
	qt.Assert(t, qt.IsTrue(!txt.IsPlain()))
	qt.Assert(t, qt.Equals(txt.Head, "pre"))
	qt.Assert(t, qt.Equals(len(txt.Tail), 1))
	qt.Assert(t, qt.Equals(txt.Tail[0].Text, "post"))
}

func TestMapInterpolatedText(t *testing.T) {
	txt := NewInterpolatedText[Expr]("a").PushChunk(natLit(1), "b")
	mapped := MapInterpolatedText(txt, func(e Expr) int {
		n, _ := e.Expr().AsNaturalLit()
		return int(n)
	})
	qt.Assert(t, qt.Equals(mapped.Head, "a"))
	qt.Assert(t, qt.Equals(mapped.Tail[0].Expr, 1))
}

func TestRecordLitOrderedMapAccessor(t *testing.T) {
	fields, _, hadDup := NewOrderedMap([]MapEntry[Expr]{
		Entry[Expr]("b", natLit(2)),
		Entry[Expr]("a", natLit(1)),
	})
	qt.Assert(t, qt.IsTrue(!hadDup))
	rec := NewSubExpr(NewRecordLitExpr[Expr, Label, Import](fields), token.NoSpan)
	got, ok := rec.Expr().AsRecordLit()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(got.Labels(), []Label{"a", "b"}))
}

func TestNeverAbsurdPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic from AbsurdNever")
		}
	}()
	AbsurdNever(nil)
}
