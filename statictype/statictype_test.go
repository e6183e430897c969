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
	"testing"

	"github.com/dhall-lang/dhall-go/ast"
	"github.com/go-quicktest/qt"
)

func TestPrimitiveSimpleStaticTypes(t *testing.T) {
	_, ok := Bool{}.DhallSimpleType().Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(ok))

	b, ok := UnsignedNatural{}.DhallSimpleType().Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(b, ast.Natural))

	b, ok = SignedInteger{}.DhallSimpleType().Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(b, ast.Integer))

	b, ok = Text{}.DhallSimpleType().Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(b, ast.Text))
}

func TestPairDhallType(t *testing.T) {
	p := Pair[Bool, Text]{First: Bool{}, Second: Text{}}
	fields, ok := p.DhallSimpleType().Expr().AsRecordType()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(fields.Labels(), []ast.Label{"_1", "_2"}))
}

func TestOptionalDhallType(t *testing.T) {
	o := Optional[UnsignedNatural]{Elem: UnsignedNatural{}}
	fn, arg, ok := o.DhallSimpleType().Expr().AsApp()
	qt.Assert(t, qt.IsTrue(ok))
	b, bok := fn.Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(bok))
	qt.Assert(t, qt.Equals(b, ast.Optional))
	_, aok := arg.Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(aok))
}

func TestSequenceDhallType(t *testing.T) {
	s := Sequence[Text]{Elem: Text{}}
	fn, _, ok := s.DhallSimpleType().Expr().AsApp()
	qt.Assert(t, qt.IsTrue(ok))
	b, bok := fn.Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(bok))
	qt.Assert(t, qt.Equals(b, ast.List))
}

func TestPhantomDhallType(t *testing.T) {
	fields, ok := Phantom[int]{}.DhallSimpleType().Expr().AsRecordType()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(len(fields.Labels()), 0))
}

func TestResultDhallType(t *testing.T) {
	r := Result[UnsignedNatural, Text]{Ok: UnsignedNatural{}, Err: Text{}}
	alts, ok := r.DhallSimpleType().Expr().AsUnionType()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(alts.Labels(), []ast.Label{"Err", "Ok"}))
}

func TestBorrowedDhallType(t *testing.T) {
	b := Borrowed[Bool]{Value: Bool{}}
	_, ok := b.DhallSimpleType().Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(ok))
}

func TestAsStaticType(t *testing.T) {
	st := AsStaticType(Bool{})
	_, ok := st.DhallType().Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(ok))
}

func TestOfGoValuePrimitives(t *testing.T) {
	e, err := OfGoValue(true)
	qt.Assert(t, qt.IsNil(err))
	b, ok := e.Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(b, ast.Bool))

	e, err = OfGoValue(uint32(7))
	qt.Assert(t, qt.IsNil(err))
	b, ok = e.Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(b, ast.Natural))

	e, err = OfGoValue(int16(-3))
	qt.Assert(t, qt.IsNil(err))
	b, ok = e.Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(b, ast.Integer))

	e, err = OfGoValue("hi")
	qt.Assert(t, qt.IsNil(err))
	b, ok = e.Expr().AsBuiltin()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(b, ast.Text))
}

func TestOfGoValueWrapper(t *testing.T) {
	e, err := OfGoValue(Optional[Bool]{Elem: Bool{}})
	qt.Assert(t, qt.IsNil(err))
	_, _, ok := e.Expr().AsApp()
	qt.Assert(t, qt.IsTrue(ok))
}

func TestOfGoValueUnsupportedKind(t *testing.T) {
	_, err := OfGoValue(struct{ X int }{})
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}
