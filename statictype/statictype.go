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

// Package statictype bridges host Go values to the Dhall type expressions
// that describe their shape, mirroring dhall-rust's StaticType/
// SimpleStaticType traits. Go has no retroactive ("orphan") trait impls
// for types it doesn't own, so the bridge is a pair of interfaces plus a
// handful of generic wrapper types instead of blanket impls.
package statictype

import (
	"github.com/dhall-lang/dhall-go/ast"
	"github.com/dhall-lang/dhall-go/token"
)

// SimpleStaticType is implemented by host values whose Dhall type is a
// normal-form value type expression with no dependent structure: "my type
// is exactly this record/union/builtin, and nothing about a particular
// value changes it."
type SimpleStaticType interface {
	DhallSimpleType() ast.Expr
}

// StaticType is the looser capability: "I can report my Dhall type", with
// no promise that the reported expression is already a normal-form value
// type. Every SimpleStaticType gets one via AsStaticType, standing in for
// the blanket `impl<T: SimpleStaticType> StaticType for T` the Rust
// original uses and Go cannot express directly.
type StaticType interface {
	DhallType() ast.Expr
}

type simpleAsStatic struct {
	simple SimpleStaticType
}

// DhallType wraps the simple type in the shell a resolver/normalizer
// would otherwise build around an already-normal value: there is no
// normalizer in this module, so the wrapped expression is returned as-is
// rather than literally reconstructing a `Normalized{thunk, type}` record.
func (s simpleAsStatic) DhallType() ast.Expr {
	return s.simple.DhallSimpleType()
}

// AsStaticType promotes any SimpleStaticType to a StaticType.
func AsStaticType[T SimpleStaticType](t T) StaticType {
	return simpleAsStatic{simple: t}
}

func builtinExpr(b ast.Builtin) ast.Expr {
	return ast.NewSubExpr(ast.NewBuiltinExpr[ast.Expr, ast.Label, ast.Import](b), token.NoSpan)
}
