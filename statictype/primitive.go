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

import "github.com/dhall-lang/dhall-go/ast"

// Bool is the SimpleStaticType for a Go boolean, mapping to `Bool`. Used
// as a building block wherever a wrapper type (Pair, Result, ...) needs a
// concrete leaf SimpleStaticType rather than a bare bool.
type Bool struct{}

func (Bool) DhallSimpleType() ast.Expr { return builtinExpr(ast.Bool) }

// UnsignedNatural is the SimpleStaticType for a Go unsigned integer of
// any width, mapping to `Natural`.
type UnsignedNatural struct{}

func (UnsignedNatural) DhallSimpleType() ast.Expr { return builtinExpr(ast.Natural) }

// SignedInteger is the SimpleStaticType for a Go signed integer of any
// width, mapping to `Integer`.
type SignedInteger struct{}

func (SignedInteger) DhallSimpleType() ast.Expr { return builtinExpr(ast.Integer) }

// Text is the SimpleStaticType for a Go string, mapping to `Text`.
type Text struct{}

func (Text) DhallSimpleType() ast.Expr { return builtinExpr(ast.Text) }

// DoubleValue is the SimpleStaticType for a Go floating-point value,
// mapping to `Double`: dhall-rust's own static_type.rs gives f64 a
// SimpleStaticType impl alongside the integer widths.
type DoubleValue struct{}

func (DoubleValue) DhallSimpleType() ast.Expr { return builtinExpr(ast.Double) }
