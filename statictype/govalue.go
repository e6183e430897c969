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
	"fmt"
	"reflect"

	"github.com/dhall-lang/dhall-go/ast"
)

// OfGoValue reports the Dhall type of an arbitrary Go value by reflecting
// over its kind, supplementing the required SimpleStaticType table with a
// convenience entry point for host code that just has a bare primitive in
// hand and doesn't want to wrap it by name first. Pointers are followed
// to their element type; every other shape is an error, since records,
// slices and maps need a SimpleStaticType wrapper to say what their
// fields mean (OrderedMap, Sequence, Pair, ...) rather than a guess.
func OfGoValue(x any) (ast.Expr, error) {
	if s, ok := x.(SimpleStaticType); ok {
		return s.DhallSimpleType(), nil
	}
	return goTypeToExpr(reflect.TypeOf(x))
}

func goTypeToExpr(t reflect.Type) (ast.Expr, error) {
	if t == nil {
		return ast.Expr{}, fmt.Errorf("statictype: cannot infer a Dhall type for a nil value")
	}
	switch t.Kind() {
	case reflect.Ptr:
		return goTypeToExpr(t.Elem())
	case reflect.Bool:
		return Bool{}.DhallSimpleType(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return UnsignedNatural{}.DhallSimpleType(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return SignedInteger{}.DhallSimpleType(), nil
	case reflect.Float32, reflect.Float64:
		return DoubleValue{}.DhallSimpleType(), nil
	case reflect.String:
		return Text{}.DhallSimpleType(), nil
	default:
		return ast.Expr{}, fmt.Errorf("statictype: no automatic Dhall type for Go kind %s; wrap it in a SimpleStaticType (Pair, Optional, Sequence, ...)", t.Kind())
	}
}
