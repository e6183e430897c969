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

// Const is one of Dhall's three universe sorts: Type : Kind : Sort.
type Const int

const (
	Type Const = iota
	Kind
	Sort
)

// String renders c as it appears in source.
func (c Const) String() string {
	switch c {
	case Type:
		return "Type"
	case Kind:
		return "Kind"
	case Sort:
		return "Sort"
	default:
		return "<invalid Const>"
	}
}

// ParseConst looks up a universe sort by its source spelling.
func ParseConst(s string) (Const, bool) {
	switch s {
	case "Type":
		return Type, true
	case "Kind":
		return Kind, true
	case "Sort":
		return Sort, true
	default:
		return 0, false
	}
}
