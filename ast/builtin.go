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

// Builtin enumerates the reserved, pre-bound names of the Dhall grammar:
// the built-in types and their introduction/elimination functions.
type Builtin int

const (
	Bool Builtin = iota
	Natural
	Integer
	Double
	Text
	List
	Optional

	OptionalNone
	NaturalBuild
	NaturalFold
	NaturalIsZero
	NaturalEven
	NaturalOdd
	NaturalToInteger
	NaturalShow
	NaturalSubtract
	IntegerToDouble
	IntegerShow
	DoubleShow
	ListBuild
	ListFold
	ListLength
	ListHead
	ListLast
	ListIndexed
	ListReverse
	OptionalFold
	OptionalBuild
	TextShow
)

var builtinNames = map[Builtin]string{
	Bool:             "Bool",
	Natural:          "Natural",
	Integer:          "Integer",
	Double:           "Double",
	Text:             "Text",
	List:             "List",
	Optional:         "Optional",
	OptionalNone:     "None",
	NaturalBuild:     "Natural/build",
	NaturalFold:      "Natural/fold",
	NaturalIsZero:    "Natural/isZero",
	NaturalEven:      "Natural/even",
	NaturalOdd:       "Natural/odd",
	NaturalToInteger: "Natural/toInteger",
	NaturalShow:      "Natural/show",
	NaturalSubtract:  "Natural/subtract",
	IntegerToDouble:  "Integer/toDouble",
	IntegerShow:      "Integer/show",
	DoubleShow:       "Double/show",
	ListBuild:        "List/build",
	ListFold:         "List/fold",
	ListLength:       "List/length",
	ListHead:         "List/head",
	ListLast:         "List/last",
	ListIndexed:      "List/indexed",
	ListReverse:      "List/reverse",
	OptionalFold:     "Optional/fold",
	OptionalBuild:    "Optional/build",
	TextShow:         "Text/show",
}

var builtinsByName map[string]Builtin

func init() {
	builtinsByName = make(map[string]Builtin, len(builtinNames))
	for b, name := range builtinNames {
		builtinsByName[name] = b
	}
}

// String renders b as it appears in source.
func (b Builtin) String() string {
	if name, ok := builtinNames[b]; ok {
		return name
	}
	return "<invalid Builtin>"
}

// ParseBuiltin looks up a builtin by its source spelling, matching
// dhall_syntax::Builtin::parse. Natural/subtract is included here even
// though it is absent from some published variant lists, since the
// original parser's builtin table accepts it.
func ParseBuiltin(s string) (Builtin, bool) {
	b, ok := builtinsByName[s]
	return b, ok
}
