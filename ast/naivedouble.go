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
	"math"
	"strconv"
)

// NaiveDouble wraps a float64 with bitwise equality instead of IEEE 754
// equality, so that NaN compares equal to itself and +0/-0 compare unequal
// — the comparison AST equality needs, matching the original NaiveDouble's
// PartialEq impl over the raw bit pattern.
type NaiveDouble struct {
	bits uint64
}

// NewNaiveDouble wraps f.
func NewNaiveDouble(f float64) NaiveDouble {
	return NaiveDouble{bits: math.Float64bits(f)}
}

// Float64 unwraps the underlying value.
func (d NaiveDouble) Float64() float64 {
	return math.Float64frombits(d.bits)
}

// Equal compares the bit patterns of d and other directly.
func (d NaiveDouble) Equal(other NaiveDouble) bool {
	return d.bits == other.bits
}

// String renders d the way Dhall source would show it.
func (d NaiveDouble) String() string {
	f := d.Float64()
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !containsAny(s, ".eE") {
			s += ".0"
		}
		return s
	}
}

func containsAny(s, chars string) bool {
	for _, c := range chars {
		for _, r := range s {
			if r == c {
				return true
			}
		}
	}
	return false
}
