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

// Never stands in for Rust's uninhabited `enum X {}`: it is instantiated
// as the Embed or Note type parameter of an ExprF/SubExpr once import
// resolution and note-stripping have both already happened, documenting
// at the type level that no further embeds or notes remain. Nothing in
// this module implements it; the zero value of any concrete type used in
// its place is never actually constructed along a reachable code path.
type Never interface {
	neverImplementMe()
}

// AbsurdNever is called where a traversal reaches an ExprF[?, ?, Never]
// node tagged Embed; by construction this is unreachable, so it panics
// rather than returning a zero value that would silently paper over a
// broken invariant.
func AbsurdNever(Never) {
	panic("ast: Never value constructed; this is always a bug")
}
