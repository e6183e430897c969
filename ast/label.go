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

import "strings"

// Label is an identifier: a variable name, a record/union field name, or a
// let-binding name. Backtick-quoted labels (`` `type` ``) allow reserved
// words and characters outside the bare identifier grammar; Label stores
// the decoded text without backticks either way.
type Label string

// NewLabel trims a surrounding pair of backticks from raw, if present,
// leaving the text unchanged otherwise. This is the one piece of syntax a
// Label constructor needs to know about; everything past this point treats
// Label as an opaque comparable string.
func NewLabel(raw string) Label {
	if len(raw) >= 2 && raw[0] == '`' && raw[len(raw)-1] == '`' {
		return Label(raw[1 : len(raw)-1])
	}
	return Label(raw)
}

// String returns the label's text.
func (l Label) String() string { return string(l) }

// IsReservedPrefixed reports whether l starts with an underscore, which in
// the grammar marks a let-binding name as eligible for introduction
// without shadowing diagnostics (matches dhall_syntax's handling of
// `_`-prefixed bindings).
func (l Label) IsReservedPrefixed() bool {
	return strings.HasPrefix(string(l), "_")
}
