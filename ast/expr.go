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

import "github.com/dhall-lang/dhall-go/token"

// Expr is a freshly parsed expression: every node carries a token.Span
// note, and embeds are unresolved Import values, matching the original's
// ParsedExpr.
type Expr = SubExpr[token.Span, Import]

// ResolvedExpr is an expression after import resolution has replaced
// every Import with the expression it denotes; no embeds remain, but
// source notes are still carried for diagnostics.
type ResolvedExpr = SubExpr[token.Span, Never]

// DhallExpr is a fully resolved, note-free expression, the type a
// normalizer or type-checker operates on once diagnostics no longer need
// source positions.
type DhallExpr = SubExpr[Never, Never]
