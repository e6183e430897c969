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

// Package errors defines the diagnostic types raised by the Dhall parser
// and string/numeric decoders.
//
// The pivotal type is the Error interface. Every error the core raises
// carries a Kind, a position and — since the parser never recovers a
// partial parse locally — a rendered excerpt of the offending sub-tree,
// which a caller can show a user alongside the message.
package errors

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kr/pretty"

	"github.com/dhall-lang/dhall-go/token"
)

// Kind enumerates the error kinds the core can raise.
type Kind int

const (
	// GrammarMismatch: input did not match the expected grammar rule.
	GrammarMismatch Kind = iota
	// CustomParse: rule-local validation failed (unknown builtin, illegal
	// escape, numeric overflow, duplicate field label, ...).
	CustomParse
	// InvalidSurrogate: \uXXXX fell in the UTF-16 surrogate range.
	InvalidSurrogate
	// InvalidNonCharacter: \uXXXX named a Unicode non-character code point.
	InvalidNonCharacter
	// Overflow: a double literal parsed to +/-Inf.
	Overflow
	// UnknownBuiltin: a reserved-word-shaped token wasn't in the builtin table.
	UnknownBuiltin
	// UnknownHashAlgorithm: an import hash's prefix wasn't "sha256".
	UnknownHashAlgorithm
	// UnsupportedSelector: a selection-by-expression (`e.(E)`) was parsed;
	// the grammar accepts it but no implementation exists downstream.
	UnsupportedSelector
)

// String names the kind, for use in messages and tests.
func (k Kind) String() string {
	switch k {
	case GrammarMismatch:
		return "GrammarMismatch"
	case CustomParse:
		return "CustomParse"
	case InvalidSurrogate:
		return "InvalidSurrogate"
	case InvalidNonCharacter:
		return "InvalidNonCharacter"
	case Overflow:
		return "Overflow"
	case UnknownBuiltin:
		return "UnknownBuiltin"
	case UnknownHashAlgorithm:
		return "UnknownHashAlgorithm"
	case UnsupportedSelector:
		return "UnsupportedSelector"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the common diagnostic type raised by this module.
type Error interface {
	error

	// Kind reports which of the kinds above this error is.
	Kind() Kind

	// Position returns the error's primary source position.
	Position() token.Span

	// Excerpt returns a pretty rendering of the offending sub-tree or
	// token run, for display alongside Error().
	Excerpt() string
}

// posError is the sole implementation of Error.
type posError struct {
	kind    Kind
	pos     token.Span
	message string
	excerpt string
}

func (e *posError) Error() string      { return e.message }
func (e *posError) Kind() Kind         { return e.kind }
func (e *posError) Position() token.Span { return e.pos }
func (e *posError) Excerpt() string    { return e.excerpt }

// New creates an Error of the given kind at pos, with message built
// printf-style, and no excerpt.
func New(kind Kind, pos token.Span, format string, args ...interface{}) Error {
	return &posError{kind: kind, pos: pos, message: fmt.Sprintf(format, args...)}
}

// Newf is an alias of New kept for parity with cue/errors.Newf; it exists
// so call sites reading like "errors.Newf(CustomParse, pos, ...)" and
// "errors.New(...)" both read naturally depending on whether a caller
// already has a Kind value in hand.
func Newf(kind Kind, pos token.Span, format string, args ...interface{}) Error {
	return New(kind, pos, format, args...)
}

// WithExcerpt attaches a pretty-printed rendering of node (any parsed
// fragment: an ast.Expr, a token run, a []ast.Label, ...) to err, matching
// dhall_syntax's ParseInput.error, which appends "while matching on:\n" and
// a debug dump of the offending parse pair.
func WithExcerpt(err Error, node interface{}) Error {
	pe, ok := err.(*posError)
	if !ok {
		return err
	}
	cp := *pe
	cp.excerpt = pretty.Sprint(node)
	return &cp
}

// List aggregates zero or more Errors, preserving insertion order except
// where Sanitize is asked to collapse duplicates.
type List []Error

// Add appends err to the list, flattening nested Lists.
func (l *List) Add(err Error) {
	if err == nil {
		return
	}
	if sub, ok := err.(List); ok {
		*l = append(*l, sub...)
		return
	}
	*l = append(*l, err)
}

// Err returns l as an error (nil if empty), for returning from functions
// that build up a List while walking a tree and want a single error value
// at the end.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
	}
}

// Kind reports the first error's kind, matching cue/errors.list's delegation
// to its first element. Callers that branch on Kind() rarely see a List with
// more than one distinct kind at a time.
func (l List) Kind() Kind {
	if len(l) == 0 {
		return CustomParse
	}
	return l[0].Kind()
}

// Position reports the first error's position, or token.NoSpan if l is empty.
func (l List) Position() token.Span {
	if len(l) == 0 {
		return token.NoSpan
	}
	return l[0].Position()
}

// Excerpt reports the first error's excerpt, or "" if l is empty.
func (l List) Excerpt() string {
	if len(l) == 0 {
		return ""
	}
	return l[0].Excerpt()
}

// Sanitize sorts a List by position and removes duplicate messages at the
// same position, matching cue/errors.Sanitize.
func (l List) Sanitize() List {
	if len(l) <= 1 {
		return l
	}
	out := append(List(nil), l...)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Position(), out[j].Position()
		if pi.Filename() != pj.Filename() {
			return pi.Filename() < pj.Filename()
		}
		return pi.Start() < pj.Start()
	})
	deduped := out[:0]
	for i, e := range out {
		if i > 0 {
			prev := deduped[len(deduped)-1]
			if prev.Position() == e.Position() && prev.Error() == e.Error() {
				continue
			}
		}
		deduped = append(deduped, e)
	}
	return deduped
}

// Print writes every error in err (a single Error or a List) to w, one per
// line, followed by its position and excerpt if any.
func Print(w io.Writer, err error) {
	for _, e := range Errors(err) {
		fmt.Fprintf(w, "%s: %s\n", e.Position(), e.Error())
		if x := e.Excerpt(); x != "" {
			for _, line := range strings.Split(strings.TrimRight(x, "\n"), "\n") {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
	}
}

// Details is a convenience wrapper around Print returning the rendered
// text as a string.
func Details(err error) string {
	var b strings.Builder
	Print(&b, err)
	return b.String()
}

// Errors normalizes err into a []Error: nil becomes empty, a List is
// flattened, a bare Error becomes a one-element slice, and any other error
// is wrapped with an unknown position.
func Errors(err error) []Error {
	switch x := err.(type) {
	case nil:
		return nil
	case List:
		return append([]Error(nil), x...)
	case Error:
		return []Error{x}
	default:
		return []Error{&posError{kind: CustomParse, message: x.Error()}}
	}
}
