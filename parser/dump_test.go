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

package parser

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dhall-lang/dhall-go/ast"
)

// dumpExpr renders a parsed expression as a small, deterministic
// s-expression-like summary, just detailed enough to pin down the
// end-to-end parsing scenarios this package's txtar fixtures check. It is
// not a general pretty-printer: each Kind handled here is exactly the one
// a fixture exercises, not the full grammar.
func dumpExpr(e ast.Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e ast.Expr) {
	switch e.Expr().Kind() {
	case ast.KindBoolLit:
		v, _ := e.Expr().AsBoolLit()
		fmt.Fprintf(b, "BoolLit(%v) span=[%d,%d)", v, e.Note().Start(), e.Note().End())

	case ast.KindBuiltin:
		bt, _ := e.Expr().AsBuiltin()
		fmt.Fprintf(b, "Builtin(%s)", bt)

	case ast.KindVar:
		v, _ := e.Expr().AsVar()
		fmt.Fprintf(b, "Var(%s@%d)", v.Name, v.Index)

	case ast.KindLam:
		label, typ, body, _ := e.Expr().AsLam()
		fmt.Fprintf(b, "Lam(%s, ", label)
		writeExpr(b, typ)
		b.WriteString(", ")
		writeExpr(b, body)
		b.WriteString(")")

	case ast.KindLet:
		label, _, value, body, _ := e.Expr().AsLet()
		fmt.Fprintf(b, "Let(%s, ", label)
		writeExpr(b, value)
		b.WriteString(", ")
		writeExpr(b, body)
		b.WriteString(")")

	case ast.KindNaturalLit:
		n, _ := e.Expr().AsNaturalLit()
		fmt.Fprintf(b, "NaturalLit(%d)", n)

	case ast.KindRecordLit:
		fields, _ := e.Expr().AsRecordLit()
		b.WriteString("RecordLit{")
		first := true
		fields.Range(func(label ast.Label, v ast.Expr) {
			if !first {
				b.WriteString(", ")
			}
			first = false
			fmt.Fprintf(b, "%s: ", label)
			writeExpr(b, v)
		})
		b.WriteString("}")

	case ast.KindTextLit:
		t, _ := e.Expr().AsTextLit()
		fmt.Fprintf(b, "TextLit(%q)", t.Head)

	case ast.KindEmbed:
		imp, _ := e.Expr().AsEmbed()
		writeImport(b, imp)

	default:
		fmt.Fprintf(b, "<%s>", e.Expr().Kind())
	}
}

func writeImport(b *strings.Builder, imp ast.Import) {
	b.WriteString("Embed(")
	switch imp.Location.Kind {
	case ast.LocalImport:
		fmt.Fprintf(b, "Local(%s, %v)", filePrefixName(imp.Location.Local.Prefix), imp.Location.Local.Path)
	case ast.RemoteImport:
		fmt.Fprintf(b, "Remote(%s://%s%v)", schemeName(imp.Location.Remote.Scheme), imp.Location.Remote.Authority, imp.Location.Remote.Path)
	case ast.EnvImport:
		fmt.Fprintf(b, "Env(%s)", *imp.Location.Env)
	case ast.MissingImport:
		b.WriteString("Missing")
	}
	if imp.Hash != nil {
		fmt.Fprintf(b, ", hash=%s:%s", imp.Hash.Algorithm, hex.EncodeToString(imp.Hash.Digest))
	}
	b.WriteString(")")
}

func filePrefixName(p ast.FilePrefix) string {
	switch p {
	case ast.Absolute:
		return "Absolute"
	case ast.Here:
		return "Here"
	case ast.Parent:
		return "Parent"
	case ast.Home:
		return "Home"
	default:
		return "<invalid FilePrefix>"
	}
}

func schemeName(s ast.Scheme) string {
	if s == ast.HTTPS {
		return "https"
	}
	return "http"
}
