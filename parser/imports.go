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
	"strings"

	"github.com/dhall-lang/dhall-go/ast"
	"github.com/dhall-lang/dhall-go/errors"
	"github.com/dhall-lang/dhall-go/literal"
	"github.com/dhall-lang/dhall-go/scanner"
	"github.com/dhall-lang/dhall-go/token"
)

// Import syntax doesn't tokenize cleanly: URL schemes, authorities and
// query strings, percent-ish path components and hash digests all need
// raw character-level decisions the generic Scan() dispatcher can't make
// on its own. These functions drive the scanner's raw cursor directly
// (Peek/ConsumeLiteral/ScanRawUntil*) instead of going through p.next(),
// and resynchronize onto the normal token stream with one p.next() call
// once the import's own grammar is fully consumed.

// decodeDoubleQuoteText decodes the backslash escapes in a raw (still
// escaped) double-quote text chunk, as produced by scanner.Scan's
// DoubleQuoteStringPart/DoubleInterpStart tokens and by a quoted path
// component or environment-variable name, which share the same escape
// grammar (dhall_syntax::double_quote_escaped).
func decodeDoubleQuoteText(raw string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] != '\\' {
			b.WriteByte(raw[i])
			i++
			continue
		}
		i++
		if i >= len(raw) {
			return "", errors.New(errors.CustomParse, token.NoSpan, "literal: unterminated escape sequence")
		}
		if raw[i] != 'u' {
			decoded, err := literal.DecodeDoubleQuoteEscape(raw[i : i+1])
			if err != nil {
				return "", err
			}
			b.WriteString(decoded)
			i++
			continue
		}
		// \u.... (4 hex digits) or \u{...} (1-8 hex digits, braced).
		j := i + 1
		if j < len(raw) && raw[j] == '{' {
			end := strings.IndexByte(raw[j:], '}')
			if end < 0 {
				return "", errors.New(errors.CustomParse, token.NoSpan, "literal: unterminated \\u{...} escape")
			}
			j += end + 1
		} else {
			for k := 0; k < 4 && j < len(raw) && isHexDigit(raw[j]); k++ {
				j++
			}
		}
		decoded, err := literal.DecodeDoubleQuoteEscape(raw[i:j])
		if err != nil {
			return "", err
		}
		b.WriteString(decoded)
		i = j
	}
	return b.String(), nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// decodePosixEnvName decodes a raw (still-escaped) quoted POSIX
// environment-variable name, sharing the same backslash-driven structure
// as decodeDoubleQuoteText but consulting literal.DecodePosixEnvVarChar's
// narrower escape set instead.
func decodePosixEnvName(raw string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] != '\\' {
			decoded, err := literal.DecodePosixEnvVarChar(raw[i : i+1])
			if err != nil {
				return "", err
			}
			b.WriteString(decoded)
			i++
			continue
		}
		if i+1 >= len(raw) {
			return "", errors.New(errors.CustomParse, token.NoSpan, "literal: unterminated escape sequence")
		}
		decoded, err := literal.DecodePosixEnvVarChar(raw[i : i+2])
		if err != nil {
			return "", err
		}
		b.WriteString(decoded)
		i += 2
	}
	return b.String(), nil
}

// scanQuotedRaw consumes a `"..."` run (the scanner's cursor must sit
// exactly on the opening quote) and returns its still-escaped content.
func (p *parser) scanQuotedRaw() string {
	p.sc.ConsumeLiteral(`"`)
	raw := p.sc.ScanRawUntilRune('"')
	if !p.sc.ConsumeLiteral(`"`) {
		p.fail(p.tok.Span, errors.GrammarMismatch, "unterminated quoted path component")
	}
	return raw
}

// scanPathComponentRaw scans one local- or remote-import path component:
// either a bare run of path characters, or a `"..."`-quoted one whose
// escapes follow the same grammar as a double-quoted text literal.
func (p *parser) scanPathComponentRaw() string {
	if p.sc.Peek() == '"' {
		raw := p.scanQuotedRaw()
		text, err := decodeDoubleQuoteText(raw)
		if err != nil {
			p.fail(p.tok.Span, errors.CustomParse, "%s", err)
		}
		return text
	}
	return p.sc.ScanPathComponent().Text
}

// scanPathComponents scans a "/"-separated run of path components; the
// scanner's cursor must already sit on the first "/".
func (p *parser) scanPathComponents() []string {
	var components []string
	for p.sc.Peek() == '/' {
		p.sc.ConsumeLiteral("/")
		components = append(components, p.scanPathComponentRaw())
	}
	return components
}

// ---------------------------------------------------------------------
// local imports: "./foo", "../foo", "/foo", "~/foo"

// parseLocalImportFromDot is entered once the leading "." has already
// been consumed as a Dot token, so the scanner's cursor sits right after
// it: a following "/" means "./" (Here), a following "./" means "../"
// (Parent, the bare "." of which is not its own token).
func (p *parser) parseLocalImportFromDot() ast.Expr {
	span := p.tok.Span
	var prefix ast.FilePrefix
	switch {
	case p.sc.ConsumeLiteral("./"):
		prefix = ast.Parent
	case p.sc.ConsumeLiteral("/"):
		prefix = ast.Here
	default:
		p.fail(span, errors.GrammarMismatch, "expected \"/\" or \"./\" after \".\" in a local import path")
	}
	return p.finishLocalImport(prefix, span)
}

func (p *parser) parseLocalImportAbsolute() ast.Expr {
	span := p.tok.Span
	return p.finishLocalImport(ast.Absolute, span)
}

func (p *parser) parseLocalImportHome() ast.Expr {
	span := p.tok.Span
	if !p.sc.ConsumeLiteral("/") {
		p.fail(span, errors.GrammarMismatch, "expected \"/\" after \"~\" in a local import path")
	}
	return p.finishLocalImport(ast.Home, span)
}

// finishLocalImport scans the "/"-separated path that follows a
// recognized prefix, the scanner's cursor sitting on the first component
// (not a leading "/", already consumed by the caller).
func (p *parser) finishLocalImport(prefix ast.FilePrefix, span token.Span) ast.Expr {
	first := p.scanPathComponentRaw()
	rest := p.scanPathComponents()
	path := append([]string{first}, rest...)
	p.next()
	loc := ast.ImportLocation{Kind: ast.LocalImport, Local: &ast.LocalLocation{Prefix: prefix, Path: path}}
	return p.parseImportSuffix(loc, span)
}

// ---------------------------------------------------------------------
// remote imports: "http://..." / "https://..."

func (p *parser) tryParseRemoteImport() ast.Expr {
	span := p.tok.Span
	scheme := ast.HTTP
	if p.tok.Text == "https" {
		scheme = ast.HTTPS
	}
	if !p.sc.ConsumeLiteral("://") {
		p.fail(span, errors.GrammarMismatch, "expected \"://\" after %q", p.tok.Text)
	}
	authority := p.sc.ScanRawUntilAny("/?")
	path := p.scanPathComponents()

	var query *string
	if p.sc.Peek() == '?' {
		p.sc.ConsumeLiteral("?")
		q := p.sc.ScanRawUntilAny("")
		query = &q
	}
	p.next()

	url := &ast.URL{Scheme: scheme, Authority: authority, Path: path, Query: query}
	if p.isKeyword("using") {
		p.next()
		url.Headers = p.parseImportExpr()
	}
	loc := ast.ImportLocation{Kind: ast.RemoteImport, Remote: url}
	return p.parseImportSuffix(loc, span)
}

// ---------------------------------------------------------------------
// environment-variable imports: "env:FOO" / "env:\"FOO BAR\""

// parseEnvImport is entered with p.tok already holding the token for the
// name itself: by the time the caller's second p.next() runs, the "env"
// identifier and the following ":" are both behind the scanner's cursor
// (the ":" was consumed as part of the lookahead in parseIdentPrimitive),
// so the ordinary Scan() dispatcher has already tokenized the bare name
// as an Ident or the quoted name as a DoubleQuoteStringPart.
func (p *parser) parseEnvImport(span token.Span) ast.Expr {
	var name string
	switch p.tok.Kind {
	case scanner.Ident:
		name = p.tok.Text
		p.next()
	case scanner.DoubleQuoteStringPart:
		decoded, err := decodePosixEnvName(p.tok.Text)
		if err != nil {
			p.fail(p.tok.Span, errors.CustomParse, "%s", err)
		}
		name = decoded
		p.next()
	default:
		p.fail(p.tok.Span, errors.GrammarMismatch, "expected an environment variable name, found %s", p.tokenDesc())
	}
	label := ast.NewLabel(name)
	loc := ast.ImportLocation{Kind: ast.EnvImport, Env: &label}
	return p.parseImportSuffix(loc, span)
}

// ---------------------------------------------------------------------
// the common suffix shared by every import: an optional "sha256:<hex>"
// integrity hash, then an optional "as Text" / "as Location" mode.

func (p *parser) parseImportSuffix(loc ast.ImportLocation, startSpan token.Span) ast.Expr {
	end := startSpan
	var hash *ast.Hash

	if p.tok.Kind == scanner.Ident && p.tok.Text == "sha256" {
		hashSpan := p.tok.Span
		if !p.sc.ConsumeLiteral(":") {
			p.fail(hashSpan, errors.GrammarMismatch, "expected \":\" after \"sha256\"")
		}
		digest := p.sc.ScanRawUntilAny("")
		_, decoded, err := literal.ParseHash("sha256:" + digest)
		if err != nil {
			p.fail(hashSpan, errors.CustomParse, "%s", err)
		}
		hash = &ast.Hash{Algorithm: "sha256", Digest: decoded}
		end = hashSpan
		p.next()
	}

	mode := ast.Code
	if p.isKeyword("as") {
		asSpan := p.tok.Span
		p.next()
		switch {
		case p.tok.Kind == scanner.Ident && p.tok.Text == "Text":
			mode = ast.RawText
			end = p.tok.Span
			p.next()
		case p.tok.Kind == scanner.Ident && p.tok.Text == "Location":
			mode = ast.Location
			end = p.tok.Span
			p.next()
		default:
			p.fail(asSpan, errors.GrammarMismatch, "expected \"Text\" or \"Location\" after \"as\", found %s", p.tokenDesc())
		}
	}

	span := startSpan.Merge(end)
	imp := ast.Import{Location: loc, Mode: mode, Hash: hash}
	return ast.NewSubExpr(ast.NewEmbedExpr[ast.Expr, ast.Label, ast.Import](imp), span)
}
