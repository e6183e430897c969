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

// ---------------------------------------------------------------------
// labels

// parseNonreservedLabel parses a binder name: an identifier that isn't
// one of the grammar's true reserved words. "Type"/"Kind"/"Sort" are
// accepted too, since those three are spelled like keywords in this
// scanner's table only so Const-parsing can dispatch on them directly,
// not because the grammar actually reserves them as binder names.
func (p *parser) parseNonreservedLabel() ast.Label {
	return p.parseLabel()
}

// parseAnyLabel parses a record field, union alternative, or projection
// label. Field position accepts the same set as a binder name.
func (p *parser) parseAnyLabel() ast.Label {
	return p.parseLabel()
}

func (p *parser) parseLabel() ast.Label {
	switch {
	case p.tok.Kind == scanner.Ident:
		text := p.tok.Text
		p.next()
		return ast.NewLabel(text)
	case p.tok.Kind == scanner.Keyword && (p.tok.Text == "Type" || p.tok.Text == "Kind" || p.tok.Text == "Sort"):
		text := p.tok.Text
		p.next()
		return ast.NewLabel(text)
	default:
		p.fail(p.tok.Span, errors.GrammarMismatch, "expected a label, found %s", p.tokenDesc())
		panic("unreachable")
	}
}

// ---------------------------------------------------------------------
// import-expression: the primitive-expression grammar level, one step
// below selector-expression. Variables, literals, parenthesized
// sub-expressions, record/union/list literals and imports all live here.

func (p *parser) parseImportExpr() ast.Expr {
	switch p.tok.Kind {
	case scanner.Keyword:
		return p.parseKeywordPrimitive()
	case scanner.Ident:
		return p.parseIdentPrimitive()
	case scanner.NaturalLit:
		return p.parseNaturalLit()
	case scanner.IntegerLit:
		return p.parseIntegerLit()
	case scanner.DoubleLit:
		return p.parseDoubleLit()
	case scanner.DoubleQuoteStringPart, scanner.DoubleInterpStart:
		return p.parseDoubleQuoteTextLit()
	case scanner.SingleQuoteStringPart, scanner.SingleInterpStart:
		return p.parseSingleQuoteTextLit()
	case scanner.LParen:
		return p.parseParenExpr()
	case scanner.LBrace:
		return p.parseRecordTypeOrLit()
	case scanner.LBracket:
		return p.parseListLit()
	case scanner.Operator:
		if p.tok.Text == "<" {
			return p.parseUnionTypeOrLit()
		}
	case scanner.Dot:
		return p.parseLocalImportFromDot()
	case scanner.Slash:
		return p.parseLocalImportAbsolute()
	case scanner.Tilde:
		return p.parseLocalImportHome()
	}
	p.fail(p.tok.Span, errors.GrammarMismatch, "unexpected %s", p.tokenDesc())
	panic("unreachable")
}

func (p *parser) parseKeywordPrimitive() ast.Expr {
	span := p.tok.Span
	switch p.tok.Text {
	case "Type", "Kind", "Sort":
		c, _ := ast.ParseConst(p.tok.Text)
		p.next()
		return ast.NewSubExpr(ast.NewConstExpr[ast.Expr, ast.Label, ast.Import](c), span)
	case "Infinity":
		p.next()
		return ast.NewSubExpr(ast.NewDoubleLitExpr[ast.Expr, ast.Label, ast.Import](ast.NewNaiveDouble(mustDouble("Infinity"))), span)
	case "NaN":
		p.next()
		return ast.NewSubExpr(ast.NewDoubleLitExpr[ast.Expr, ast.Label, ast.Import](ast.NewNaiveDouble(mustDouble("NaN"))), span)
	case "missing":
		p.next()
		loc := ast.ImportLocation{Kind: ast.MissingImport}
		return p.parseImportSuffix(loc, span)
	}
	p.fail(span, errors.GrammarMismatch, "unexpected keyword %q", p.tok.Text)
	panic("unreachable")
}

func mustDouble(s string) float64 {
	v, err := literal.ParseDouble(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (p *parser) parseIdentPrimitive() ast.Expr {
	span := p.tok.Span
	text := p.tok.Text

	switch text {
	case "True":
		p.next()
		return ast.NewSubExpr(ast.NewBoolLitExpr[ast.Expr, ast.Label, ast.Import](true), span)
	case "False":
		p.next()
		return ast.NewSubExpr(ast.NewBoolLitExpr[ast.Expr, ast.Label, ast.Import](false), span)
	case "http", "https":
		return p.tryParseRemoteImport()
	case "env":
		if p.peekNext().Kind == scanner.Colon {
			p.next()
			p.next()
			return p.parseEnvImport(span)
		}
	}

	if c, ok := ast.ParseConst(text); ok {
		p.next()
		return ast.NewSubExpr(ast.NewConstExpr[ast.Expr, ast.Label, ast.Import](c), span)
	}
	if b, ok := ast.ParseBuiltin(text); ok {
		p.next()
		return ast.NewSubExpr(ast.NewBuiltinExpr[ast.Expr, ast.Label, ast.Import](b), span)
	}

	p.next()
	index := 0
	if p.tok.Kind == scanner.At {
		p.next()
		if p.tok.Kind != scanner.NaturalLit {
			p.fail(p.tok.Span, errors.GrammarMismatch, "expected a natural literal after \"@\", found %s", p.tokenDesc())
		}
		n, err := literal.ParseNatural(p.tok.Text)
		if err != nil {
			p.fail(p.tok.Span, errors.CustomParse, "%s", err)
		}
		span = span.Merge(p.tok.Span)
		index = int(n)
		p.next()
	}
	return ast.NewSubExpr(ast.NewVarExpr[ast.Expr, ast.Label, ast.Import](ast.NewV(ast.NewLabel(text), index)), span)
}

// ---------------------------------------------------------------------
// numeric literals

func (p *parser) parseNaturalLit() ast.Expr {
	span := p.tok.Span
	n, err := literal.ParseNatural(p.tok.Text)
	if err != nil {
		p.fail(span, errors.CustomParse, "%s", err)
	}
	p.next()
	return ast.NewSubExpr(ast.NewNaturalLitExpr[ast.Expr, ast.Label, ast.Import](n), span)
}

func (p *parser) parseIntegerLit() ast.Expr {
	span := p.tok.Span
	n, err := literal.ParseInteger(p.tok.Text)
	if err != nil {
		p.fail(span, errors.CustomParse, "%s", err)
	}
	p.next()
	return ast.NewSubExpr(ast.NewIntegerLitExpr[ast.Expr, ast.Label, ast.Import](n), span)
}

func (p *parser) parseDoubleLit() ast.Expr {
	span := p.tok.Span
	f, err := literal.ParseDouble(p.tok.Text)
	if err != nil {
		p.fail(span, errors.Overflow, "%s", err)
	}
	p.next()
	return ast.NewSubExpr(ast.NewDoubleLitExpr[ast.Expr, ast.Label, ast.Import](ast.NewNaiveDouble(f)), span)
}

// ---------------------------------------------------------------------
// parenthesized sub-expression

func (p *parser) parseParenExpr() ast.Expr {
	p.next()
	e := p.parseExpr()
	p.expect(scanner.RParen, ")")
	return e
}

// ---------------------------------------------------------------------
// text literals: double-quoted and single-quoted (multiline), both
// assembled from a DoubleQuoteStringPart/DoubleInterpStart (or Single...)
// token run, resuming the scanner after every embedded "${...}".

func (p *parser) parseDoubleQuoteTextLit() ast.Expr {
	start := p.tok.Span
	text, err := decodeDoubleQuoteText(p.tok.Text)
	if err != nil {
		p.fail(p.tok.Span, errors.CustomParse, "%s", err)
	}
	result := ast.NewInterpolatedText[ast.Expr](text)
	end := p.tok.Span
	for p.tok.Kind == scanner.DoubleInterpStart {
		p.next()
		expr := p.parseExpr()
		// The scanner already sits just past the "}", so the literal is
		// resumed from there instead of advancing with p.next().
		if p.tok.Kind != scanner.RBrace {
			p.fail(p.tok.Span, errors.GrammarMismatch, "expected }, found %s", p.tokenDesc())
		}
		resumed := p.sc.ResumeDoubleQuote()
		following, err := decodeDoubleQuoteText(resumed.Text)
		if err != nil {
			p.fail(resumed.Span, errors.CustomParse, "%s", err)
		}
		result = result.PushChunk(expr, following)
		end = resumed.Span
		p.tok = resumed
	}
	p.next()
	span := start.Merge(end)
	return ast.NewSubExpr(ast.NewTextLitExpr[ast.Expr, ast.Label, ast.Import](result), span)
}

func (p *parser) parseSingleQuoteTextLit() ast.Expr {
	start := p.tok.Span
	var segs []textSeg
	// The line break right after the opening '' is not part of the text.
	first := p.tok.Text
	if strings.HasPrefix(first, "\r\n") {
		first = first[2:]
	} else {
		first = strings.TrimPrefix(first, "\n")
	}
	segs = append(segs, textSeg{text: first})
	end := p.tok.Span
	for p.tok.Kind == scanner.SingleInterpStart {
		p.next()
		expr := p.parseExpr()
		// As in parseDoubleQuoteTextLit, resume right after the "}".
		if p.tok.Kind != scanner.RBrace {
			p.fail(p.tok.Span, errors.GrammarMismatch, "expected }, found %s", p.tokenDesc())
		}
		resumed := p.sc.ResumeSingleQuote()
		segs = append(segs, textSeg{isExpr: true, expr: expr})
		segs = append(segs, textSeg{text: resumed.Text})
		end = resumed.Span
		p.tok = resumed
	}
	p.next()

	lines := splitIntoLines(segs)
	heads := make([]string, len(lines))
	empty := make([]bool, len(lines))
	for i, line := range lines {
		if len(line) == 0 {
			empty[i] = true
			continue
		}
		if !line[0].isExpr {
			heads[i] = line[0].text
		}
	}
	trimmed := literal.TrimIndent(heads, empty)
	for i, line := range lines {
		if len(line) > 0 && !line[0].isExpr {
			line[0].text = trimmed[i]
		}
	}

	result := buildInterpolatedText(joinLines(lines))
	span := start.Merge(end)
	return ast.NewSubExpr(ast.NewTextLitExpr[ast.Expr, ast.Label, ast.Import](result), span)
}

func appendTail(t ast.InterpolatedText[ast.Expr], text string) ast.InterpolatedText[ast.Expr] {
	if len(t.Tail) == 0 {
		t.Head += text
		return t
	}
	t.Tail[len(t.Tail)-1].Text += text
	return t
}

// textSeg is one piece of a single-quoted literal's raw content: either a
// run of literal text or an embedded expression, in source order.
type textSeg struct {
	isExpr bool
	text   string
	expr   ast.Expr
}

// splitIntoLines re-groups a flat sequence of text/expr segments into
// per-line groups, breaking a text segment's "\n" runs into line
// boundaries. literal.TrimIndent then strips a common leading-whitespace
// prefix from each line's leading text segment.
func splitIntoLines(segs []textSeg) [][]textSeg {
	var lines [][]textSeg
	cur := []textSeg{}
	for _, s := range segs {
		if s.isExpr {
			cur = append(cur, s)
			continue
		}
		parts := strings.Split(s.text, "\n")
		for i, part := range parts {
			if part != "" {
				cur = append(cur, textSeg{text: part})
			}
			if i < len(parts)-1 {
				lines = append(lines, cur)
				cur = []textSeg{}
			}
		}
	}
	lines = append(lines, cur)
	return lines
}

// joinLines flattens dedented lines back into one segment sequence,
// reinserting the "\n" that splitIntoLines consumed between them.
func joinLines(lines [][]textSeg) []textSeg {
	var out []textSeg
	for i, line := range lines {
		if i > 0 {
			out = append(out, textSeg{text: "\n"})
		}
		out = append(out, line...)
	}
	return out
}

// buildInterpolatedText folds a flat segment sequence into the
// Head/Tail shape InterpolatedText expects: the run of text before the
// first embedded expression becomes Head, and each expression's
// following text (up to the next expression or the end) becomes that
// Tail entry's Text.
func buildInterpolatedText(segs []textSeg) ast.InterpolatedText[ast.Expr] {
	result := ast.NewInterpolatedText[ast.Expr]("")
	var head strings.Builder
	haveExpr := false
	for _, s := range segs {
		if !s.isExpr {
			if !haveExpr {
				head.WriteString(s.text)
			} else {
				result = appendTail(result, s.text)
			}
			continue
		}
		if !haveExpr {
			result.Head = head.String()
			haveExpr = true
		}
		result = result.PushChunk(s.expr, "")
	}
	if !haveExpr {
		result.Head = head.String()
	}
	return result
}
// ---------------------------------------------------------------------
// record type / literal

func (p *parser) parseRecordTypeOrLit() ast.Expr {
	start := p.tok.Span
	p.next()
	if p.tok.Kind == scanner.RBrace {
		end := p.tok.Span
		p.next()
		empty, _, _ := ast.NewOrderedMap[ast.Expr](nil)
		return ast.NewSubExpr(ast.NewRecordTypeExpr[ast.Expr, ast.Label, ast.Import](empty), start.Merge(end))
	}
	if p.tok.Kind == scanner.Equal {
		p.next()
		end := p.expect(scanner.RBrace, "}")
		empty, _, _ := ast.NewOrderedMap[ast.Expr](nil)
		return ast.NewSubExpr(ast.NewRecordLitExpr[ast.Expr, ast.Label, ast.Import](empty), start.Merge(end))
	}

	var entries []ast.MapEntry[ast.Expr]
	isType := false
	first := true
	for {
		label := p.parseAnyLabel()
		switch {
		case p.tok.Kind == scanner.Colon:
			if !first && !isType {
				p.fail(p.tok.Span, errors.GrammarMismatch, "cannot mix record-type and record-literal fields")
			}
			isType = true
			p.next()
			val := p.parseExpr()
			entries = append(entries, ast.Entry(label, val))
		case p.tok.Kind == scanner.Equal:
			if !first && isType {
				p.fail(p.tok.Span, errors.GrammarMismatch, "cannot mix record-type and record-literal fields")
			}
			p.next()
			val := p.parseExpr()
			entries = append(entries, ast.Entry(label, val))
		default:
			p.fail(p.tok.Span, errors.GrammarMismatch, "expected \":\" or \"=\" in record field, found %s", p.tokenDesc())
		}
		first = false
		if p.tok.Kind != scanner.Comma {
			break
		}
		p.next()
	}
	end := p.expect(scanner.RBrace, "}")
	span := start.Merge(end)

	fields, dup, hadDup := ast.NewOrderedMap(entries)
	if hadDup {
		p.fail(span, errors.CustomParse, "duplicate field label %q", dup)
	}
	if isType {
		return ast.NewSubExpr(ast.NewRecordTypeExpr[ast.Expr, ast.Label, ast.Import](fields), span)
	}
	return ast.NewSubExpr(ast.NewRecordLitExpr[ast.Expr, ast.Label, ast.Import](fields), span)
}

// ---------------------------------------------------------------------
// union type / the historical union-literal syntax "< Foo = e | Bar : T >"

func (p *parser) parseUnionTypeOrLit() ast.Expr {
	start := p.tok.Span
	p.next() // consume "<"

	var entries []ast.MapEntry[*ast.Expr]
	var litLabel ast.Label
	var litValue ast.Expr
	haveLit := false

	if !p.isCloseAngle() {
		for {
			label := p.parseAnyLabel()
			switch {
			case p.tok.Kind == scanner.Colon:
				p.next()
				t := p.parseExpr()
				entries = append(entries, ast.Entry[*ast.Expr](label, &t))
			case p.tok.Kind == scanner.Equal:
				if haveLit {
					p.fail(p.tok.Span, errors.GrammarMismatch, "a union literal can only give one alternative a value")
				}
				p.next()
				v := p.parseExpr()
				litLabel, litValue, haveLit = label, v, true
			default:
				entries = append(entries, ast.Entry[*ast.Expr](label, nil))
			}
			if p.tok.Kind != scanner.Operator || p.tok.Text != "|" {
				break
			}
			p.next()
		}
	}
	end := p.expectCloseAngle()
	span := start.Merge(end)

	alts, dup, hadDup := ast.NewOrderedMap(entries)
	if hadDup {
		p.fail(span, errors.CustomParse, "duplicate alternative label %q", dup)
	}
	if haveLit {
		return ast.NewSubExpr(ast.NewUnionLitExpr[ast.Expr, ast.Label, ast.Import](litLabel, litValue, alts), span)
	}
	return ast.NewSubExpr(ast.NewUnionTypeExpr[ast.Expr, ast.Label, ast.Import](alts), span)
}

// isCloseAngle/expectCloseAngle treat "<" and ">" as Operator-kind tokens
// with text "<"/">" rather than dedicated Kinds, since they only ever
// appear bracketing a union literal and never as a general binary
// operator in this grammar.
func (p *parser) isCloseAngle() bool {
	return p.tok.Kind == scanner.Operator && p.tok.Text == ">"
}

func (p *parser) expectCloseAngle() token.Span {
	span := p.tok.Span
	if !p.isCloseAngle() {
		p.fail(span, errors.GrammarMismatch, "expected \">\", found %s", p.tokenDesc())
	}
	p.next()
	return span
}

// ---------------------------------------------------------------------
// list literal, including the historical "[] : Optional T" /
// "[x] : Optional T" sugar for OldOptionalLit (see DESIGN.md's Open
// Question decisions)

func (p *parser) parseListLit() ast.Expr {
	start := p.tok.Span
	p.next()
	var elems []ast.Expr
	if p.tok.Kind != scanner.RBracket {
		elems = append(elems, p.parseExpr())
		for p.tok.Kind == scanner.Comma {
			p.next()
			elems = append(elems, p.parseExpr())
		}
	}
	end := p.expect(scanner.RBracket, "]")
	span := start.Merge(end)

	if len(elems) != 0 {
		return ast.NewSubExpr(ast.NewNEListLitExpr[ast.Expr, ast.Label, ast.Import](elems), span)
	}

	p.expect(scanner.Colon, ":")
	typ := p.parseExpr()
	span = span.Merge(typ.Note())
	if inner, ok := asOptionalOf(typ); ok {
		return ast.NewSubExpr(ast.NewOldOptionalLitExpr[ast.Expr, ast.Label, ast.Import](nil, inner), span)
	}
	return ast.NewSubExpr(ast.NewEmptyListLitExpr[ast.Expr, ast.Label, ast.Import](typ), span)
}

// asOptionalOf reports whether t is "Optional T" applied to some inner
// type T, returning T.
func asOptionalOf(t ast.Expr) (ast.Expr, bool) {
	fn, arg, ok := t.Expr().AsApp()
	if !ok {
		return ast.Expr{}, false
	}
	b, ok := fn.Expr().AsBuiltin()
	if !ok || b != ast.Optional {
		return ast.Expr{}, false
	}
	return arg, true
}

// buildOldOptionalLit turns a one-or-zero-element list literal annotated
// "Optional T" into an OldOptionalLit node, matching the historical
// grammar the original parser still accepts (DESIGN.md's Open Question
// decisions). It reports ok=false for every other combination of lhs/annot,
// leaving the caller to build a plain Annot node instead.
func buildOldOptionalLit(lhs, annot ast.Expr) (ast.ExprF[ast.Expr, ast.Label, ast.Import], bool) {
	var zero ast.ExprF[ast.Expr, ast.Label, ast.Import]
	inner, ok := asOptionalOf(annot)
	if !ok {
		return zero, false
	}
	switch lhs.Expr().Kind() {
	case ast.KindEmptyListLit:
		return ast.NewOldOptionalLitExpr[ast.Expr, ast.Label, ast.Import](nil, inner), true
	case ast.KindNEListLit:
		exprs, _ := lhs.Expr().AsNEListLit()
		if len(exprs) == 1 {
			v := exprs[0]
			return ast.NewOldOptionalLitExpr[ast.Expr, ast.Label, ast.Import](&v, inner), true
		}
	}
	return zero, false
}
