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

// Package parser implements a hand-written recursive-descent parser over
// the scanner package's token stream, producing an ast.Expr tree with
// every node tagged with its source Span and every import left as an
// Embed(ast.Import) leaf for a later resolution pass; grounded on
// cue/parser/parser.go's parser struct and parseBinaryExpr(prec1)-style
// precedence climbing, adapted to Dhall's grammar and operator table.
package parser

import (
	"github.com/dhall-lang/dhall-go/ast"
	"github.com/dhall-lang/dhall-go/errors"
	"github.com/dhall-lang/dhall-go/scanner"
	"github.com/dhall-lang/dhall-go/token"
)

// parser holds one parse's mutable state: a one-token lookahead over the
// scanner's stream plus an accumulating error list. Unlike cue/parser,
// which synchronizes and keeps parsing after an error to report several
// at once, this parser never recovers a partial parse locally: it bails
// out to ParseExpr on the first grammar mismatch and propagates the
// error to the top.
type parser struct {
	sc     *scanner.Scanner
	tok    scanner.Token
	peeked *scanner.Token
	errs   errors.List
}

// bail unwinds the recursive descent back to ParseExpr's recover.
type bail struct{}

// ParseExpr parses a complete Dhall expression from src, requiring it to
// consume the entire input. filename tags the spans attached to every
// node for diagnostics.
func ParseExpr(filename, src string) (result ast.Expr, err error) {
	p := &parser{}
	p.sc = scanner.New(filename, src, func(pos token.Span, msg string) {
		p.errs.Add(errors.New(errors.GrammarMismatch, pos, "%s", msg))
	})

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bail); !ok {
				panic(r)
			}
			if lerr := p.errs.Err(); lerr != nil {
				err = lerr
				return
			}
			err = errors.New(errors.GrammarMismatch, token.NoSpan, "parse failed")
		}
	}()

	p.next()
	e := p.parseExpr()
	if p.tok.Kind != scanner.EOF {
		p.fail(p.tok.Span, errors.GrammarMismatch, "unexpected trailing input %q", p.tokenDesc())
	}
	if lerr := p.errs.Err(); lerr != nil {
		return ast.Expr{}, lerr
	}
	return e, nil
}

func (p *parser) next() {
	if p.peeked != nil {
		p.tok, p.peeked = *p.peeked, nil
		return
	}
	p.tok = p.sc.Scan()
}

// peekNext returns the token that will become current after the next
// call to next(), without consuming it. Used only for the "env" vs.
// "env:FOO" ambiguity, where "env" is itself a valid bare identifier.
func (p *parser) peekNext() scanner.Token {
	if p.peeked == nil {
		tok := p.sc.Scan()
		p.peeked = &tok
	}
	return *p.peeked
}

func (p *parser) fail(span token.Span, kind errors.Kind, format string, args ...interface{}) {
	p.errs.Add(errors.New(kind, span, format, args...))
	panic(bail{})
}

func (p *parser) tokenDesc() string {
	if p.tok.Text != "" {
		return p.tok.Text
	}
	return p.tok.Kind.String()
}

// expect consumes the current token if it has kind, else bails.
func (p *parser) expect(kind scanner.Kind, what string) token.Span {
	span := p.tok.Span
	if p.tok.Kind != kind {
		p.fail(span, errors.GrammarMismatch, "expected %s, found %s", what, p.tokenDesc())
	}
	p.next()
	return span
}

func (p *parser) isKeyword(word string) bool {
	return p.tok.Kind == scanner.Keyword && p.tok.Text == word
}

func (p *parser) expectKeyword(word string) token.Span {
	span := p.tok.Span
	if !p.isKeyword(word) {
		p.fail(span, errors.GrammarMismatch, "expected %q, found %s", word, p.tokenDesc())
	}
	p.next()
	return span
}

// ---------------------------------------------------------------------
// expression, the grammar's top production

func (p *parser) parseExpr() ast.Expr {
	switch {
	case p.tok.Kind == scanner.Lambda:
		return p.parseLambda()
	case p.tok.Kind == scanner.Forall:
		return p.parsePi()
	case p.isKeyword("let"):
		return p.parseLet()
	case p.isKeyword("if"):
		return p.parseIf()
	case p.isKeyword("assert"):
		return p.parseAssert()
	default:
		lhs := p.parseOperatorExpr(0)
		switch {
		case p.tok.Kind == scanner.Arrow:
			p.next()
			rhs := p.parseExpr()
			span := lhs.Note().Merge(rhs.Note())
			return ast.NewSubExpr(ast.NewPiExpr[ast.Expr, ast.Label, ast.Import]("_", lhs, rhs), span)
		case p.tok.Kind == scanner.Colon:
			p.next()
			t := p.parseExpr()
			span := lhs.Note().Merge(t.Note())
			if f, ok := buildOldOptionalLit(lhs, t); ok {
				return ast.NewSubExpr(f, span)
			}
			return ast.NewSubExpr(ast.NewAnnotExpr[ast.Expr, ast.Label, ast.Import](lhs, t), span)
		default:
			return lhs
		}
	}
}

func (p *parser) parseLambda() ast.Expr {
	start := p.tok.Span
	p.next()
	p.expect(scanner.LParen, "(")
	label := p.parseNonreservedLabel()
	p.expect(scanner.Colon, ":")
	typ := p.parseExpr()
	p.expect(scanner.RParen, ")")
	p.expect(scanner.Arrow, "->")
	body := p.parseExpr()
	span := start.Merge(body.Note())
	return ast.NewSubExpr(ast.NewLamExpr[ast.Expr, ast.Label, ast.Import](label, typ, body), span)
}

func (p *parser) parsePi() ast.Expr {
	start := p.tok.Span
	p.next()
	p.expect(scanner.LParen, "(")
	label := p.parseNonreservedLabel()
	p.expect(scanner.Colon, ":")
	typ := p.parseExpr()
	p.expect(scanner.RParen, ")")
	p.expect(scanner.Arrow, "->")
	body := p.parseExpr()
	span := start.Merge(body.Note())
	return ast.NewSubExpr(ast.NewPiExpr[ast.Expr, ast.Label, ast.Import](label, typ, body), span)
}

type letBinding struct {
	label ast.Label
	annot *ast.Expr
	value ast.Expr
	span  token.Span
}

func (p *parser) parseLet() ast.Expr {
	var bindings []letBinding
	for p.isKeyword("let") {
		start := p.tok.Span
		p.next()
		label := p.parseNonreservedLabel()
		var annot *ast.Expr
		if p.tok.Kind == scanner.Colon {
			p.next()
			t := p.parseExpr()
			annot = &t
		}
		p.expect(scanner.Equal, "=")
		value := p.parseExpr()
		bindings = append(bindings, letBinding{label: label, annot: annot, value: value, span: start})
	}
	p.expectKeyword("in")
	body := p.parseExpr()
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		span := b.span.Merge(body.Note())
		body = ast.NewSubExpr(ast.NewLetExpr[ast.Expr, ast.Label, ast.Import](b.label, b.annot, b.value, body), span)
	}
	return body
}

func (p *parser) parseIf() ast.Expr {
	start := p.tok.Span
	p.next()
	cond := p.parseExpr()
	p.expectKeyword("then")
	then := p.parseExpr()
	p.expectKeyword("else")
	els := p.parseExpr()
	span := start.Merge(els.Note())
	return ast.NewSubExpr(ast.NewBoolIfExpr[ast.Expr, ast.Label, ast.Import](cond, then, els), span)
}

func (p *parser) parseAssert() ast.Expr {
	start := p.tok.Span
	p.next()
	p.expect(scanner.Colon, ":")
	t := p.parseExpr()
	span := start.Merge(t.Note())
	return ast.NewSubExpr(ast.NewAssertExpr[ast.Expr, ast.Label, ast.Import](t), span)
}

// ---------------------------------------------------------------------
// operator-expression: Pratt/precedence-climbing over the 13 BinOp levels

func binOpForToken(tok scanner.Token) (ast.BinOp, bool) {
	switch tok.Kind {
	case scanner.Combine:
		return ast.Combine, true
	case scanner.Prefer:
		return ast.Prefer, true
	case scanner.CombineTy:
		return ast.CombineTypes, true
	case scanner.Operator:
		switch tok.Text {
		case "?":
			return ast.ImportAlt, true
		case "||":
			return ast.Or, true
		case "+":
			return ast.Plus, true
		case "++":
			return ast.TextAppend, true
		case "#":
			return ast.ListAppend, true
		case "&&":
			return ast.And, true
		case "⩓":
			return ast.CombineTypes, true
		case "⫽":
			return ast.Prefer, true
		case "∧":
			return ast.Combine, true
		case "*":
			return ast.Times, true
		case "==":
			return ast.Equal, true
		case "!=":
			return ast.NotEqual, true
		case "≡":
			return ast.Equivalence, true
		}
	}
	return 0, false
}

func (p *parser) parseOperatorExpr(minPrec int) ast.Expr {
	left := p.parseApplicationExpr()
	for {
		op, ok := binOpForToken(p.tok)
		if !ok || op.Precedence() < minPrec {
			return left
		}
		p.next()
		right := p.parseOperatorExpr(op.Precedence() + 1)
		span := left.Note().Merge(right.Note())
		left = ast.NewSubExpr(ast.NewBinOpExpr[ast.Expr, ast.Label, ast.Import](op, left, right), span)
	}
}

// ---------------------------------------------------------------------
// application-expression: left-associative juxtaposition, with Some,
// merge and toMap as the only forms that may start a chain.

func (p *parser) parseApplicationExpr() ast.Expr {
	switch {
	case p.isKeyword("Some"):
		start := p.tok.Span
		p.next()
		arg := p.parseSelectorExpr()
		fn := ast.NewSubExpr(ast.NewSomeLitExpr[ast.Expr, ast.Label, ast.Import](arg), start.Merge(arg.Note()))
		return p.parseApplicationTail(fn)
	case p.isKeyword("merge"):
		start := p.tok.Span
		p.next()
		handlers := p.parseSelectorExpr()
		union := p.parseSelectorExpr()
		end := union.Note()
		var annot *ast.Expr
		if p.tok.Kind == scanner.Colon {
			p.next()
			t := p.parseExpr()
			annot = &t
			end = t.Note()
		}
		fn := ast.NewSubExpr(ast.NewMergeExpr[ast.Expr, ast.Label, ast.Import](handlers, union, annot), start.Merge(end))
		return p.parseApplicationTail(fn)
	case p.isKeyword("toMap"):
		start := p.tok.Span
		p.next()
		record := p.parseSelectorExpr()
		end := record.Note()
		var annot *ast.Expr
		if p.tok.Kind == scanner.Colon {
			p.next()
			t := p.parseExpr()
			annot = &t
			end = t.Note()
		}
		fn := ast.NewSubExpr(ast.NewToMapExpr[ast.Expr, ast.Label, ast.Import](record, annot), start.Merge(end))
		return p.parseApplicationTail(fn)
	default:
		fn := p.parseSelectorExpr()
		return p.parseApplicationTail(fn)
	}
}

func (p *parser) startsSelectorExpr() bool {
	switch p.tok.Kind {
	case scanner.Ident, scanner.NaturalLit, scanner.IntegerLit, scanner.DoubleLit,
		scanner.DoubleQuoteStringPart, scanner.DoubleInterpStart,
		scanner.SingleQuoteStringPart, scanner.SingleInterpStart,
		scanner.LParen, scanner.LBrace, scanner.LBracket:
		return true
	case scanner.Keyword:
		switch p.tok.Text {
		case "Type", "Kind", "Sort", "Infinity", "NaN", "missing":
			return true
		}
	}
	return false
}

func (p *parser) parseApplicationTail(fn ast.Expr) ast.Expr {
	for p.startsSelectorExpr() {
		arg := p.parseSelectorExpr()
		span := fn.Note().Merge(arg.Note())
		fn = ast.NewSubExpr(ast.NewAppExpr[ast.Expr, ast.Label, ast.Import](fn, arg), span)
	}
	return fn
}

// ---------------------------------------------------------------------
// selector-expression: import-expression followed by .label / .{labels}
// / .(Type) suffixes, left-folded.

func (p *parser) parseSelectorExpr() ast.Expr {
	e := p.parseImportExpr()
	for p.tok.Kind == scanner.Dot {
		start := e.Note()
		p.next()
		switch {
		case p.tok.Kind == scanner.LBrace:
			p.next()
			var labels []ast.Label
			if p.tok.Kind != scanner.RBrace {
				labels = append(labels, p.parseAnyLabel())
				for p.tok.Kind == scanner.Comma {
					p.next()
					labels = append(labels, p.parseAnyLabel())
				}
			}
			end := p.expect(scanner.RBrace, "}")
			span := start.Merge(end)
			e = ast.NewSubExpr(ast.NewProjectionExpr[ast.Expr, ast.Label, ast.Import](e, labels), span)
		case p.tok.Kind == scanner.LParen:
			p.next()
			selector := p.parseExpr()
			end := p.expect(scanner.RParen, ")")
			span := start.Merge(end)
			p.fail(span, errors.UnsupportedSelector, "record projection by type is not supported")
			_ = selector
		default:
			labelSpan := p.tok.Span
			label := p.parseAnyLabel()
			span := start.Merge(labelSpan)
			e = ast.NewSubExpr(ast.NewFieldExpr[ast.Expr, ast.Label, ast.Import](e, label), span)
		}
	}
	return e
}
