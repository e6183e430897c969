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

// ExprKind discriminates the payload an ExprF carries. A single generic
// struct plus an ExprKind tag stands in for what the original defines as one
// enum variant per node shape: Go has no closed-union types, so ExprF
// keeps the tag itself and an `any` payload holding a kind-specific,
// still-generic struct, with a constructor and an accessor function for
// every variant (see the New* / As* pairs below).
type ExprKind int

const (
	KindConst ExprKind = iota
	KindVar
	KindLam
	KindPi
	KindApp
	KindLet
	KindAnnot
	KindBuiltin
	KindBinOp
	KindBoolLit
	KindBoolIf
	KindNaturalLit
	KindIntegerLit
	KindDoubleLit
	KindTextLit
	KindEmptyListLit
	KindNEListLit
	KindOldOptionalLit
	KindSomeLit
	KindRecordType
	KindRecordLit
	KindUnionType
	KindUnionLit
	KindMerge
	KindField
	KindProjection
	KindProjectionByExpr
	KindAssert
	KindToMap
	KindEmbed
)

func (k ExprKind) String() string {
	names := [...]string{
		"Const", "Var", "Lam", "Pi", "App", "Let", "Annot", "Builtin",
		"BinOp", "BoolLit", "BoolIf", "NaturalLit", "IntegerLit", "DoubleLit",
		"TextLit", "EmptyListLit", "NEListLit", "OldOptionalLit", "SomeLit",
		"RecordType", "RecordLit", "UnionType", "UnionLit", "Merge", "Field",
		"Projection", "ProjectionByExpr", "Assert", "ToMap", "Embed",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "<invalid Kind>"
	}
	return names[k]
}

// ExprF is one layer of a Dhall expression tree: SE is the recursion hole
// (filled by SubExpr in a real tree, or by an intermediate representation
// while a visitor is mid-traversal), L is the label/variable-name type,
// and E is the import/embed type (ast.Import for a parsed, unresolved
// tree; ast.Never once import resolution has replaced every embed).
type ExprF[SE any, L comparable, E any] struct {
	kind    ExprKind
	payload any
}

// Kind reports which variant e holds.
func (e ExprF[SE, L, E]) Kind() ExprKind { return e.kind }

// --- Const ---

type constPayload struct{ Const Const }

func NewConstExpr[SE any, L comparable, E any](c Const) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindConst, payload: constPayload{Const: c}}
}

func (e ExprF[SE, L, E]) AsConst() (Const, bool) {
	p, ok := e.payload.(constPayload)
	return p.Const, ok
}

// --- Var ---

type varPayload[L comparable] struct{ Var V[L] }

func NewVarExpr[SE any, L comparable, E any](v V[L]) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindVar, payload: varPayload[L]{Var: v}}
}

func (e ExprF[SE, L, E]) AsVar() (V[L], bool) {
	p, ok := e.payload.(varPayload[L])
	return p.Var, ok
}

// --- Lam ---

type lamPayload[SE any, L comparable] struct {
	Label L
	Type  SE
	Body  SE
}

func NewLamExpr[SE any, L comparable, E any](label L, typ, body SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindLam, payload: lamPayload[SE, L]{Label: label, Type: typ, Body: body}}
}

func (e ExprF[SE, L, E]) AsLam() (label L, typ SE, body SE, ok bool) {
	p, ok := e.payload.(lamPayload[SE, L])
	return p.Label, p.Type, p.Body, ok
}

// --- Pi ---

type piPayload[SE any, L comparable] struct {
	Label L
	Type  SE
	Body  SE
}

func NewPiExpr[SE any, L comparable, E any](label L, typ, body SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindPi, payload: piPayload[SE, L]{Label: label, Type: typ, Body: body}}
}

func (e ExprF[SE, L, E]) AsPi() (label L, typ SE, body SE, ok bool) {
	p, ok := e.payload.(piPayload[SE, L])
	return p.Label, p.Type, p.Body, ok
}

// --- App ---

type appPayload[SE any] struct {
	Fn  SE
	Arg SE
}

func NewAppExpr[SE any, L comparable, E any](fn, arg SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindApp, payload: appPayload[SE]{Fn: fn, Arg: arg}}
}

func (e ExprF[SE, L, E]) AsApp() (fn SE, arg SE, ok bool) {
	p, ok := e.payload.(appPayload[SE])
	return p.Fn, p.Arg, ok
}

// --- Let ---

type letPayload[SE any, L comparable] struct {
	Label  L
	Annot  *SE
	Value  SE
	Body   SE
}

func NewLetExpr[SE any, L comparable, E any](label L, annot *SE, value, body SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindLet, payload: letPayload[SE, L]{Label: label, Annot: annot, Value: value, Body: body}}
}

func (e ExprF[SE, L, E]) AsLet() (label L, annot *SE, value SE, body SE, ok bool) {
	p, ok := e.payload.(letPayload[SE, L])
	return p.Label, p.Annot, p.Value, p.Body, ok
}

// --- Annot ---

type annotPayload[SE any] struct {
	Value SE
	Annot SE
}

func NewAnnotExpr[SE any, L comparable, E any](value, annot SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindAnnot, payload: annotPayload[SE]{Value: value, Annot: annot}}
}

func (e ExprF[SE, L, E]) AsAnnot() (value SE, annot SE, ok bool) {
	p, ok := e.payload.(annotPayload[SE])
	return p.Value, p.Annot, ok
}

// --- Builtin ---

type builtinPayload struct{ Builtin Builtin }

func NewBuiltinExpr[SE any, L comparable, E any](b Builtin) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindBuiltin, payload: builtinPayload{Builtin: b}}
}

func (e ExprF[SE, L, E]) AsBuiltin() (Builtin, bool) {
	p, ok := e.payload.(builtinPayload)
	return p.Builtin, ok
}

// --- BinOp ---

type binOpPayload[SE any] struct {
	Op    BinOp
	Left  SE
	Right SE
}

func NewBinOpExpr[SE any, L comparable, E any](op BinOp, left, right SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindBinOp, payload: binOpPayload[SE]{Op: op, Left: left, Right: right}}
}

func (e ExprF[SE, L, E]) AsBinOp() (op BinOp, left SE, right SE, ok bool) {
	p, ok := e.payload.(binOpPayload[SE])
	return p.Op, p.Left, p.Right, ok
}

// --- BoolLit ---

type boolLitPayload struct{ Value bool }

func NewBoolLitExpr[SE any, L comparable, E any](v bool) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindBoolLit, payload: boolLitPayload{Value: v}}
}

func (e ExprF[SE, L, E]) AsBoolLit() (bool, bool) {
	p, ok := e.payload.(boolLitPayload)
	return p.Value, ok
}

// --- BoolIf ---

type boolIfPayload[SE any] struct {
	Cond SE
	Then SE
	Else SE
}

func NewBoolIfExpr[SE any, L comparable, E any](cond, then, els SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindBoolIf, payload: boolIfPayload[SE]{Cond: cond, Then: then, Else: els}}
}

func (e ExprF[SE, L, E]) AsBoolIf() (cond SE, then SE, els SE, ok bool) {
	p, ok := e.payload.(boolIfPayload[SE])
	return p.Cond, p.Then, p.Else, ok
}

// --- NaturalLit ---

type naturalLitPayload struct{ Value uint64 }

func NewNaturalLitExpr[SE any, L comparable, E any](v uint64) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindNaturalLit, payload: naturalLitPayload{Value: v}}
}

func (e ExprF[SE, L, E]) AsNaturalLit() (uint64, bool) {
	p, ok := e.payload.(naturalLitPayload)
	return p.Value, ok
}

// --- IntegerLit ---

type integerLitPayload struct{ Value int64 }

func NewIntegerLitExpr[SE any, L comparable, E any](v int64) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindIntegerLit, payload: integerLitPayload{Value: v}}
}

func (e ExprF[SE, L, E]) AsIntegerLit() (int64, bool) {
	p, ok := e.payload.(integerLitPayload)
	return p.Value, ok
}

// --- DoubleLit ---

type doubleLitPayload struct{ Value NaiveDouble }

func NewDoubleLitExpr[SE any, L comparable, E any](v NaiveDouble) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindDoubleLit, payload: doubleLitPayload{Value: v}}
}

func (e ExprF[SE, L, E]) AsDoubleLit() (NaiveDouble, bool) {
	p, ok := e.payload.(doubleLitPayload)
	return p.Value, ok
}

// --- TextLit ---

type textLitPayload[SE any] struct{ Text InterpolatedText[SE] }

func NewTextLitExpr[SE any, L comparable, E any](t InterpolatedText[SE]) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindTextLit, payload: textLitPayload[SE]{Text: t}}
}

func (e ExprF[SE, L, E]) AsTextLit() (InterpolatedText[SE], bool) {
	p, ok := e.payload.(textLitPayload[SE])
	return p.Text, ok
}

// --- EmptyListLit ---

type emptyListLitPayload[SE any] struct{ Type SE }

func NewEmptyListLitExpr[SE any, L comparable, E any](typ SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindEmptyListLit, payload: emptyListLitPayload[SE]{Type: typ}}
}

func (e ExprF[SE, L, E]) AsEmptyListLit() (SE, bool) {
	p, ok := e.payload.(emptyListLitPayload[SE])
	return p.Type, ok
}

// --- NEListLit ---

type neListLitPayload[SE any] struct{ Exprs []SE }

func NewNEListLitExpr[SE any, L comparable, E any](exprs []SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindNEListLit, payload: neListLitPayload[SE]{Exprs: exprs}}
}

func (e ExprF[SE, L, E]) AsNEListLit() ([]SE, bool) {
	p, ok := e.payload.(neListLitPayload[SE])
	return p.Exprs, ok
}

// --- OldOptionalLit ---
//
// Kept for parity with the grammar the original parser accepts; nothing
// downstream here rejects it (DESIGN.md's Open Question decisions).

type oldOptionalLitPayload[SE any] struct {
	Value *SE
	Type  SE
}

func NewOldOptionalLitExpr[SE any, L comparable, E any](value *SE, typ SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindOldOptionalLit, payload: oldOptionalLitPayload[SE]{Value: value, Type: typ}}
}

func (e ExprF[SE, L, E]) AsOldOptionalLit() (value *SE, typ SE, ok bool) {
	p, ok := e.payload.(oldOptionalLitPayload[SE])
	return p.Value, p.Type, ok
}

// --- SomeLit ---

type someLitPayload[SE any] struct{ Value SE }

func NewSomeLitExpr[SE any, L comparable, E any](value SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindSomeLit, payload: someLitPayload[SE]{Value: value}}
}

func (e ExprF[SE, L, E]) AsSomeLit() (SE, bool) {
	p, ok := e.payload.(someLitPayload[SE])
	return p.Value, ok
}

// --- RecordType / RecordLit / UnionType ---

type recordTypePayload[SE any] struct{ Fields OrderedMap[SE] }

func NewRecordTypeExpr[SE any, L comparable, E any](fields OrderedMap[SE]) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindRecordType, payload: recordTypePayload[SE]{Fields: fields}}
}

func (e ExprF[SE, L, E]) AsRecordType() (OrderedMap[SE], bool) {
	p, ok := e.payload.(recordTypePayload[SE])
	return p.Fields, ok
}

type recordLitPayload[SE any] struct{ Fields OrderedMap[SE] }

func NewRecordLitExpr[SE any, L comparable, E any](fields OrderedMap[SE]) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindRecordLit, payload: recordLitPayload[SE]{Fields: fields}}
}

func (e ExprF[SE, L, E]) AsRecordLit() (OrderedMap[SE], bool) {
	p, ok := e.payload.(recordLitPayload[SE])
	return p.Fields, ok
}

type unionTypePayload[SE any] struct{ Alternatives OrderedMap[*SE] }

func NewUnionTypeExpr[SE any, L comparable, E any](alts OrderedMap[*SE]) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindUnionType, payload: unionTypePayload[SE]{Alternatives: alts}}
}

func (e ExprF[SE, L, E]) AsUnionType() (OrderedMap[*SE], bool) {
	p, ok := e.payload.(unionTypePayload[SE])
	return p.Alternatives, ok
}

type unionLitPayload[SE any] struct {
	Label        Label
	Value        SE
	Alternatives OrderedMap[*SE]
}

func NewUnionLitExpr[SE any, L comparable, E any](label Label, value SE, alts OrderedMap[*SE]) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindUnionLit, payload: unionLitPayload[SE]{Label: label, Value: value, Alternatives: alts}}
}

func (e ExprF[SE, L, E]) AsUnionLit() (label Label, value SE, alts OrderedMap[*SE], ok bool) {
	p, ok := e.payload.(unionLitPayload[SE])
	return p.Label, p.Value, p.Alternatives, ok
}

// --- Merge ---

type mergePayload[SE any] struct {
	Handlers SE
	Union    SE
	Annot    *SE
}

func NewMergeExpr[SE any, L comparable, E any](handlers, union SE, annot *SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindMerge, payload: mergePayload[SE]{Handlers: handlers, Union: union, Annot: annot}}
}

func (e ExprF[SE, L, E]) AsMerge() (handlers SE, union SE, annot *SE, ok bool) {
	p, ok := e.payload.(mergePayload[SE])
	return p.Handlers, p.Union, p.Annot, ok
}

// --- ToMap ---
//
// Supplemented from the upstream v12 grammar (SPEC_FULL.md §5): converts a
// record into a `List { mapKey : Text, mapValue : T }`.

type toMapPayload[SE any] struct {
	Record SE
	Annot  *SE
}

func NewToMapExpr[SE any, L comparable, E any](record SE, annot *SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindToMap, payload: toMapPayload[SE]{Record: record, Annot: annot}}
}

func (e ExprF[SE, L, E]) AsToMap() (record SE, annot *SE, ok bool) {
	p, ok := e.payload.(toMapPayload[SE])
	return p.Record, p.Annot, ok
}

// --- Assert ---
//
// Supplemented from the upstream v12 grammar (SPEC_FULL.md §5): a bare
// `assert : T` expression.

type assertPayload[SE any] struct{ Annot SE }

func NewAssertExpr[SE any, L comparable, E any](annot SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindAssert, payload: assertPayload[SE]{Annot: annot}}
}

func (e ExprF[SE, L, E]) AsAssert() (SE, bool) {
	p, ok := e.payload.(assertPayload[SE])
	return p.Annot, ok
}

// --- Field / Projection / ProjectionByExpr ---

type fieldPayload[SE any] struct {
	Record SE
	Label  Label
}

func NewFieldExpr[SE any, L comparable, E any](record SE, label Label) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindField, payload: fieldPayload[SE]{Record: record, Label: label}}
}

func (e ExprF[SE, L, E]) AsField() (record SE, label Label, ok bool) {
	p, ok := e.payload.(fieldPayload[SE])
	return p.Record, p.Label, ok
}

type projectionPayload[SE any] struct {
	Record SE
	Labels []Label
}

func NewProjectionExpr[SE any, L comparable, E any](record SE, labels []Label) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindProjection, payload: projectionPayload[SE]{Record: record, Labels: labels}}
}

func (e ExprF[SE, L, E]) AsProjection() (record SE, labels []Label, ok bool) {
	p, ok := e.payload.(projectionPayload[SE])
	return p.Record, p.Labels, ok
}

// ProjectionByExpr is accepted grammatically (`e.(E)`) but never produced
// by a successful AST build: the parser raises errors.UnsupportedSelector
// instead of returning this node (SPEC_FULL.md §7, DESIGN.md's Open
// Question decisions). It exists so the scanner/parser boundary has
// somewhere to put the parsed shape before rejecting it.
type projectionByExprPayload[SE any] struct {
	Record   SE
	Selector SE
}

func NewProjectionByExprExpr[SE any, L comparable, E any](record, selector SE) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindProjectionByExpr, payload: projectionByExprPayload[SE]{Record: record, Selector: selector}}
}

func (e ExprF[SE, L, E]) AsProjectionByExpr() (record SE, selector SE, ok bool) {
	p, ok := e.payload.(projectionByExprPayload[SE])
	return p.Record, p.Selector, ok
}

// --- Embed ---

type embedPayload[E any] struct{ Embed E }

func NewEmbedExpr[SE any, L comparable, E any](embed E) ExprF[SE, L, E] {
	return ExprF[SE, L, E]{kind: KindEmbed, payload: embedPayload[E]{Embed: embed}}
}

func (e ExprF[SE, L, E]) AsEmbed() (E, bool) {
	p, ok := e.payload.(embedPayload[E])
	return p.Embed, ok
}
