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
	"fmt"

	"github.com/mpvl/unique"
)

// OrderedMap is a label-sorted association list, used for RecordType,
// RecordLit and UnionType field sets. Dhall record/union fields have no
// meaningful order of their own, so OrderedMap normalizes to
// sorted-by-label order on construction and rejects duplicate labels
// rather than silently keeping the last write: a record or union literal
// with a repeated field label is a parse error, not a later validation
// error.
type OrderedMap[V any] struct {
	entries []MapEntry[V]
}

// MapEntry is a single (label, value) pair, the unit NewOrderedMap builds
// an OrderedMap from.
type MapEntry[V any] struct {
	Label Label
	Value V
}

// NewOrderedMap builds an OrderedMap from entries, sorting by label and
// reporting the first duplicate label it finds, if any.
func NewOrderedMap[V any](entries []MapEntry[V]) (OrderedMap[V], Label, bool) {
	m := OrderedMap[V]{entries: append([]MapEntry[V]{}, entries...)}
	sorter := &labelSorter[V]{entries: m.entries}
	n := unique.Sort(sorter)
	if n < len(m.entries) {
		dup := sorter.duplicate
		m.entries = sorter.entries[:n]
		return m, dup, true
	}
	m.entries = sorter.entries
	return m, "", false
}

// Entry constructs a single (label, value) pair for NewOrderedMap's input
// slice.
func Entry[V any](label Label, value V) MapEntry[V] {
	return MapEntry[V]{Label: label, Value: value}
}

type labelSorter[V any] struct {
	entries   []MapEntry[V]
	duplicate Label
}

func (s *labelSorter[V]) Len() int { return len(s.entries) }
func (s *labelSorter[V]) Less(i, j int) bool {
	return s.entries[i].Label < s.entries[j].Label
}
func (s *labelSorter[V]) Swap(i, j int) {
	s.entries[i], s.entries[j] = s.entries[j], s.entries[i]
}

// Merge is called by unique.Sort when entries[i] and entries[j] compare
// equal by label; we only ever expect this for genuine duplicates, so
// record the colliding label for the caller to turn into a parse error.
func (s *labelSorter[V]) Merge(i, j int) {
	s.duplicate = s.entries[i].Label
}

// Len reports the number of fields.
func (m OrderedMap[V]) Len() int { return len(m.entries) }

// Get looks up a field by label.
func (m OrderedMap[V]) Get(label Label) (V, bool) {
	for _, e := range m.entries {
		if e.Label == label {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Range calls f for every (label, value) pair in sorted order.
func (m OrderedMap[V]) Range(f func(Label, V)) {
	for _, e := range m.entries {
		f(e.Label, e.Value)
	}
}

// Labels returns the sorted labels.
func (m OrderedMap[V]) Labels() []Label {
	out := make([]Label, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Label
	}
	return out
}

// MapOrderedMap rebuilds m with f applied to every value; labels and their
// relative order are unchanged, so no duplicate check is needed.
func MapOrderedMap[V, V2 any](m OrderedMap[V], f func(V) V2) OrderedMap[V2] {
	out := OrderedMap[V2]{entries: make([]MapEntry[V2], len(m.entries))}
	for i, e := range m.entries {
		out.entries[i] = MapEntry[V2]{Label: e.Label, Value: f(e.Value)}
	}
	return out
}

// String renders m for debugging.
func (m OrderedMap[V]) String() string {
	return fmt.Sprintf("%v", m.entries)
}
