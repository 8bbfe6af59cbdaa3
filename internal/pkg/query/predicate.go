// Package query builds storage-independent filter predicates for list operations.
//
// A Predicate is a small expression tree (And, Or, Eq, Ne, ContainsFold) over named
// record fields. Repositories translate it into their native filter language; the
// in-memory backend and tests evaluate it directly with Match.
package query

import (
	"strings"
	"time"
)

// Record exposes named fields of a stored entity to predicate evaluation.
// Field names are the canonical document names (e.g. "fullName", "status").
type Record interface {
	Field(name string) (interface{}, bool)
}

// Predicate is a boolean condition over a Record
type Predicate interface {
	Match(r Record) bool
}

// And matches when every child matches. An empty And matches everything.
type And []Predicate

// Or matches when at least one child matches. An empty Or matches nothing.
type Or []Predicate

// Eq matches records whose field equals Value
type Eq struct {
	Field string
	Value interface{}
}

// Ne matches records whose field is absent or differs from Value
type Ne struct {
	Field string
	Value interface{}
}

// ContainsFold matches records whose string field contains Substr, ignoring case.
// Substr is a literal, never a pattern.
type ContainsFold struct {
	Field  string
	Substr string
}

// Match implements Predicate
func (p And) Match(r Record) bool {
	for _, child := range p {
		if !child.Match(r) {
			return false
		}
	}
	return true
}

// Match implements Predicate
func (p Or) Match(r Record) bool {
	for _, child := range p {
		if child.Match(r) {
			return true
		}
	}
	return false
}

// Match implements Predicate
func (p Eq) Match(r Record) bool {
	v, ok := r.Field(p.Field)
	return ok && equal(v, p.Value)
}

// Match implements Predicate
func (p Ne) Match(r Record) bool {
	v, ok := r.Field(p.Field)
	return !ok || !equal(v, p.Value)
}

// Match implements Predicate
func (p ContainsFold) Match(r Record) bool {
	v, ok := r.Field(p.Field)
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(p.Substr))
}

func equal(a, b interface{}) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	return a == b
}

// Sort orders list results by a single field
type Sort struct {
	Field      string
	Descending bool
}

// Less reports whether a sorts before b. Supported field types are time.Time, string and int64;
// records missing the field sort last.
func (s Sort) Less(a, b Record) bool {
	va, okA := a.Field(s.Field)
	vb, okB := b.Field(s.Field)
	if !okA || !okB {
		return okA && !okB
	}

	var less, greater bool
	switch x := va.(type) {
	case time.Time:
		y, _ := vb.(time.Time)
		less, greater = x.Before(y), x.After(y)
	case string:
		y, _ := vb.(string)
		less, greater = x < y, x > y
	case int64:
		y, _ := vb.(int64)
		less, greater = x < y, x > y
	default:
		return false
	}

	if s.Descending {
		return greater
	}
	return less
}
