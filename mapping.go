// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"iter"

	"go4.org/mem"
)

// A Mapping is a view of the members of a JSON object. Like an Array, it
// retains only the text between the braces and re-scans it on each operation.
type Mapping struct {
	text mem.RO // between the braces
	pos  Pos    // position of the opening brace
}

// Text returns the undecoded text of m, not including its braces.
func (m Mapping) Text() mem.RO { return m.text }

// Pos returns the position of the opening brace of m in the source text.
func (m Mapping) Pos() Pos { return m.pos }

func (m Mapping) inner() Pos {
	t := at(m.pos)
	t.advance('{')
	return t.Pos
}

// Begin returns an iterator at the first member of m.
func (m Mapping) Begin() Iterator { return newMappingIterator(m.text, m.inner()) }

// End returns the finished iterator for m.
func (m Mapping) End() Iterator { return endIterator(mappingMode, m.text, m.inner()) }

// All returns a sequence over the keys and values of the members of m.
// If a syntax error is found, it is yielded once and the sequence ends.
func (m Mapping) All() iter.Seq2[Result[mem.RO], ValueResult] { return m.Begin().members() }

// Len reports the number of members of m. Counting stops at the first syntax
// error, if any, and a member whose value is malformed is not counted.
func (m Mapping) Len() int {
	var n int
	for it := m.Begin(); !it.Done() && it.cur.err == nil; it.Next() {
		n++
	}
	return n
}

// Key returns the value of the first member of m whose key is equal to key.
// Keys are compared without decoding escape sequences.
//
// Members are examined in order, and the first member whose key or value is
// malformed ends the search with an error. If no member matches, Key reports
// a KeyNotFound error at the opening brace of m.
func (m Mapping) Key(key string) ValueResult {
	it := m.Begin()
	for ; !it.Done(); it.Next() {
		k, v := it.Member()
		if k.err != nil {
			return failValue(k.err)
		} else if v.err != nil {
			return v
		} else if k.val.EqualString(key) {
			return v
		}
	}
	if err := it.Err(); err != nil {
		return failValue(err)
	}
	return failValue(errorAt(m.pos, KeyNotFound, NewMissingKey(key)))
}
