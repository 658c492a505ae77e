// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"iter"

	"go4.org/mem"
)

// An Array is a view of the elements of a JSON array. It retains only the
// text between the brackets; every operation re-scans that text, so two Array
// values over the same text are indistinguishable.
type Array struct {
	text mem.RO // between the brackets
	pos  Pos    // position of the opening bracket
}

// Text returns the undecoded text of a, not including its brackets.
func (a Array) Text() mem.RO { return a.text }

// Pos returns the position of the opening bracket of a in the source text.
func (a Array) Pos() Pos { return a.pos }

// inner returns the position of the first byte after the opening bracket.
func (a Array) inner() Pos {
	t := at(a.pos)
	t.advance('[')
	return t.Pos
}

// Begin returns an iterator at the first element of a.
func (a Array) Begin() Iterator { return newArrayIterator(a.text, a.inner()) }

// End returns the finished iterator for a.
func (a Array) End() Iterator { return endIterator(arrayMode, a.text, a.inner()) }

// All returns a sequence over the elements of a and their offsets. If a
// syntax error is found, it is yielded once and the sequence ends.
func (a Array) All() iter.Seq2[int, ValueResult] { return a.Begin().elements() }

// Len reports the number of elements of a. Counting stops at the first syntax
// error, if any.
func (a Array) Len() int {
	var n int
	for it := a.Begin(); !it.Done(); it.Next() {
		n++
	}
	return n
}

// At returns the element of a at offset i.
//
// If a syntax error occurs before the element is reached, At reports that
// error. If a has no element at offset i, At reports an IndexOutOfRange error
// at the opening bracket of a.
func (a Array) At(i int) ValueResult {
	it := a.Begin()
	var n int
	for ; !it.Done() && (i < 0 || n < i); it.Next() {
		n++
	}
	if err := it.Err(); err != nil {
		return failValue(err)
	} else if it.Done() {
		return failValue(errorAt(a.pos, IndexOutOfRange, IndexRange{Index: i, Length: n}))
	}
	return it.Elem()
}
