// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"iter"

	"go4.org/mem"
)

// A span locates the current element of a sequence within its text.
type span struct {
	text     mem.RO
	beg, end int     // current element [beg, end); beg == npos when finished
	begPos   tracker // position of text[beg]
	endPos   tracker // position of text[end]
	err      *Error  // scanning error, if any
}

// startSpan returns a span at the first element of text, whose first byte is
// at position p. The element is ended by delim.
func startSpan(text mem.RO, p Pos, delim byte) span {
	s := span{text: text, begPos: at(p)}
	s.beg = findFirst(text, &s.begPos, isNotSpace, 0)
	s.endPos = s.begPos
	if s.done() {
		s.end = npos
		return s
	}
	end, err := elementEnd(text, &s.endPos, s.beg, delim)
	if err != nil {
		s.fail(err)
		return s
	}
	s.end = end
	return s
}

// done reports whether s is finished. The zero span is finished.
func (s *span) done() bool { return s.beg == npos || s.beg >= s.text.Len() }

func (s *span) fail(err *Error) {
	s.beg, s.end = npos, npos
	s.err = err
}

// step advances s past the first delimiter following the current element,
// and finds the end of the element after it, which is ended by second.
// Stepping a finished span has no effect.
func (s *span) step(first, second byte) {
	if s.done() {
		return
	}
	beg, err := nextElement(s.text, &s.endPos, s.end, first)
	s.begPos = s.endPos
	if err != nil {
		s.fail(err)
		return
	}
	s.beg = beg
	if s.done() {
		s.end = npos
		return
	}
	end, err := elementEnd(s.text, &s.endPos, s.beg, second)
	if err != nil {
		s.fail(err)
		return
	}
	s.end = end
}

// value returns the Value of the current element.
func (s *span) value() ValueResult {
	if s.err != nil {
		return failValue(s.err)
	} else if s.done() {
		return failValue(errorf(s.begPos.Pos, EndDereference, "no current element"))
	}
	end := s.end
	if end == npos {
		end = s.text.Len()
	}
	return okValue(newValue(s.text.SliceTo(end).SliceFrom(s.beg), s.begPos.Pos))
}

type iterMode byte

const (
	arrayMode   iterMode = iota // elements separated by ","
	mappingMode                 // "key": value members separated by ","
)

// An Iterator is a forward-only cursor over the elements of an Array or the
// members of a Mapping. Each step re-scans the source text from the end of
// the current element; no elements are retained.
//
// An Iterator that reaches the end of its sequence, or encounters an error in
// the source text, is finished and compares equal to the End iterator of its
// sequence. Dereferencing a finished iterator reports the error that finished
// it, if any, or an EndDereference error. Calling Next on a finished iterator
// has no effect. The zero Iterator is finished.
//
//	for it := arr.Begin(); !it.Done(); it.Next() {
//	   v, err := it.Elem().AsInt().Get()
//	   // ...
//	}
type Iterator struct {
	mode iterMode
	seq  Pos  // position of the first byte of the sequence text
	key  span // the current key (mapping mode only)
	cur  span // the current element or member value
}

func newArrayIterator(text mem.RO, p Pos) Iterator {
	return Iterator{mode: arrayMode, seq: p, cur: startSpan(text, p, ',')}
}

func newMappingIterator(text mem.RO, p Pos) Iterator {
	it := Iterator{mode: mappingMode, seq: p, key: startSpan(text, p, ':')}
	it.cur = it.key
	it.cur.step(':', ',')
	return it
}

func endIterator(mode iterMode, text mem.RO, p Pos) Iterator {
	end := span{text: text, beg: npos, end: npos, begPos: at(p), endPos: at(p)}
	return Iterator{mode: mode, seq: p, key: end, cur: end}
}

func failedIterator(mode iterMode, err *Error) Iterator {
	var it Iterator
	it.mode = mode
	it.key.fail(err)
	it.cur.fail(err)
	return it
}

// lead returns the span that determines whether it is finished.
func (it *Iterator) lead() *span {
	if it.mode == mappingMode {
		return &it.key
	}
	return &it.cur
}

// Done reports whether it is finished.
func (it *Iterator) Done() bool { return it.lead().done() }

// Err returns the error that finished it, or nil.
func (it *Iterator) Err() *Error { return it.lead().err }

// Equal reports whether it and o denote the same position of the same
// sequence. All finished iterators of a sequence are equal.
func (it Iterator) Equal(o Iterator) bool {
	a, b := it.lead(), o.lead()
	if it.mode != o.mode || it.seq != o.seq || a.beg != b.beg || a.text.Len() != b.text.Len() {
		return false
	}
	return a.text.Equal(b.text)
}

// Next advances it to the next element or member.
func (it *Iterator) Next() {
	if it.mode == arrayMode {
		it.cur.step(',', ',')
		return
	}
	if it.key.done() {
		return
	}
	it.cur.step(',', ':')
	it.key = it.cur
	it.cur.step(':', ',')
}

// Elem returns the current element of an array, or the current value of a
// mapping member.
func (it *Iterator) Elem() ValueResult {
	if it.mode == mappingMode {
		if lead := it.lead(); lead.err != nil || lead.done() {
			return lead.value()
		} else if it.cur.err == nil && it.cur.done() {
			return failValue(errorf(it.key.begPos.Pos, MissingValue, "no value for mapping key"))
		}
	}
	return it.cur.value()
}

// Key returns the current key of a mapping member. The key must be a
// double-quoted string; otherwise Key reports a TypeError. For an array
// iterator, Key reports a TypeError.
func (it *Iterator) Key() Result[mem.RO] {
	if it.mode != mappingMode {
		return Fail[mem.RO](errorf(it.cur.begPos.Pos, TypeError, "array elements have no key"))
	}
	return it.key.value().AsText()
}

// Member returns the current key and value of a mapping member.
func (it *Iterator) Member() (Result[mem.RO], ValueResult) { return it.Key(), it.Elem() }

// elements returns a sequence over the remaining elements of it. A scanning
// error is yielded once, after which the sequence ends.
func (it Iterator) elements() iter.Seq2[int, ValueResult] {
	return func(yield func(int, ValueResult) bool) {
		for i := 0; ; i++ {
			if it.Done() {
				if err := it.Err(); err != nil {
					yield(i, failValue(err))
				}
				return
			}
			if !yield(i, it.Elem()) {
				return
			}
			it.Next()
		}
	}
}

// members returns a sequence over the remaining members of it. A scanning
// error is yielded once, after which the sequence ends.
func (it Iterator) members() iter.Seq2[Result[mem.RO], ValueResult] {
	return func(yield func(Result[mem.RO], ValueResult) bool) {
		for !it.Done() {
			k, v := it.Member()
			if !yield(k, v) {
				return
			} else if it.cur.err != nil {
				return // already reported with v
			}
			it.Next()
		}
		if err := it.Err(); err != nil {
			yield(Fail[mem.RO](err), failValue(err))
		}
	}
}
