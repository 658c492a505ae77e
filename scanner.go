// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"github.com/creachadair/mds/stack"
	"go4.org/mem"
)

// npos is the offset reported when no matching position exists.
const npos = -1

// findFirst returns the offset of the first byte at or after start in text for
// which f is true, or npos. On success, t is left at the position of the byte
// found; otherwise t has consumed the remainder of text.
func findFirst(text mem.RO, t *tracker, f func(byte) bool, start int) int {
	if start == npos {
		return npos
	}
	for i := start; i < text.Len(); i++ {
		ch := text.At(i)
		t.advance(ch)
		if f(ch) {
			t.stepBack()
			return i
		}
	}
	return npos
}

// findBalanced returns the offset of the first byte at or after start in text
// for which f is true, considering only bytes outside any brackets or string
// literals opened after start. It returns npos if no such byte exists.
//
// Brackets must nest correctly, and brackets and strings opened in the scanned
// region must be closed before the end of text; otherwise findBalanced reports
// a SyntaxError at the position where the imbalance was found. On success, t
// is left at the position of the byte found.
func findBalanced(text mem.RO, t *tracker, f func(byte) bool, start int) (int, *Error) {
	if start == npos || start >= text.Len() {
		return npos, nil
	}
	open := stack.New[byte]()
	var inString, esc bool
	for i := start; i < text.Len(); i++ {
		ch := text.At(i)
		t.advance(ch)

		// Within a string literal only the closing quote is significant.
		if inString {
			if esc {
				esc = false
			} else if ch == '\\' {
				esc = true
			} else if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '[', '{':
			open.Push(ch)
		case ']', '}':
			top, ok := open.Peek(0)
			if !ok || top != opening(ch) {
				t.stepBack()
				return npos, errorf(t.Pos, SyntaxError, "brackets mismatch: encountered an excess %q", ch)
			}
			open.Pop()
		}
		if open.IsEmpty() && !inString && f(ch) {
			t.stepBack()
			return i, nil
		}
	}
	if inString {
		t.stepBack()
		return npos, errorf(t.Pos, SyntaxError, "unterminated string literal")
	} else if !open.IsEmpty() {
		t.stepBack()
		return npos, errorf(t.Pos, SyntaxError, "brackets mismatch: encountered %d unmatched opening brackets", open.Len())
	}
	return npos, nil
}

// elementEnd returns the offset just past the element beginning at start,
// which ends at the first top-level delim or whitespace, or npos if the
// element runs to the end of text.
func elementEnd(text mem.RO, t *tracker, start int, delim byte) (int, *Error) {
	return findBalanced(text, t, func(ch byte) bool {
		return ch == delim || isSpace(ch)
	}, start)
}

// nextElement returns the offset of the start of the element following the
// next top-level delim at or after pos, or npos if there is none. A delimiter
// followed only by whitespace does not begin an element.
func nextElement(text mem.RO, t *tracker, pos int, delim byte) (int, *Error) {
	if pos == npos {
		return npos, nil
	}
	next, err := findBalanced(text, t, func(ch byte) bool { return ch == delim }, pos)
	if err != nil || next == npos {
		return next, err
	}
	t.advance(text.At(next))
	return findFirst(text, t, isNotSpace, next+1), nil
}

// trimSpace returns text with leading and trailing whitespace removed, and
// advances t past the leading whitespace.
func trimSpace(text mem.RO, t *tracker) mem.RO {
	i := 0
	for i < text.Len() && isSpace(text.At(i)) {
		t.advance(text.At(i))
		i++
	}
	j := text.Len()
	for j > i && isSpace(text.At(j-1)) {
		j--
	}
	return text.SliceTo(j).SliceFrom(i)
}

func opening(ch byte) byte {
	if ch == ']' {
		return '['
	}
	return '{'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNotSpace(ch byte) bool { return !isSpace(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
