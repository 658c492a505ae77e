// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

import "go4.org/mem"

// A Pos describes the line number and column offset of a location in source
// text.
type Pos struct {
	Line   int // line number, 0-based
	Column int // byte offset of column in line, 0-based
}

// A tracker follows the position of a scan through source text. It can undo
// exactly one preceding advance, so that a scan that overshoots by a single
// delimiter can report the position of the character it stopped on.
type tracker struct {
	Pos
	last Pos // position before the most recent advance
}

// at returns a tracker positioned at p.
func at(p Pos) tracker { return tracker{Pos: p, last: p} }

// advance moves t past ch.
func (t *tracker) advance(ch byte) {
	t.last = t.Pos
	if ch == '\n' {
		t.Line++
		t.Column = 0
	} else {
		t.Column++
	}
}

// advanceAll moves t past each byte of text.
func (t *tracker) advanceAll(text mem.RO) {
	for i := 0; i < text.Len(); i++ {
		t.advance(text.At(i))
	}
}

// stepBack undoes the most recent advance. Only one level is recorded.
func (t *tracker) stepBack() { t.Pos = t.last }
