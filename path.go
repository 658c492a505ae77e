// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"fmt"

	"github.com/creachadair/jlazy/jpath"
)

// Path traverses a sequential path into the structure of v, where path
// elements are strings (denoting mapping keys) or integers (denoting offsets
// into arrays). Negative offsets count backward from the end of the array (-1
// is last, -2 second last). If no path elements are given, the result is v.
//
// Traversal stops at the first failing step, and the result reports the error
// of that step. Path panics if a path element has any other type.
func Path(v Value, path ...any) ValueResult {
	cur := okValue(v)
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			cur = cur.Key(t)
		case int:
			cur = cur.AsArray().at(t)
		default:
			panic(fmt.Sprintf("jlazy: invalid path element %T", elt))
		}
	}
	return cur
}

// at is as At, but resolves negative indices relative to the end.
func (r ArrayResult) at(i int) ValueResult {
	if r.err != nil || i >= 0 {
		return r.At(i)
	}
	var n int
	it := r.val.Begin()
	for ; !it.Done(); it.Next() {
		n++
	}
	if err := it.Err(); err != nil {
		return failValue(err)
	} else if j := i + n; j >= 0 {
		return r.At(j)
	}
	return failValue(errorAt(r.val.pos, IndexOutOfRange, IndexRange{Index: i, Length: n}))
}

// Lookup evaluates a JSONPath expression against v. Only member and index
// steps are supported, for example:
//
//	$.store.book[0]['title']
//
// Lookup reports an error if expr is malformed or uses other operators;
// otherwise the result of the traversal is returned as by Path.
func Lookup(v Value, expr string) (ValueResult, error) {
	e, err := jpath.Parse(expr)
	if err != nil {
		return ValueResult{}, fmt.Errorf("parse %q: %w", expr, err)
	}
	path, err := e.Path()
	if err != nil {
		return ValueResult{}, fmt.Errorf("path %q: %w", expr, err)
	}
	return Path(v, path...), nil
}
