// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jlazy implements lazy, read-only views of JSON text.
//
// # Values
//
// A Value is a view of the source text of a JSON value. No parsing is done
// when a Value is constructed: the text is scanned only when the Value is
// converted or indexed, and is scanned again each time. Nothing is copied or
// cached, so repeated access to the same element costs a scan per access;
// callers needing fast repeated access should keep the results.
//
//	v := jlazy.Parse(`{"aba": 1, "caba": [1, 2, "fizz"]}`)
//	s, err := v.Key("caba").Index(2).AsString().Get()
//	if err != nil {
//	   log.Fatalf("Lookup failed: %v", err)
//	}
//
// The conversion methods AsBool, AsInt, AsFloat, AsText, AsString, AsArray
// and AsMapping interpret the text of a Value as the requested type. Strings
// are returned as written, without decoding escape sequences.
//
// # Results
//
// Every conversion and lookup returns a Result, holding either a value or an
// *Error. The Result types for values, arrays, and mappings support the same
// lookups as the types they hold, and once a step in a chain of lookups fails,
// each later step reports the error of the failed step unchanged:
//
//	r := v.Key("params").Key("compilers").Index(0).Key("name")
//	if err := r.Err(); err != nil {
//	   log.Printf("Lookup failed: %v", err) // the first failure in the chain
//	}
//
// # Errors
//
// An *Error reports an error Code and the line and column (both 0-based) in
// the original source text where the problem was found, along with optional
// details. Errors format as
//
//	<code> (<detail>) at line <L>, position <P>
//
// and match their codes with errors.Is:
//
//	if errors.Is(err, jlazy.KeyNotFound) { ... }
//
// # Iteration
//
// Arrays and mappings provide a forward-only Iterator, which re-scans the
// text from the end of the current element on each step:
//
//	for it := arr.Begin(); !it.Done(); it.Next() {
//	   log.Printf("Element: %s", it.Elem().Value().Text().StringCopy())
//	}
//
// An iterator that finds a syntax error finishes immediately, and reports the
// error when it is dereferenced. The All methods wrap the same traversal as a
// range function.
package jlazy
