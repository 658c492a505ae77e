// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies the errors reported by lookups and conversions.
// A Code is itself an error, so that errors.Is can match an *Error by code:
//
//	if errors.Is(err, jlazy.KeyNotFound) { ... }
type Code byte

// Constants defining the valid Code values.
const (
	NoError         Code = iota // not an error
	SyntaxError                 // bracket or quote imbalance
	TypeError                   // text does not have the requested shape
	MissingValue                // empty text where a value was expected
	IndexOutOfRange             // array index past the end of the array
	KeyNotFound                 // mapping key absent from the mapping
	EndDereference              // dereference of a finished iterator
	OutOfRange                  // number not representable by the result type
)

var codeStr = [...]string{
	NoError:         "no error",
	SyntaxError:     "syntax error",
	TypeError:       "type error",
	MissingValue:    "missing value error",
	IndexOutOfRange: "array index out of range error",
	KeyNotFound:     "mapping key not found error",
	EndDereference:  "end of sequence dereference error",
	OutOfRange:      "result out of range error",
}

func (c Code) String() string {
	if int(c) >= len(codeStr) {
		return "invalid error code"
	}
	return codeStr[c]
}

// Error satisfies the error interface.
func (c Code) Error() string { return c.String() }

// Error is the concrete type of errors reported by this package.
//
// The location of an Error refers to the original source text, however deeply
// nested the lookup that produced it. An Error does not refer to the source
// text, and remains valid after the source buffer is released.
type Error struct {
	Pos
	Code   Code
	Detail Detail // additional information, or nil
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Code.String())
	if e.Detail != nil {
		if d := e.Detail.String(); d != "" {
			fmt.Fprintf(&sb, " (%s)", d)
		}
	}
	fmt.Fprintf(&sb, " at line %d, position %d", e.Line, e.Column)
	return sb.String()
}

// Is reports whether target is the Code of e, or an *Error equal to e.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Code:
		return e.Code == t
	case *Error:
		return t != nil && *e == *t
	}
	return false
}

// AsError reports whether err is or wraps an *Error, and if so returns it.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func errorAt(p Pos, code Code, d Detail) *Error {
	return &Error{Pos: p, Code: code, Detail: d}
}

func errorf(p Pos, code Code, msg string, args ...any) *Error {
	return errorAt(p, code, Message(fmt.Sprintf(msg, args...)))
}

// A Detail carries additional structured information about an Error.
// The concrete types are Message, IndexRange, and MissingKey.
type Detail interface {
	fmt.Stringer
	isDetail()
}

// Message is a free-text Detail.
type Message string

func (Message) isDetail() {}

func (m Message) String() string { return string(m) }

// IndexRange is the Detail of an IndexOutOfRange error.
type IndexRange struct {
	Index  int // the requested index
	Length int // the actual length of the array
}

func (IndexRange) isDetail() {}

func (r IndexRange) String() string {
	return fmt.Sprintf("index %d is out of range for array of length %d", r.Index, r.Length)
}

// MaxKeyLen is the number of bytes of a requested key retained by a
// MissingKey. Longer keys are truncated.
const MaxKeyLen = 32

// MissingKey is the Detail of a KeyNotFound error. It holds its own copy of
// the requested key, so that the Error does not depend on the lifetime of the
// string the key was taken from.
type MissingKey struct {
	key [MaxKeyLen]byte
	n   uint8
}

// NewMissingKey returns a MissingKey recording (at most MaxKeyLen bytes of)
// key.
func NewMissingKey(key string) MissingKey {
	var m MissingKey
	m.n = uint8(copy(m.key[:], key))
	return m
}

func (MissingKey) isDetail() {}

// Key returns the recorded key.
func (m MissingKey) Key() string { return string(m.key[:m.n]) }

// Equal reports whether m and o record the same key.
func (m MissingKey) Equal(o MissingKey) bool { return m == o }

func (m MissingKey) String() string {
	return fmt.Sprintf("key %q doesn't exist in mapping", m.Key())
}
