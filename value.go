// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"errors"
	"math"

	"go4.org/mem"
)

// A Value is a view of the source text of a single JSON value. Constructing a
// Value does not parse its text: the text is interpreted only when one of its
// conversion or lookup methods is called, and is re-scanned on each call.
//
// A Value refers to the source text it was created from. For text supplied as
// a []byte, the caller must not modify the slice while the Value is in use.
type Value struct {
	text mem.RO
	pos  Pos // position of text[0] in the source
}

// Parse returns a Value viewing the JSON text in src.
func Parse(src string) Value { return newValue(mem.S(src), Pos{}) }

// ParseBytes returns a Value viewing the JSON text in src.
// The caller must not modify src while the Value or any Value derived from it
// is in use.
func ParseBytes(src []byte) Value { return newValue(mem.B(src), Pos{}) }

// newValue returns a Value for text, whose first byte is at position p.
// Surrounding whitespace is trimmed.
func newValue(text mem.RO, p Pos) Value {
	t := at(p)
	text = trimSpace(text, &t)
	return Value{text: text, pos: t.Pos}
}

// Text returns the undecoded text of v, without surrounding whitespace.
func (v Value) Text() mem.RO { return v.text }

// Pos returns the position of the start of v in the source text.
func (v Value) Pos() Pos { return v.pos }

// IsNull reports whether v is the constant null.
func (v Value) IsNull() bool { return v.text.EqualString("null") }

// Kind reports the apparent kind of v, judging by its first byte only.
// A Kind other than Invalid does not guarantee that a conversion to that kind
// will succeed.
func (v Value) Kind() Kind {
	if v.text.Len() == 0 {
		return Invalid
	}
	switch ch := v.text.At(0); {
	case ch == 'n':
		return Null
	case ch == 't' || ch == 'f':
		return Bool
	case ch == '-' || isDigit(ch):
		return Number
	case ch == '"':
		return String
	case ch == '[':
		return ArrayKind
	case ch == '{':
		return MappingKind
	}
	return Invalid
}

func (v Value) errorf(code Code, msg string, args ...any) *Error {
	return errorf(v.pos, code, msg, args...)
}

func (v Value) missing(what string) *Error {
	return v.errorf(MissingValue, "empty underlying data while expecting %s", what)
}

// endPos returns the position of the last byte of v.
func (v Value) endPos() Pos {
	t := at(v.pos)
	t.advanceAll(v.text.SliceTo(v.text.Len() - 1))
	return t.Pos
}

// AsBool converts v to a Boolean. The text must be exactly true or false.
func (v Value) AsBool() Result[bool] {
	switch {
	case v.text.EqualString("true"):
		return Ok(true)
	case v.text.EqualString("false"):
		return Ok(false)
	case v.text.Len() == 0:
		return Fail[bool](v.missing("a bool"))
	}
	return Fail[bool](v.errorf(TypeError, "expected bool, got something else"))
}

// AsInt converts v to an integer. The text must be a sequence of decimal
// digits with an optional leading minus sign. Values outside the range of an
// int64 report an OutOfRange error.
func (v Value) AsInt() Result[int64] {
	if v.text.Len() == 0 {
		return Fail[int64](v.missing("an int"))
	}
	digits, neg := v.text, false
	if digits.At(0) == '-' {
		digits, neg = digits.SliceFrom(1), true
	}
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	u, err := parseDigits(digits, limit)
	if err != nil {
		return Fail[int64](v.numberError(err, "int"))
	}
	if neg {
		return Ok(-int64(u))
	}
	return Ok(int64(u))
}

// maxFracDigits is the number of fractional digits considered by AsFloat.
const maxFracDigits = 10

// AsFloat converts v to a floating-point number. The text must be an integer
// as accepted by AsInt, optionally followed by a decimal point and a fraction
// of decimal digits. Only the first 10 digits of the fraction contribute to
// the result.
func (v Value) AsFloat() Result[float64] {
	if v.text.Len() == 0 {
		return Fail[float64](v.missing("a float"))
	}
	dot := mem.IndexByte(v.text, '.')
	if dot < 0 || dot == v.text.Len()-1 {
		whole := v.text
		if dot >= 0 {
			whole = whole.SliceTo(dot)
		}
		n, err := v.floatPart(whole)
		if err != nil {
			return Fail[float64](err)
		}
		return Ok(float64(n))
	}

	whole, err := v.floatPart(v.text.SliceTo(dot))
	if err != nil {
		return Fail[float64](err)
	}
	frac := v.text.SliceFrom(dot + 1)
	for i := 0; i < frac.Len(); i++ {
		if !isDigit(frac.At(i)) {
			return Fail[float64](v.errorf(TypeError, "expected float, got something else"))
		}
	}
	if frac.Len() > maxFracDigits {
		frac = frac.SliceTo(maxFracDigits)
	}
	f, _ := parseDigits(frac, math.MaxUint64) // at most 10 digits
	fv := float64(f) / math.Pow10(frac.Len())

	// The sign comes from the text, since the integer part of -0.5 is 0.
	if v.text.At(0) == '-' {
		fv = -fv
	}
	return Ok(float64(whole) + fv)
}

// floatPart parses the integer part of a floating-point value.
func (v Value) floatPart(text mem.RO) (int64, *Error) {
	n, err := Value{text: text, pos: v.pos}.AsInt().Get()
	if err == nil {
		return n, nil
	} else if errors.Is(err, OutOfRange) {
		return 0, v.errorf(OutOfRange, "float value does not fit in 64 bits")
	}
	return 0, v.errorf(TypeError, "expected float, got something else")
}

// AsText returns the text of v between its enclosing double quotes.
// Escape sequences are not decoded. The result shares storage with the source.
func (v Value) AsText() Result[mem.RO] {
	n := v.text.Len()
	if n == 0 {
		return Fail[mem.RO](v.missing("a string"))
	}
	first, last := v.text.At(0) == '"', n > 1 && v.text.At(n-1) == '"'
	switch {
	case first && !last:
		return Fail[mem.RO](errorf(v.endPos(), SyntaxError,
			`a double quote (") is probably missing at the end of a string`))
	case !first && last:
		return Fail[mem.RO](v.errorf(SyntaxError,
			`a double quote (") is probably missing at the start of a string`))
	case !first && !last:
		return Fail[mem.RO](v.errorf(TypeError,
			"either both double quotes are missing or the underlying data does not represent a string"))
	}
	return Ok(v.text.SliceTo(n - 1).SliceFrom(1))
}

// AsString returns a copy of the text of v between its enclosing double
// quotes. Escape sequences are not decoded.
func (v Value) AsString() Result[string] { return Map(v.AsText(), mem.RO.StringCopy) }

// AsArray converts v to an Array. The text must be enclosed in square
// brackets. The elements are not checked until they are accessed.
func (v Value) AsArray() ArrayResult {
	text, err := v.enclosed('[', ']', "an array", "a closing square bracket", "an opening square bracket")
	if err != nil {
		return ArrayResult{Fail[Array](err)}
	}
	return ArrayResult{Ok(Array{text: text, pos: v.pos})}
}

// AsMapping converts v to a Mapping. The text must be enclosed in curly
// braces. The members are not checked until they are accessed.
func (v Value) AsMapping() MappingResult {
	text, err := v.enclosed('{', '}', "a mapping", "a closing curly brace", "an opening curly brace")
	if err != nil {
		return MappingResult{Fail[Mapping](err)}
	}
	return MappingResult{Ok(Mapping{text: text, pos: v.pos})}
}

// Index returns the element at offset i of v as an array.
func (v Value) Index(i int) ValueResult { return v.AsArray().At(i) }

// Key returns the value for key of v as a mapping.
func (v Value) Key(key string) ValueResult { return v.AsMapping().Key(key) }

// enclosed returns the text of v between the brackets lb and rb.
func (v Value) enclosed(lb, rb byte, what, closer, opener string) (mem.RO, *Error) {
	n := v.text.Len()
	if n == 0 {
		return mem.RO{}, v.missing(what)
	}
	first, last := v.text.At(0) == lb, n > 1 && v.text.At(n-1) == rb
	switch {
	case first && !last:
		return mem.RO{}, errorf(v.endPos(), SyntaxError, "%s is probably missing at the end of %s", closer, what)
	case !first && v.text.At(n-1) == rb:
		return mem.RO{}, v.errorf(SyntaxError, "%s is probably missing at the start of %s", opener, what)
	case !first:
		return mem.RO{}, v.errorf(TypeError,
			"either both brackets are missing or the underlying data does not represent %s", what)
	}
	return v.text.SliceTo(n - 1).SliceFrom(1), nil
}

// numberError converts an error from parseDigits into an *Error for v.
func (v Value) numberError(err error, what string) *Error {
	if err == errOverflow {
		return v.errorf(OutOfRange, "%s value does not fit in 64 bits", what)
	}
	return v.errorf(TypeError, "expected %s, got something else", what)
}

var (
	errOverflow = errors.New("value out of range")
	errSyntax   = errors.New("invalid digit")
)

// parseDigits parses digits as an unsigned decimal number no greater than
// limit. It requires at least one digit.
func parseDigits(digits mem.RO, limit uint64) (uint64, error) {
	if digits.Len() == 0 {
		return 0, errSyntax
	}
	var u uint64
	for i := 0; i < digits.Len(); i++ {
		ch := digits.At(i)
		if !isDigit(ch) {
			return 0, errSyntax
		}
		d := uint64(ch - '0')
		if u > (limit-d)/10 {
			return 0, errOverflow
		}
		u = u*10 + d
	}
	return u, nil
}

// Kind is the apparent kind of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid     Kind = iota // empty or unrecognized text
	Null                    // constant: null
	Bool                    // constant: true or false
	Number                  // number
	String                  // quoted string
	ArrayKind               // array: [ ... ]
	MappingKind             // mapping: { ... }
)

var kindStr = [...]string{
	Invalid:     "invalid",
	Null:        "null",
	Bool:        "bool",
	Number:      "number",
	String:      "string",
	ArrayKind:   "array",
	MappingKind: "mapping",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}
