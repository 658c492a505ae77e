// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jlazy

import (
	"fmt"
	"iter"

	"go4.org/mem"
)

// A Result holds either a value of type T or an *Error.
//
// Once a Result holds an error, every operation derived from it reports that
// same error unchanged, so a chain of lookups can be checked once at the end:
//
//	name, err := v.Key("compilers").Index(0).Key("name").AsString().Get()
type Result[T any] struct {
	val T
	err *Error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] { return Result[T]{val: v} }

// Fail returns a Result holding err, which must be non-nil.
func Fail[T any](err *Error) Result[T] {
	if err == nil {
		panic("jlazy: Fail with a nil error")
	}
	return Result[T]{err: err}
}

// OK reports whether r holds a value.
func (r Result[T]) OK() bool { return r.err == nil }

// Err returns the error held by r, or nil if r holds a value.
func (r Result[T]) Err() *Error { return r.err }

// Get returns the value and error of r. If r holds an error, the value is the
// zero of T.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.val, nil
}

// Value returns the value held by r. It panics if r holds an error.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic(fmt.Sprintf("jlazy: value of failed result: %v", r.err))
	}
	return r.val
}

// Or returns the value held by r, or else def.
func (r Result[T]) Or(def T) T {
	if r.err != nil {
		return def
	}
	return r.val
}

// Then returns f applied to the value of r, or the error of r unchanged.
func Then[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.val)
}

// Map returns a Result holding f applied to the value of r, or the error of r
// unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(f(r.val))
}

// A ValueResult is a Result[Value] that supports chained lookups and
// conversions. Each method applies to the Value, or forwards the error.
type ValueResult struct{ Result[Value] }

func okValue(v Value) ValueResult { return ValueResult{Ok(v)} }
func failValue(err *Error) ValueResult { return ValueResult{Fail[Value](err)} }

// AsBool converts the value as by Value.AsBool.
func (r ValueResult) AsBool() Result[bool] { return Then(r.Result, Value.AsBool) }

// AsInt converts the value as by Value.AsInt.
func (r ValueResult) AsInt() Result[int64] { return Then(r.Result, Value.AsInt) }

// AsFloat converts the value as by Value.AsFloat.
func (r ValueResult) AsFloat() Result[float64] { return Then(r.Result, Value.AsFloat) }

// AsText converts the value as by Value.AsText.
func (r ValueResult) AsText() Result[mem.RO] { return Then(r.Result, Value.AsText) }

// AsString converts the value as by Value.AsString.
func (r ValueResult) AsString() Result[string] { return Then(r.Result, Value.AsString) }

// AsArray converts the value as by Value.AsArray.
func (r ValueResult) AsArray() ArrayResult {
	if r.err != nil {
		return ArrayResult{Result[Array]{err: r.err}}
	}
	return r.val.AsArray()
}

// AsMapping converts the value as by Value.AsMapping.
func (r ValueResult) AsMapping() MappingResult {
	if r.err != nil {
		return MappingResult{Result[Mapping]{err: r.err}}
	}
	return r.val.AsMapping()
}

// Index returns the element at offset i of the value as an array.
func (r ValueResult) Index(i int) ValueResult { return r.AsArray().At(i) }

// Key returns the value for key of the value as a mapping.
func (r ValueResult) Key(key string) ValueResult { return r.AsMapping().Key(key) }

// An ArrayResult is a Result[Array] that supports lookup and iteration.
type ArrayResult struct{ Result[Array] }

// At returns the element at offset i, as by Array.At.
func (r ArrayResult) At(i int) ValueResult {
	if r.err != nil {
		return failValue(r.err)
	}
	return r.val.At(i)
}

// Len returns the number of elements in the array, as by Array.Len.
func (r ArrayResult) Len() Result[int] { return Map(r.Result, Array.Len) }

// Begin returns an iterator at the first element of the array. If r holds an
// error, the iterator is finished and dereferences to that error.
func (r ArrayResult) Begin() Iterator {
	if r.err != nil {
		return failedIterator(arrayMode, r.err)
	}
	return r.val.Begin()
}

// End returns the finished iterator for the array.
func (r ArrayResult) End() Iterator {
	if r.err != nil {
		return failedIterator(arrayMode, r.err)
	}
	return r.val.End()
}

// All returns a sequence over the elements of the array. If r holds an error,
// the sequence yields that error once.
func (r ArrayResult) All() iter.Seq2[int, ValueResult] { return r.Begin().elements() }

// A MappingResult is a Result[Mapping] that supports lookup and iteration.
type MappingResult struct{ Result[Mapping] }

// Key returns the value for key, as by Mapping.Key.
func (r MappingResult) Key(key string) ValueResult {
	if r.err != nil {
		return failValue(r.err)
	}
	return r.val.Key(key)
}

// Len returns the number of members in the mapping, as by Mapping.Len.
func (r MappingResult) Len() Result[int] { return Map(r.Result, Mapping.Len) }

// Begin returns an iterator at the first member of the mapping. If r holds an
// error, the iterator is finished and dereferences to that error.
func (r MappingResult) Begin() Iterator {
	if r.err != nil {
		return failedIterator(mappingMode, r.err)
	}
	return r.val.Begin()
}

// End returns the finished iterator for the mapping.
func (r MappingResult) End() Iterator {
	if r.err != nil {
		return failedIterator(mappingMode, r.err)
	}
	return r.val.End()
}

// All returns a sequence over the members of the mapping. If r holds an
// error, the sequence yields that error once.
func (r MappingResult) All() iter.Seq2[Result[mem.RO], ValueResult] { return r.Begin().members() }
