// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jlazy_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/creachadair/jlazy"
	"github.com/google/go-cmp/cmp"
)

func TestAsBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
		code  jlazy.Code
	}{
		{"true", true, jlazy.NoError},
		{"  false\n", false, jlazy.NoError},
		{"", false, jlazy.MissingValue},
		{"   ", false, jlazy.MissingValue},
		{"True", false, jlazy.TypeError},
		{"1", false, jlazy.TypeError},
		{`"true"`, false, jlazy.TypeError},
	}
	for _, test := range tests {
		got, err := jlazy.Parse(test.input).AsBool().Get()
		checkResult(t, test.input, got, err, test.want, test.code)
	}
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		code  jlazy.Code
	}{
		{"0", 0, jlazy.NoError},
		{"-0", 0, jlazy.NoError},
		{"12345", 12345, jlazy.NoError},
		{"-54321", -54321, jlazy.NoError},
		{"007", 7, jlazy.NoError},
		{"9223372036854775807", math.MaxInt64, jlazy.NoError},
		{"-9223372036854775808", math.MinInt64, jlazy.NoError},

		{"9223372036854775808", 0, jlazy.OutOfRange},
		{"-9223372036854775809", 0, jlazy.OutOfRange},
		{"100000000000000000000", 0, jlazy.OutOfRange},

		{"", 0, jlazy.MissingValue},
		{"-", 0, jlazy.TypeError},
		{"+1", 0, jlazy.TypeError},
		{"12a", 0, jlazy.TypeError},
		{"1.5", 0, jlazy.TypeError},
		{`"12"`, 0, jlazy.TypeError},
	}
	for _, test := range tests {
		got, err := jlazy.Parse(test.input).AsInt().Get()
		checkResult(t, test.input, got, err, test.want, test.code)
	}
}

func TestAsFloat(t *testing.T) {
	const eps = 1e-9
	tests := []struct {
		input string
		want  float64
		code  jlazy.Code
	}{
		{"0", 0, jlazy.NoError},
		{"12345", 12345, jlazy.NoError},
		{"1.", 1, jlazy.NoError},
		{"12345.67891011", 12345.67891011, jlazy.NoError},
		{"000.12131415", 0.12131415, jlazy.NoError},
		{"-16.17181920", -16.17181920, jlazy.NoError},
		{"-0.5", -0.5, jlazy.NoError},
		{"-0.05", -0.05, jlazy.NoError},

		{"", 0, jlazy.MissingValue},
		{"abc", 0, jlazy.TypeError},
		{"1.2.3", 0, jlazy.TypeError},
		{"1.5e3", 0, jlazy.TypeError},
		{"x.5", 0, jlazy.TypeError},
		{"1.-5", 0, jlazy.TypeError},
		{"99999999999999999999.5", 0, jlazy.OutOfRange},
	}
	for _, test := range tests {
		got, err := jlazy.Parse(test.input).AsFloat().Get()
		if test.code != jlazy.NoError || err != nil {
			checkResult(t, test.input, got, err, test.want, test.code)
		} else if math.Abs(got-test.want) > eps {
			t.Errorf("AsFloat %q: got %v, want %v", test.input, got, test.want)
		}
	}
}

func TestAsFloat_truncated(t *testing.T) {
	// Only 10 fractional digits are used.
	const input = "1.123456789012345"
	got := jlazy.Parse(input).AsFloat().Value()
	if want := 1.123456789; math.Abs(got-want) > 1e-15 {
		t.Errorf("AsFloat %q: got %v, want %v", input, got, want)
	}
	if full := 1.123456789012345; math.Abs(got-full) < 1e-12 {
		t.Errorf("AsFloat %q: got %v, want the fraction truncated", input, got)
	}
}

func TestAsString(t *testing.T) {
	tests := []struct {
		input string
		want  string
		code  jlazy.Code
		pos   jlazy.Pos
	}{
		{`"abacaba"`, "abacaba", jlazy.NoError, jlazy.Pos{}},
		{`""`, "", jlazy.NoError, jlazy.Pos{}},
		{`  "a b c"  `, "a b c", jlazy.NoError, jlazy.Pos{}},
		{`"a\nb\"c"`, `a\nb\"c`, jlazy.NoError, jlazy.Pos{}}, // not decoded

		{"", "", jlazy.MissingValue, jlazy.Pos{}},
		{`"`, "", jlazy.SyntaxError, jlazy.Pos{Line: 0, Column: 0}},
		{`"abc`, "", jlazy.SyntaxError, jlazy.Pos{Line: 0, Column: 3}},
		{"\n  \"ab\ncd", "", jlazy.SyntaxError, jlazy.Pos{Line: 2, Column: 1}},
		{`abc"`, "", jlazy.SyntaxError, jlazy.Pos{Line: 0, Column: 0}},
		{"  abc", "", jlazy.TypeError, jlazy.Pos{Line: 0, Column: 2}},
		{"1", "", jlazy.TypeError, jlazy.Pos{}},
	}
	for _, test := range tests {
		got, err := jlazy.Parse(test.input).AsString().Get()
		checkResult(t, test.input, got, err, test.want, test.code)
		if e, ok := jlazy.AsError(err); ok {
			if diff := cmp.Diff(test.pos, e.Pos); diff != "" {
				t.Errorf("AsString %q position: (-want, +got)\n%s", test.input, diff)
			}
		}
	}
}

func TestAsText(t *testing.T) {
	src := []byte(`["alpha", "beta"]`)
	txt := jlazy.ParseBytes(src).Index(1).AsText().Value()
	if !txt.EqualString("beta") {
		t.Errorf("AsText: got %q, want %q", txt.StringCopy(), "beta")
	}

	// The text is a view of the source, not a copy.
	src[11] = 'B'
	if !txt.EqualString("Beta") {
		t.Errorf("AsText after update: got %q, want %q", txt.StringCopy(), "Beta")
	}
}

func TestAsArrayMapping(t *testing.T) {
	tests := []struct {
		input   string
		array   jlazy.Code
		mapping jlazy.Code
		pos     jlazy.Pos // of the array error
	}{
		{"[]", jlazy.NoError, jlazy.TypeError, jlazy.Pos{}},
		{"{}", jlazy.TypeError, jlazy.NoError, jlazy.Pos{}},
		{"[1, 2", jlazy.SyntaxError, jlazy.TypeError, jlazy.Pos{Line: 0, Column: 4}},
		{"[\n1,\n2", jlazy.SyntaxError, jlazy.TypeError, jlazy.Pos{Line: 2, Column: 0}},
		{"1, 2]", jlazy.SyntaxError, jlazy.TypeError, jlazy.Pos{}},
		{"[", jlazy.SyntaxError, jlazy.TypeError, jlazy.Pos{}},
		{"]", jlazy.SyntaxError, jlazy.TypeError, jlazy.Pos{}},
		{`{"a": 1`, jlazy.TypeError, jlazy.SyntaxError, jlazy.Pos{}},
		{`"a": 1}`, jlazy.TypeError, jlazy.SyntaxError, jlazy.Pos{}},
		{"", jlazy.MissingValue, jlazy.MissingValue, jlazy.Pos{}},
		{"true", jlazy.TypeError, jlazy.TypeError, jlazy.Pos{}},
	}
	for _, test := range tests {
		v := jlazy.Parse(test.input)
		_, aerr := v.AsArray().Get()
		checkCode(t, "AsArray "+strconv.Quote(test.input), aerr, test.array)
		if e, ok := jlazy.AsError(aerr); ok {
			if diff := cmp.Diff(test.pos, e.Pos); diff != "" {
				t.Errorf("AsArray %q position: (-want, +got)\n%s", test.input, diff)
			}
		}
		_, merr := v.AsMapping().Get()
		checkCode(t, "AsMapping "+strconv.Quote(test.input), merr, test.mapping)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		input string
		want  jlazy.Kind
	}{
		{"", jlazy.Invalid},
		{"null", jlazy.Null},
		{"true", jlazy.Bool},
		{"false", jlazy.Bool},
		{"-1", jlazy.Number},
		{"3.5", jlazy.Number},
		{`"x"`, jlazy.String},
		{"  [1]", jlazy.ArrayKind},
		{"{}", jlazy.MappingKind},
		{"?", jlazy.Invalid},
	}
	for _, test := range tests {
		if got := jlazy.Parse(test.input).Kind(); got != test.want {
			t.Errorf("Kind %q: got %v, want %v", test.input, got, test.want)
		}
	}
	if !jlazy.Parse(" null ").IsNull() {
		t.Error("IsNull: got false, want true")
	}
	if jlazy.Parse("nil").IsNull() {
		t.Error("IsNull(nil): got true, want false")
	}
}

func TestParsePosition(t *testing.T) {
	v := jlazy.Parse("\n\n   [1, 2]  \n")
	if diff := cmp.Diff(jlazy.Pos{Line: 2, Column: 3}, v.Pos()); diff != "" {
		t.Errorf("Pos: (-want, +got)\n%s", diff)
	}
	if got := v.Text().StringCopy(); got != "[1, 2]" {
		t.Errorf("Text: got %q, want %q", got, "[1, 2]")
	}
	if diff := cmp.Diff(jlazy.Pos{Line: 2, Column: 7}, v.Index(1).Value().Pos()); diff != "" {
		t.Errorf("Index(1).Pos: (-want, +got)\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 7, 10, 255, -1000, 123456789, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64} {
		got, err := jlazy.Parse(strconv.FormatInt(n, 10)).AsInt().Get()
		if err != nil || got != n {
			t.Errorf("AsInt(%d): got (%d, %v), want %d", n, got, err, n)
		}
	}
	for _, s := range []string{"", "a", "hello, world", "[{}]", "tab\there", "π ≈ 3.14159", `back\slash`} {
		got, err := jlazy.Parse(`"` + s + `"`).AsString().Get()
		if err != nil || got != s {
			t.Errorf("AsString(%q): got (%q, %v), want %q", s, got, err, s)
		}
	}
}

func TestIdempotent(t *testing.T) {
	const input = `{"list": [1, "two", [3]], "bad": [1}`
	v := jlazy.Parse(input)
	for _, key := range []string{"list", "bad", "none"} {
		a1, e1 := v.Key(key).Index(1).AsString().Get()
		a2, e2 := v.Key(key).Index(1).AsString().Get()
		if a1 != a2 {
			t.Errorf("Key %q: values differ: %q vs %q", key, a1, a2)
		}
		if diff := cmp.Diff(e1, e2); diff != "" {
			t.Errorf("Key %q: errors differ: (-first, +second)\n%s", key, diff)
		}
	}
	if n1, n2 := v.Key("list").AsArray().Len(), v.Key("list").AsArray().Len(); n1.Value() != n2.Value() {
		t.Errorf("Len: %d vs %d", n1.Value(), n2.Value())
	}
}

func checkResult[T comparable](t *testing.T, input string, got T, err error, want T, code jlazy.Code) {
	t.Helper()
	if code == jlazy.NoError {
		if err != nil {
			t.Errorf("Input %q: unexpected error: %v", input, err)
		} else if got != want {
			t.Errorf("Input %q: got %v, want %v", input, got, want)
		}
		return
	}
	checkCode(t, "Input "+strconv.Quote(input), err, code)
}

func checkCode(t *testing.T, label string, err error, code jlazy.Code) {
	t.Helper()
	if code == jlazy.NoError {
		if err != nil {
			t.Errorf("%s: unexpected error: %v", label, err)
		}
		return
	}
	e, ok := jlazy.AsError(err)
	if !ok {
		t.Errorf("%s: got error %v, want code %v", label, err, code)
	} else if e.Code != code {
		t.Errorf("%s: got code %v (%v), want %v", label, e.Code, e, code)
	}
}
