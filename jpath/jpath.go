// Package jpath implements a minimal JSONPath expression parser.
package jpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
Grammar:

  expr = root steps
  root = "$"
 steps = step [steps]
  step = "." name
  step = ".." name
  step = "[" name "]"
  step = "[" INDEX "]"
  name = WORD
  name = "'" QTEXT "'"
  name = "*"

  WORD = RE `\w+`
 QTEXT = RE `[^']*`
 INDEX = RE `-?\d+`

Source:
  https://www.ietf.org/archive/id/draft-goessner-dispatch-jsonpath-00.html

Slices, unions, filters, and scripts are not supported.
*/

// An Expr is a parsed JSONPath expression.
type Expr []Step

// Parse parses s as a JSONPath expression.
func Parse(s string) (Expr, error) {
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, errors.New("missing root marker")
	}
	var e Expr
	for t != "" {
		step, rest, err := parseStep(t)
		if err != nil {
			return nil, fmt.Errorf("at offset %d: %w", len(s)-len(t), err)
		}
		e = append(e, step)
		t = rest
	}
	return e, nil
}

// ErrUnsupported is reported by Expr.Path for steps that do not denote a
// single member or element.
var ErrUnsupported = errors.New("unsupported path step")

// Path converts e into a sequence of lookup keys: a string for each member
// step, and an int for each index step. It reports ErrUnsupported for
// wildcard and recursive steps.
func (e Expr) Path() ([]any, error) {
	path := make([]any, 0, len(e))
	for _, s := range e {
		switch s.Op {
		case Member, Name, QName:
			path = append(path, s.Arg)
		case Index:
			path = append(path, s.Index)
		default:
			return nil, fmt.Errorf("%w: %v", ErrUnsupported, s)
		}
	}
	return path, nil
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		buf.WriteString(s.String())
	}
	return buf.String()
}

func parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, ".."); ok {
		kind, name, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid ..name: %w", err)
		}
		return Step{Op: Recur, Arg: name, quoted: kind == QName}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		kind, name, u, err := parseName(t)
		if err != nil {
			return Step{}, s, fmt.Errorf("invalid .name: %w", err)
		} else if kind == Wildcard {
			return Step{Op: Wildcard, Arg: name}, u, nil
		}
		return Step{Op: Member, Arg: name, quoted: kind == QName}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		var out Step
		if m := indexRE.FindStringSubmatch(t); m != nil {
			v, err := strconv.Atoi(m[1])
			if err != nil {
				return Step{}, t, fmt.Errorf("invalid index: %w", err)
			}
			out = Step{Op: Index, Arg: m[1], Index: v}
			t = t[len(m[0]):]
		} else {
			kind, name, u, err := parseName(t)
			if err != nil {
				return Step{}, t, fmt.Errorf("invalid [name]: %w", err)
			}
			out = Step{Op: kind, Arg: name, bracket: true}
			t = u
		}
		u, ok := strings.CutPrefix(t, "]")
		if !ok {
			return Step{}, t, errors.New("missing close bracket")
		}
		return out, u, nil
	}
	return Step{}, s, errors.New("invalid path step")
}

func parseName(s string) (kind Op, name, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "*"); ok {
		return Wildcard, "*", t, nil
	}
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return Name, m[1], s[len(m[0]):], nil
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return QName, m[1], s[len(m[0]):], nil
	}
	return Invalid, "", s, errors.New("invalid name")
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+)`)
	quoteRE = regexp.MustCompile(`^'([^']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid  Op = iota // invalid operator
	Member             // member lookup (.)
	Index              // array index lookup
	Wildcard           // wildcard expansion (*)
	Name               // unquoted name in brackets
	QName              // quoted name in brackets
	Recur              // recur operator
)

var opText = map[Op]string{
	Invalid:  "invalid",
	Member:   ".",
	Index:    "index",
	Wildcard: "*",
	Name:     "name",
	QName:    "qname",
	Recur:    "..",
}

func (o Op) String() string {
	if s, ok := opText[o]; ok {
		return s
	}
	return opText[Invalid]
}

// A Step is a single step of a JSONPath expression.
type Step struct {
	Op    Op
	Arg   string // the name or index text
	Index int    // for Op == Index, the parsed index

	quoted  bool // for Member and Recur, whether the name was quoted
	bracket bool // for Wildcard, whether the step was bracketed
}

func (s Step) String() string {
	switch s.Op {
	case Member, Recur:
		if s.quoted {
			return fmt.Sprintf("%s'%s'", s.Op, s.Arg)
		}
		return s.Op.String() + s.Arg
	case Wildcard:
		if s.bracket {
			return "[*]"
		}
		return ".*"
	case QName:
		return fmt.Sprintf("['%s']", s.Arg)
	default:
		return fmt.Sprintf("[%s]", s.Arg)
	}
}
