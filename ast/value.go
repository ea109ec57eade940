package ast

import (
	"math"
	"strconv"
)

// Value is a runtime value. The set of implementations is closed:
// Number, String and Bool.
type Value interface {
	// Kind returns the name of the value's kind, e.g. "Number"
	Kind() string
	// String returns the canonical textual form printed by println
	String() string
	// GoString returns the debug form used in error messages
	GoString() string

	isValue()
}

type Number float64

func (n Number) Kind() string { return "Number" }

func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (n Number) GoString() string { return "Number(" + n.String() + ")" }

func (Number) isValue() {}

type String string

func (s String) Kind() string { return "String" }

// String wraps the text in double quotes. No escaping is applied
// since string literals have no escape sequences.
func (s String) String() string { return `"` + string(s) + `"` }

func (s String) GoString() string { return "String(" + s.String() + ")" }

func (String) isValue() {}

// Bool is produced by comparison and equality operators.
// It has no literal syntax.
type Bool bool

func (b Bool) Kind() string { return "Bool" }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (b Bool) GoString() string { return "Bool(" + b.String() + ")" }

func (Bool) isValue() {}
