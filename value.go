package ajisai

import (
	"fmt"
	"strings"
)

// ValueKind discriminates the closed set of runtime datum types.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindNumber
	KindString
	KindBoolean
	KindSymbol
	KindVector
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindSymbol:
		return "symbol"
	case KindVector:
		return "vector"
	}
	return fmt.Sprintf("kind(%v)", int(k))
}

// Value is one runtime datum: a number, string, boolean, symbol, vector of
// values, or nil. A Value has no identity beyond its content; the zero
// Value is nil. Vectors are never shared mutably: every operation that
// would change one builds a fresh slice.
type Value struct {
	kind ValueKind
	num  Fraction
	str  string
	ok   bool
	vec  []Value
}

// Nil returns the nil value, same as the zero Value.
func Nil() Value { return Value{} }

// Num returns a number value.
func Num(f Fraction) Value { return Value{kind: KindNumber, num: f} }

// Int returns a whole number value.
func Int(n int64) Value { return Num(FromInt(n)) }

// Str returns a string value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, ok: b} }

// Sym returns a symbol value, case-normalized the way the tokenizer
// normalizes bare words.
func Sym(name string) Value { return Value{kind: KindSymbol, str: strings.ToUpper(name)} }

// Vec returns a vector value holding a copy of items.
func Vec(items ...Value) Value {
	vec := make([]Value, len(items))
	copy(vec, items)
	return Value{kind: KindVector, vec: vec}
}

// Kind returns which member of the union v is.
func (v Value) Kind() ValueKind { return v.kind }

// IsNil reports whether v is the nil value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// Number returns the numeric content and true when v is a number.
func (v Value) Number() (Fraction, bool) { return v.num, v.kind == KindNumber }

// Text returns the string content and true when v is a string.
func (v Value) Text() (string, bool) { return v.str, v.kind == KindString }

// Bool returns the boolean content and true when v is a boolean.
func (v Value) Bool() (bool, bool) { return v.ok, v.kind == KindBoolean }

// Symbol returns the symbol name and true when v is a symbol.
func (v Value) Symbol() (string, bool) { return v.str, v.kind == KindSymbol }

// Items returns a copy of the vector elements and true when v is a vector.
func (v Value) Items() ([]Value, bool) {
	if v.kind != KindVector {
		return nil, false
	}
	items := make([]Value, len(v.vec))
	copy(items, v.vec)
	return items, true
}

// Equal reports structural equality: exact-fraction for numbers,
// case-sensitive for strings and symbols, deep for vectors. Values of
// different kinds are unequal, never an error.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindNumber:
		return v.num.Cmp(o.num) == 0
	case KindString, KindSymbol:
		return v.str == o.str
	case KindBoolean:
		return v.ok == o.ok
	case KindVector:
		if len(v.vec) != len(o.vec) {
			return false
		}
		for i := range v.vec {
			if !v.vec[i].Equal(o.vec[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders v in source form: tokenizing the result and evaluating it
// as a literal reproduces an equal Value.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "NIL"
	case KindNumber:
		return v.num.String()
	case KindString:
		return quoteString(v.str)
	case KindBoolean:
		return fmt.Sprintf("%v", v.ok)
	case KindSymbol:
		return v.str
	case KindVector:
		if len(v.vec) == 0 {
			return "[ ]"
		}
		var sb strings.Builder
		sb.WriteString("[ ")
		for _, item := range v.vec {
			sb.WriteString(item.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte(']')
		return sb.String()
	}
	return fmt.Sprintf("value(%v)", int(v.kind))
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('"')
	return sb.String()
}
