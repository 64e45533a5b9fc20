package ajisai

import (
	"errors"
	"fmt"
	"strings"
)

// Field-less failure kinds. Fielded kinds follow as small struct types; both
// are matched with errors.Is / errors.As from the error an execute call
// returns, however deeply the failure was wrapped on its way out.
var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrLengthMismatch = errors.New("vector length mismatch")
	ErrLoopLimit      = errors.New("loop limit exceeded")
	ErrRegisterEmpty  = errors.New("register empty")
	ErrRecursionLimit = errors.New("recursion limit exceeded")
)

// TypeError reports an operation applied to the wrong kind of operand.
type TypeError struct {
	Op       string
	Expected string
}

func (e TypeError) Error() string { return fmt.Sprintf("%v expects %v", e.Op, e.Expected) }

// Is matches another TypeError; zero fields in the target match anything.
func (e TypeError) Is(target error) bool {
	o, ok := target.(TypeError)
	if !ok {
		return false
	}
	if o.Op != "" && o.Op != e.Op {
		return false
	}
	if o.Expected != "" && o.Expected != e.Expected {
		return false
	}
	return true
}

// UnknownWordError reports a symbol that resolved to nothing: not an
// operator, not a builtin, not a user definition.
type UnknownWordError struct {
	Name string
}

func (e UnknownWordError) Error() string { return fmt.Sprintf("unknown word %v", e.Name) }

// Is matches another UnknownWordError; a zero Name matches anything.
func (e UnknownWordError) Is(target error) bool {
	o, ok := target.(UnknownWordError)
	return ok && (o.Name == "" || o.Name == e.Name)
}

// UnknownBuiltinError reports a dictionary entry marked builtin with no
// handler behind it; seeing one means the builtin tables are inconsistent.
type UnknownBuiltinError struct {
	Name string
}

func (e UnknownBuiltinError) Error() string { return fmt.Sprintf("unknown builtin %v", e.Name) }

// IndexOutOfBoundsError reports an NTH index outside the vector, or one
// that is not a whole number.
type IndexOutOfBoundsError struct {
	Index  Fraction
	Length int
}

func (e IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %v out of bounds for vector of length %v", e.Index, e.Length)
}

// DependencyError reports a word that cannot be deleted or redefined while
// other words still reference it.
type DependencyError struct {
	Word       string
	Dependents []string
}

func (e DependencyError) Error() string {
	return fmt.Sprintf("cannot modify %v: still referenced by %v",
		e.Word, strings.Join(e.Dependents, ", "))
}

// Is matches another DependencyError; zero fields in the target match
// anything.
func (e DependencyError) Is(target error) bool {
	o, ok := target.(DependencyError)
	if !ok {
		return false
	}
	if o.Word != "" && o.Word != e.Word {
		return false
	}
	if len(o.Dependents) > 0 && !equalStrings(o.Dependents, e.Dependents) {
		return false
	}
	return true
}

// RedefineBuiltinError reports an attempt to define or delete over a
// builtin name.
type RedefineBuiltinError struct {
	Word string
}

func (e RedefineBuiltinError) Error() string {
	return fmt.Sprintf("cannot redefine builtin %v", e.Word)
}

// Is matches another RedefineBuiltinError; a zero Word matches anything.
func (e RedefineBuiltinError) Is(target error) bool {
	o, ok := target.(RedefineBuiltinError)
	return ok && (o.Word == "" || o.Word == e.Word)
}

// WordNotFoundError reports deletion of a word that is not defined.
type WordNotFoundError struct {
	Word string
}

func (e WordNotFoundError) Error() string { return fmt.Sprintf("no such word %v", e.Word) }

// Is matches another WordNotFoundError; a zero Word matches anything.
func (e WordNotFoundError) Is(target error) bool {
	o, ok := target.(WordNotFoundError)
	return ok && (o.Word == "" || o.Word == e.Word)
}

// ParseError reports malformed source: unterminated strings, vectors, or
// descriptions, bad numeric literals, and loop structure that never closes.
// Line and Col locate the offending construct when known, 1-based.
type ParseError struct {
	Reason string
	Line   int
	Col    int
}

func (e ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at %v:%v: %v", e.Line, e.Col, e.Reason)
	}
	return fmt.Sprintf("parse error: %v", e.Reason)
}

// Is matches another ParseError; zero fields in the target match anything.
func (e ParseError) Is(target error) bool {
	o, ok := target.(ParseError)
	if !ok {
		return false
	}
	if o.Reason != "" && o.Reason != e.Reason {
		return false
	}
	if o.Line != 0 && o.Line != e.Line {
		return false
	}
	if o.Col != 0 && o.Col != e.Col {
		return false
	}
	return true
}

// wrapOp tags an error with the operation that raised it.
func wrapOp(op string, err error) error {
	return fmt.Errorf("%v: %w", op, err)
}

// wrapWord tags an error with the word whose execution raised it.
func wrapWord(name string, err error) error {
	return fmt.Errorf("in %v: %w", name, err)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
