package ajisai

import "fmt"

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokString
	tokBoolean
	tokNil
	tokSymbol
	tokVecOpen
	tokVecClose
	tokDescription
)

// token is one classified unit of source text. Exactly one of num, str, and
// ok is meaningful, depending on kind; str doubles as symbol name and
// description text. Line and col are 1-based source positions.
type token struct {
	kind tokenKind
	num  Fraction
	str  string
	ok   bool
	line int
	col  int
}

func (tok token) String() string {
	switch tok.kind {
	case tokNumber:
		return tok.num.String()
	case tokString:
		return fmt.Sprintf("%q", tok.str)
	case tokBoolean:
		return fmt.Sprintf("%v", tok.ok)
	case tokNil:
		return "NIL"
	case tokSymbol:
		return tok.str
	case tokVecOpen:
		return "["
	case tokVecClose:
		return "]"
	case tokDescription:
		return fmt.Sprintf("( %v )", tok.str)
	}
	return fmt.Sprintf("token(%v)", int(tok.kind))
}

// isSymbol reports whether tok is the named symbol.
func (tok token) isSymbol(name string) bool {
	return tok.kind == tokSymbol && tok.str == name
}
