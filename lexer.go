package ajisai

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenize converts source text into a flat token sequence in one
// left-to-right pass. Vector brackets come out as bare open/close markers;
// pairing them up is the evaluator's job.
func tokenize(src string) ([]token, error) {
	lx := lexer{src: src, line: 1, col: 1}
	var toks []token
	for {
		r, ok := lx.peek()
		if !ok {
			return toks, nil
		}
		switch {
		case unicode.IsSpace(r):
			lx.next()
		case r == '#':
			lx.skipComment()
		case r == '(':
			tok, err := lx.scanDescription()
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case r == '"':
			tok, err := lx.scanString()
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case r == '[':
			toks = append(toks, token{kind: tokVecOpen, line: lx.line, col: lx.col})
			lx.next()
		case r == ']':
			toks = append(toks, token{kind: tokVecClose, line: lx.line, col: lx.col})
			lx.next()
		default:
			tok, err := lx.scanWord()
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		}
	}
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func (lx *lexer) peek() (rune, bool) {
	if lx.pos >= len(lx.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
	return r, true
}

func (lx *lexer) next() (rune, bool) {
	if lx.pos >= len(lx.src) {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(lx.src[lx.pos:])
	lx.pos += n
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, true
}

func (lx *lexer) skipComment() {
	for {
		r, ok := lx.next()
		if !ok || r == '\n' {
			return
		}
	}
}

func (lx *lexer) scanDescription() (token, error) {
	line, col := lx.line, lx.col
	lx.next() // consume (
	var sb strings.Builder
	for {
		r, ok := lx.next()
		if !ok {
			return token{}, ParseError{Reason: "unterminated description", Line: line, Col: col}
		}
		if r == ')' {
			return token{
				kind: tokDescription,
				str:  strings.TrimSpace(sb.String()),
				line: line, col: col,
			}, nil
		}
		sb.WriteRune(r)
	}
}

func (lx *lexer) scanString() (token, error) {
	line, col := lx.line, lx.col
	lx.next() // consume opening quote
	var sb strings.Builder
	for {
		r, ok := lx.next()
		if !ok {
			return token{}, ParseError{Reason: "unterminated string", Line: line, Col: col}
		}
		switch r {
		case '"':
			return token{kind: tokString, str: sb.String(), line: line, col: col}, nil
		case '\\':
			esc, ok := lx.next()
			if !ok {
				return token{}, ParseError{Reason: "unterminated string", Line: line, Col: col}
			}
			sb.WriteRune(esc)
		default:
			sb.WriteRune(r)
		}
	}
}

func (lx *lexer) scanWord() (token, error) {
	line, col := lx.line, lx.col
	var sb strings.Builder
	for {
		r, ok := lx.peek()
		if !ok || unicode.IsSpace(r) || selfDelimiting(r) {
			break
		}
		sb.WriteRune(r)
		lx.next()
	}
	return classifyWord(sb.String(), line, col)
}

func selfDelimiting(r rune) bool {
	switch r {
	case '[', ']', '(', '"', '#':
		return true
	}
	return false
}

// classifyWord resolves a bare word in priority order: integer, decimal,
// fraction, boolean, nil, and finally a case-normalized symbol. Words that
// start like a number but fit none of the numeric forms are parse errors
// rather than accidental symbols.
func classifyWord(word string, line, col int) (token, error) {
	if n, err := strconv.ParseInt(word, 10, 64); err == nil {
		return token{kind: tokNumber, num: FromInt(n), line: line, col: col}, nil
	}
	if numericLooking(word) {
		if i := strings.IndexByte(word, '.'); i >= 0 {
			f, err := parseDecimal(word, i, line, col)
			if err != nil {
				return token{}, err
			}
			return token{kind: tokNumber, num: f, line: line, col: col}, nil
		}
		if i := strings.IndexByte(word, '/'); i >= 0 {
			f, err := parseFraction(word, i, line, col)
			if err != nil {
				return token{}, err
			}
			return token{kind: tokNumber, num: f, line: line, col: col}, nil
		}
		return token{}, ParseError{
			Reason: fmt.Sprintf("malformed numeric literal %q", word),
			Line:   line, Col: col,
		}
	}
	switch {
	case strings.EqualFold(word, "true"):
		return token{kind: tokBoolean, ok: true, line: line, col: col}, nil
	case strings.EqualFold(word, "false"):
		return token{kind: tokBoolean, line: line, col: col}, nil
	case strings.EqualFold(word, "nil"):
		return token{kind: tokNil, line: line, col: col}, nil
	}
	return token{kind: tokSymbol, str: strings.ToUpper(word), line: line, col: col}, nil
}

// numericLooking reports whether word begins with a digit, optionally
// behind a sign. A bare sign is a symbol ( - and / are operators ).
func numericLooking(word string) bool {
	if word == "" {
		return false
	}
	if word[0] == '+' || word[0] == '-' {
		word = word[1:]
	}
	return word != "" && isDigit(word[0])
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// parseDecimal converts int.int into the exact fraction
// (int*10^places + frac) / 10^places, keeping the sign on the whole value
// so that -1.5 comes out as -3/2.
func parseDecimal(word string, dot, line, col int) (Fraction, error) {
	malformed := ParseError{
		Reason: fmt.Sprintf("malformed numeric literal %q", word),
		Line:   line, Col: col,
	}
	intStr, fracStr := word[:dot], word[dot+1:]
	sign := int64(1)
	switch {
	case strings.HasPrefix(intStr, "-"):
		sign, intStr = -1, intStr[1:]
	case strings.HasPrefix(intStr, "+"):
		intStr = intStr[1:]
	}
	if !allDigits(intStr) || !allDigits(fracStr) {
		return Fraction{}, malformed
	}
	ip, err := strconv.ParseInt(intStr, 10, 64)
	if err != nil {
		return Fraction{}, malformed
	}
	fp, err := strconv.ParseInt(fracStr, 10, 64)
	if err != nil {
		return Fraction{}, malformed
	}
	den := int64(1)
	for range fracStr {
		den *= 10
	}
	return makeFrac(sign*(ip*den+fp), den), nil
}

// parseFraction converts int/int, rejecting a zero denominator.
func parseFraction(word string, slash, line, col int) (Fraction, error) {
	numStr, denStr := word[:slash], word[slash+1:]
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return Fraction{}, ParseError{
			Reason: fmt.Sprintf("malformed numeric literal %q", word),
			Line:   line, Col: col,
		}
	}
	den, err := strconv.ParseInt(denStr, 10, 64)
	if err != nil {
		return Fraction{}, ParseError{
			Reason: fmt.Sprintf("malformed numeric literal %q", word),
			Line:   line, Col: col,
		}
	}
	if den == 0 {
		return Fraction{}, ParseError{
			Reason: fmt.Sprintf("zero denominator in %q", word),
			Line:   line, Col: col,
		}
	}
	return makeFrac(num, den), nil
}
