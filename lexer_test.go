package ajisai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_tokenize(t *testing.T) {
	for _, tc := range []struct {
		name    string
		src     string
		want    []token
		wantErr error
	}{
		{name: "empty", src: ""},
		{name: "blank", src: " \t\n "},

		{
			name: "numbers",
			src:  "1 -2 3/4 1.5",
			want: []token{
				{kind: tokNumber, num: FromInt(1), line: 1, col: 1},
				{kind: tokNumber, num: FromInt(-2), line: 1, col: 3},
				{kind: tokNumber, num: makeFrac(3, 4), line: 1, col: 6},
				{kind: tokNumber, num: makeFrac(3, 2), line: 1, col: 10},
			},
		},
		{
			name: "plus signed numbers",
			src:  "+7 +1.5",
			want: []token{
				{kind: tokNumber, num: FromInt(7), line: 1, col: 1},
				{kind: tokNumber, num: makeFrac(3, 2), line: 1, col: 4},
			},
		},
		{
			name: "negative fraction keeps its sign",
			src:  "-3/4",
			want: []token{
				{kind: tokNumber, num: makeFrac(-3, 4), line: 1, col: 1},
			},
		},
		{
			name: "fractions reduce",
			src:  "4/2",
			want: []token{
				{kind: tokNumber, num: FromInt(2), line: 1, col: 1},
			},
		},

		{
			name: "string with escapes",
			src:  `"a\"b\\c"`,
			want: []token{
				{kind: tokString, str: `a"b\c`, line: 1, col: 1},
			},
		},
		{
			name: "strings are self delimiting",
			src:  `1"x"2`,
			want: []token{
				{kind: tokNumber, num: FromInt(1), line: 1, col: 1},
				{kind: tokString, str: "x", line: 1, col: 2},
				{kind: tokNumber, num: FromInt(2), line: 1, col: 5},
			},
		},

		{
			name: "comment runs to end of line",
			src:  "1 # rest [ is \" ignored\n2",
			want: []token{
				{kind: tokNumber, num: FromInt(1), line: 1, col: 1},
				{kind: tokNumber, num: FromInt(2), line: 2, col: 1},
			},
		},

		{
			name: "description trims its edges",
			src:  "(  n -- m  )",
			want: []token{
				{kind: tokDescription, str: "n -- m", line: 1, col: 1},
			},
		},

		{
			name: "brackets are self delimiting",
			src:  "[1]",
			want: []token{
				{kind: tokVecOpen, line: 1, col: 1},
				{kind: tokNumber, num: FromInt(1), line: 1, col: 2},
				{kind: tokVecClose, line: 1, col: 3},
			},
		},

		{
			name: "booleans and nil fold case",
			src:  "True FALSE nIl",
			want: []token{
				{kind: tokBoolean, ok: true, line: 1, col: 1},
				{kind: tokBoolean, line: 1, col: 6},
				{kind: tokNil, line: 1, col: 12},
			},
		},
		{
			name: "symbols normalize to upper",
			src:  "dup Swap",
			want: []token{
				{kind: tokSymbol, str: "DUP", line: 1, col: 1},
				{kind: tokSymbol, str: "SWAP", line: 1, col: 5},
			},
		},
		{
			name: "bare signs are symbols",
			src:  "- + / -a",
			want: []token{
				{kind: tokSymbol, str: "-", line: 1, col: 1},
				{kind: tokSymbol, str: "+", line: 1, col: 3},
				{kind: tokSymbol, str: "/", line: 1, col: 5},
				{kind: tokSymbol, str: "-A", line: 1, col: 7},
			},
		},
		{
			name: "positions track lines",
			src:  "1\n 2",
			want: []token{
				{kind: tokNumber, num: FromInt(1), line: 1, col: 1},
				{kind: tokNumber, num: FromInt(2), line: 2, col: 2},
			},
		},

		{
			name:    "unterminated string",
			src:     `"abc`,
			wantErr: ParseError{Reason: "unterminated string", Line: 1, Col: 1},
		},
		{
			name:    "unterminated string after escape",
			src:     `"abc\`,
			wantErr: ParseError{Reason: "unterminated string", Line: 1, Col: 1},
		},
		{
			name:    "unterminated description",
			src:     "1 ( oops",
			wantErr: ParseError{Reason: "unterminated description", Line: 1, Col: 3},
		},
		{
			name:    "malformed numeric",
			src:     "12x",
			wantErr: ParseError{Reason: `malformed numeric literal "12x"`, Line: 1, Col: 1},
		},
		{
			name:    "malformed decimal",
			src:     "1.2.3",
			wantErr: ParseError{Reason: `malformed numeric literal "1.2.3"`, Line: 1, Col: 1},
		},
		{
			name:    "malformed fraction",
			src:     "1/a",
			wantErr: ParseError{Reason: `malformed numeric literal "1/a"`, Line: 1, Col: 1},
		},
		{
			name:    "zero denominator",
			src:     "1/0",
			wantErr: ParseError{Reason: `zero denominator in "1/0"`, Line: 1, Col: 1},
		},
		{
			name:    "integer overflow",
			src:     "99999999999999999999",
			wantErr: ParseError{Reason: `malformed numeric literal "99999999999999999999"`, Line: 1, Col: 1},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := tokenize(tc.src)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %+v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, toks)
		})
	}
}

func Test_token_String(t *testing.T) {
	for _, tc := range []struct {
		tok  token
		want string
	}{
		{token{kind: tokNumber, num: makeFrac(3, 2)}, "3/2"},
		{token{kind: tokNumber, num: FromInt(-4)}, "-4"},
		{token{kind: tokString, str: `a"b`}, `"a\"b"`},
		{token{kind: tokBoolean, ok: true}, "true"},
		{token{kind: tokNil}, "NIL"},
		{token{kind: tokSymbol, str: "DUP"}, "DUP"},
		{token{kind: tokVecOpen}, "["},
		{token{kind: tokVecClose}, "]"},
		{token{kind: tokDescription, str: "n -- m"}, "( n -- m )"},
	} {
		assert.Equal(t, tc.want, tc.tok.String())
	}
}
