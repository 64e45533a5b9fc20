package ajisai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Value_accessors(t *testing.T) {
	assert.True(t, Nil().IsNil())
	assert.Equal(t, KindNil, Value{}.Kind())

	f, ok := Int(3).Number()
	assert.True(t, ok)
	assert.Equal(t, FromInt(3), f)
	_, ok = Str("3").Number()
	assert.False(t, ok)

	s, ok := Str("hi").Text()
	assert.True(t, ok)
	assert.Equal(t, "hi", s)
	_, ok = Sym("hi").Text()
	assert.False(t, ok, "symbols are not strings")

	b, ok := Bool(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	name, ok := Sym("dup").Symbol()
	assert.True(t, ok)
	assert.Equal(t, "DUP", name, "symbols normalize to upper")

	_, ok = Int(1).Items()
	assert.False(t, ok)
}

func Test_Value_vectorCopies(t *testing.T) {
	items := []Value{Int(1), Int(2)}
	v := Vec(items...)
	items[0] = Int(9)
	got, ok := v.Items()
	require.True(t, ok)
	assert.Equal(t, []Value{Int(1), Int(2)}, got, "Vec copies its arguments")

	got[1] = Int(9)
	again, _ := v.Items()
	assert.Equal(t, []Value{Int(1), Int(2)}, again, "Items returns a fresh copy")
}

func Test_Value_Equal(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b Value
		want bool
	}{
		{"nils", Nil(), Nil(), true},
		{"numbers", Int(3), Int(3), true},
		{"number representations", Num(makeFrac(2, 4)), Num(makeFrac(1, 2)), true},
		{"different numbers", Int(3), Int(4), false},
		{"strings", Str("a"), Str("a"), true},
		{"strings are case sensitive", Str("a"), Str("A"), false},
		{"symbol is not string", Sym("A"), Str("A"), false},
		{"bools", Bool(true), Bool(true), true},
		{"different bools", Bool(true), Bool(false), false},
		{"cross kind", Int(0), Nil(), false},
		{"empty vectors", Vec(), Vec(), true},
		{"vectors deep", Vec(Int(1), Vec(Str("x"))), Vec(Int(1), Vec(Str("x"))), true},
		{"vector lengths", Vec(Int(1)), Vec(Int(1), Int(2)), false},
		{"vector elements", Vec(Int(1)), Vec(Int(2)), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a), "equality is symmetric")
		})
	}
}

func Test_Value_String(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		want string
	}{
		{Nil(), "NIL"},
		{Int(3), "3"},
		{Num(makeFrac(-3, 2)), "-3/2"},
		{Str(`a"b`), `"a\"b"`},
		{Str(`a\b`), `"a\\b"`},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Sym("dup"), "DUP"},
		{Vec(), "[ ]"},
		{Vec(Int(1), Vec(Str("x"))), `[ 1 [ "x" ] ]`},
	} {
		assert.Equal(t, tc.want, tc.v.String())
	}
}

func Test_ValueKind_String(t *testing.T) {
	for kind, want := range map[ValueKind]string{
		KindNil:     "nil",
		KindNumber:  "number",
		KindString:  "string",
		KindBoolean: "boolean",
		KindSymbol:  "symbol",
		KindVector:  "vector",
	} {
		assert.Equal(t, want, kind.String())
	}
}
