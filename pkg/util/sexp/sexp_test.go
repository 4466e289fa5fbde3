package sexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SExp_01(t *testing.T) {
	checkSExp(t, "()", NewList(nil))
}

func Test_SExp_02(t *testing.T) {
	checkSExp(t, "(f)", NewApplication("f"))
}

func Test_SExp_03(t *testing.T) {
	checkSExp(t, "(f x (g y))", NewApplication("f", NewSymbol("x"), NewApplication("g", NewSymbol("y"))))
}

func Test_SExp_04(t *testing.T) {
	s := NewSymbol("a b")
	//
	assert.Equal(t, "\"a b\"", s.String(true))
	assert.Equal(t, "a b", s.String(false))
	assert.Equal(t, "\"\"", NewSymbol("").String(true))
	assert.Equal(t, "\"(x)\"", NewSymbol("(x)").String(true))
	assert.Equal(t, "∀", NewSymbol("∀").String(true))
}

func Test_SExp_05(t *testing.T) {
	l := NewApplication("forall", NewSymbol("x"), NewApplication("P", NewSymbol("x")))
	//
	assert.Len(t, l.Elements, 3)
	assert.Same(t, l, l.AsList())
	assert.Nil(t, l.AsSymbol())
	assert.Equal(t, "forall", l.Elements[0].AsSymbol().Value)
	assert.Nil(t, l.Elements[0].AsList())
	assert.NotNil(t, l.Elements[2].AsList())
}

func checkSExp(t *testing.T, expected string, sexp SExp) {
	t.Helper()
	assert.Equal(t, expected, sexp.String(true))
}
