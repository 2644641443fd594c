package itype

import (
	"testing"
	"time"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	s := "pointed"
	var nilPtr *string

	cases := []struct {
		in   interface{}
		want Value
	}{
		{nil, Text("")},
		{"abc", Text("abc")},
		{[]byte("raw"), Text("raw")},
		{42, Text("42")},
		{3.5, Text("3.5")},
		{true, Text("true")},
		{time.Second, Text("1s")},
		{&s, Text("pointed")},
		{nilPtr, Text("")},
		{[]string{}, List{}},
		{[]string{"a", "b"}, List{Text("a"), Text("b")}},
		{[2]int{1, 2}, List{Text("1"), Text("2")}},
		{[]interface{}{"a", 1, []int{2, 3}}, List{Text("a"), Text("1"), List{Text("2"), Text("3")}}},
		{Text("kept"), Text("kept")},
		{&Exception{Code: "E", Message: "m"}, &Exception{Code: "E", Message: "m"}},
	}
	for _, c := range cases {
		v, err := ValueOf(c.in)
		require.NoError(t, err, "%#v", c.in)
		assert.Equal(t, c.want, v, "%#v", c.in)
	}
}

func TestValueOfUnsupported(t *testing.T) {
	for _, in := range []interface{}{
		map[string]string{"a": "b"},
		struct{ A int }{1},
		func() {},
		make(chan int),
	} {
		_, err := ValueOf(in)
		assert.Equal(t, ErrUnsupportedValue, errors.Cause(err), "%T", in)
	}

	_, err := ValueOf([]interface{}{"a", map[string]int{}})
	require.Error(t, err)
	assert.Equal(t, ErrUnsupportedValue, errors.Cause(err))
	assert.Contains(t, err.Error(), "item 1")
}

func TestMarshal(t *testing.T) {
	s, err := Marshal([]interface{}{"user", "pass", "commands", []string{}})
	require.NoError(t, err)
	assert.Equal(t, "{(user)(pass)(commands){}}", s)

	s, err = Marshal("a(b)")
	require.NoError(t, err)
	assert.Equal(t, `(a\(b\))`, s)

	_, err = Marshal(map[int]int{})
	assert.Equal(t, ErrUnsupportedValue, errors.Cause(err))
}

func TestNative(t *testing.T) {
	e := &Exception{Code: "E", Message: "m"}
	assert.Equal(t, "a", Native(Text("a")))
	assert.Equal(t, []interface{}{"a", []interface{}{}, e}, Native(List{Text("a"), List{}, e}))
	assert.Equal(t, e, Native(e))
}

func TestUnmarshal(t *testing.T) {
	var s string
	require.NoError(t, Unmarshal("(hello)", &s))
	assert.Equal(t, "hello", s)

	var ss []string
	require.NoError(t, Unmarshal("{(one)(two)(three)}", &ss))
	assert.Equal(t, []string{"one", "two", "three"}, ss)

	var l List
	require.NoError(t, Unmarshal("{(a){(b)}}", &l))
	assert.Equal(t, List{Text("a"), List{Text("b")}}, l)

	var raw []interface{}
	require.NoError(t, Unmarshal("{(a){(b)}}", &raw))
	assert.Equal(t, []interface{}{"a", []interface{}{"b"}}, raw)

	var v Value
	require.NoError(t, Unmarshal("[RPC_ERROR nope]", &v))
	assert.Equal(t, "RPC_ERROR", CodeOf(v))

	var native interface{}
	require.NoError(t, Unmarshal("(x)", &native))
	assert.Equal(t, "x", native)
}

func TestUnmarshalException(t *testing.T) {
	var s string
	err := Unmarshal("[RPC_ERROR unknown command]", &s)
	var e *Exception
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "RPC_ERROR", e.Code)
	assert.Equal(t, "unknown command", e.Message)

	var ss []string
	err = Unmarshal("{(a)[AUTH denied]}", &ss)
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "AUTH", e.Code)

	err = Unmarshal("{broken", &s)
	require.ErrorAs(t, err, &e)
	assert.True(t, e.IsParseFailure())
}

func TestUnmarshalMismatch(t *testing.T) {
	var s string
	assert.Equal(t, ErrTypeMismatch, errors.Cause(Unmarshal("{(a)}", &s)))

	var ss []string
	assert.Equal(t, ErrTypeMismatch, errors.Cause(Unmarshal("(a)", &ss)))
	assert.Equal(t, ErrTypeMismatch, errors.Cause(Unmarshal("{{(a)}}", &ss)))

	var n int
	assert.Equal(t, ErrUnsupportedValue, errors.Cause(Unmarshal("(1)", &n)))
}

func TestValueOfExceptionCodeWithSpace(t *testing.T) {
	bad := &Exception{Code: "BAD CODE", Message: "m"}

	_, err := ValueOf(bad)
	assert.Equal(t, ErrUnsupportedValue, errors.Cause(err))

	_, err = Marshal(List{Text("a"), List{bad}})
	require.Error(t, err)
	assert.Equal(t, ErrUnsupportedValue, errors.Cause(err))

	_, err = Marshal([]interface{}{"a", bad})
	assert.Equal(t, ErrUnsupportedValue, errors.Cause(err))
}
