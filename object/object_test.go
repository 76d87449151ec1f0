package object

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarEquality(t *testing.T) {
	require.True(t, NewInt(3).Equals(NewInt(3)))
	require.True(t, NewInt(3).Equals(NewFloat(3)))
	require.False(t, NewInt(3).Equals(NewString("3")))
	require.True(t, NewFloat(1.5).Equals(NewFloat(1.5)))
	require.True(t, NewString("a").Equals(NewString("a")))
	require.True(t, NewBool(true).Equals(True))
	require.True(t, Nil.Equals(Nil))
	require.False(t, Nil.Equals(False))
}

func TestTruthiness(t *testing.T) {
	require.False(t, NewInt(0).IsTruthy())
	require.True(t, NewInt(-1).IsTruthy())
	require.False(t, NewFloat(0).IsTruthy())
	require.False(t, NewString("").IsTruthy())
	require.False(t, NewList(nil).IsTruthy())
	require.True(t, NewList([]Object{Nil}).IsTruthy())
	require.False(t, Nil.IsTruthy())
}

func TestFloatMarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewFloat(0.25))
	require.NoError(t, err)
	require.Equal(t, "0.25", string(data))

	data, err = json.Marshal(NewFloat(math.Inf(1)))
	require.NoError(t, err)
	require.Equal(t, `"+Inf"`, string(data))

	data, err = json.Marshal(NewFloat(math.NaN()))
	require.NoError(t, err)
	require.Equal(t, `"NaN"`, string(data))
}

func TestList(t *testing.T) {
	ls := NewList([]Object{NewInt(1), NewString("two"), Nil})
	require.Equal(t, 3, ls.Len())
	require.Equal(t, `[1, "two", nil]`, ls.Inspect())
	require.Equal(t, []interface{}{int64(1), "two", nil}, ls.Interface())
	require.True(t, ls.Equals(NewList([]Object{NewInt(1), NewString("two"), Nil})))
	require.False(t, ls.Equals(NewList([]Object{NewInt(1), NewString("two")})))

	// Value shares the backing array
	ls.Value()[0], ls.Value()[1] = ls.Value()[1], ls.Value()[0]
	require.Equal(t, `["two", 1, nil]`, ls.Inspect())

	data, err := json.Marshal(ls)
	require.NoError(t, err)
	require.Equal(t, `["two",1,null]`, string(data))
}

func TestAsConversions(t *testing.T) {
	i, err := AsInt(NewInt(7))
	require.NoError(t, err)
	require.Equal(t, int64(7), i)

	f, err := AsFloat(NewInt(7))
	require.NoError(t, err)
	require.Equal(t, 7.0, f)

	_, err = AsInt(NewFloat(7))
	require.EqualError(t, err, "type error: expected an integer (float given)")

	_, err = AsBool(NewString("true"))
	require.EqualError(t, err, "type error: expected a bool (string given)")

	_, err = AsList(Nil)
	require.EqualError(t, err, "type error: expected a list (nil given)")

	var objErr *Error
	require.True(t, errors.As(err, &objErr))
	require.Equal(t, ErrType, objErr.Kind())
}

func TestFromGoType(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  Object
	}{
		{"nil", nil, Nil},
		{"bool", true, True},
		{"int", 3, NewInt(3)},
		{"uint8", uint8(255), NewInt(255)},
		{"float64", 2.5, NewFloat(2.5)},
		{"string", "x", NewString("x")},
		{"json int", json.Number("12"), NewInt(12)},
		{"json float", json.Number("1.25"), NewFloat(1.25)},
		{"strings", []string{"a", "b"}, NewList([]Object{NewString("a"), NewString("b")})},
		{"mixed", []interface{}{1, "a", nil}, NewList([]Object{NewInt(1), NewString("a"), Nil})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromGoType(tt.value)
			require.True(t, tt.want.Equals(got), "got %s", got.Inspect())
		})
	}

	got := FromGoType(map[string]int{})
	require.True(t, IsError(got))
	require.Equal(t, ErrType, got.(*Error).Kind())

	got = FromGoType([]interface{}{1, struct{}{}})
	require.True(t, IsError(got))
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("boom")
	err := ValueErrorf("rand.thing: %w", cause)
	require.Equal(t, ErrValue, err.Kind())
	require.ErrorIs(t, err, cause)
	require.Equal(t, "rand.thing: boom", err.Error())

	kind, ok := err.GetAttr("kind")
	require.True(t, ok)
	require.Equal(t, NewString("value error"), kind)
	msg, ok := err.GetAttr("message")
	require.True(t, ok)
	require.Equal(t, NewString("rand.thing: boom"), msg)

	data, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	require.JSONEq(t, `{"error": "rand.thing: boom", "kind": "value error"}`, string(data))

	// Wrapping an *Error keeps its kind
	require.Equal(t, ErrArgs, NewError(ArgsErrorf("bad")).Kind())
	require.Equal(t, ErrRuntime, NewError(cause).Kind())
}

func TestRequire(t *testing.T) {
	require.Nil(t, Require("f", 1, []Object{Nil}))
	require.EqualError(t, Require("f", 1, nil), "args error: f() takes exactly 1 argument (0 given)")
	require.EqualError(t, Require("f", 2, nil), "args error: f() takes exactly 2 arguments (0 given)")

	require.Nil(t, RequireRange("f", 1, 2, []Object{Nil, Nil}))
	require.EqualError(t, RequireRange("f", 1, 2, nil), "args error: f() takes at least 1 argument (0 given)")
	require.EqualError(t,
		RequireRange("f", 0, 2, []Object{Nil, Nil, Nil}),
		"args error: f() takes at most 2 arguments (3 given)")
	require.Equal(t, ErrArgs, RequireRange("f", 1, 2, nil).Kind())
}

func TestModule(t *testing.T) {
	double := NewBuiltin("double", func(ctx context.Context, args ...Object) (Object, error) {
		if err := Require("m.double", 1, args); err != nil {
			return nil, err
		}
		i, err := AsInt(args[0])
		if err != nil {
			return nil, err
		}
		return NewInt(i * 2), nil
	})
	m := NewBuiltinsModule("m", map[string]Object{
		"double": double,
		"one":    NewBuiltin("one", nil),
	})
	require.Equal(t, []string{"double", "one"}, m.Names())
	require.Equal(t, "module(m)", m.Inspect())
	require.Equal(t, "m.double", double.Key())
	require.Equal(t, "builtin(m.double)", double.Inspect())

	name, ok := m.GetAttr("__name__")
	require.True(t, ok)
	require.Equal(t, NewString("m"), name)

	attr, ok := m.GetAttr("double")
	require.True(t, ok)
	result, err := attr.(Callable).Call(context.Background(), NewInt(21))
	require.NoError(t, err)
	require.Equal(t, NewInt(42), result)

	owner, ok := double.GetAttr("__module__")
	require.True(t, ok)
	require.Same(t, m, owner)

	_, ok = m.GetAttr("missing")
	require.False(t, ok)
}

func TestPrintableValue(t *testing.T) {
	require.Equal(t, "x", PrintableValue(NewString("x")))
	require.Equal(t, int64(1), PrintableValue(NewInt(1)))
	require.Equal(t, "nil", PrintableValue(Nil))
	require.Equal(t, `["x"]`, PrintableValue(NewList([]Object{NewString("x")})))
}
