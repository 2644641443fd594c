package itype

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pingcap/errors"
	"github.com/spf13/cast"
)

// ValueOf converts a host value into a canonical value. Strings, byte slices
// and fmt.Stringers become Text, slices and arrays become List, and other
// scalars are formatted with cast. Maps and structs have no ordered form and
// are rejected with ErrUnsupportedValue.
func ValueOf(x interface{}) (Value, error) {
	switch x := x.(type) {
	case nil:
		return Text(""), nil
	case Value:
		if err := checkValue(x); err != nil {
			return nil, err
		}
		return x, nil
	case string:
		return Text(x), nil
	case []byte:
		return Text(x), nil
	case []string:
		items := make(List, 0, len(x))
		for _, s := range x {
			items = append(items, Text(s))
		}
		return items, nil
	case []interface{}:
		items := make(List, 0, len(x))
		for i, item := range x {
			v, err := ValueOf(item)
			if err != nil {
				return nil, errors.Annotatef(err, "item %d", i)
			}
			items = append(items, v)
		}
		return items, nil
	case fmt.Stringer:
		return Text(x.String()), nil
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make(List, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := ValueOf(rv.Index(i).Interface())
			if err != nil {
				return nil, errors.Annotatef(err, "item %d", i)
			}
			items = append(items, v)
		}
		return items, nil
	case reflect.Map, reflect.Struct, reflect.Func, reflect.Chan:
		return nil, errors.Annotatef(ErrUnsupportedValue, "%T", x)
	case reflect.Ptr:
		if rv.IsNil() {
			return Text(""), nil
		}
		return ValueOf(rv.Elem().Interface())
	}

	s, err := cast.ToStringE(x)
	if err != nil {
		return nil, errors.Annotatef(ErrUnsupportedValue, "%T: %v", x, err)
	}
	return Text(s), nil
}

// checkValue rejects exceptions whose code holds a space, since the first
// space on the wire ends the code.
func checkValue(v Value) error {
	switch v := v.(type) {
	case List:
		for i, item := range v {
			if err := checkValue(item); err != nil {
				return errors.Annotatef(err, "item %d", i)
			}
		}
	case *Exception:
		if strings.IndexByte(v.Code, ' ') >= 0 {
			return errors.Annotatef(ErrUnsupportedValue, "exception code %q contains a space", v.Code)
		}
	}
	return nil
}

// Marshal converts x with ValueOf and serializes the result.
func Marshal(x interface{}) (string, error) {
	v, err := ValueOf(x)
	if err != nil {
		return "", err
	}
	return Serialize(v), nil
}

// Native returns v as plain Go data: string for Text, []interface{} for List
// and *Exception for exceptions.
func Native(v Value) interface{} {
	switch v := v.(type) {
	case Text:
		return string(v)
	case List:
		out := make([]interface{}, 0, len(v))
		for _, item := range v {
			out = append(out, Native(item))
		}
		return out
	case *Exception:
		return v
	}
	return nil
}

// Unmarshal decodes line into out, which must be a *string, *[]string,
// *[]interface{}, *List, *Value or *interface{}. A decoded exception is
// returned as the error unless out can hold it.
func Unmarshal(line string, out interface{}) error {
	return unmarshalValue(Decode(line), out)
}

func unmarshalValue(v Value, out interface{}) error {
	switch out := out.(type) {
	case *Value:
		*out = v
		return nil
	case *interface{}:
		*out = Native(v)
		return nil
	}

	if e, ok := v.(*Exception); ok {
		return e
	}

	switch out := out.(type) {
	case *string:
		t, ok := v.(Text)
		if !ok {
			return errors.Annotatef(ErrTypeMismatch, "%s into *string", v.Kind())
		}
		*out = string(t)
	case *List:
		l, ok := v.(List)
		if !ok {
			return errors.Annotatef(ErrTypeMismatch, "%s into *List", v.Kind())
		}
		*out = l
	case *[]string:
		l, ok := v.(List)
		if !ok {
			return errors.Annotatef(ErrTypeMismatch, "%s into *[]string", v.Kind())
		}
		for _, item := range l {
			if e, ok := item.(*Exception); ok {
				return e
			}
		}
		s, ok := l.Strings()
		if !ok {
			return errors.Annotate(ErrTypeMismatch, "nested list into *[]string")
		}
		*out = s
	case *[]interface{}:
		l, ok := v.(List)
		if !ok {
			return errors.Annotatef(ErrTypeMismatch, "%s into *[]interface{}", v.Kind())
		}
		*out = Native(l).([]interface{})
	default:
		return errors.Annotatef(ErrUnsupportedValue, "unmarshal target %T", out)
	}
	return nil
}
