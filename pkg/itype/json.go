package itype

import (
	"bytes"
	"encoding/json"

	"github.com/pingcap/errors"
	"github.com/spf13/cast"
)

// ToJSON encodes v as JSON: Text is a string, List an array and an exception
// an object with "code" and "message".
func ToJSON(v Value) ([]byte, error) {
	return json.Marshal(jsonable(v))
}

func jsonable(v Value) interface{} {
	switch v := v.(type) {
	case Text:
		return string(v)
	case List:
		out := make([]interface{}, 0, len(v))
		for _, item := range v {
			out = append(out, jsonable(item))
		}
		return out
	case *Exception:
		return v
	}
	return nil
}

// ValueFromJSON decodes a JSON document into a canonical value. Numbers and
// booleans become Text, null becomes empty Text, and objects are only
// accepted when they carry a "code" key, which makes them exceptions.
func ValueFromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Trace(err)
	}
	return fromJSON(doc)
}

func fromJSON(doc interface{}) (Value, error) {
	switch doc := doc.(type) {
	case nil:
		return Text(""), nil
	case string:
		return Text(doc), nil
	case json.Number:
		return Text(doc.String()), nil
	case bool:
		return Text(cast.ToString(doc)), nil
	case []interface{}:
		items := make(List, 0, len(doc))
		for i, item := range doc {
			v, err := fromJSON(item)
			if err != nil {
				return nil, errors.Annotatef(err, "item %d", i)
			}
			items = append(items, v)
		}
		return items, nil
	case map[string]interface{}:
		code, ok := doc["code"]
		if !ok {
			return nil, errors.Annotate(ErrUnsupportedValue, "JSON object without code")
		}
		c, err := cast.ToStringE(code)
		if err != nil {
			return nil, errors.Annotatef(ErrUnsupportedValue, "exception code: %v", err)
		}
		m, err := cast.ToStringE(doc["message"])
		if err != nil {
			return nil, errors.Annotatef(ErrUnsupportedValue, "exception message: %v", err)
		}
		return &Exception{Code: c, Message: m}, nil
	}
	return nil, errors.Annotatef(ErrUnsupportedValue, "JSON %T", doc)
}
