package itype

import (
	"github.com/philippgille/gokv/encoding"
)

// Codec encodes values as itype text for gokv stores. MaxDepth bounds list
// nesting on Unmarshal; zero means DefaultMaxDepth.
type Codec struct {
	MaxDepth int
}

var _ encoding.Codec = Codec{}

// DefaultCodec is a Codec with default limits.
var DefaultCodec = Codec{}

// Marshal encodes v, which must be acceptable to ValueOf.
func (c Codec) Marshal(v interface{}) ([]byte, error) {
	s, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Unmarshal decodes data into v. See Unmarshal for the accepted targets.
func (c Codec) Unmarshal(data []byte, v interface{}) error {
	wire, _ := Parser{MaxDepth: c.MaxDepth}.Parse(string(data))
	return unmarshalValue(Flatten(wire), v)
}
