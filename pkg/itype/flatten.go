package itype

import (
	"strings"
)

// Flatten converts a parse tree into its canonical value. String payloads are
// unescaped, exceptions pass through, and an Empty parse becomes a
// ParseErrorCode exception.
func Flatten(v WireValue) Value {
	switch v := v.(type) {
	case ListValue:
		items := make(List, 0, len(v.Items))
		for _, item := range v.Items {
			items = append(items, Flatten(item))
		}
		return items
	case ExceptionValue:
		return v.Exception
	case StringValue:
		return Text(Unescape(v.Raw))
	default:
		return parseFailure()
	}
}

// Decode parses line and flattens the result.
func Decode(line string) Value {
	v, _ := Parse(line)
	return Flatten(v)
}

func isSpecial(c byte) bool {
	switch c {
	case '{', '}', '[', ']', '(', ')', '\\':
		return true
	}
	return false
}

// Unescape collapses the escapes of delimiters and backslash in a raw string
// payload. Other backslash pairs and control characters are left as they are.
func Unescape(raw string) string {
	if strings.IndexByte(raw, '\\') < 0 {
		return raw
	}

	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '\\' && i+1 < len(raw) && isSpecial(raw[i+1]) {
			i++
			c = raw[i]
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
