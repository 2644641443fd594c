package itype

import (
	"strings"
)

// Serialize renders v as wire text. Lists become "{...}", texts "(...)" and
// exceptions "[code message]". An exception code must not contain a space;
// Marshal and Encoder reject such codes, Serialize writes them as they are.
func Serialize(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

// SerializeString renders a single string as an itype string value.
func SerializeString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('(')
	writeEscaped(&sb, s)
	sb.WriteByte(')')
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value) {
	switch v := v.(type) {
	case List:
		sb.WriteByte('{')
		for _, item := range v {
			writeValue(sb, item)
		}
		sb.WriteByte('}')
	case Text:
		sb.WriteByte('(')
		writeEscaped(sb, string(v))
		sb.WriteByte(')')
	case *Exception:
		sb.WriteByte('[')
		writeEscaped(sb, v.Code)
		sb.WriteByte(' ')
		writeEscaped(sb, v.Message)
		sb.WriteByte(']')
	}
}

// writeEscaped escapes delimiters and backslash with a backslash. A carriage
// return keeps its byte behind a backslash and a newline becomes `\n`, so the
// output never contains a bare newline.
func writeEscaped(sb *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r', isSpecial(c):
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
}
