package itype

import (
	"strings"
)

// DefaultMaxDepth is the list nesting depth a zero Parser accepts.
const DefaultMaxDepth = 100

// Parser turns wire text into a WireValue. The zero value is ready to use.
// A Parser holds no scan state, so one value may be shared by goroutines.
type Parser struct {
	// MaxDepth is the number of nested list levels accepted. A list opened
	// deeper than that yields Empty{ErrTooDeep}. Zero means DefaultMaxDepth.
	MaxDepth int
}

var defaultParser Parser

// Parse parses the first complete value in input with the default Parser and
// reports how many bytes of input it consumed.
func Parse(input string) (WireValue, int) {
	return defaultParser.Parse(input)
}

// Parse parses the first complete value in input. The consumed length covers
// the value and anything skipped before its opening delimiter, so
// input[consumed:] is the remaining suffix. When no value can be completed it
// returns Empty and consumes the whole input.
func (p Parser) Parse(input string) (WireValue, int) {
	return p.parse(input, 0)
}

func (p Parser) maxDepth() int {
	if p.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return p.MaxDepth
}

func openerKind(c byte) Kind {
	switch c {
	case '(':
		return KindString
	case '{':
		return KindList
	case '[':
		return KindException
	}
	return KindEmpty
}

func closerKind(c byte) Kind {
	switch c {
	case ')':
		return KindString
	case '}':
		return KindList
	case ']':
		return KindException
	}
	return KindEmpty
}

func (p Parser) parse(input string, depth int) (WireValue, int) {
	var (
		kind   = KindEmpty
		escape bool
		level  int
		buf    strings.Builder
	)

	for i := 0; i < len(input); i++ {
		c := input[i]
		wasEscape := escape
		escape = !wasEscape && c == '\\'

		if wasEscape {
			if kind == KindEmpty {
				continue
			}
			// list payloads are parsed again, so they keep their escapes
			if kind == KindList {
				buf.WriteByte('\\')
				buf.WriteByte(c)
				continue
			}
			// delimiters and backslash stay escaped until Flatten, any
			// other escaped byte is kept without its backslash
			switch {
			case c == 'n':
				buf.WriteByte('\n')
			case c == 'r':
				buf.WriteByte('\r')
			case isSpecial(c):
				buf.WriteByte('\\')
				buf.WriteByte(c)
			default:
				buf.WriteByte(c)
			}
			continue
		}
		if escape {
			continue
		}

		closed := false
		switch c {
		case '(', '{', '[':
			k := openerKind(c)
			if kind == KindEmpty {
				if k == KindList && depth >= p.maxDepth() {
					return Empty{Reason: ErrTooDeep}, len(input)
				}
				kind = k
			}
			if kind == k {
				level++
			}
		case ')', '}', ']':
			if kind == closerKind(c) {
				level--
				closed = level == 0
			}
		}

		if kind != KindEmpty {
			buf.WriteByte(c)
		}
		if closed {
			return p.complete(kind, buf.String(), i+1, depth)
		}
	}

	if kind == KindEmpty {
		return Empty{Reason: ErrNoValue}, len(input)
	}
	return Empty{Reason: ErrUnterminated}, len(input)
}

// complete builds the value for a captured span, which still includes its
// opening and closing delimiter.
func (p Parser) complete(kind Kind, captured string, consumed, depth int) (WireValue, int) {
	payload := captured[1 : len(captured)-1]

	switch kind {
	case KindString:
		return StringValue{Raw: payload}, consumed
	case KindException:
		return ExceptionValue{Exception: NewException(Unescape(payload))}, consumed
	}

	items := make([]WireValue, 0)
	for rest := payload; rest != ""; {
		item, n := p.parse(rest, depth+1)
		if empty, ok := item.(Empty); ok {
			if empty.Reason == ErrTooDeep {
				return empty, consumed
			}
			break
		}
		items = append(items, item)
		rest = rest[n:]
	}
	return ListValue{Items: items}, consumed
}
