package itype

// Kind identifies the variant of a WireValue or Value.
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindList
	KindException
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindException:
		return "exception"
	default:
		return "empty"
	}
}

// WireValue is the tree produced by Parse. String payloads are still escaped.
// The set of implementations is closed: StringValue, ListValue,
// ExceptionValue and Empty.
type WireValue interface {
	Kind() Kind
	wireValue()
}

// StringValue holds the raw payload between "(" and ")". Delimiters and
// backslashes in it are still escaped; Unescape removes those escapes.
type StringValue struct {
	Raw string
}

// ListValue holds the values found between "{" and "}", in order.
type ListValue struct {
	Items []WireValue
}

// ExceptionValue holds the exception found between "[" and "]".
type ExceptionValue struct {
	Exception *Exception
}

// Empty means no complete value could be parsed. Reason is ErrNoValue,
// ErrUnterminated or ErrTooDeep.
type Empty struct {
	Reason error
}

func (StringValue) Kind() Kind    { return KindString }
func (ListValue) Kind() Kind      { return KindList }
func (ExceptionValue) Kind() Kind { return KindException }
func (Empty) Kind() Kind          { return KindEmpty }

func (StringValue) wireValue()    {}
func (ListValue) wireValue()      {}
func (ExceptionValue) wireValue() {}
func (Empty) wireValue()          {}

// Value is the canonical, unescaped form handed to applications: Text, List
// or *Exception. An *Exception may appear anywhere a Text may.
type Value interface {
	Kind() Kind
	value()
}

// Text is a scalar string.
type Text string

// List is an ordered sequence of values. Nesting is kept exactly as encoded.
type List []Value

func (Text) Kind() Kind { return KindString }
func (List) Kind() Kind { return KindList }

func (Text) value()       {}
func (List) value()       {}
func (*Exception) value() {}

// Strings returns the list's items as strings. It reports false when any item
// is not a Text.
func (l List) Strings() ([]string, bool) {
	out := make([]string, 0, len(l))
	for _, item := range l {
		t, ok := item.(Text)
		if !ok {
			return nil, false
		}
		out = append(out, string(t))
	}
	return out, true
}
