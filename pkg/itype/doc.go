// Package itype implements the itype wire format used by the relay's RPC
// interface. Every request and response is one itype value on one line.
//
// Grammar:
//
//	value     := string | list | exception
//	string    := "(" *char ")"
//	list      := "{" *value "}"
//	exception := "[" code SP message "]"
//
// Inside a value, the delimiters ( ) { } [ ] and the backslash are written
// with a preceding backslash. A newline is written as `\n` and a carriage
// return as a backslash followed by the raw carriage return. The parser
// decodes the `\n` and `\r` escapes into the control characters and drops
// the backslash in front of any other byte except a delimiter or backslash.
//
// Parse produces a WireValue tree whose string payloads are still escaped,
// Flatten turns it into a canonical Value (Text, List or *Exception), and
// Serialize goes the other way:
//
//	line := itype.Serialize(itype.List{itype.Text("user"), itype.Text("commands")})
//	wire, _ := itype.Parse(line)
//	v := itype.Flatten(wire) // itype.Decode(line) does both
//	if itype.IsError(v) {
//		...
//	}
//
// Text that cannot be parsed is not a Go error: it flattens to an *Exception
// with ParseErrorCode, the same way a failure reported by the remote side
// arrives as an *Exception.
package itype
