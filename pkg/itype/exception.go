package itype

import (
	"strings"
)

// Exception is a (code, message) pair. It represents both a failure reported
// by the remote side and a local parse failure, and both reach callers the
// same way.
type Exception struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewException splits text of the form "<code> <message>" on its first space.
// Text without a space is malformed and becomes a MalformedExceptionCode
// exception carrying the whole text as its message.
func NewException(text string) *Exception {
	code, message, ok := strings.Cut(text, " ")
	if !ok {
		return &Exception{Code: MalformedExceptionCode, Message: text}
	}
	return &Exception{Code: code, Message: message}
}

func parseFailure() *Exception {
	return &Exception{Code: ParseErrorCode, Message: ParseErrorMessage}
}

func (e *Exception) Kind() Kind { return KindException }

// RawMessage rebuilds the "<code> <message>" form.
func (e *Exception) RawMessage() string {
	return e.Code + " " + e.Message
}

func (e *Exception) Error() string {
	return e.RawMessage()
}

// IsParseFailure reports whether the exception stands for unparsable wire text
// rather than a remote failure.
func (e *Exception) IsParseFailure() bool {
	return e.Code == ParseErrorCode
}

// IsError reports whether v is an exception.
func IsError(v Value) bool {
	_, ok := v.(*Exception)
	return ok
}

// CodeOf returns the exception code of v, or "" when v is not an exception.
func CodeOf(v Value) string {
	if e, ok := v.(*Exception); ok {
		return e.Code
	}
	return ""
}

// ResultOf returns the message of an exception, or the native form of any
// other value.
func ResultOf(v Value) interface{} {
	if e, ok := v.(*Exception); ok {
		return e.Message
	}
	return Native(v)
}
