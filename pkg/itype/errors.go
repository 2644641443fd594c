package itype

import (
	"github.com/IceFireDB/itype/utils"
	"github.com/pingcap/errors"
)

const (
	// ParseErrorCode is the exception code a malformed wire line flattens to.
	ParseErrorCode = "ITYPE_PARSE_ERROR"
	// ParseErrorMessage is the message paired with ParseErrorCode.
	ParseErrorMessage = "Invalid itype string encountered."

	// MalformedExceptionCode is used when an exception payload carries no space.
	MalformedExceptionCode = "ITYPE_BAD_EXCEPTION"

	// RPCErrorCode is the code the remote side uses for ordinary call failures.
	RPCErrorCode = "RPC_ERROR"
)

// ErrNoValue is the reason for an Empty parse of input that never opens a value
var ErrNoValue = errors.New("no itype value in input")

// ErrUnterminated is the reason for an Empty parse of input that ends inside a value
var ErrUnterminated = errors.New("unterminated itype value")

// ErrTooDeep is the reason for an Empty parse of lists nested past the depth limit
var ErrTooDeep = errors.New("itype value nested too deeply")

// ErrUnsupportedValue is returned when a host value has no itype encoding
var ErrUnsupportedValue = errors.New("unsupported value for itype encoding")

// ErrTypeMismatch is returned when a decoded value does not fit the target
var ErrTypeMismatch = errors.New("itype value does not match target type")

// ErrLineTooLong is returned when a wire line exceeds the decoder's limit
var ErrLineTooLong = utils.ErrLineTooLong
