package xerrors

import (
	"errors"
	"fmt"

	abcitypes "github.com/tendermint/tendermint/abci/types"
)

const (
	ErrCodeSuccess uint32 = abcitypes.CodeTypeOK + iota
	ErrCodeGeneric
	ErrCodePaused
	ErrCodeUnauthorized
	ErrCodeInvalidSignature
	ErrCodeBadNonce
	ErrCodeExpired
	ErrCodeFutureQuery
	ErrCodeIndexOutOfRange
	ErrCodeUnderflow
	ErrCodeOverflow
	ErrCodeOrderingViolation
	ErrCodeInsufficientFund
	ErrCodeZeroAddress
	ErrCodeNotFoundResult
	ErrCodeAlreadyPaused
	ErrCodeNotPaused
)

const (
	ErrCodeQuery uint32 = 1000 + iota
	ErrCodeInvalidQueryPath
	ErrCodeInvalidQueryParams
	ErrLast
)

var (
	ErrPaused            = NewWith(ErrCodePaused, "token transfer while paused")
	ErrUnauthorized      = NewWith(ErrCodeUnauthorized, "missing role")
	ErrInvalidSignature  = NewWith(ErrCodeInvalidSignature, "invalid signature")
	ErrBadNonce          = NewWith(ErrCodeBadNonce, "invalid nonce")
	ErrExpired           = NewWith(ErrCodeExpired, "signature expired")
	ErrFutureQuery       = NewWith(ErrCodeFutureQuery, "block not yet mined")
	ErrIndexOutOfRange   = NewWith(ErrCodeIndexOutOfRange, "checkpoint index out of range")
	ErrUnderflow         = NewWith(ErrCodeUnderflow, "voting weight underflow")
	ErrOverflow          = NewWith(ErrCodeOverflow, "voting weight overflow")
	ErrOrderingViolation = NewWith(ErrCodeOrderingViolation, "block height regressed")
	ErrInsufficientFund  = NewWith(ErrCodeInsufficientFund, "amount exceeds balance")
	ErrZeroAddress       = NewWith(ErrCodeZeroAddress, "zero address")
	ErrNotFoundResult    = NewWith(ErrCodeNotFoundResult, "not found")
	ErrAlreadyPaused     = NewWith(ErrCodeAlreadyPaused, "already paused")
	ErrNotPaused         = NewWith(ErrCodeNotPaused, "not paused")

	ErrQuery              = NewWith(ErrCodeQuery, "query failed")
	ErrInvalidQueryPath   = NewWith(ErrCodeInvalidQueryPath, "invalid query path")
	ErrInvalidQueryParams = NewWith(ErrCodeInvalidQueryParams, "invalid query parameters")
)

type XError interface {
	Code() uint32
	Error() string
	Cause() error
	With(error) XError
	Wrap(error) XError
	Wrapf(string, ...any) XError
	Unwrap() error
}

type xerr struct {
	code  uint32
	msg   string
	cause error
}

func New(m string) XError {
	return &xerr{
		code: ErrCodeGeneric,
		msg:  m,
	}
}

func NewWith(code uint32, msg string) XError {
	return &xerr{
		code: code,
		msg:  msg,
	}
}

func From(err error) XError {
	if err == nil {
		return nil
	}
	var xe XError
	if errors.As(err, &xe) {
		return xe
	}
	return &xerr{
		code: ErrCodeGeneric,
		msg:  err.Error(),
	}
}

func (e *xerr) Code() uint32 {
	return e.code
}

func (e *xerr) Error() string {
	if e.cause != nil {
		return e.msg + "<<" + e.cause.Error()
	}
	return e.msg
}

func (e *xerr) Cause() error {
	return e.cause
}

func (e *xerr) Unwrap() error {
	return e.Cause()
}

// Is reports whether target carries the same code.
// Generic errors are only equal to themselves.
func (e *xerr) Is(target error) bool {
	t, ok := target.(*xerr)
	if !ok {
		return false
	}
	if e.code == ErrCodeGeneric {
		return e == t
	}
	return e.code == t.code
}

func (e *xerr) With(err error) XError {
	return &xerr{
		code:  e.code,
		msg:   e.msg,
		cause: err,
	}
}

func (e *xerr) Wrap(err error) XError {
	return &xerr{
		code:  e.code,
		msg:   e.msg,
		cause: err,
	}
}

func (e *xerr) Wrapf(format string, args ...any) XError {
	return e.Wrap(fmt.Errorf(format, args...))
}
