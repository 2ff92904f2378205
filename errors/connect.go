package errors

import "fmt"

// ConnectError reports that an operation never produced a usable response:
// the server was unreachable, the authentication key was rejected, or the
// failure could not be classified.
type ConnectError struct {
	code    ErrorCode
	message string
	cause   error
}

// NewConnect creates a ConnectError carrying the code's default message.
func NewConnect(code ErrorCode) *ConnectError {
	return &ConnectError{
		code:    code,
		message: code.Message(),
	}
}

// WrapConnect creates a ConnectError with the code's default message and
// the underlying cause attached. Returns nil if err is nil.
func WrapConnect(err error, code ErrorCode) *ConnectError {
	if err == nil {
		return nil
	}
	return &ConnectError{
		code:    code,
		message: code.Message(),
		cause:   err,
	}
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" when a cause is set.
func (e *ConnectError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *ConnectError) Code() ErrorCode {
	return e.code
}

// Family always returns FamilyConnectivity.
func (e *ConnectError) Family() ErrorFamily {
	return FamilyConnectivity
}

// Message returns the resolved message.
func (e *ConnectError) Message() string {
	return e.message
}

// Unwrap returns the underlying cause for errors.Is / errors.As chains.
func (e *ConnectError) Unwrap() error {
	return e.cause
}
