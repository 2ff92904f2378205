package errors

import "fmt"

// ResourceError reports that the server understood the request but refused
// it for the addressed resource: the resource does not exist, or the
// operation would create a duplicate.
type ResourceError struct {
	code    ErrorCode
	message string
	cause   error
}

// NewResource creates a ResourceError carrying the code's default message.
func NewResource(code ErrorCode) *ResourceError {
	return &ResourceError{
		code:    code,
		message: code.Message(),
	}
}

// NewResourceMessage creates a ResourceError with the given message. An
// empty message falls back to the code's default. Duplicate errors use this
// to surface the developer message extracted from the response body.
func NewResourceMessage(code ErrorCode, message string) *ResourceError {
	if message == "" {
		message = code.Message()
	}
	return &ResourceError{
		code:    code,
		message: message,
	}
}

// WrapResource creates a ResourceError with the code's default message and
// the underlying cause attached. Returns nil if err is nil.
func WrapResource(err error, code ErrorCode) *ResourceError {
	if err == nil {
		return nil
	}
	return &ResourceError{
		code:    code,
		message: code.Message(),
		cause:   err,
	}
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" when a cause is set.
func (e *ResourceError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *ResourceError) Code() ErrorCode {
	return e.code
}

// Family always returns FamilyResource.
func (e *ResourceError) Family() ErrorFamily {
	return FamilyResource
}

// Message returns the resolved message.
func (e *ResourceError) Message() string {
	return e.message
}

// Unwrap returns the underlying cause for errors.Is / errors.As chains.
func (e *ResourceError) Unwrap() error {
	return e.cause
}
