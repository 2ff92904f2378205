package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// Convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns Unknown if the error is nil or not an SDKError.
//
// Example:
//
//	if errors.GetCode(err) == errors.ClientNotFound {
//	    // handle the missing client
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return Unknown
	}

	var sdkErr SDKError
	if stderrors.As(err, &sdkErr) {
		return sdkErr.Code()
	}

	return Unknown
}

// IsConnect reports whether err is (or wraps) a ConnectError.
func IsConnect(err error) bool {
	var ce *ConnectError
	return stderrors.As(err, &ce)
}

// IsResource reports whether err is (or wraps) a ResourceError.
func IsResource(err error) bool {
	var re *ResourceError
	return stderrors.As(err, &re)
}

// IsNotFound reports whether err carries one of the not-found codes.
func IsNotFound(err error) bool {
	switch GetCode(err) {
	case ClientNotFound, ClientOrIdentifierNotFound, GroupNotFound, GroupOrRoleNotFound:
		return true
	}
	return false
}
