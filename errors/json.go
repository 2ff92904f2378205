package errors

import "encoding/json"

// ErrorResponse is the flat, serializable representation of an SDK error.
// The cause chain is intentionally excluded: it may carry raw response
// bodies or transport details that do not belong in application output.
type ErrorResponse struct {
	// Code is the error code identifying the failure condition.
	Code string `json:"code"`

	// Family is the error family the code belongs to.
	Family string `json:"family"`

	// Message is the resolved human-readable message.
	Message string `json:"message"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON
// serialization. Returns nil if err is nil.
//
// For SDKError instances the classified code, family, and resolved message
// are used. Other errors are reported as Unknown connectivity failures with
// their Error() string as the message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	code := GetCode(err)
	family := Family(code)

	message := err.Error()
	var sdkErr SDKError
	if As(err, &sdkErr) {
		message = sdkErr.Message()
		family = sdkErr.Family()
	}

	return &ErrorResponse{
		Code:    string(code),
		Family:  string(family),
		Message: message,
	}
}

// MarshalJSON implements json.Marshaler so ConnectError values can be
// embedded in response structs directly.
func (e *ConnectError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(e))
}

// MarshalJSON implements json.Marshaler so ResourceError values can be
// embedded in response structs directly.
func (e *ResourceError) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToJSON(e))
}
