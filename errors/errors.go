package errors

// SDKError is the common surface of the two error families. It extends the
// standard error interface with the classified code and the resolved
// message, and supports errors.Is / errors.As / errors.Unwrap chains.
type SDKError interface {
	error

	// Code returns the error code identifying the failure condition.
	Code() ErrorCode

	// Family returns the family the error belongs to.
	Family() ErrorFamily

	// Message returns the resolved human-readable message.
	Message() string

	// Unwrap returns the underlying cause, if any.
	Unwrap() error
}
