package errors

// ErrorCode identifies a specific failure condition reported by the SDK.
// Error codes are string-based for debuggability and natural JSON
// serialization. The set of codes is closed: every code declared below has
// a default message and a family assignment in family.go.
type ErrorCode string

const (
	// Connectivity codes.

	// NotConnected indicates the MifosX server could not be reached at the
	// network level. No HTTP response was received.
	NotConnected ErrorCode = "NOT_CONNECTED"

	// InvalidAuthenticationToken indicates the server rejected the
	// authentication key, or the response could not be converted at all.
	// The latter mapping mirrors the platform's observed behavior: an
	// unconvertible response is reported as an authentication failure.
	InvalidAuthenticationToken ErrorCode = "INVALID_AUTHENTICATION_TOKEN"

	// Unknown indicates a failure the SDK could not classify, such as an
	// unexpected HTTP status.
	Unknown ErrorCode = "UNKNOWN"

	// Resource codes.

	// Duplicate indicates the server refused the operation because an
	// equivalent resource already exists. The server-provided developer
	// message replaces the default message when available.
	Duplicate ErrorCode = "DUPLICATE"

	// ClientNotFound indicates no client exists with the given ID.
	ClientNotFound ErrorCode = "CLIENT_NOT_FOUND"

	// ClientOrIdentifierNotFound indicates the client or the addressed
	// client identifier does not exist.
	ClientOrIdentifierNotFound ErrorCode = "CLIENT_OR_IDENTIFIER_NOT_FOUND"

	// GroupNotFound indicates no group exists with the given ID.
	GroupNotFound ErrorCode = "GROUP_NOT_FOUND"

	// GroupOrRoleNotFound indicates the group or the addressed group role
	// does not exist.
	GroupOrRoleNotFound ErrorCode = "GROUP_OR_ROLE_NOT_FOUND"
)

// defaultMessages maps every code to its default human-readable message.
// Duplicate errors usually override the default with the developer message
// extracted from the response body.
var defaultMessages = map[ErrorCode]string{
	NotConnected:               "Cannot connect to the MifosX server, please check the server URL and your network connection.",
	InvalidAuthenticationToken: "The authentication token is invalid, please check the username and password.",
	Unknown:                    "An unknown error occurred while communicating with the MifosX server.",
	Duplicate:                  "A similar resource already exists on the server.",
	ClientNotFound:             "No client was found with the given ID.",
	ClientOrIdentifierNotFound: "No client or client identifier was found with the given IDs.",
	GroupNotFound:              "No group was found with the given ID.",
	GroupOrRoleNotFound:        "No group or group role was found with the given IDs.",
}

// Message returns the default message for the code. Unregistered codes fall
// back to the Unknown message.
func (c ErrorCode) Message() string {
	if msg, ok := defaultMessages[c]; ok {
		return msg
	}
	return defaultMessages[Unknown]
}

// String returns the canonical string form of the code.
func (c ErrorCode) String() string {
	return string(c)
}
