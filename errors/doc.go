// Package errors defines the typed error surface of the MifosX SDK.
//
// Every fault reported by the SDK is one of two families:
//
//   - ConnectError: the server could not be reached, the authentication
//     token was rejected, or the failure could not be classified.
//   - ResourceError: the addressed resource does not exist, or the
//     operation would create a duplicate.
//
// Both families carry exactly one ErrorCode from the closed registry in
// codes.go together with a resolved human-readable message. Which family a
// code belongs to is fixed by the table in family.go; it is a property of
// the code, never a runtime decision.
//
// Callers can branch on the family or on the code:
//
//	page, err := clients.List(ctx, nil)
//	if err != nil {
//	    var ce *errors.ConnectError
//	    if errors.As(err, &ce) && ce.Code() == errors.NotConnected {
//	        // offline, queue the request
//	    }
//	}
package errors
