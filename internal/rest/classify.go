package rest

import (
	"encoding/json"
	"net/http"

	"github.com/binaryking/mifosx-api/errors"
	"github.com/binaryking/mifosx-api/transport"
)

// Classify deterministically maps a non-success transport outcome onto one
// error code. First match wins:
//
//  1. network fault: NotConnected
//  2. conversion fault: InvalidAuthenticationToken (the platform reports
//     unconvertible payloads this way; preserved as observed)
//  3. HTTP 403 with a parseable developer message: Duplicate, carrying the
//     extracted message
//  4. HTTP 401: InvalidAuthenticationToken
//  5. HTTP 404: the context's not-found code
//  6. anything else, including a 403 whose body does not parse: Unknown
//
// Steps 3 and 5 apply only to single-resource contexts; collection
// operations surface connectivity codes only. Body parsing failures are
// swallowed and treated as no match. The returned message is empty unless
// a Duplicate message was extracted.
func Classify(fault *transport.Fault, opCtx Context) (errors.ErrorCode, string) {
	switch fault.Kind {
	case transport.KindNetwork:
		return errors.NotConnected, ""
	case transport.KindConversion:
		return errors.InvalidAuthenticationToken, ""
	}

	switch fault.Status {
	case http.StatusForbidden:
		if !opCtx.Collection {
			if msg := duplicateMessage(fault.Body); msg != "" {
				return errors.Duplicate, msg
			}
		}
	case http.StatusUnauthorized:
		return errors.InvalidAuthenticationToken, ""
	case http.StatusNotFound:
		if !opCtx.Collection && opCtx.NotFound != "" {
			return opCtx.NotFound, ""
		}
	}
	return errors.Unknown, ""
}

// duplicateError is the platform's conflict wire shape. Only the first
// element's developerMessage is consumed.
type duplicateError struct {
	Errors []struct {
		DeveloperMessage string `json:"developerMessage"`
	} `json:"errors"`
}

func duplicateMessage(body []byte) string {
	var parsed duplicateError
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if len(parsed.Errors) == 0 {
		return ""
	}
	return parsed.Errors[0].DeveloperMessage
}
