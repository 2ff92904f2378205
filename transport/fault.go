package transport

import (
	"errors"
	"fmt"
)

// Kind discriminates the three non-success outcomes of a remote call.
type Kind int

const (
	// KindNetwork means no HTTP response was received at all.
	KindNetwork Kind = iota

	// KindConversion means a payload could not be converted to or from its
	// wire form.
	KindConversion

	// KindHTTP means the server answered with a non-2xx status.
	KindHTTP
)

// String returns the kind's name for log and error output.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindConversion:
		return "conversion"
	case KindHTTP:
		return "http"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Fault is the non-success outcome of one remote call. Status and Body are
// populated only for KindHTTP; Err carries the underlying cause for
// KindNetwork and KindConversion.
type Fault struct {
	Kind   Kind
	Status int
	Body   []byte
	Err    error
}

// NetworkFault wraps a network-level failure: the request never produced an
// HTTP response.
func NetworkFault(err error) *Fault {
	return &Fault{Kind: KindNetwork, Err: err}
}

// ConversionFault wraps a payload conversion failure.
func ConversionFault(err error) *Fault {
	return &Fault{Kind: KindConversion, Err: err}
}

// HTTPFault records a non-2xx response together with its raw body.
func HTTPFault(status int, body []byte) *Fault {
	return &Fault{Kind: KindHTTP, Status: status, Body: body}
}

// Error implements the error interface.
func (f *Fault) Error() string {
	switch f.Kind {
	case KindHTTP:
		return fmt.Sprintf("transport: http status %d", f.Status)
	default:
		if f.Err != nil {
			return fmt.Sprintf("transport: %s fault: %v", f.Kind, f.Err)
		}
		return fmt.Sprintf("transport: %s fault", f.Kind)
	}
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As.
func (f *Fault) Unwrap() error {
	return f.Err
}

// AsFault extracts a *Fault from err's chain. The second return value
// reports whether one was found.
func AsFault(err error) (*Fault, bool) {
	if err == nil {
		return nil, false
	}
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
