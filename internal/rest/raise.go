package rest

import (
	"github.com/binaryking/mifosx-api/errors"
	"github.com/binaryking/mifosx-api/transport"
)

// Raise converts a failed transport outcome into the typed error surfaced
// to the caller. The classified code's family decides the concrete type;
// the fault is attached as the cause on connectivity errors. An error that
// is not a *Fault is treated as a network-level failure.
//
// Raise never returns nil for a non-nil err: every fault reaches the
// caller as exactly one ConnectError or ResourceError.
func Raise(err error, opCtx Context) error {
	if err == nil {
		return nil
	}

	fault, ok := transport.AsFault(err)
	if !ok {
		fault = transport.NetworkFault(err)
	}

	code, message := Classify(fault, opCtx)
	if errors.Family(code) == errors.FamilyResource {
		return errors.NewResourceMessage(code, message)
	}
	return errors.WrapConnect(fault, code)
}
