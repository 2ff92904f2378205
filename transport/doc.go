// Package transport models the outcome of one remote call against the
// MifosX platform and provides the HTTP implementation used by the service
// facades.
//
// A call either succeeds with a raw JSON payload or fails with a *Fault
// describing one of three conditions: the server was unreachable
// (KindNetwork), the payload could not be converted (KindConversion), or
// the server answered with a non-2xx status (KindHTTP, carrying the status
// and the raw body). Faults are produced once per call and never retried.
//
// The Sender interface is the seam between the facades and the wire:
// production code uses RESTSender, tests substitute a func-backed double.
package transport
