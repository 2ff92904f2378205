// Package rest turns transport faults into the SDK's typed errors.
//
// Classification is a pure function over the fault and the operation's
// resource context; raising picks the error family from the code's fixed
// family table. Each fault is classified exactly once, at the point of the
// failing call, and nothing is retried or recovered here.
package rest
