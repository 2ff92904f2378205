package rest

import "github.com/binaryking/mifosx-api/errors"

// Context describes the operation that produced a fault: which not-found
// code applies and whether the operation may surface resource errors at
// all. Contexts are declared once per operation at definition time; they
// are never chosen dynamically.
type Context struct {
	// NotFound is the code an HTTP 404 classifies to. Unset for
	// collection operations.
	NotFound errors.ErrorCode

	// Collection marks operations that only surface connectivity-class
	// codes. Duplicate and not-found classification is skipped for them.
	Collection bool
}

// Resource declares the context of a single-resource operation: it may
// surface Duplicate and the given not-found code in addition to the
// connectivity codes.
func Resource(notFound errors.ErrorCode) Context {
	return Context{NotFound: notFound}
}

// Collection declares the context of a collection operation: connectivity
// codes only.
func Collection() Context {
	return Context{Collection: true}
}
