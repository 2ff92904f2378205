// Package codec implements the wire-format discipline shared by the entity
// codecs.
//
// The write side is declarative: each entity lists its fields as rules
// (required, optional, length-capped) plus cross-field checks that run
// before any output is produced. Validation failures surface as
// *ValidationError, raised before a network call is ever attempted.
//
// The read side is lenient and presence-driven: server responses are
// decoded into an Object whose accessors report absence instead of
// failing, because server output is trusted. The single fatal read-side
// condition is a malformed date array.
package codec
