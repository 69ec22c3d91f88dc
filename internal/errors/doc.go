// Package errors defines error types for the device kit.
//
// This package provides structured error types for protocol, registry, and
// state-machine failures. All error types support error unwrapping and can
// be checked using errors.Is and errors.As. None of these errors are fatal:
// protocol errors are reported back to the caller as JSON-RPC error objects,
// state-machine errors leave the machine untouched.
package errors
