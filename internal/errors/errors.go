package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrRegistryFrozen indicates a tool registration after the registry
	// was sealed for protocol traffic.
	ErrRegistryFrozen = errors.New("registry frozen: register tools before serving")

	// ErrSchedulerStopped indicates a job was scheduled after the
	// application scheduler shut down.
	ErrSchedulerStopped = errors.New("scheduler stopped")

	// ErrSettingsClosed indicates the settings store has been closed.
	ErrSettingsClosed = errors.New("settings store closed")

	// ErrOperationUnsupported indicates the board does not implement the
	// requested lifecycle operation.
	ErrOperationUnsupported = errors.New("operation not supported by this board")
)

// UnknownToolError indicates a tools/call named a tool that is not registered.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return "Unknown tool: " + e.Name
}

// InvalidArgumentError indicates a tool argument failed validation.
//
// Missing reports whether the argument was absent (or type-mismatched with no
// default) rather than out of range.
type InvalidArgumentError struct {
	Name    string
	Missing bool
}

func (e *InvalidArgumentError) Error() string {
	if e.Missing {
		return "Missing valid argument: " + e.Name
	}

	return "Invalid value for argument: " + e.Name
}

// PayloadLimitError indicates a tools/list page could not make progress
// because the first candidate tool alone exceeds the payload budget.
type PayloadLimitError struct {
	Tool string
}

func (e *PayloadLimitError) Error() string {
	return fmt.Sprintf("Failed to add tool %s because of payload size limit", e.Tool)
}

// MethodNotImplementedError indicates an unrecognized protocol method.
type MethodNotImplementedError struct {
	Method string
}

func (e *MethodNotImplementedError) Error() string {
	return "Method not implemented: " + e.Method
}
