package devicekit

import "github.com/voicepod/devicekit-go/internal/errors"

// Re-export error types from internal package

// UnknownToolError indicates a tools/call named a tool that is not registered.
type UnknownToolError = errors.UnknownToolError

// InvalidArgumentError indicates a tool argument failed validation.
type InvalidArgumentError = errors.InvalidArgumentError

// PayloadLimitError indicates a tools/list page could not make progress under
// the payload budget.
type PayloadLimitError = errors.PayloadLimitError

// MethodNotImplementedError indicates an unrecognized protocol method.
type MethodNotImplementedError = errors.MethodNotImplementedError

// Re-export sentinel errors from internal package.
var (
	// ErrRegistryFrozen indicates a tool registration after the registry
	// was sealed for protocol traffic.
	ErrRegistryFrozen = errors.ErrRegistryFrozen

	// ErrSchedulerStopped indicates a job was scheduled after the
	// application scheduler shut down.
	ErrSchedulerStopped = errors.ErrSchedulerStopped

	// ErrSettingsClosed indicates the settings store has been closed.
	ErrSettingsClosed = errors.ErrSettingsClosed

	// ErrOperationUnsupported indicates the board does not implement the
	// requested lifecycle operation.
	ErrOperationUnsupported = errors.ErrOperationUnsupported
)
