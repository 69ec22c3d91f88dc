package devicekit

import "github.com/voicepod/devicekit-go/internal/state"

// DeviceState is the device operating mode.
type DeviceState = state.DeviceState

// Machine validates and applies device state transitions. See the state
// machine methods for the transition rules; FatalError is absorbing.
type Machine = state.Machine

// StateListener receives every committed state change with the old and new
// state.
type StateListener = state.Listener

// Device operating modes.
const (
	StateUnknown         = state.StateUnknown
	StateStarting        = state.StateStarting
	StateWifiConfiguring = state.StateWifiConfiguring
	StateIdle            = state.StateIdle
	StateConnecting      = state.StateConnecting
	StateListening       = state.StateListening
	StateSpeaking        = state.StateSpeaking
	StateUpgrading       = state.StateUpgrading
	StateActivating      = state.StateActivating
	StateAudioTesting    = state.StateAudioTesting
	StateFatalError      = state.StateFatalError
)
