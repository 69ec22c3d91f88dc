package state

// DeviceState is the device operating mode.
type DeviceState int32

// Device operating modes.
const (
	StateUnknown DeviceState = iota
	StateStarting
	StateWifiConfiguring
	StateIdle
	StateConnecting
	StateListening
	StateSpeaking
	StateUpgrading
	StateActivating
	StateAudioTesting
	StateFatalError
)

var stateNames = [...]string{
	"unknown",
	"starting",
	"wifi_configuring",
	"idle",
	"connecting",
	"listening",
	"speaking",
	"upgrading",
	"activating",
	"audio_testing",
	"fatal_error",
}

// String returns the state's wire/log name.
func (s DeviceState) String() string {
	if s < StateUnknown || s > StateFatalError {
		return "invalid_state"
	}

	return stateNames[s]
}

// transitions is the legal one-step transition table. A state not present as
// a target here is unreachable from the key state. Same-state changes are
// handled as no-ops before the table is consulted. FatalError is absorbing
// and intentionally has no entry.
var transitions = map[DeviceState][]DeviceState{
	StateUnknown:         {StateStarting},
	StateStarting:        {StateWifiConfiguring, StateActivating},
	StateWifiConfiguring: {StateActivating, StateAudioTesting},
	StateAudioTesting:    {StateWifiConfiguring},
	StateActivating:      {StateUpgrading, StateIdle, StateWifiConfiguring},
	StateUpgrading:       {StateIdle, StateActivating},
	StateIdle: {
		StateConnecting,
		StateListening,
		StateSpeaking,
		StateActivating,
		StateUpgrading,
		StateWifiConfiguring,
	},
	StateConnecting: {StateIdle, StateListening},
	StateListening:  {StateSpeaking, StateIdle},
	StateSpeaking:   {StateListening, StateIdle},
}

// ValidTransition reports whether from -> to is legal. Same-state is always
// legal (a no-op, not a transition).
func ValidTransition(from, to DeviceState) bool {
	if from == to {
		return true
	}

	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}

	return false
}
