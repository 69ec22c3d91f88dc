package state

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestMachine() *Machine {
	return NewMachine(slog.Default())
}

// force puts the machine into a state directly, bypassing the table. Test
// helper only; production code must go through TransitionTo.
func (m *Machine) force(s DeviceState) {
	m.current.Store(int32(s))
}

func TestMachineStartsUnknown(t *testing.T) {
	m := newTestMachine()

	require.Equal(t, StateUnknown, m.CurrentState())
}

func TestSameStateIsNoOp(t *testing.T) {
	all := []DeviceState{
		StateUnknown, StateStarting, StateWifiConfiguring, StateIdle,
		StateConnecting, StateListening, StateSpeaking, StateUpgrading,
		StateActivating, StateAudioTesting, StateFatalError,
	}

	for _, s := range all {
		t.Run(s.String(), func(t *testing.T) {
			m := newTestMachine()
			m.force(s)

			fired := false
			m.AddListener(func(_, _ DeviceState) { fired = true })

			require.True(t, m.TransitionTo(s))
			require.Equal(t, s, m.CurrentState())
			require.False(t, fired, "same-state no-op must not notify")
		})
	}
}

func TestIllegalTransitionsLeaveStateUnchanged(t *testing.T) {
	all := []DeviceState{
		StateUnknown, StateStarting, StateWifiConfiguring, StateIdle,
		StateConnecting, StateListening, StateSpeaking, StateUpgrading,
		StateActivating, StateAudioTesting, StateFatalError,
	}

	for _, from := range all {
		for _, to := range all {
			if from == to || ValidTransition(from, to) {
				continue
			}

			m := newTestMachine()
			m.force(from)

			require.False(t, m.TransitionTo(to), "%s -> %s must fail", from, to)
			require.Equal(t, from, m.CurrentState(), "%s -> %s must not move", from, to)
		}
	}
}

func TestFatalErrorIsAbsorbing(t *testing.T) {
	all := []DeviceState{
		StateUnknown, StateStarting, StateWifiConfiguring, StateIdle,
		StateConnecting, StateListening, StateSpeaking, StateUpgrading,
		StateActivating, StateAudioTesting,
	}

	m := newTestMachine()
	m.force(StateFatalError)

	for _, to := range all {
		require.False(t, m.CanTransitionTo(to))
		require.False(t, m.TransitionTo(to))
		require.Equal(t, StateFatalError, m.CurrentState())
	}

	// Same state is still a permitted no-op.
	require.True(t, m.TransitionTo(StateFatalError))
}

func TestTransitionTable(t *testing.T) {
	legal := []struct{ from, to DeviceState }{
		{StateUnknown, StateStarting},
		{StateStarting, StateWifiConfiguring},
		{StateStarting, StateActivating},
		{StateWifiConfiguring, StateActivating},
		{StateWifiConfiguring, StateAudioTesting},
		{StateAudioTesting, StateWifiConfiguring},
		{StateActivating, StateUpgrading},
		{StateActivating, StateIdle},
		{StateActivating, StateWifiConfiguring},
		{StateUpgrading, StateIdle},
		{StateUpgrading, StateActivating},
		{StateIdle, StateConnecting},
		{StateIdle, StateListening},
		{StateIdle, StateSpeaking},
		{StateIdle, StateActivating},
		{StateIdle, StateUpgrading},
		{StateIdle, StateWifiConfiguring},
		{StateConnecting, StateIdle},
		{StateConnecting, StateListening},
		{StateListening, StateSpeaking},
		{StateListening, StateIdle},
		{StateSpeaking, StateListening},
		{StateSpeaking, StateIdle},
	}

	for _, tc := range legal {
		require.True(t, ValidTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	// Count check: exactly these pairs and nothing else (excluding identity).
	count := 0

	for from := StateUnknown; from <= StateFatalError; from++ {
		for to := StateUnknown; to <= StateFatalError; to++ {
			if from != to && ValidTransition(from, to) {
				count++
			}
		}
	}

	require.Equal(t, len(legal), count)
}

func TestSuccessfulTransitionNotifiesInOrder(t *testing.T) {
	m := newTestMachine()

	var calls []string

	m.AddListener(func(old, new DeviceState) {
		calls = append(calls, "a:"+old.String()+"->"+new.String())
	})
	m.AddListener(func(old, new DeviceState) {
		calls = append(calls, "b:"+old.String()+"->"+new.String())
	})

	require.True(t, m.TransitionTo(StateStarting))
	require.Equal(t, []string{"a:unknown->starting", "b:unknown->starting"}, calls)
}

func TestRemoveListenerStopsNotifications(t *testing.T) {
	m := newTestMachine()

	var calls []string

	first := m.AddListener(func(_, _ DeviceState) { calls = append(calls, "first") })
	m.AddListener(func(_, _ DeviceState) { calls = append(calls, "second") })
	m.AddListener(func(_, _ DeviceState) { calls = append(calls, "third") })

	m.RemoveListener(first)
	// Removing an unknown id is a no-op.
	m.RemoveListener(9999)

	require.True(t, m.TransitionTo(StateStarting))
	require.Equal(t, []string{"second", "third"}, calls)
}

func TestListenerMayReenterMachine(t *testing.T) {
	m := newTestMachine()

	var id int

	id = m.AddListener(func(_, new DeviceState) {
		// Re-entering the machine from a listener must not deadlock.
		m.RemoveListener(id)
		require.Equal(t, new, m.CurrentState())
	})

	require.True(t, m.TransitionTo(StateStarting))
	require.True(t, m.TransitionTo(StateActivating))
}

func TestCurrentStateConcurrentReads(t *testing.T) {
	m := newTestMachine()

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 1000 {
				_ = m.CurrentState()
				_ = m.CanTransitionTo(StateIdle)
			}
		}()
	}

	require.True(t, m.TransitionTo(StateStarting))
	require.True(t, m.TransitionTo(StateActivating))
	require.True(t, m.TransitionTo(StateIdle))
	wg.Wait()

	require.Equal(t, StateIdle, m.CurrentState())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "unknown", StateUnknown.String())
	require.Equal(t, "wifi_configuring", StateWifiConfiguring.String())
	require.Equal(t, "fatal_error", StateFatalError.String())
	require.Equal(t, "invalid_state", DeviceState(42).String())
}
