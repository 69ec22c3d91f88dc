package state

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Listener receives every committed state change with the old and new state.
type Listener func(old, new DeviceState)

type listenerEntry struct {
	id int
	fn Listener
}

// Machine validates and applies device state transitions.
//
// Current state reads and writes go through a single atomic word, so
// CurrentState is safe to call from any goroutine without locking. The
// listener list is mutated under mu; notification snapshots the callbacks and
// invokes them outside the lock.
type Machine struct {
	log     *slog.Logger
	current atomic.Int32

	mu        sync.Mutex
	listeners []listenerEntry
	nextID    int
}

// NewMachine creates a machine in StateUnknown.
func NewMachine(log *slog.Logger) *Machine {
	return &Machine{
		log:    log.With("component", "state"),
		nextID: 1,
	}
}

// CurrentState returns the live state. Non-blocking, callable from any
// goroutine.
func (m *Machine) CurrentState() DeviceState {
	return DeviceState(m.current.Load())
}

// CanTransitionTo reports whether a TransitionTo(target) would succeed right
// now. Pure predicate, no side effects.
func (m *Machine) CanTransitionTo(target DeviceState) bool {
	return ValidTransition(m.CurrentState(), target)
}

// TransitionTo moves the machine to target.
//
// A same-state target succeeds as a no-op and fires no listeners. An illegal
// target returns false, logs a warning, and leaves the state untouched. On
// success the new state is stored first, then every listener is invoked
// synchronously in registration order with (old, new).
func (m *Machine) TransitionTo(target DeviceState) bool {
	old := m.CurrentState()

	if old == target {
		return true
	}

	if !ValidTransition(old, target) {
		m.log.Warn("Invalid state transition", "from", old.String(), "to", target.String())

		return false
	}

	m.current.Store(int32(target))
	m.log.Info("State changed", "from", old.String(), "to", target.String())

	m.notify(old, target)

	return true
}

// AddListener registers a callback for committed transitions and returns its
// id. Ids are monotonically assigned and never reused.
func (m *Machine) AddListener(fn Listener) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners = append(m.listeners, listenerEntry{id: id, fn: fn})

	return id
}

// RemoveListener unregisters the listener with the given id. Unknown ids are
// a no-op.
func (m *Machine) RemoveListener(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, l := range m.listeners {
		if l.id == id {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)

			return
		}
	}
}

// notify invokes a snapshot of the listener callbacks outside the lock so a
// listener re-entering Add/Remove/TransitionTo cannot deadlock against us.
func (m *Machine) notify(old, new DeviceState) {
	m.mu.Lock()

	snapshot := make([]Listener, 0, len(m.listeners))
	for _, l := range m.listeners {
		snapshot = append(snapshot, l.fn)
	}

	m.mu.Unlock()

	for _, fn := range snapshot {
		fn(old, new)
	}
}
