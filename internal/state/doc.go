// Package state implements the device operating-mode state machine.
//
// The machine owns the current DeviceState, validates transitions against a
// fixed table, and notifies registered listeners synchronously on every
// committed change. Reads are lock-free; the listener list is guarded by a
// short-held mutex and callbacks are invoked outside of it, so a listener may
// safely re-enter the machine.
package state
