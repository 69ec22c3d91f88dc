// Package board declares the capability interfaces a device board implements.
//
// The device kit never reaches for process-wide singletons: everything it
// needs from the hardware is injected once at startup as a Capabilities set.
// Every capability is optional — a nil entry simply omits the tools that
// depend on it, it is never an error.
package board
