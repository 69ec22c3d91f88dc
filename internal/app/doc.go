// Package app implements the single-threaded application scheduler.
//
// All tool side effects are marshaled onto exactly one worker goroutine: a
// queue with a single consumer. There is deliberately no cancellation or
// timeout for a running job — a slow tool occupies the worker and everything
// queued behind it waits, which is the device's backpressure point.
package app
