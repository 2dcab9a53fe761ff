// Package coret is Core-T: the timer/encoder producer side of MCU-B's
// dual-core split. It only ever enqueues events for Core-D (package cored)
// to consume; it never touches the serial link or SharedState directly,
// matching the source's Core1.cpp boundary.
package coret

import (
	"time"

	"carrt/errcode"
	"carrt/event"
)

// RequestKind is the small closed set of requests Core-D can post across
// to Core-T, mirroring EventForCore1's {kind, param} pair in the source
// (there only kBNO055InitDelay is ever sent).
type RequestKind int

const (
	RequestBNO055InitDelay RequestKind = iota
)

// Request is one cross-core ask, queued Core-D -> Core-T.
type Request struct {
	Kind   RequestKind
	WaitMs int
}

// Launcher owns the Core-D -> Core-T request channel and the handshake used
// at bring-up. The channel is bounded and non-blocking on the producer
// side: the source notes posts are rare enough that a full queue signals a
// deeper fault, so PostDelayed returns an error rather than blocking.
type Launcher struct {
	requests chan Request
	ready    chan error
}

// NewLauncher builds a Launcher with capacity matching the source's
// SIZE_OF_CORE0_TO_CORE1_QUEUE sizing intent (small, rarely used).
func NewLauncher(capacity int) *Launcher {
	if capacity <= 0 {
		capacity = 4
	}
	return &Launcher{
		requests: make(chan Request, capacity),
		ready:    make(chan error, 1),
	}
}

// Requests is consumed by Core-T's main loop.
func (l *Launcher) Requests() <-chan Request { return l.requests }

// PostDelayed posts a one-shot delayed request from Core-D to Core-T. It
// never blocks: a full channel is reported as a structured error, the Go
// analogue of the source throwing CarrtError on queue_try_add failure.
func (l *Launcher) PostDelayed(kind RequestKind, waitMs int) error {
	select {
	case l.requests <- Request{Kind: kind, WaitMs: waitMs}:
		return nil
	default:
		return errcode.NewCarrtError(
			errcode.MakePicoErrorID(errcode.ModuleMulticore, 1, 2),
			true, "coret: failed to post request, Core-T queue full")
	}
}

// SignalReady and SignalFailed correspond to the CORE1_SUCCESS/
// CORE1_FAILURE handshake multicore_fifo_push_blocking sends back to
// Core-D once the repeating timer is armed.
func (l *Launcher) SignalReady()       { l.ready <- nil }
func (l *Launcher) SignalFailed(err error) { l.ready <- err }

// WaitReady blocks Core-D's bring-up until Core-T reports success or
// failure, exactly as Core1::launchCore1 blocks on multicore_fifo_pop_blocking.
func (l *Launcher) WaitReady(timeout time.Duration) error {
	select {
	case err := <-l.ready:
		return err
	case <-time.After(timeout):
		return errcode.NewCarrtError(
			errcode.MakePicoErrorID(errcode.ModuleMulticore, 1, 1),
			true, "coret: timed out waiting for Core-T handshake")
	}
}
