// Package corestate implements the cross-core atomic facility and the flat
// shared-state record described in spec §4.8, grounded on
// original_source/source/pico/utils/CoreAtomic.hpp: every CAtomic instance
// shares one process-wide critical section rather than a per-instance lock,
// because the set of atomics is small and each operation touches one word.
package corestate

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// globalCritSec is the single critical section shared by every CAtomic
// instance, mirroring CoreAtomic::Internal::mCritSec in the source. There is
// deliberately one lock for the whole facility, not one per instance.
var globalCritSec sync.Mutex

// CAtomic is a generic integral atomic. Unlike sync/atomic's per-type
// wrappers, all CAtomic values in the process share globalCritSec, matching
// the source's single-critical-section design.
type CAtomic[T constraints.Integer] struct {
	v T
}

// NewCAtomic returns a CAtomic initialized to v.
func NewCAtomic[T constraints.Integer](v T) *CAtomic[T] { return &CAtomic[T]{v: v} }

// IsAlwaysLockFree mirrors CAtomic<T>::is_always_lock_free, which is always
// false for this facility: every operation takes the shared critical
// section.
func (a *CAtomic[T]) IsAlwaysLockFree() bool { return false }

func (a *CAtomic[T]) Load() T {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	return a.v
}

func (a *CAtomic[T]) Store(v T) {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	a.v = v
}

// Exchange stores v and returns the prior value.
func (a *CAtomic[T]) Exchange(v T) T {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	prior := a.v
	a.v = v
	return prior
}

// CompareExchange stores newV iff the current value equals old, reporting
// whether the swap happened.
func (a *CAtomic[T]) CompareExchange(old, newV T) bool {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	if a.v != old {
		return false
	}
	a.v = newV
	return true
}

// FetchAdd adds delta and returns the prior value.
func (a *CAtomic[T]) FetchAdd(delta T) T {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	prior := a.v
	a.v += delta
	return prior
}

// FetchSub subtracts delta and returns the prior value.
func (a *CAtomic[T]) FetchSub(delta T) T {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	prior := a.v
	a.v -= delta
	return prior
}

// FetchAnd, FetchOr, FetchXor apply a bitwise op and return the prior value.
func (a *CAtomic[T]) FetchAnd(mask T) T {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	prior := a.v
	a.v &= mask
	return prior
}

func (a *CAtomic[T]) FetchOr(mask T) T {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	prior := a.v
	a.v |= mask
	return prior
}

func (a *CAtomic[T]) FetchXor(mask T) T {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	prior := a.v
	a.v ^= mask
	return prior
}

// Increment and Decrement return the prior value, matching the source's
// pre-increment-returns-old convention used throughout PicoState's setters.
func (a *CAtomic[T]) Increment() T { return a.FetchAdd(1) }
func (a *CAtomic[T]) Decrement() T { return a.FetchSub(1) }

// AtomicBool is the one non-integral instantiation the source actually uses
// (CAtomic<bool>, for calibrationInProgress). Go's generic arithmetic
// constraints don't admit bool, so it gets its own tiny type sharing the
// same globalCritSec rather than forcing CAtomic[T] to support a type it
// can't add/subtract.
type AtomicBool struct {
	v bool
}

func NewAtomicBool(v bool) *AtomicBool { return &AtomicBool{v: v} }

func (a *AtomicBool) Load() bool {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	return a.v
}

func (a *AtomicBool) Store(v bool) {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	a.v = v
}

// Exchange stores v and returns the prior value, mirroring
// PicoState::calibrationInProgress(bool)->bool.
func (a *AtomicBool) Exchange(v bool) bool {
	globalCritSec.Lock()
	defer globalCritSec.Unlock()
	prior := a.v
	a.v = v
	return prior
}
