package event

import "sync/atomic"

// Queue is the dual-priority event queue described in spec §4.4: two FIFO
// rings of bounded depth, strict High-before-Low pop ordering, and a sticky,
// non-destructive overflow flag. Safe to call Enqueue from multiple
// producer goroutines (standing in for ISR context) concurrently with a
// single consumer goroutine calling Pop.
type Queue struct {
	high, low *ring
	overflow  atomic.Bool
}

// NewQueue returns a queue whose two rings each hold capacity events.
// capacity <= 0 defaults to 24, per spec §4.4.
func NewQueue(capacity int) *Queue {
	return &Queue{high: newRing(capacity), low: newRing(capacity)}
}

// Enqueue stores ev on the given priority's ring. It never blocks. On
// overflow it sets the sticky flag and drops only ev; all previously
// queued events are unaffected.
func (q *Queue) Enqueue(ev Event, prio Priority) bool {
	r := q.low
	if prio == High {
		r = q.high
	}
	if r.push(ev) {
		return true
	}
	q.overflow.Store(true)
	return false
}

// Pop returns the oldest High event if any; otherwise the oldest Low event;
// otherwise (false, zero Event).
func (q *Queue) Pop() (Event, bool) {
	if ev, ok := q.high.pop(); ok {
		return ev, true
	}
	return q.low.pop()
}

// Len returns the total number of events across both priorities.
func (q *Queue) Len() int { return q.high.len() + q.low.len() }

// Empty reports whether both rings are empty.
func (q *Queue) Empty() bool { return q.Len() == 0 }

// Overflowed reports the sticky overflow flag.
func (q *Queue) Overflowed() bool { return q.overflow.Load() }

// ResetOverflow clears the sticky overflow flag. The dispatcher calls this
// after observing and reporting it.
func (q *Queue) ResetOverflow() { q.overflow.Store(false) }
