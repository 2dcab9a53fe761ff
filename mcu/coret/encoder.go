package coret

import (
	"time"

	"carrt/event"
	"carrt/halio"
)

// Side identifies which wheel's encoder fired.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// EncoderWatch debounces one wheel encoder's raw edges and turns surviving
// edges into event.EncoderLeft / event.EncoderRight events, grounded on
// gpioirq.Worker's watch type: a fast, never-blocking ISR-side handler that
// only records the raw level, paired with debounce/edge logic that runs on
// the consuming goroutine rather than in interrupt context (spec §8
// invariant 9: a second edge inside the debounce window is dropped, not
// queued, and must not stall the dispatcher).
type EncoderWatch struct {
	side      Side
	evt       event.EvtID
	debounce  time.Duration
	queue     *event.Queue
	lastLevel bool
	lastTime  time.Time
	haveLast  bool
}

func NewEncoderWatch(side Side, debounce time.Duration, queue *event.Queue) *EncoderWatch {
	evt := event.EncoderLeft
	if side == SideRight {
		evt = event.EncoderRight
	}
	return &EncoderWatch{side: side, evt: evt, debounce: debounce, queue: queue}
}

// Run drains raw IRQ edges from pin until ch is closed or the done channel
// fires. It is intended to run on its own goroutine, standing in for the
// Pico SDK's gpio_set_irq_enabled_with_callback ISR context: the pin itself
// delivers to a buffered channel (non-blocking from the ISR's perspective,
// per halio.IRQPin's contract) and this loop does the debounce work.
func (w *EncoderWatch) Run(ch <-chan halio.IRQEvent, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			w.handle(ev)
		}
	}
}

func (w *EncoderWatch) handle(ev halio.IRQEvent) {
	now := time.UnixMilli(int64(ev.TimeMs))
	if w.haveLast && now.Sub(w.lastTime) < w.debounce {
		return
	}
	w.lastTime = now
	w.haveLast = true
	if w.lastLevel == ev.Rising {
		return // no level change after debounce collapse, nothing to report
	}
	w.lastLevel = ev.Rising
	var dir int32 = -1
	if ev.Rising {
		dir = 1
	}
	w.queue.Enqueue(event.Event{ID: w.evt, Param: dir, TimeMs: ev.TimeMs}, event.High)
}
