package coret

import (
	"context"
	"time"

	"carrt/event"
)

// tickPeriod matches Core1.cpp's alarm_pool_add_repeating_timer_ms(..., -125, ...):
// a negative period in the source pins the callback to fire every 125ms
// measured from the start of the previous call, not from its end.
const tickPeriod = 125 * time.Millisecond

// Run is Core-T's main loop: arm the 8Hz timer, signal the handshake, then
// service cross-core requests and timer ticks until ctx is cancelled. This
// is the Go analogue of core1Main's while(1) loop, expressed as ordinary
// goroutine code instead of a bare-metal busy loop plus interrupts.
func Run(ctx context.Context, l *Launcher, timer *Timer, queue *event.Queue) {
	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()

	l.SignalReady()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			timer.Tick(uint32(now.UnixMilli()))
		case req := <-l.requests:
			l.serviceRequest(ctx, req, queue)
		}
	}
}

// serviceRequest handles a cross-core request. The only kind the source
// ever sends is kBNO055InitDelay: schedule a one-shot alarm that, once it
// fires, queues the BNO055 initialize event. alarm_pool_add_alarm_in_ms's delay
// is reproduced with time.AfterFunc instead of a hardware alarm pool.
func (l *Launcher) serviceRequest(ctx context.Context, req Request, queue *event.Queue) {
	switch req.Kind {
	case RequestBNO055InitDelay:
		time.AfterFunc(time.Duration(req.WaitMs)*time.Millisecond, func() {
			select {
			case <-ctx.Done():
			default:
				queue.Enqueue(event.Event{ID: event.BNO055Initialize}, event.Low)
			}
		})
	}
}
