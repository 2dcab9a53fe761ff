package coret

import (
	"carrt/corestate"
	"carrt/event"
)

// Timer reproduces Core1.cpp's repeating_timer_t callback: an 8Hz tick that
// fans out into quarter-second, one-second and eight-second cascades. The
// modular arithmetic and event parameters are copied exactly from
// original_source's timerCallback (Open Question 2: the current source is
// authoritative over any stale design-doc description of this ladder).
type Timer struct {
	eighthSecCount int
	state          *corestate.SharedState
	queue          *event.Queue
}

func NewTimer(state *corestate.SharedState, queue *event.Queue) *Timer {
	return &Timer{state: state, queue: queue}
}

// Tick runs one 125ms callback invocation. timeMs is milliseconds since
// boot, matching to_ms_since_boot(get_absolute_time()) in the source.
func (t *Timer) Tick(timeMs uint32) {
	t.eighthSecCount++
	t.eighthSecCount %= 64

	// Nav updates fire every 1/8 second, high priority; param counts
	// eighth-seconds 0..7.
	t.queue.Enqueue(event.Event{
		ID:     event.NavUpdate,
		Param:  int32(t.eighthSecCount % 8),
		TimeMs: timeMs,
	}, event.High)

	if t.eighthSecCount%2 == 0 {
		t.queue.Enqueue(event.Event{
			ID:     event.QuarterSecondTimer,
			Param:  int32((t.eighthSecCount / 2) % 4),
			TimeMs: timeMs,
		}, event.Low)
	}

	if t.eighthSecCount%8 == 0 {
		t.queue.Enqueue(event.Event{
			ID:     event.OneSecondTimer,
			Param:  int32(t.eighthSecCount / 8),
			TimeMs: timeMs,
		}, event.Low)
		t.queue.Enqueue(event.Event{ID: event.PulsePicoLed}, event.Low)

		if t.state.IsCalibrationInProgress() {
			t.queue.Enqueue(event.Event{ID: event.SendCalibrationInfo}, event.Low)
		}
	}

	if t.eighthSecCount == 0 {
		t.queue.Enqueue(event.Event{ID: event.EightSecondTimer, TimeMs: timeMs}, event.Low)
		t.queue.Enqueue(event.Event{ID: event.SendCalibrationInfo}, event.Low)
	}
}
