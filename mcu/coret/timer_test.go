package coret

import (
	"testing"

	"carrt/corestate"
	"carrt/event"
)

func drainAll(q *event.Queue) []event.Event {
	var out []event.Event
	for {
		e, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

func countByID(evts []event.Event, id event.EvtID) int {
	n := 0
	for _, e := range evts {
		if e.ID == id {
			n++
		}
	}
	return n
}

func TestTimerNavUpdateEveryTick(t *testing.T) {
	q := event.NewQueue(64)
	tm := NewTimer(corestate.NewSharedState(), q)
	for i := 0; i < 8; i++ {
		tm.Tick(uint32(i * 125))
	}
	evts := drainAll(q)
	if n := countByID(evts, event.NavUpdate); n != 8 {
		t.Fatalf("expected 8 NavUpdate events, got %d", n)
	}
}

func TestTimerQuarterSecondEveryOtherTick(t *testing.T) {
	q := event.NewQueue(64)
	tm := NewTimer(corestate.NewSharedState(), q)
	for i := 0; i < 8; i++ {
		tm.Tick(uint32(i * 125))
	}
	evts := drainAll(q)
	if n := countByID(evts, event.QuarterSecondTimer); n != 4 {
		t.Fatalf("expected 4 QuarterSecondTimer events in 8 ticks, got %d", n)
	}
}

func TestTimerOneSecondAndEightSecondBoundaries(t *testing.T) {
	q := event.NewQueue(256)
	tm := NewTimer(corestate.NewSharedState(), q)
	for i := 0; i < 64; i++ {
		tm.Tick(uint32(i * 125))
	}
	evts := drainAll(q)
	if n := countByID(evts, event.OneSecondTimer); n != 8 {
		t.Fatalf("expected 8 OneSecondTimer events in 64 ticks, got %d", n)
	}
	if n := countByID(evts, event.EightSecondTimer); n != 1 {
		t.Fatalf("expected 1 EightSecondTimer event in 64 ticks (wraps at count==0), got %d", n)
	}
	if n := countByID(evts, event.PulsePicoLed); n != 8 {
		t.Fatalf("expected 8 PulsePicoLed events, got %d", n)
	}
}

func TestTimerSendsCalibrationInfoWhenInProgress(t *testing.T) {
	q := event.NewQueue(256)
	state := corestate.NewSharedState()
	state.CalibrationInProgress(true)
	tm := NewTimer(state, q)
	for i := 0; i < 8; i++ {
		tm.Tick(uint32(i * 125))
	}
	evts := drainAll(q)
	if n := countByID(evts, event.SendCalibrationInfo); n != 1 {
		t.Fatalf("expected 1 SendCalibrationInfo event at the 1-second boundary while calibrating, got %d", n)
	}
}
