package event

import "testing"

func TestPriorityHighBeforeLow(t *testing.T) {
	q := NewQueue(4)
	q.Enqueue(Event{ID: OneSecondTimer, TimeMs: 1}, Low)
	q.Enqueue(Event{ID: NavUpdate, TimeMs: 2}, High)

	ev, ok := q.Pop()
	if !ok || ev.ID != NavUpdate {
		t.Fatalf("expected High event first, got %+v ok=%v", ev, ok)
	}
	ev, ok = q.Pop()
	if !ok || ev.ID != OneSecondTimer {
		t.Fatalf("expected Low event second, got %+v ok=%v", ev, ok)
	}
}

func TestFIFOWithinPriority(t *testing.T) {
	q := NewQueue(8)
	for i := int32(0); i < 3; i++ {
		q.Enqueue(Event{ID: QuarterSecondTimer, Param: i}, Low)
	}
	for i := int32(0); i < 3; i++ {
		ev, ok := q.Pop()
		if !ok || ev.Param != i {
			t.Fatalf("expected FIFO order, index %d got %+v ok=%v", i, ev, ok)
		}
	}
}

func TestOverflowStickyAndNonDestructive(t *testing.T) {
	q := NewQueue(2)
	if !q.Enqueue(Event{Param: 1}, Low) {
		t.Fatal("expected first enqueue to succeed")
	}
	if !q.Enqueue(Event{Param: 2}, Low) {
		t.Fatal("expected second enqueue to succeed")
	}
	if q.Enqueue(Event{Param: 3}, Low) {
		t.Fatal("expected third enqueue (capacity 2) to fail")
	}
	if !q.Overflowed() {
		t.Fatal("expected sticky overflow flag to be set")
	}

	ev, ok := q.Pop()
	if !ok || ev.Param != 1 {
		t.Fatalf("expected first event preserved, got %+v ok=%v", ev, ok)
	}
	ev, ok = q.Pop()
	if !ok || ev.Param != 2 {
		t.Fatalf("expected second event preserved, got %+v ok=%v", ev, ok)
	}

	// Overflow flag stays set until explicitly cleared.
	if !q.Overflowed() {
		t.Fatal("overflow flag should remain set until explicit reset")
	}
	q.ResetOverflow()
	if q.Overflowed() {
		t.Fatal("expected overflow flag cleared after ResetOverflow")
	}
}

func TestNoLostWakeups(t *testing.T) {
	q := NewQueue(4)
	q.Enqueue(Event{ID: PulsePicoLed}, Low)
	if q.Empty() {
		t.Fatal("event enqueued before idling must be observed")
	}
	ev, ok := q.Pop()
	if !ok || ev.ID != PulsePicoLed {
		t.Fatalf("expected to observe the enqueued event, got %+v ok=%v", ev, ok)
	}
}

func TestPopEmptyQueue(t *testing.T) {
	q := NewQueue(4)
	if _, ok := q.Pop(); ok {
		t.Fatal("expected Pop on empty queue to report false")
	}
}
