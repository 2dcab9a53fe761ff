package wire

import "testing"

func TestRegisterDuplicateIsHardError(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(MsgPing, func() Message { return &PingMsg{} }); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if err := r.Register(MsgPing, func() Message { return &PingMsg{} }); err == nil {
		t.Fatal("expected duplicate registration to be a hard error")
	}
}

func TestCreateUnregisteredIDReturnsUnknown(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(MsgPing, func() Message { return &PingMsg{} }); err != nil {
		t.Fatal(err)
	}
	msg, err := r.Create(MsgTimerEvent)
	if err != nil {
		t.Fatalf("Create should not error on unknown id, got %v", err)
	}
	u, ok := msg.(*UnknownMsg)
	if !ok {
		t.Fatalf("expected *UnknownMsg, got %T", msg)
	}
	if u.RcvdID != MsgTimerEvent {
		t.Errorf("RcvdID = %v, want %v", u.RcvdID, MsgTimerEvent)
	}
}

func TestCreateWithNoRegistrationsReturnsDumpByte(t *testing.T) {
	r := NewRegistry()
	msg, err := r.Create(MsgPing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := msg.(*DumpByteMsg); !ok {
		t.Fatalf("expected *DumpByteMsg, got %T", msg)
	}
}

func TestIDStability(t *testing.T) {
	r := NewRegistry()
	if err := RegisterAll(r); err != nil {
		t.Fatal(err)
	}
	for id := MsgPing; id < msgCount; id++ {
		msg, err := r.Create(id)
		if err != nil {
			t.Fatalf("Create(%v): %v", id, err)
		}
		if msg.ID() != id {
			t.Errorf("constructor for %v built a message with ID() = %v", id, msg.ID())
		}
	}
}

func TestMsgCountIs27(t *testing.T) {
	if MsgCount != 27 {
		t.Fatalf("MsgCount = %d, want 27", MsgCount)
	}
}
