package wire

import (
	"bytes"
	"testing"
)

func TestSendWritesIDThenBody(t *testing.T) {
	link := loopback()
	m := &TimerEventMsg{Which: TimerWhichOneSec, Count: 3, Time: 1234}
	if err := Send(link, m); err != nil {
		t.Fatal(err)
	}
	got := link.rw.(*bytes.Buffer).Bytes()
	want := []byte{byte(MsgTimerEvent), 0x04, 0x03, 0x00, 0x00, 0x00, 0xD2, 0x04, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % X want % X", got, want)
	}
}

func TestReceiveRoundTrip(t *testing.T) {
	link := loopback()
	if err := Send(link, &PingMsg{}); err != nil {
		t.Fatal(err)
	}
	reg := NewRegistry()
	if err := RegisterAll(reg); err != nil {
		t.Fatal(err)
	}
	msg, ok, err := Receive(link, reg)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if msg.ID() != MsgPing {
		t.Fatalf("got id %v want MsgPing", msg.ID())
	}
}

func TestReceiveEmptyLinkReportsNotOK(t *testing.T) {
	reg := NewRegistry()
	_, ok, err := Receive(loopback(), reg)
	if ok || err != nil {
		t.Fatalf("expected ok=false err=nil on empty link, got ok=%v err=%v", ok, err)
	}
}
