package host

import (
	"bytes"
	"testing"

	"carrt/bus"
	"carrt/config"
	"carrt/wire"
)

func newTestClient(t *testing.T, h Handlers, b *bus.Bus) (*Client, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	link := wire.NewLink(&buf)
	reg := wire.NewRegistry()
	if err := wire.RegisterAll(reg); err != nil {
		t.Fatal(err)
	}
	c := New(link, reg, h, config.Timing{}, b)
	return c, &buf
}

func TestPingWritesPingMessage(t *testing.T) {
	c, buf := newTestClient(t, Handlers{}, nil)
	if err := c.Ping(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 1 || buf.Bytes()[0] != byte(wire.MsgPing) {
		t.Fatalf("expected a single MsgPing id byte, got % X", buf.Bytes())
	}
}

func TestSetTelemetryMaskWritesMaskControlMessage(t *testing.T) {
	c, buf := newTestClient(t, Handlers{}, nil)
	if err := c.SetTelemetryMask(0x2A); err != nil {
		t.Fatal(err)
	}
	link := wire.NewLink(bytes.NewBuffer(buf.Bytes()))
	reg := wire.NewRegistry()
	_ = wire.RegisterAll(reg)
	msg, ok, err := wire.Receive(link, reg)
	if err != nil || !ok {
		t.Fatalf("expected to decode the mask control message, ok=%v err=%v", ok, err)
	}
	mc, ok := msg.(*wire.MsgControlMsg)
	if !ok || mc.Mask != 0x2A {
		t.Fatalf("expected MsgControlMsg{Mask: 0x2A}, got %#v", msg)
	}
}

func TestDispatchInvokesNavStatusHandlerAndPublishesRetained(t *testing.T) {
	b := bus.NewBus(4)
	var gotGood bool
	var called bool
	h := Handlers{OnNavStatus: func(m wire.PicoNavStatusUpdateMsg) {
		called = true
		gotGood = m.Good
	}}
	c, _ := newTestClient(t, h, b)

	c.dispatch(&wire.PicoNavStatusUpdateMsg{Good: true, Mag: 3, Accel: 3, Gyro: 3, System: 3})

	if !called {
		t.Fatal("expected OnNavStatus handler to be invoked")
	}
	if !gotGood {
		t.Fatal("expected Good=true to reach the handler unchanged")
	}

	conn := b.NewConnection("test-reader")
	sub := conn.Subscribe(bus.T("host", "rx", "nav-status"))
	defer conn.Unsubscribe(sub)
	select {
	case m := <-sub.Channel():
		status, ok := m.Payload.(wire.PicoNavStatusUpdateMsg)
		if !ok || !status.Good {
			t.Fatalf("expected retained nav-status payload with Good=true, got %#v", m.Payload)
		}
	default:
		t.Fatal("expected a retained message waiting on host/rx/nav-status for a late subscriber")
	}
}

func TestDispatchWithoutBusSkipsPublishButStillCallsHandler(t *testing.T) {
	var called bool
	h := Handlers{OnBatteryLow: func(wire.BatteryLowAlertMsg) { called = true }}
	c, _ := newTestClient(t, h, nil)
	c.dispatch(&wire.BatteryLowAlertMsg{Which: uint8(wire.BatteryMotor), Volts: 9.5})
	if !called {
		t.Fatal("expected OnBatteryLow handler to be invoked even with no bus configured")
	}
}

func TestRequestBatteryLevelEncodesWhich(t *testing.T) {
	c, buf := newTestClient(t, Handlers{}, nil)
	if err := c.RequestBatteryLevel(wire.BatteryBoth); err != nil {
		t.Fatal(err)
	}
	link := wire.NewLink(bytes.NewBuffer(buf.Bytes()))
	reg := wire.NewRegistry()
	_ = wire.RegisterAll(reg)
	msg, ok, err := wire.Receive(link, reg)
	if err != nil || !ok {
		t.Fatalf("expected to decode the battery level request, ok=%v err=%v", ok, err)
	}
	req, ok := msg.(*wire.BatteryLevelRequestMsg)
	if !ok || wire.BatteryWhich(req.Which) != wire.BatteryBoth {
		t.Fatalf("expected BatteryLevelRequestMsg{Which: BatteryBoth}, got %#v", msg)
	}
}
