package cored

import (
	"bytes"
	"context"
	"testing"

	"carrt/corestate"
	"carrt/event"
	"carrt/wire"
)

// fakeIMU is a scripted halio.IMU for handler tests; no I2C, no delays.
type fakeIMU struct {
	heading                          float32
	mag, accel, gyro, system         uint8
	headingErr, scoreErr             error
}

func (f *fakeIMU) Init(context.Context) error  { return nil }
func (f *fakeIMU) Reset(context.Context) error { return nil }
func (f *fakeIMU) Heading(context.Context) (float32, error) {
	return f.heading, f.headingErr
}
func (f *fakeIMU) CalibrationScores(context.Context) (uint8, uint8, uint8, uint8, error) {
	return f.mag, f.accel, f.gyro, f.system, f.scoreErr
}

type fakeADC struct{ code uint16 }

func (a *fakeADC) ReadRaw() (uint16, error) { return a.code, nil }

type fakeGPIO struct{ level bool }

func (g *fakeGPIO) ConfigureOutput(initial bool) error { g.level = initial; return nil }
func (g *fakeGPIO) ConfigureInput(bool) error           { return nil }
func (g *fakeGPIO) Set(level bool)                      { g.level = level }
func (g *fakeGPIO) Get() bool                           { return g.level }

func newTestDispatcher(t *testing.T) (*Dispatcher, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	link := wire.NewLink(&buf)
	reg := wire.NewRegistry()
	if err := wire.RegisterAll(reg); err != nil {
		t.Fatal(err)
	}
	q := event.NewQueue(32)
	state := corestate.NewSharedState()
	d := New(link, reg, q, state, nil, 0)
	return d, &buf
}

func readOneMessage(t *testing.T, buf *bytes.Buffer, reg *wire.Registry) wire.Message {
	t.Helper()
	link := wire.NewLink(bytes.NewBuffer(buf.Bytes()))
	msg, ok, err := wire.Receive(link, reg)
	if err != nil || !ok {
		t.Fatalf("expected a message on the link, ok=%v err=%v", ok, err)
	}
	return msg
}

func TestSendCalibrationInfoStatusChangeSendsNavStatus(t *testing.T) {
	d, buf := newTestDispatcher(t)
	d.IMU = &fakeIMU{mag: 3, accel: 3, gyro: 3, system: 3}
	d.State.SendNavStatusMsgs(true)
	d.State.SendCalibrationMsgs(true)

	d.dispatchEvent(event.Event{ID: event.SendCalibrationInfo})

	msg := readOneMessage(t, buf, d.Registry)
	status, ok := msg.(*wire.PicoNavStatusUpdateMsg)
	if !ok {
		t.Fatalf("expected PicoNavStatusUpdateMsg on first good reading, got %T", msg)
	}
	if !status.Good {
		t.Fatal("expected Good=true once all four scores clear the threshold")
	}
	if !d.State.IsNavCalibrated() {
		t.Fatal("expected navCalibrated to be set true")
	}
}

func TestSendCalibrationInfoNoChangeSendsRoutineUpdate(t *testing.T) {
	d, buf := newTestDispatcher(t)
	d.IMU = &fakeIMU{mag: 3, accel: 3, gyro: 3, system: 3}
	d.State.NavCalibrated(true) // already calibrated, so this reading shouldn't flip status
	d.State.SendCalibrationMsgs(true)

	d.dispatchEvent(event.Event{ID: event.SendCalibrationInfo})

	msg := readOneMessage(t, buf, d.Registry)
	if _, ok := msg.(*wire.CalibrationInfoUpdateMsg); !ok {
		t.Fatalf("expected CalibrationInfoUpdateMsg when status is unchanged, got %T", msg)
	}
}

func TestBatteryLevelRequestBothOrdersICThenMotor(t *testing.T) {
	d, buf := newTestDispatcher(t)
	d.ICBatt = &fakeADC{code: 2048}
	d.MotorBat = &fakeADC{code: 3000}

	d.dispatchMessage(&wire.BatteryLevelRequestMsg{Which: uint8(wire.BatteryBoth)})

	all := buf.Bytes()
	link := wire.NewLink(bytes.NewBuffer(all))
	first, ok, err := wire.Receive(link, d.Registry)
	if err != nil || !ok {
		t.Fatalf("expected first battery update, ok=%v err=%v", ok, err)
	}
	second, ok, err := wire.Receive(link, d.Registry)
	if err != nil || !ok {
		t.Fatalf("expected second battery update, ok=%v err=%v", ok, err)
	}
	fm, ok := first.(*wire.BatteryLevelUpdateMsg)
	if !ok || wire.BatteryWhich(fm.Which) != wire.BatteryIC {
		t.Fatalf("expected IC battery update first, got %#v", first)
	}
	sm, ok := second.(*wire.BatteryLevelUpdateMsg)
	if !ok || wire.BatteryWhich(sm.Which) != wire.BatteryMotor {
		t.Fatalf("expected Motor battery update second, got %#v", second)
	}
}

func TestResetPicoMsgEnqueuesHighPriorityReset(t *testing.T) {
	d, _ := newTestDispatcher(t)
	d.dispatchMessage(&wire.ResetPicoMsg{})
	ev, ok := d.Queue.Pop()
	if !ok || ev.ID != event.PicoReset {
		t.Fatalf("expected a queued PicoReset event, got %#v ok=%v", ev, ok)
	}
}

func TestPingRepliesWithPingReply(t *testing.T) {
	d, buf := newTestDispatcher(t)
	d.dispatchMessage(&wire.PingMsg{})
	msg := readOneMessage(t, buf, d.Registry)
	if _, ok := msg.(*wire.PingReplyMsg); !ok {
		t.Fatalf("expected PingReplyMsg, got %T", msg)
	}
}

func TestPulsePicoLedTogglesLED(t *testing.T) {
	d, _ := newTestDispatcher(t)
	led := &fakeGPIO{}
	d.LED = led
	d.dispatchEvent(event.Event{ID: event.PulsePicoLed})
	if !led.level {
		t.Fatal("expected LED to toggle on after one pulse event from off")
	}
	d.dispatchEvent(event.Event{ID: event.PulsePicoLed})
	if led.level {
		t.Fatal("expected LED to toggle back off after a second pulse event")
	}
}

func TestQueueOverflowReportedAsErrorReport(t *testing.T) {
	d, buf := newTestDispatcher(t)
	for i := 0; i < 64; i++ {
		d.Queue.Enqueue(event.Event{ID: event.NullEvent}, event.Low)
	}
	if !d.Queue.Overflowed() {
		t.Skip("queue did not overflow at this capacity; nothing to assert")
	}
	d.reportOverflow()
	msg := readOneMessage(t, buf, d.Registry)
	if _, ok := msg.(*wire.ErrorReportMsg); !ok {
		t.Fatalf("expected ErrorReportMsg on overflow, got %T", msg)
	}
}
