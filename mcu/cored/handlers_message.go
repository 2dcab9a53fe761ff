package cored

import (
	"carrt/errcode"
	"carrt/event"
	"carrt/halio"
	"carrt/wire"
)

// dispatchMessage is Core-D's inbound action table, grounded 1:1 on every
// takeAction method in PicoSerialMessages.cpp. Messages SBC-A never sends
// to MCU-B (the telemetry/update family Core-D itself originates) fall to
// the default case, logged as unexpected rather than actioned.
func (d *Dispatcher) dispatchMessage(msg wire.Message) {
	switch m := msg.(type) {
	case *wire.PingMsg:
		if err := wire.Send(d.Link, &wire.PingReplyMsg{}); err != nil {
			d.Log.Error("failed to reply to ping", "err", err)
		}

	case *wire.MsgControlMsg:
		d.State.ApplyTelemetryMask(m.Mask)

	case *wire.TimerControlMsg:
		d.State.ApplyTimerMask(m.Mask)

	case *wire.ResetPicoMsg:
		d.Queue.Enqueue(event.Event{ID: event.PicoReset}, event.High)

	case *wire.BeginCalibrationMsg:
		d.Queue.Enqueue(event.Event{ID: event.BNO055BeginCalibration}, event.Low)

	case *wire.RequestCalibStatusMsg:
		d.Queue.Enqueue(event.Event{ID: event.SendCalibrationInfo}, event.Low)

	case *wire.SetAutoCalibrateMsg:
		d.State.AutoCalibrateMode(u8ToBool(m.On))

	case *wire.ResetBNO055Msg:
		d.Queue.Enqueue(event.Event{ID: event.BNO055Reset}, event.Low)

	case *wire.NavUpdateControlMsg:
		d.State.SendNavMsgs(u8ToBool(m.WantNav))
		d.State.SendNavStatusMsgs(u8ToBool(m.WantStatus))

	case *wire.EncoderUpdateControlMsg:
		d.State.SendEncoderMsgs(u8ToBool(m.On))

	case *wire.BatteryLevelRequestMsg:
		d.handleBatteryLevelRequest(wire.BatteryWhich(m.Which))

	case *wire.DrivingStatusUpdateMsg:
		// The source's handler for this one is itself a stub: log only,
		// no actuation path implemented.
		d.Log.Info("driving status update received", "state", m.State)

	case *wire.TestPicoErrorRptMsg:
		if err := wire.Send(d.Link, &wire.ErrorReportMsg{Fatal: m.Fatal, Code: m.Code, Time: nowMs()}); err != nil {
			d.Log.Error("failed to echo test error report", "err", err)
		}

	case *wire.TestPicoMessagesMsg:
		d.handleTestPicoMessages(m)

	case *wire.DebugLinkMsg:
		echo := &wire.DebugLinkMsg{I: m.I * -2, B: m.B + 255, F: m.F * -0.5, U: m.U * 5}
		if err := wire.Send(d.Link, echo); err != nil {
			d.Log.Error("failed to echo debug link message", "err", err)
		}

	case *wire.UnknownMsg:
		d.sendError(false, m.ErrCode)

	default:
		d.Log.Debug("received message with no action table entry", "id", msg.ID())
	}
}

// handleBatteryLevelRequest mirrors BatteryLevelRequestMsg::takeAction: when
// Which names IC or Both the IC reading goes out first, then when it names
// Motor or Both the motor reading follows. The order is significant and
// intentionally not alphabetical or numeric.
func (d *Dispatcher) handleBatteryLevelRequest(which wire.BatteryWhich) {
	if which == wire.BatteryIC || which == wire.BatteryBoth {
		d.sendBatteryLevel(wire.BatteryIC, d.ICBatt, halio.ICDivider)
	}
	if which == wire.BatteryMotor || which == wire.BatteryBoth {
		d.sendBatteryLevel(wire.BatteryMotor, d.MotorBat, halio.MotorDivider)
	}
}

func (d *Dispatcher) sendBatteryLevel(which wire.BatteryWhich, ch halio.ADCChannel, div halio.Divider) {
	if ch == nil {
		return
	}
	volts, err := halio.ReadVolts(ch, div)
	if err != nil {
		d.sendError(false, errcode.MakePicoErrorID(errcode.ModuleI2c, 5, 0))
		return
	}
	msg := &wire.BatteryLevelUpdateMsg{Which: uint8(which), Volts: volts}
	if err := wire.Send(d.Link, msg); err != nil {
		d.Log.Error("failed to send battery level update", "err", err)
	}
}

// handleTestPicoMessages mirrors TestPicoMessagesMsg's switch: each
// requested id gets a fixed, hardcoded reply payload, used only to drive
// the link's codec self-test from the host side.
func (d *Dispatcher) handleTestPicoMessages(m *wire.TestPicoMessagesMsg) {
	id := wire.MsgID(m.MsgIDField)
	var out wire.Message
	switch id {
	case wire.MsgPicoReady:
		out = &wire.PicoReadyMsg{Time: 1}
	case wire.MsgPicoNavStatusUpdate:
		out = &wire.PicoNavStatusUpdateMsg{Good: true, Mag: 3, Accel: 3, Gyro: 3, System: 3}
	case wire.MsgCalibrationInfoUpdate:
		out = &wire.CalibrationInfoUpdateMsg{Mag: 3, Accel: 3, Gyro: 3, System: 3}
	case wire.MsgTimerEvent:
		out = &wire.TimerEventMsg{Which: wire.TimerWhichOneSec, Count: 1, Time: 1}
	case wire.MsgTimerNavUpdate:
		out = &wire.NavUpdateMsg{Heading: 1, Time: 1}
	case wire.MsgDrivingStatusUpdate:
		out = &wire.DrivingStatusUpdateMsg{State: uint8(wire.DrivingForward)}
	case wire.MsgEncoderUpdate:
		out = &wire.EncoderUpdateMsg{Side: uint8(wire.EncoderLeftSide), Count: 1, Time: 1}
	case wire.MsgBatteryLevelUpdate:
		out = &wire.BatteryLevelUpdateMsg{Which: uint8(wire.BatteryIC), Volts: 3.7}
	case wire.MsgBatteryLowAlert:
		out = &wire.BatteryLowAlertMsg{Which: uint8(wire.BatteryMotor), Volts: 10.0}
	case wire.MsgErrorReportFromPico:
		out = &wire.ErrorReportMsg{Fatal: 0, Code: 1, Time: 1}
	case wire.MsgPicoReceivedTestMsg:
		out = &wire.PicoReceivedTestMsg{MsgIDField: m.MsgIDField}
	default:
		d.Log.Debug("test pico messages: no canned payload for id", "id", id)
		return
	}
	if err := wire.Send(d.Link, out); err != nil {
		d.Log.Error("failed to send test pico messages reply", "err", err)
	}
}

func u8ToBool(v uint8) bool { return v != 0 }
