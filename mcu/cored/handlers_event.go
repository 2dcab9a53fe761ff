package cored

import (
	"context"
	"time"

	"carrt/errcode"
	"carrt/event"
	"carrt/mcu/coret"
	"carrt/nav"
	"carrt/wire"
)

// bno055ResetToInitDelayMs is the ~650ms power-on-reset settle time after
// BNO055::reset() that Core-T waits before queueing the re-init. The ~600ms
// wait after BNO055::init() has no constant here: Init on halio.IMU blocks
// for it internally, per halio.IMU's doc comment.
const (
	bno055ResetToInitDelayMs = 650
)

// dispatchEvent is Core-D's event handler table, grounded 1:1 on
// EventHandlers.cpp. Every branch matches a handler class there; Null is
// logged and dropped, and unregistered events fall to the default case, the Go analogue of
// EventProcessor::handleUnknownEvent.
func (d *Dispatcher) dispatchEvent(ev event.Event) {
	switch ev.ID {
	case event.NullEvent:
		d.Log.Debug("got a null event")

	case event.QuarterSecondTimer:
		if d.State.WantQtrSecTimerMsgs() {
			d.sendTimerEvent(wire.TimerWhichQuarterSec, ev.Param, ev.TimeMs)
		}
	case event.OneSecondTimer:
		if d.State.Want1SecTimerMsgs() {
			d.sendTimerEvent(wire.TimerWhichOneSec, ev.Param, ev.TimeMs)
		}
		if d.State.WantBatteryMsgs() {
			d.checkBatteryLevels(ev.TimeMs)
		}
	case event.EightSecondTimer:
		if d.State.Want8SecTimerMsgs() {
			d.sendTimerEvent(wire.TimerWhichEightSec, ev.Param, ev.TimeMs)
		}

	case event.NavUpdate:
		d.handleNavUpdate(ev)

	case event.BNO055Initialize:
		d.handleBNO055Initialize(ev)
	case event.BNO055Reset:
		d.handleBNO055Reset(ev)
	case event.BNO055BeginCalibration:
		d.State.NavCalibrated(false)
		d.State.CalibrationInProgress(true)
		d.Log.Debug("got begin calibration event")
	case event.SendCalibrationInfo:
		d.handleSendCalibrationInfo(ev)

	case event.EncoderLeft:
		// Encoder edges are reported only as telemetry; Core-D has no
		// persistent odometer state to update here (spec §6 leaves wheel
		// odometry out of scope beyond raw edge counts).
		if d.State.WantEncoderMsgs() {
			d.sendEncoderUpdate(wire.EncoderLeftSide, ev)
		}
	case event.EncoderRight:
		if d.State.WantEncoderMsgs() {
			d.sendEncoderUpdate(wire.EncoderRightSide, ev)
		}

	case event.PulsePicoLed:
		if d.LED != nil {
			d.LED.Set(!d.LED.Get())
		}

	case event.BatteryLow:
		// Param carries the BatteryWhich the low-battery check was run
		// against; see checkBatteryLevels in handlers_battery.go.
		d.handleBatteryLow(ev)

	case event.PicoReset:
		d.handlePicoReset()

	case event.Error:
		code := errcode.MakePicoErrorID(errcode.ModuleEventProcessor, 1, ev.Param)
		d.sendError(false, code)
		if d.Buzzer != nil {
			go d.buzzErrorChime()
		}
		d.Log.Error("got an error event in the event queue", "param", ev.Param)

	default:
		code := errcode.MakePicoErrorID(errcode.ModuleEventProcessor, 1, int32(ev.ID))
		d.sendError(false, code)
		d.Log.Error("received unknown event", "id", ev.ID)
	}
}

func (d *Dispatcher) sendTimerEvent(which uint8, count int32, timeMs uint32) {
	msg := &wire.TimerEventMsg{Which: which, Count: count, Time: timeMs}
	if err := wire.Send(d.Link, msg); err != nil {
		d.Log.Error("failed to send timer event", "err", err)
	}
}

func (d *Dispatcher) sendEncoderUpdate(side wire.EncoderSide, ev event.Event) {
	msg := &wire.EncoderUpdateMsg{Side: uint8(side), Count: ev.Param, Time: ev.TimeMs}
	if err := wire.Send(d.Link, msg); err != nil {
		d.Log.Error("failed to send encoder update", "err", err)
	}
}

func (d *Dispatcher) handleNavUpdate(ev event.Event) {
	if !d.State.IsNavCalibrated() || !d.State.WantNavMsgs() {
		return
	}
	if d.IMU == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	heading, err := d.IMU.Heading(ctx)
	if err != nil {
		d.sendError(false, errcode.MakePicoErrorID(errcode.ModuleI2c, 1, 0))
		return
	}
	msg := &wire.NavUpdateMsg{Heading: heading, Time: ev.TimeMs}
	if err := wire.Send(d.Link, msg); err != nil {
		d.Log.Error("failed to send nav update", "err", err)
		return
	}
	d.Log.Debug("sent heading", "heading", heading)
}

// handleBNO055Initialize mirrors InitializeBNO055Handler: Init() carries its
// own ~600ms settle delay, after which calibration can start immediately
// and startup is considered finished.
func (d *Dispatcher) handleBNO055Initialize(ev event.Event) {
	d.Log.Debug("got BNO055 initialize event")
	if d.IMU != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := d.IMU.Init(ctx); err != nil {
			d.sendError(true, errcode.MakePicoErrorID(errcode.ModuleI2c, 2, 0))
			return
		}
	}
	d.Queue.Enqueue(event.Event{ID: event.BNO055BeginCalibration, TimeMs: ev.TimeMs}, event.Low)
	d.State.StartUpFinished(true)
}

// handleBNO055Reset mirrors BNO055ResetHandler: Reset() takes effect, nav
// calibration is invalidated, and Core-T is asked to re-trigger init after
// the power-on-reset settle time.
func (d *Dispatcher) handleBNO055Reset(ev event.Event) {
	d.Log.Debug("got BNO055 reset event")
	if d.IMU != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := d.IMU.Reset(ctx); err != nil {
			d.sendError(false, errcode.MakePicoErrorID(errcode.ModuleI2c, 3, 0))
		}
	}
	d.State.NavCalibrated(false)
	if d.Launcher != nil {
		if err := d.Launcher.PostDelayed(coret.RequestBNO055InitDelay, bno055ResetToInitDelayMs); err != nil {
			d.sendError(true, errcode.MakePicoErrorID(errcode.ModuleMulticore, 2, 0))
		}
	}
	d.State.StartUpFinished(false)
}

// handleSendCalibrationInfo mirrors SendCalibrationInfoHandler exactly: the
// edge-triggered choice between PicoNavStatusUpdateMsg (status changed) and
// CalibrationInfoUpdateMsg (status unchanged, routine report) is the
// invariant spec §8 calls out.
func (d *Dispatcher) handleSendCalibrationInfo(ev event.Event) {
	if d.IMU == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	mag, accel, gyro, system, err := d.IMU.CalibrationScores(ctx)
	if err != nil {
		d.sendError(false, errcode.MakePicoErrorID(errcode.ModuleI2c, 4, 0))
		return
	}
	info := nav.CalibrationInfo{Mag: mag, Accel: accel, Gyro: gyro, System: system}
	status := info.Good()
	oldStatus := d.State.NavCalibrated(status)

	if status != oldStatus {
		if d.State.WantNavStatusMsgs() {
			msg := &wire.PicoNavStatusUpdateMsg{Good: status, Mag: mag, Accel: accel, Gyro: gyro, System: system}
			if err := wire.Send(d.Link, msg); err != nil {
				d.Log.Error("failed to send nav status update", "err", err)
			}
		}
		if status && d.Buzzer != nil {
			go d.buzzReadyChime()
		}
		if oldStatus && !status && d.State.IsAutoCalibrateMode() && d.Launcher != nil {
			if err := d.Launcher.PostDelayed(coret.RequestBNO055InitDelay, bno055ResetToInitDelayMs); err != nil {
				d.sendError(true, errcode.MakePicoErrorID(errcode.ModuleMulticore, 2, 0))
			}
		}
		d.Log.Info("calibration status changed", "calibrated", status)
		return
	}

	if d.State.WantCalibrationMsgs() {
		msg := &wire.CalibrationInfoUpdateMsg{Mag: mag, Accel: accel, Gyro: gyro, System: system}
		if err := wire.Send(d.Link, msg); err != nil {
			d.Log.Error("failed to send calibration info", "err", err)
		}
	}
}

func (d *Dispatcher) handlePicoReset() {
	d.Log.Info("resetting on request")
	if d.Watchdog != nil {
		d.Watchdog.Reboot()
	}
}
