package cored

import (
	"carrt/event"
	"carrt/halio"
	"carrt/wire"
)

// checkBatteryLevels samples both voltage dividers once a second (driven
// from the OneSecondTimer case in dispatchEvent) and enqueues a BatteryLow
// event, High priority, for each battery that has crossed its threshold.
// The event queue is the single path to a wire send, same as every other
// telemetry item, so a low reading gets the same at-most-one-per-iteration
// fairness as everything else.
func (d *Dispatcher) checkBatteryLevels(timeMs uint32) {
	d.checkOneBattery(d.ICBatt, halio.ICDivider, wire.BatteryIC, timeMs)
	d.checkOneBattery(d.MotorBat, halio.MotorDivider, wire.BatteryMotor, timeMs)
}

func (d *Dispatcher) checkOneBattery(ch halio.ADCChannel, div halio.Divider, which wire.BatteryWhich, timeMs uint32) {
	if ch == nil {
		return
	}
	volts, err := halio.ReadVolts(ch, div)
	if err != nil {
		return
	}
	if div.Low(volts) {
		d.Queue.Enqueue(event.Event{ID: event.BatteryLow, Param: int32(which), TimeMs: timeMs}, event.High)
	}
}

// handleBatteryLow resolves a BatteryLow event into a BatteryLowAlertMsg,
// re-reading the triggering battery so the alert carries a fresh voltage.
func (d *Dispatcher) handleBatteryLow(ev event.Event) {
	which := wire.BatteryWhich(ev.Param)
	var ch halio.ADCChannel
	var div halio.Divider
	switch which {
	case wire.BatteryIC:
		ch, div = d.ICBatt, halio.ICDivider
	case wire.BatteryMotor:
		ch, div = d.MotorBat, halio.MotorDivider
	default:
		return
	}
	if ch == nil {
		return
	}
	volts, err := halio.ReadVolts(ch, div)
	if err != nil {
		return
	}
	msg := &wire.BatteryLowAlertMsg{Which: uint8(which), Volts: volts}
	if err := wire.Send(d.Link, msg); err != nil {
		d.Log.Error("failed to send battery low alert", "err", err)
	}
}
