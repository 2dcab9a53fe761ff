// Package cored is Core-D: the single dispatch loop that owns the serial
// link and SharedState on MCU-B. Every event Core-T enqueues and every
// message SBC-A sends arrives here; nothing else touches the link.
package cored

import (
	"context"
	"time"

	"carrt/corestate"
	"carrt/errcode"
	"carrt/event"
	"carrt/halio"
	"carrt/logx"
	"carrt/mcu/coret"
	"carrt/wire"
)

// Dispatcher is Core-D's owned state: the link, the event queue shared
// with Core-T, SharedState, and the peripheral contracts the handler set
// calls through. Grounded on EventProcessor::dispatchOneEvent's per-cycle
// "one event -> one handler" shape and on core1Main's idle-sleep pattern.
type Dispatcher struct {
	Link     wire.Transport
	Registry *wire.Registry
	Queue    *event.Queue
	State    *corestate.SharedState
	Launcher *coret.Launcher
	IMU      halio.IMU
	LED      halio.GPIOPin
	Buzzer   halio.PWM
	Watchdog halio.Watchdog
	ICBatt   halio.ADCChannel
	MotorBat halio.ADCChannel
	Log      logx.Logger

	idleSleep time.Duration
}

func New(link wire.Transport, reg *wire.Registry, q *event.Queue, state *corestate.SharedState, launcher *coret.Launcher, idleSleep time.Duration) *Dispatcher {
	if idleSleep <= 0 {
		idleSleep = 10 * time.Millisecond
	}
	return &Dispatcher{
		Link: link, Registry: reg, Queue: q, State: state, Launcher: launcher,
		Log: logx.Default(), idleSleep: idleSleep,
	}
}

// Run is Core-D's main loop. Each iteration processes at most one inbound
// serial message, then at most one queued event, then sleeps briefly if
// neither had anything to do — spec §4.5's "never process two of one kind
// back-to-back" fairness rule, grounded on core1Main's
// "queue empty -> sleep 10ms" idle branch.
func (d *Dispatcher) Run(ctx context.Context) {
	if d.Buzzer != nil {
		go d.buzzChirp() // Buzzer::initBuzzer()'s boot chirp
	}
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		didSomething := false

		if msg, ok, err := wire.Receive(d.Link, d.Registry); err != nil {
			d.Log.Error("receive failed", "err", err)
		} else if ok {
			d.dispatchMessage(msg)
			didSomething = true
		}

		if ev, ok := d.Queue.Pop(); ok {
			d.dispatchEvent(ev)
			didSomething = true
		}

		if d.Queue.Overflowed() {
			d.reportOverflow()
			d.Queue.ResetOverflow()
		}

		if !didSomething {
			time.Sleep(d.idleSleep)
		}
	}
}

func (d *Dispatcher) reportOverflow() {
	code := errcode.MakePicoErrorID(errcode.ModuleEventProcessor, 2, 0)
	d.sendError(false, code)
}

func (d *Dispatcher) sendError(fatal bool, code int32) {
	msg := &wire.ErrorReportMsg{Fatal: boolToU8(fatal), Code: code, Time: nowMs()}
	if err := wire.Send(d.Link, msg); err != nil {
		d.Log.Error("failed to send error report", "err", err)
	}
}

func boolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func nowMs() uint32 { return uint32(time.Now().UnixMilli()) }
