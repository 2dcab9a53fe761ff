// Package host implements SBC-A: the single-threaded client that owns the
// UART link to MCU-B, issues control messages, and reacts to telemetry.
// Grounded on cmd/pico-hal-main/main.go's single select-loop shape, adapted
// from a bus-fanout consumer to a direct wire.Message consumer since SBC-A
// has exactly one upstream link rather than many HAL capabilities.
package host

import (
	"context"
	"time"

	"carrt/bus"
	"carrt/config"
	"carrt/logx"
	"carrt/wire"
)

// Handlers lets a caller react to specific inbound messages without
// subclassing Client; nil entries are ignored. Grounded on the same
// per-node action-table split as mcu/cored, but expressed as injected
// callbacks since SBC-A's reactions are application-specific, not a fixed
// hardware action table.
type Handlers struct {
	OnNavUpdate     func(wire.NavUpdateMsg)
	OnNavStatus     func(wire.PicoNavStatusUpdateMsg)
	OnCalibration   func(wire.CalibrationInfoUpdateMsg)
	OnBatteryLevel  func(wire.BatteryLevelUpdateMsg)
	OnBatteryLow    func(wire.BatteryLowAlertMsg)
	OnEncoderUpdate func(wire.EncoderUpdateMsg)
	OnTimerEvent    func(wire.TimerEventMsg)
	OnErrorReport   func(wire.ErrorReportMsg)
	OnPicoReady     func(wire.PicoReadyMsg)
}

// Client is SBC-A's link owner. Only one goroutine ever calls Run; outbound
// Send* methods are safe to call from Run's own handler callbacks but not
// concurrently from other goroutines, mirroring the single-threaded
// contract spec §1 assigns to this node.
type Client struct {
	Link      wire.Transport
	Registry  *wire.Registry
	Log       logx.Logger
	Handlers  Handlers
	idleSleep time.Duration

	// Bus, if set, receives every decoded inbound message on topic
	// host/rx/<msg-name>, retained so a late subscriber sees the last
	// reading of each kind immediately. Adapted from bus.Bus's MQTT-style
	// retained-trie semantics (bus/bus.go) so diagnostics or a future UI
	// layer can observe telemetry without Client knowing about them.
	Bus  *bus.Bus
	conn *bus.Connection
}

// New builds a Client around an already-open Transport (wire.NewLink over
// hostlink.Open's *serial.Port in production, an in-memory Link in tests).
// b may be nil to skip internal bus fan-out entirely.
func New(link wire.Transport, reg *wire.Registry, h Handlers, timing config.Timing, b *bus.Bus) *Client {
	idle := timing.DispatchIdleSleep
	if idle <= 0 {
		idle = 10 * time.Millisecond
	}
	c := &Client{Link: link, Registry: reg, Log: logx.Default(), Handlers: h, idleSleep: idle, Bus: b}
	if b != nil {
		c.conn = b.NewConnection("host-link")
	}
	return c
}

func (c *Client) publish(name string, payload any) {
	if c.conn == nil {
		return
	}
	c.conn.Publish(c.conn.NewMessage(bus.T("host", "rx", name), payload, true))
}

// Run drains inbound messages until ctx is cancelled. Like Core-D, at most
// one message is processed per loop iteration before yielding, so a burst
// of telemetry cannot starve the caller's own cancellation check.
func (c *Client) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		msg, ok, err := wire.Receive(c.Link, c.Registry)
		if err != nil {
			c.Log.Error("receive failed", "err", err)
			continue
		}
		if !ok {
			time.Sleep(c.idleSleep)
			continue
		}
		c.dispatch(msg)
	}
}

func (c *Client) dispatch(msg wire.Message) {
	switch m := msg.(type) {
	case *wire.PicoReadyMsg:
		c.publish("pico-ready", *m)
		if c.Handlers.OnPicoReady != nil {
			c.Handlers.OnPicoReady(*m)
		}
	case *wire.PicoNavStatusUpdateMsg:
		c.publish("nav-status", *m)
		if c.Handlers.OnNavStatus != nil {
			c.Handlers.OnNavStatus(*m)
		}
	case *wire.CalibrationInfoUpdateMsg:
		c.publish("calibration", *m)
		if c.Handlers.OnCalibration != nil {
			c.Handlers.OnCalibration(*m)
		}
	case *wire.NavUpdateMsg:
		c.publish("nav-update", *m)
		if c.Handlers.OnNavUpdate != nil {
			c.Handlers.OnNavUpdate(*m)
		}
	case *wire.EncoderUpdateMsg:
		c.publish("encoder-update", *m)
		if c.Handlers.OnEncoderUpdate != nil {
			c.Handlers.OnEncoderUpdate(*m)
		}
	case *wire.BatteryLevelUpdateMsg:
		c.publish("battery-level", *m)
		if c.Handlers.OnBatteryLevel != nil {
			c.Handlers.OnBatteryLevel(*m)
		}
	case *wire.BatteryLowAlertMsg:
		c.publish("battery-low", *m)
		if c.Handlers.OnBatteryLow != nil {
			c.Handlers.OnBatteryLow(*m)
		}
	case *wire.TimerEventMsg:
		c.publish("timer-event", *m)
		if c.Handlers.OnTimerEvent != nil {
			c.Handlers.OnTimerEvent(*m)
		}
	case *wire.ErrorReportMsg:
		c.publish("error-report", *m)
		if c.Handlers.OnErrorReport != nil {
			c.Handlers.OnErrorReport(*m)
		}
		c.Log.Error("pico reported an error", "fatal", m.Fatal != 0, "code", m.Code)
	default:
		c.Log.Debug("unhandled message on host link", "id", msg.ID())
	}
}

// ---- outbound helpers (spec §6 control messages SBC-A originates) ----

func (c *Client) Ping() error                    { return wire.Send(c.Link, &wire.PingMsg{}) }
func (c *Client) SetTelemetryMask(mask uint8) error {
	return wire.Send(c.Link, &wire.MsgControlMsg{Mask: mask})
}
func (c *Client) SetTimerMask(mask uint8) error {
	return wire.Send(c.Link, &wire.TimerControlMsg{Mask: mask})
}
func (c *Client) RequestReset() error { return wire.Send(c.Link, &wire.ResetPicoMsg{}) }
func (c *Client) BeginCalibration() error {
	return wire.Send(c.Link, &wire.BeginCalibrationMsg{})
}
func (c *Client) RequestCalibrationStatus() error {
	return wire.Send(c.Link, &wire.RequestCalibStatusMsg{})
}
func (c *Client) SetAutoCalibrate(on bool) error {
	return wire.Send(c.Link, &wire.SetAutoCalibrateMsg{On: boolToU8(on)})
}
func (c *Client) ResetBNO055() error { return wire.Send(c.Link, &wire.ResetBNO055Msg{}) }
func (c *Client) SetNavUpdates(wantNav, wantStatus bool) error {
	return wire.Send(c.Link, &wire.NavUpdateControlMsg{WantNav: boolToU8(wantNav), WantStatus: boolToU8(wantStatus)})
}
func (c *Client) SetEncoderUpdates(on bool) error {
	return wire.Send(c.Link, &wire.EncoderUpdateControlMsg{On: boolToU8(on)})
}
func (c *Client) RequestBatteryLevel(which wire.BatteryWhich) error {
	return wire.Send(c.Link, &wire.BatteryLevelRequestMsg{Which: uint8(which)})
}
func (c *Client) SendDrivingStatus(state wire.DrivingState) error {
	return wire.Send(c.Link, &wire.DrivingStatusUpdateMsg{State: uint8(state)})
}

func boolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
