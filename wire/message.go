package wire

// Message is the shared-code contract every wire type implements: decode a
// body, encode a body, and carry the transient needsAction flag from spec
// §3 ("true between readIn and actOn"). actOn itself is deliberately NOT
// part of this interface: per spec §9 design notes, actOn behavior diverges
// per node, so it lives in per-node action tables (mcu/cored, host) keyed
// by MsgID, not on the message type. This also breaks the cyclic
// Message/EventManager/SerialLink reference the source has.
type Message interface {
	ID() MsgID
	ReadIn(t Transport) error
	SendOut(t Transport) error
	NeedsAction() bool
}

// Base provides the needsAction bookkeeping shared by every concrete
// message so each type only has to embed it.
type Base struct {
	needsAction bool
}

func (b *Base) NeedsAction() bool     { return b.needsAction }
func (b *Base) setNeedsAction(v bool) { b.needsAction = v }

// noContent is embedded by the seven empty-body variants listed in spec
// §4.10 (ping, ping-reply, pico-says-stop, begin-calibration,
// request-calibration-status, reset-pico, reset-bno055).
type noContent struct{ Base }

func (m *noContent) ReadIn(Transport) error  { m.setNeedsAction(true); return nil }
func (m *noContent) SendOut(Transport) error { return nil }
