//go:build rp2040 || rp2350

// Package serialio wires the MCU-B UART hardware into an io.ReadWriter
// wire.Link can wrap, grounded on
// services/hal/internal/provider/rp2_resources.go's rp2SerialPort adapter
// over tinygo-uartx.
package serialio

import (
	"context"
	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

// Config names the UART instance and pin/baud setup for the MCU-B link,
// per spec §1 (UART link, 115200 8N1).
type Config struct {
	Instance string // "uart0" or "uart1"
	TX, RX   uint8
	BaudRate uint32
}

// DefaultConfig returns the 115200 8N1 link parameters spec §1 names.
func DefaultConfig() Config {
	return Config{Instance: "uart0", BaudRate: 115200}
}

// Port adapts a configured *uartx.UART to io.ReadWriter so wire.NewLink can
// use it directly as a Transport backing store.
type Port struct {
	u   *uartx.UART
	ctx context.Context
}

// Open configures the named UART instance per cfg and returns a Port ready
// to hand to wire.NewLink. ctx bounds blocking reads (RecvSomeContext);
// pass context.Background() for an unbounded MCU-side read loop.
func Open(ctx context.Context, cfg Config) (*Port, error) {
	var hw *uartx.UART
	switch cfg.Instance {
	case "uart1":
		hw = uartx.UART1
	default:
		hw = uartx.UART0
	}
	if err := hw.Configure(uartx.UARTConfig{
		BaudRate: cfg.BaudRate,
		TX:       machine.Pin(cfg.TX),
		RX:       machine.Pin(cfg.RX),
	}); err != nil {
		return nil, err
	}
	if err := hw.SetFormat(8, 1, uartx.ParityNone); err != nil {
		return nil, err
	}
	return &Port{u: hw, ctx: ctx}, nil
}

func (p *Port) Write(b []byte) (int, error) { return p.u.Write(b) }

// Read performs one bounded, context-scoped receive. wire.Link only calls
// Read through its own bounded-retry loop, so a single non-blocking-ish
// attempt per call is exactly the shape Transport expects.
func (p *Port) Read(b []byte) (int, error) {
	return p.u.RecvSomeContext(p.ctx, b)
}
