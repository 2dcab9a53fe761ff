package host

import (
	"fmt"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

// Diag drives a host-local GPIO line (distinct from anything on the UART
// link) as a liveness indicator for this process, grounded on
// gpio.PinOut's Out(Level) contract used by lepton.go's chip-select line.
type Diag struct {
	pin gpio.PinOut
	on  bool
}

// OpenDiag initializes the periph host drivers and looks up pinName (e.g.
// "GPIO17") as an output. Safe to call at most once per process; periph's
// host.Init() is itself idempotent.
func OpenDiag(pinName string) (*Diag, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("diag: periph host init: %w", err)
	}
	p := gpioreg.ByName(pinName)
	if p == nil {
		return nil, fmt.Errorf("diag: no such gpio pin %q", pinName)
	}
	out, ok := p.(gpio.PinOut)
	if !ok {
		return nil, fmt.Errorf("diag: pin %q is not an output", pinName)
	}
	if err := out.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("diag: initial Out: %w", err)
	}
	return &Diag{pin: out}, nil
}

// Toggle flips the diagnostic line; called on a ticker from the entry
// point to show the host process is alive independent of link traffic.
func (d *Diag) Toggle() error {
	d.on = !d.on
	level := gpio.Low
	if d.on {
		level = gpio.High
	}
	return d.pin.Out(level)
}

// RunHeartbeat toggles the pin on every tick of period until done fires.
func (d *Diag) RunHeartbeat(period time.Duration, done <-chan struct{}) {
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			_ = d.Toggle()
		}
	}
}
