// Package halio defines the external-collaborator interfaces spec §1 and §6
// require but put out of scope for this core: I²C device drivers, GPIO/PWM,
// ADC. CARRT's event handlers call through these interfaces; what peripheral
// sits behind them (a real BNO055 over tinygo.org/x/drivers.I2C, or a
// software fake in tests) is not this package's concern.
package halio

import (
	"context"
	"time"

	"tinygo.org/x/drivers"
)

// I2CBus re-exports the bus-level contract from spec §6: SMBus-style ops,
// block ops capped at 32 bytes, plus the repeated-start-free variant some
// devices require. Backed by tinygo.org/x/drivers.I2C on MCU-B.
type I2CBus interface {
	drivers.I2C
	WriteByte(addr uint16, value byte) error
	WriteByteData(addr uint16, reg, value byte) error
	WriteWordData(addr uint16, reg byte, value uint16) error
	WriteBlockData(addr uint16, reg byte, data []byte) error // len(data) <= 32
	ReadByteData(addr uint16, reg byte) (byte, error)
	ReadWordData(addr uint16, reg byte) (uint16, error)
	ReadBlockData(addr uint16, reg byte, n int) ([]byte, error) // n <= 32
	// ReadWithoutRestart sends reg then reads n bytes with no intervening
	// restart condition, for devices that mishandle repeated-start.
	ReadWithoutRestart(addr uint16, reg byte, n int) ([]byte, error)
}

const MaxBlockLen = 32

// GPIOPin is a single configured pin: digital out (heartbeat LED) or
// digital in (polled, not interrupt-driven).
type GPIOPin interface {
	ConfigureOutput(initial bool) error
	ConfigureInput(pullUp bool) error
	Set(level bool)
	Get() bool
}

// IRQPin is an edge-interruptible input (the two wheel encoders).
type IRQPin interface {
	GPIOPin
	// EnableIRQ delivers every rising/falling edge to ch. Implementations
	// must not block the caller; delivery drops (rather than blocks) if ch
	// is not drained promptly, matching ISR-context semantics.
	EnableIRQ(ch chan<- IRQEvent) error
}

// IRQEvent is one raw (undebounced) edge notification.
type IRQEvent struct {
	Rising bool
	TimeMs uint32
}

// PWM is the single hardware-PWM output the spec requires (the buzzer).
type PWM interface {
	SetPeriod(period time.Duration) error
	Set(dutyCycle uint32) error // 0..top, per the underlying PWM's resolution
	Top() uint32
}

// ADCChannel reads one analog-to-digital channel (the two battery voltage
// dividers).
type ADCChannel interface {
	ReadRaw() (uint16, error) // 0..4095 on a 12-bit ADC
}

// IMU is the contract an event handler calls through for the BNO055-class
// sensor. Shaped after drivers/aht20's two-phase Trigger/Collect pattern:
// Init/Reset carry the driver-internal delays spec §4.9 names (~600ms /
// ~650ms) so the caller can treat them as ordinary (bounded) blocking calls
// on Core-D, exactly as the source does.
type IMU interface {
	Init(ctx context.Context) error
	Reset(ctx context.Context) error
	Heading(ctx context.Context) (float32, error)
	CalibrationScores(ctx context.Context) (mag, accel, gyro, system uint8, err error)
}

// Watchdog is the platform reboot path used by the reset/watchdog handler
// (spec §4.9, §6 "Exit behavior").
type Watchdog interface {
	Reboot()
}
