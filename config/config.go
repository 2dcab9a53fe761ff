// Package config collects the board- and link-level constants each node's
// cmd entry point needs to wire up its hardware and serial link, following
// the teacher's plain-struct-plus-defaults style (services/config/config.go)
// rather than a flag/env framework neither node's scope calls for. The one
// exception is the serial device path, which a single env var can override
// for bench setups; everything else stays a compiled-in board constant.
package config

import (
	"os"
	"time"

	"carrt/x/strx"
)

// Serial describes the UART link parameters from spec §3.
type Serial struct {
	Device   string // host only; MCU builds talk to a fixed UART peripheral
	BaudRate int
}

// DefaultSerial matches spec §3's 115200 8N1 link, with the device path
// overridable via CARRT_SERIAL_DEVICE for bench setups where the link
// isn't wired to the board's primary UART.
func DefaultSerial() Serial {
	return Serial{Device: strx.Coalesce(os.Getenv("CARRT_SERIAL_DEVICE"), "/dev/ttyAMA0"), BaudRate: 115200}
}

// I2C names the bus and device addresses the IMU and battery-divider ADC
// sit on.
type I2C struct {
	Bus       int
	IMUAddr   uint16
	IMUAddrB  uint16 // alternate address strap, spec §6
}

func DefaultI2C() I2C {
	return I2C{Bus: 1, IMUAddr: 0x28, IMUAddrB: 0x29}
}

// GPIO names the board pins CARRT's handlers drive directly.
type GPIO struct {
	HeartbeatLED  int
	LeftEncoder   int
	RightEncoder  int
	BuzzerPWM     int
}

func DefaultGPIO() GPIO {
	return GPIO{HeartbeatLED: 25, LeftEncoder: 16, RightEncoder: 17, BuzzerPWM: 15}
}

// Telemetry holds the default active-mask values spec §6 names for the
// periodic timer and data broadcasts, before any MsgControlMsg/
// TimerControlMsg narrows them.
type Telemetry struct {
	DefaultMask      uint8
	DefaultTimerMask uint8
	AutoCalibrate    bool
}

func DefaultTelemetry() Telemetry {
	return Telemetry{DefaultMask: 0x00, DefaultTimerMask: 0x00, AutoCalibrate: true}
}

// Timing holds the scheduling constants spec §4.5/§4.6/§8 name explicitly.
type Timing struct {
	DispatchIdleSleep  time.Duration // Core-D cooperative sleep when no work pending
	EncoderDebounce    time.Duration // spec §8 invariant 9
	QueueCapacity      int           // per-priority ring capacity, spec §2 typical 24
}

func DefaultTiming() Timing {
	return Timing{
		DispatchIdleSleep: 10 * time.Millisecond,
		EncoderDebounce:   5 * time.Millisecond,
		QueueCapacity:     24,
	}
}

// Config is the full set handed to both cmd entry points; each uses the
// subset relevant to its node.
type Config struct {
	Serial    Serial
	I2C       I2C
	GPIO      GPIO
	Telemetry Telemetry
	Timing    Timing
}

func Default() Config {
	return Config{
		Serial:    DefaultSerial(),
		I2C:       DefaultI2C(),
		GPIO:      DefaultGPIO(),
		Telemetry: DefaultTelemetry(),
		Timing:    DefaultTiming(),
	}
}
