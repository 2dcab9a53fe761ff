// Package hostlink opens the Linux-side end of the UART link to MCU-B,
// grounded on Daedaluz-goserial's Termios/raw-mode setup. Returns a
// *serial.Port (an io.ReadWriter) that cmd/host-sbc wraps in wire.NewLink.
package hostlink

import (
	"fmt"
	"time"

	serial "github.com/daedaluz/goserial"
)

// Config names the device and baud rate for the host-side UART, per spec
// §1's 115200 8N1 link.
type Config struct {
	Device      string
	BaudRate    uint32
	ReadTimeout time.Duration
}

// DefaultConfig matches the board's default serial device and spec §1's
// fixed baud rate.
func DefaultConfig() Config {
	return Config{Device: "/dev/ttyAMA0", BaudRate: 115200, ReadTimeout: 50 * time.Millisecond}
}

// Open opens and configures cfg.Device for raw 8N1 I/O at cfg.BaudRate.
// The returned *serial.Port is ready to back a wire.Link.
func Open(cfg Config) (*serial.Port, error) {
	opts := serial.NewOptions().SetReadTimeout(cfg.ReadTimeout)
	port, err := serial.Open(cfg.Device, opts)
	if err != nil {
		return nil, fmt.Errorf("hostlink: open %s: %w", cfg.Device, err)
	}
	if err := configureRaw(port, cfg.BaudRate); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("hostlink: configure %s: %w", cfg.Device, err)
	}
	return port, nil
}

func configureRaw(port *serial.Port, baud uint32) error {
	attrs, err := port.GetAttr2()
	if err != nil {
		return err
	}
	attrs.MakeRaw()
	attrs.Cflag &^= serial.CBAUD | serial.CBAUDEX | serial.CSIZE | serial.PARENB | serial.CSTOPB
	attrs.Cflag |= serial.CS8 | serial.CREAD | serial.CLOCAL
	if speed, ok := stdSpeed(baud); ok {
		attrs.Cflag |= speed
	} else {
		attrs.SetCustomSpeed(baud)
	}
	return port.SetAttr2(serial.TCSANOW, attrs)
}

func stdSpeed(baud uint32) (serial.CFlag, bool) {
	switch baud {
	case 9600:
		return serial.B9600, true
	case 19200:
		return serial.B19200, true
	case 38400:
		return serial.B38400, true
	case 57600:
		return serial.B57600, true
	case 115200:
		return serial.B115200, true
	case 230400:
		return serial.B230400, true
	default:
		return 0, false
	}
}
