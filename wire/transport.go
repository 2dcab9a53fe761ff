package wire

import (
	"io"
	"time"
)

// Transport is the SerialLink contract from spec §4.2: a non-blocking id
// probe, bounded-retry body reads, and blocking writes.
type Transport interface {
	// TryGetID is non-blocking: it returns the next id byte if one is
	// already available, else (0, false). It does not consume body bytes.
	TryGetID() (MsgID, bool)

	// GetByte and Get4Bytes are bounded-retry reads used only after a
	// successful TryGetID while reading a message body. Each retries with
	// small sleeps up to a fixed attempt cap; false indicates a truncated
	// frame.
	GetByte() (byte, bool)
	Get4Bytes() ([4]byte, bool)

	// PutByte, Put4Bytes, PutBytes are blocking writes.
	PutByte(b byte)
	Put4Bytes(b [4]byte)
	PutBytes(b []byte)
}

// Default bounded-retry parameters, grounded on
// original_source/source/pico/drivers/SerialLinkPico.cpp's
// kMaxReadAttempts=16 / kSmallPause=50us.
const (
	DefaultMaxAttempts = 16
	DefaultRetryPause  = 50 * time.Microsecond
)

// Link is a Transport backed by any non-blocking-capable io.ReadWriter: a
// real UART (tinygo-uartx on MCU-B, goserial on SBC-A) configured for
// non-blocking reads, or an in-memory buffer for tests. TryGetID performs a
// single non-blocking probe (no retry sleep); GetByte/Get4Bytes retry up to
// MaxAttempts times with RetryPause between attempts, matching
// SerialLinkPico's getByte()/get4Bytes() exactly.
type Link struct {
	rw          io.ReadWriter
	MaxAttempts int
	RetryPause  time.Duration
}

// NewLink wraps rw with the spec-default retry parameters.
func NewLink(rw io.ReadWriter) *Link {
	return &Link{rw: rw, MaxAttempts: DefaultMaxAttempts, RetryPause: DefaultRetryPause}
}

func (l *Link) readByte(attempts int) (byte, bool) {
	var buf [1]byte
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		n, err := l.rw.Read(buf[:])
		if n == 1 {
			return buf[0], true
		}
		if err != nil && err != io.EOF {
			return 0, false
		}
		if i < attempts-1 {
			time.Sleep(l.pause())
		}
	}
	return 0, false
}

func (l *Link) pause() time.Duration {
	if l.RetryPause > 0 {
		return l.RetryPause
	}
	return DefaultRetryPause
}

func (l *Link) attemptCap() int {
	if l.MaxAttempts > 0 {
		return l.MaxAttempts
	}
	return DefaultMaxAttempts
}

func (l *Link) TryGetID() (MsgID, bool) {
	b, ok := l.readByte(1)
	if !ok {
		return 0, false
	}
	return MsgID(b), true
}

func (l *Link) GetByte() (byte, bool) {
	return l.readByte(l.attemptCap())
}

func (l *Link) Get4Bytes() ([4]byte, bool) {
	var out [4]byte
	for i := 0; i < 4; i++ {
		b, ok := l.readByte(l.attemptCap())
		if !ok {
			return out, false
		}
		out[i] = b
	}
	return out, true
}

func (l *Link) PutByte(b byte) {
	_, _ = l.rw.Write([]byte{b})
}

func (l *Link) Put4Bytes(b [4]byte) {
	l.PutBytes(b[:])
}

func (l *Link) PutBytes(b []byte) {
	for len(b) > 0 {
		n, err := l.rw.Write(b)
		if n > 0 {
			b = b[n:]
		}
		if err != nil {
			return
		}
	}
}
