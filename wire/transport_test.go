package wire

import (
	"bytes"
	"testing"
	"time"
)

func TestTryGetIDNonBlockingOnEmpty(t *testing.T) {
	l := NewLink(&bytes.Buffer{})
	if _, ok := l.TryGetID(); ok {
		t.Fatal("expected TryGetID on empty buffer to report false immediately")
	}
}

func TestTryGetIDReturnsAvailableByte(t *testing.T) {
	l := NewLink(bytes.NewBuffer([]byte{byte(MsgPing)}))
	id, ok := l.TryGetID()
	if !ok || id != MsgPing {
		t.Fatalf("got id=%v ok=%v", id, ok)
	}
}

func TestGet4BytesTruncatedFrame(t *testing.T) {
	l := NewLink(bytes.NewBuffer([]byte{0x01, 0x02})) // only 2 of 4 bytes
	l.RetryPause = time.Microsecond
	l.MaxAttempts = 2
	if _, ok := l.Get4Bytes(); ok {
		t.Fatal("expected truncated 4-byte read to fail")
	}
}

func TestPutBytesWritesInOrder(t *testing.T) {
	var buf bytes.Buffer
	l := NewLink(&buf)
	l.PutByte(0xAB)
	l.Put4Bytes([4]byte{1, 2, 3, 4})
	want := []byte{0xAB, 1, 2, 3, 4}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % X want % X", buf.Bytes(), want)
	}
}
