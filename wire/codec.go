package wire

import (
	"encoding/binary"
	"math"
)

// Field helpers implement the RawMessage<TheData> byte layout from spec
// §4.1/§6: u8 as one byte, i32/u32/f32 as four little-endian bytes, floats
// IEEE-754 single precision. The codec never frames, checksums, or escapes;
// a concrete message's ReadIn/SendOut calls these in declaration order.

func readU8(t Transport) (uint8, bool) {
	b, ok := t.GetByte()
	return b, ok
}

func readI32(t Transport) (int32, bool) {
	b, ok := t.Get4Bytes()
	if !ok {
		return 0, false
	}
	return int32(binary.LittleEndian.Uint32(b[:])), true
}

func readU32(t Transport) (uint32, bool) {
	b, ok := t.Get4Bytes()
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b[:]), true
}

func readF32(t Transport) (float32, bool) {
	b, ok := t.Get4Bytes()
	if !ok {
		return 0, false
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b[:])), true
}

func writeU8(t Transport, v uint8) { t.PutByte(v) }

func writeI32(t Transport, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	t.Put4Bytes(b)
}

func writeU32(t Transport, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	t.Put4Bytes(b)
}

func writeF32(t Transport, v float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	t.Put4Bytes(b)
}

func boolToU8(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func u8ToBool(v uint8) bool { return v != 0 }

// errTruncated is returned by ReadIn when a bounded-retry read fails,
// indicating a truncated frame (spec §4.2, §7 Transport errors).
type errTruncated struct{ field string }

func (e *errTruncated) Error() string { return "wire: truncated frame reading " + e.field }

func truncated(field string) error { return &errTruncated{field: field} }
