package errcode

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	id := MakePicoErrorID(ModuleMulticore, 1, 2)
	node, module, fn, cause := Unpack(id)
	if node != NodePico {
		t.Errorf("node = %v, want NodePico", node)
	}
	if module != ModuleMulticore {
		t.Errorf("module = %v, want ModuleMulticore", module)
	}
	if fn != 1 {
		t.Errorf("fn = %v, want 1", fn)
	}
	if cause != 2 {
		t.Errorf("cause = %v, want 2", cause)
	}
}

func TestMakeRpi0ErrorIDDistinctFromPico(t *testing.T) {
	pico := MakePicoErrorID(ModuleI2c, 1, 1)
	rpi0 := MakeRpi0ErrorID(ModuleI2c, 1, 1)
	if pico == rpi0 {
		t.Fatal("expected pico and rpi0 ids to differ by node prefix")
	}
	nodeP, _, _, _ := Unpack(pico)
	nodeR, _, _, _ := Unpack(rpi0)
	if nodeP != NodePico || nodeR != NodeRpi0 {
		t.Fatalf("unexpected node prefixes: pico=%v rpi0=%v", nodeP, nodeR)
	}
}

func TestNegativeCauseRoundTrips(t *testing.T) {
	id := MakeSharedErrorID(ModuleSerialMessage, 1, -1)
	_, _, _, cause := Unpack(id)
	if cause != -1 {
		t.Errorf("cause = %d, want -1", cause)
	}
}
