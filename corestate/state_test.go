package corestate

import "testing"

func TestSettersReturnPriorValue(t *testing.T) {
	s := NewSharedState()
	if prior := s.NavCalibrated(true); prior != false {
		t.Fatalf("expected prior=false, got %v", prior)
	}
	if prior := s.NavCalibrated(false); prior != true {
		t.Fatalf("expected prior=true, got %v", prior)
	}
}

func TestCalibrationInProgressIsAtomic(t *testing.T) {
	s := NewSharedState()
	if s.IsCalibrationInProgress() {
		t.Fatal("expected initial calibrationInProgress=false")
	}
	prior := s.CalibrationInProgress(true)
	if prior {
		t.Fatal("expected prior value false")
	}
	if !s.IsCalibrationInProgress() {
		t.Fatal("expected calibrationInProgress true after set")
	}
}

func TestApplyTelemetryMask(t *testing.T) {
	s := NewSharedState()
	s.ApplyTelemetryMask(MaskNav | MaskBattery)
	if !s.WantNavMsgs() || !s.WantBatteryMsgs() {
		t.Fatal("expected nav and battery toggles on")
	}
	if s.WantEncoderMsgs() || s.Want1SecTimerMsgs() {
		t.Fatal("expected unset bits to leave other toggles off")
	}
}

func TestCAtomicFetchOps(t *testing.T) {
	a := NewCAtomic(int32(5))
	if prior := a.FetchAdd(3); prior != 5 {
		t.Fatalf("expected prior 5, got %d", prior)
	}
	if got := a.Load(); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
	if a.IsAlwaysLockFree() {
		t.Fatal("expected IsAlwaysLockFree() == false")
	}
}
