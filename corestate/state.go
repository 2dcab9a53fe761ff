package corestate

// SharedState is the flat record of boolean toggles from spec §3/§4.8:
// which telemetry streams are enabled, calibration-in-progress,
// nav-calibrated, start-up-finished, auto-calibrate. Every field except
// CalibrationInProgress is owned by Core-D and only ever read by Core-T;
// CalibrationInProgress is the sole field both cores write, so it alone is
// backed by AtomicBool. Grounded on
// original_source/source/pico/carrt/PicoState.h/.cpp, whose anonymous
// namespace keeps exactly this split (one CAtomic<bool>, everything else
// plain Core0-owned statics).
type SharedState struct {
	sendQtrSecTimerMsgs  bool
	send1SecTimerMsgs    bool
	send8SecTimerMsgs    bool
	sendNavMsgs          bool
	sendNavStatusMsgs    bool
	sendEncoderMsgs      bool
	sendCalibrationMsgs  bool
	sendBatteryMsgs      bool
	startUpFinished      bool
	navCalibrated        bool
	autoCalibrateMode    bool
	calibrationInProgress *AtomicBool
}

// NewSharedState returns a SharedState with every toggle off.
func NewSharedState() *SharedState {
	return &SharedState{calibrationInProgress: NewAtomicBool(false)}
}

// Each setter returns the prior value, per spec §4.8 ("setters return the
// prior value so callers can observe edges without a second read").

func (s *SharedState) SendQtrSecTimerMsgs(v bool) bool {
	prior := s.sendQtrSecTimerMsgs
	s.sendQtrSecTimerMsgs = v
	return prior
}
func (s *SharedState) WantQtrSecTimerMsgs() bool { return s.sendQtrSecTimerMsgs }

func (s *SharedState) Send1SecTimerMsgs(v bool) bool {
	prior := s.send1SecTimerMsgs
	s.send1SecTimerMsgs = v
	return prior
}
func (s *SharedState) Want1SecTimerMsgs() bool { return s.send1SecTimerMsgs }

func (s *SharedState) Send8SecTimerMsgs(v bool) bool {
	prior := s.send8SecTimerMsgs
	s.send8SecTimerMsgs = v
	return prior
}
func (s *SharedState) Want8SecTimerMsgs() bool { return s.send8SecTimerMsgs }

func (s *SharedState) SendNavMsgs(v bool) bool {
	prior := s.sendNavMsgs
	s.sendNavMsgs = v
	return prior
}
func (s *SharedState) WantNavMsgs() bool { return s.sendNavMsgs }

func (s *SharedState) SendNavStatusMsgs(v bool) bool {
	prior := s.sendNavStatusMsgs
	s.sendNavStatusMsgs = v
	return prior
}
func (s *SharedState) WantNavStatusMsgs() bool { return s.sendNavStatusMsgs }

func (s *SharedState) SendEncoderMsgs(v bool) bool {
	prior := s.sendEncoderMsgs
	s.sendEncoderMsgs = v
	return prior
}
func (s *SharedState) WantEncoderMsgs() bool { return s.sendEncoderMsgs }

func (s *SharedState) SendCalibrationMsgs(v bool) bool {
	prior := s.sendCalibrationMsgs
	s.sendCalibrationMsgs = v
	return prior
}

// WantCalibrationMsgs reports whether calibration telemetry is enabled.
// The source has a tracked bug here (wantCalibrationMsgs() reads
// sSendEncoderMsgs instead of sSendCalibrationMsgs); this rewrite uses the
// evidently-intended field since the bug isn't one of the spec's named
// Open Questions.
func (s *SharedState) WantCalibrationMsgs() bool { return s.sendCalibrationMsgs }

func (s *SharedState) SendBatteryMsgs(v bool) bool {
	prior := s.sendBatteryMsgs
	s.sendBatteryMsgs = v
	return prior
}
func (s *SharedState) WantBatteryMsgs() bool { return s.sendBatteryMsgs }

func (s *SharedState) StartUpFinished(v bool) bool {
	prior := s.startUpFinished
	s.startUpFinished = v
	return prior
}
func (s *SharedState) IsStartUpFinished() bool { return s.startUpFinished }

func (s *SharedState) NavCalibrated(v bool) bool {
	prior := s.navCalibrated
	s.navCalibrated = v
	return prior
}
func (s *SharedState) IsNavCalibrated() bool { return s.navCalibrated }

// AutoCalibrateMode setters/getters. Carried per SPEC_FULL.md §11: when on,
// a navCalibrated loss schedules the delayed BNO055 re-init automatically
// rather than only on an explicit BNO055Reset event. See mcu/cored/handlers_event.go.
func (s *SharedState) AutoCalibrateMode(v bool) bool {
	prior := s.autoCalibrateMode
	s.autoCalibrateMode = v
	return prior
}
func (s *SharedState) IsAutoCalibrateMode() bool { return s.autoCalibrateMode }

// CalibrationInProgress is the one atomic flag; both cores may touch it.
func (s *SharedState) CalibrationInProgress(v bool) bool {
	return s.calibrationInProgress.Exchange(v)
}
func (s *SharedState) IsCalibrationInProgress() bool {
	return s.calibrationInProgress.Load()
}

// ApplyTelemetryMask sets every "send*" toggle from a single bitmask using
// the bit assignments in spec §6 (MsgControlMsg / TimerControl masks).
const (
	MaskQtrSecTimer byte = 0x01
	MaskOneSecTimer byte = 0x02
	MaskEightSecTimer byte = 0x04
	MaskNav         byte = 0x08
	MaskNavStatus   byte = 0x10
	MaskEncoder     byte = 0x20
	MaskCalibration byte = 0x40
	MaskBattery     byte = 0x80
)

func (s *SharedState) ApplyTelemetryMask(mask byte) {
	s.SendQtrSecTimerMsgs(mask&MaskQtrSecTimer != 0)
	s.Send1SecTimerMsgs(mask&MaskOneSecTimer != 0)
	s.Send8SecTimerMsgs(mask&MaskEightSecTimer != 0)
	s.SendNavMsgs(mask&MaskNav != 0)
	s.SendNavStatusMsgs(mask&MaskNavStatus != 0)
	s.SendEncoderMsgs(mask&MaskEncoder != 0)
	s.SendCalibrationMsgs(mask&MaskCalibration != 0)
	s.SendBatteryMsgs(mask&MaskBattery != 0)
}

// ApplyTimerMask sets only the three timer toggles, per TimerControl's
// narrower mask (spec §4.10).
func (s *SharedState) ApplyTimerMask(mask byte) {
	s.SendQtrSecTimerMsgs(mask&MaskQtrSecTimer != 0)
	s.Send1SecTimerMsgs(mask&MaskOneSecTimer != 0)
	s.Send8SecTimerMsgs(mask&MaskEightSecTimer != 0)
}
