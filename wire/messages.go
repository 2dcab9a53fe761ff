package wire

// ---- No-content variants (spec §4.10) ----

type PingMsg struct{ noContent }

func (m *PingMsg) ID() MsgID { return MsgPing }

type PingReplyMsg struct{ noContent }

func (m *PingReplyMsg) ID() MsgID { return MsgPingReply }

type PicoSaysStopMsg struct{ noContent }

func (m *PicoSaysStopMsg) ID() MsgID { return MsgPicoSaysStop }

type BeginCalibrationMsg struct{ noContent }

func (m *BeginCalibrationMsg) ID() MsgID { return MsgBeginCalibration }

type RequestCalibStatusMsg struct{ noContent }

func (m *RequestCalibStatusMsg) ID() MsgID { return MsgRequestCalibStatus }

type ResetPicoMsg struct{ noContent }

func (m *ResetPicoMsg) ID() MsgID { return MsgResetPico }

type ResetBNO055Msg struct{ noContent }

func (m *ResetBNO055Msg) ID() MsgID { return MsgResetBNO055 }

// ---- Boot handshake ----

// PicoReadyMsg{time: u32} announces MCU-B boot time.
type PicoReadyMsg struct {
	Base
	Time uint32
}

func (m *PicoReadyMsg) ID() MsgID { return MsgPicoReady }
func (m *PicoReadyMsg) ReadIn(t Transport) error {
	v, ok := readU32(t)
	if !ok {
		return truncated("PicoReady.Time")
	}
	m.Time = v
	m.setNeedsAction(true)
	return nil
}
func (m *PicoReadyMsg) SendOut(t Transport) error { writeU32(t, m.Time); return nil }

// ---- Nav status / calibration ----

// PicoNavStatusUpdateMsg{good:bool, mag,accel,gyro,system:u8}.
type PicoNavStatusUpdateMsg struct {
	Base
	Good   bool
	Mag    uint8
	Accel  uint8
	Gyro   uint8
	System uint8
}

func (m *PicoNavStatusUpdateMsg) ID() MsgID { return MsgPicoNavStatusUpdate }
func (m *PicoNavStatusUpdateMsg) ReadIn(t Transport) error {
	good, ok := readU8(t)
	if !ok {
		return truncated("PicoNavStatusUpdate.Good")
	}
	mag, ok := readU8(t)
	if !ok {
		return truncated("PicoNavStatusUpdate.Mag")
	}
	accel, ok := readU8(t)
	if !ok {
		return truncated("PicoNavStatusUpdate.Accel")
	}
	gyro, ok := readU8(t)
	if !ok {
		return truncated("PicoNavStatusUpdate.Gyro")
	}
	system, ok := readU8(t)
	if !ok {
		return truncated("PicoNavStatusUpdate.System")
	}
	m.Good, m.Mag, m.Accel, m.Gyro, m.System = u8ToBool(good), mag, accel, gyro, system
	m.setNeedsAction(true)
	return nil
}
func (m *PicoNavStatusUpdateMsg) SendOut(t Transport) error {
	writeU8(t, boolToU8(m.Good))
	writeU8(t, m.Mag)
	writeU8(t, m.Accel)
	writeU8(t, m.Gyro)
	writeU8(t, m.System)
	return nil
}

// CalibrationInfoUpdateMsg{mag,accel,gyro,system:u8}.
type CalibrationInfoUpdateMsg struct {
	Base
	Mag    uint8
	Accel  uint8
	Gyro   uint8
	System uint8
}

func (m *CalibrationInfoUpdateMsg) ID() MsgID { return MsgCalibrationInfoUpdate }
func (m *CalibrationInfoUpdateMsg) ReadIn(t Transport) error {
	mag, ok := readU8(t)
	if !ok {
		return truncated("CalibrationInfoUpdate.Mag")
	}
	accel, ok := readU8(t)
	if !ok {
		return truncated("CalibrationInfoUpdate.Accel")
	}
	gyro, ok := readU8(t)
	if !ok {
		return truncated("CalibrationInfoUpdate.Gyro")
	}
	system, ok := readU8(t)
	if !ok {
		return truncated("CalibrationInfoUpdate.System")
	}
	m.Mag, m.Accel, m.Gyro, m.System = mag, accel, gyro, system
	m.setNeedsAction(true)
	return nil
}
func (m *CalibrationInfoUpdateMsg) SendOut(t Transport) error {
	writeU8(t, m.Mag)
	writeU8(t, m.Accel)
	writeU8(t, m.Gyro)
	writeU8(t, m.System)
	return nil
}

// SetAutoCalibrateMsg{on:u8}.
type SetAutoCalibrateMsg struct {
	Base
	On uint8
}

func (m *SetAutoCalibrateMsg) ID() MsgID { return MsgSetAutoCalibrate }
func (m *SetAutoCalibrateMsg) ReadIn(t Transport) error {
	v, ok := readU8(t)
	if !ok {
		return truncated("SetAutoCalibrate.On")
	}
	m.On = v
	m.setNeedsAction(true)
	return nil
}
func (m *SetAutoCalibrateMsg) SendOut(t Transport) error { writeU8(t, m.On); return nil }

// ---- Telemetry control ----

// MsgControlMsg{mask:u8}: bitmask over all telemetry toggles (spec §6).
type MsgControlMsg struct {
	Base
	Mask uint8
}

func (m *MsgControlMsg) ID() MsgID { return MsgControl }
func (m *MsgControlMsg) ReadIn(t Transport) error {
	v, ok := readU8(t)
	if !ok {
		return truncated("MsgControl.Mask")
	}
	m.Mask = v
	m.setNeedsAction(true)
	return nil
}
func (m *MsgControlMsg) SendOut(t Transport) error { writeU8(t, m.Mask); return nil }

// TimerControlMsg{mask:u8}: subset of the telemetry mask, timer streams only.
type TimerControlMsg struct {
	Base
	Mask uint8
}

func (m *TimerControlMsg) ID() MsgID { return MsgTimerControl }
func (m *TimerControlMsg) ReadIn(t Transport) error {
	v, ok := readU8(t)
	if !ok {
		return truncated("TimerControl.Mask")
	}
	m.Mask = v
	m.setNeedsAction(true)
	return nil
}
func (m *TimerControlMsg) SendOut(t Transport) error { writeU8(t, m.Mask); return nil }

// ---- Timer telemetry ----

// Timer "which" encodings (spec §4.10).
const (
	TimerWhichQuarterSec uint8 = 1
	TimerWhichOneSec     uint8 = 4
	TimerWhichEightSec   uint8 = 32
)

// TimerEventMsg{which:u8, count:i32, time:u32}.
type TimerEventMsg struct {
	Base
	Which uint8
	Count int32
	Time  uint32
}

func (m *TimerEventMsg) ID() MsgID { return MsgTimerEvent }
func (m *TimerEventMsg) ReadIn(t Transport) error {
	which, ok := readU8(t)
	if !ok {
		return truncated("TimerEvent.Which")
	}
	count, ok := readI32(t)
	if !ok {
		return truncated("TimerEvent.Count")
	}
	tm, ok := readU32(t)
	if !ok {
		return truncated("TimerEvent.Time")
	}
	m.Which, m.Count, m.Time = which, count, tm
	m.setNeedsAction(true)
	return nil
}
func (m *TimerEventMsg) SendOut(t Transport) error {
	writeU8(t, m.Which)
	writeI32(t, m.Count)
	writeU32(t, m.Time)
	return nil
}

// ---- Nav update ----

// NavUpdateMsg{heading:f32, time:u32} — wire id TimerNavUpdate.
type NavUpdateMsg struct {
	Base
	Heading float32
	Time    uint32
}

func (m *NavUpdateMsg) ID() MsgID { return MsgTimerNavUpdate }
func (m *NavUpdateMsg) ReadIn(t Transport) error {
	h, ok := readF32(t)
	if !ok {
		return truncated("NavUpdate.Heading")
	}
	tm, ok := readU32(t)
	if !ok {
		return truncated("NavUpdate.Time")
	}
	m.Heading, m.Time = h, tm
	m.setNeedsAction(true)
	return nil
}
func (m *NavUpdateMsg) SendOut(t Transport) error {
	writeF32(t, m.Heading)
	writeU32(t, m.Time)
	return nil
}

// NavUpdateControlMsg{wantNav:u8, wantStatus:u8}.
type NavUpdateControlMsg struct {
	Base
	WantNav    uint8
	WantStatus uint8
}

func (m *NavUpdateControlMsg) ID() MsgID { return MsgNavUpdateControl }
func (m *NavUpdateControlMsg) ReadIn(t Transport) error {
	wn, ok := readU8(t)
	if !ok {
		return truncated("NavUpdateControl.WantNav")
	}
	ws, ok := readU8(t)
	if !ok {
		return truncated("NavUpdateControl.WantStatus")
	}
	m.WantNav, m.WantStatus = wn, ws
	m.setNeedsAction(true)
	return nil
}
func (m *NavUpdateControlMsg) SendOut(t Transport) error {
	writeU8(t, m.WantNav)
	writeU8(t, m.WantStatus)
	return nil
}

// ---- Driving / encoders ----

// DrivingStatusUpdateMsg{state:u8} with state in {Stopped,Fwd,Bkwd,Left,Right}.
type DrivingState uint8

const (
	DrivingStopped DrivingState = iota
	DrivingForward
	DrivingBackward
	DrivingLeft
	DrivingRight
)

type DrivingStatusUpdateMsg struct {
	Base
	State uint8
}

func (m *DrivingStatusUpdateMsg) ID() MsgID { return MsgDrivingStatusUpdate }
func (m *DrivingStatusUpdateMsg) ReadIn(t Transport) error {
	v, ok := readU8(t)
	if !ok {
		return truncated("DrivingStatusUpdate.State")
	}
	m.State = v
	m.setNeedsAction(true)
	return nil
}
func (m *DrivingStatusUpdateMsg) SendOut(t Transport) error { writeU8(t, m.State); return nil }

// EncoderSide distinguishes the two wheel encoders.
type EncoderSide uint8

const (
	EncoderLeftSide EncoderSide = iota
	EncoderRightSide
)

// EncoderUpdateMsg{side:u8, count:i32, time:u32}.
type EncoderUpdateMsg struct {
	Base
	Side  uint8
	Count int32
	Time  uint32
}

func (m *EncoderUpdateMsg) ID() MsgID { return MsgEncoderUpdate }
func (m *EncoderUpdateMsg) ReadIn(t Transport) error {
	side, ok := readU8(t)
	if !ok {
		return truncated("EncoderUpdate.Side")
	}
	count, ok := readI32(t)
	if !ok {
		return truncated("EncoderUpdate.Count")
	}
	tm, ok := readU32(t)
	if !ok {
		return truncated("EncoderUpdate.Time")
	}
	m.Side, m.Count, m.Time = side, count, tm
	m.setNeedsAction(true)
	return nil
}
func (m *EncoderUpdateMsg) SendOut(t Transport) error {
	writeU8(t, m.Side)
	writeI32(t, m.Count)
	writeU32(t, m.Time)
	return nil
}

// EncoderUpdateControlMsg{on:u8}.
type EncoderUpdateControlMsg struct {
	Base
	On uint8
}

func (m *EncoderUpdateControlMsg) ID() MsgID { return MsgEncoderUpdateControl }
func (m *EncoderUpdateControlMsg) ReadIn(t Transport) error {
	v, ok := readU8(t)
	if !ok {
		return truncated("EncoderUpdateControl.On")
	}
	m.On = v
	m.setNeedsAction(true)
	return nil
}
func (m *EncoderUpdateControlMsg) SendOut(t Transport) error { writeU8(t, m.On); return nil }

// ---- Battery ----

// BatteryWhich identifies which battery a request/update concerns.
type BatteryWhich uint8

const (
	BatteryIC BatteryWhich = iota
	BatteryMotor
	BatteryBoth
)

// BatteryLevelRequestMsg{which:u8}.
type BatteryLevelRequestMsg struct {
	Base
	Which uint8
}

func (m *BatteryLevelRequestMsg) ID() MsgID { return MsgBatteryLevelRequest }
func (m *BatteryLevelRequestMsg) ReadIn(t Transport) error {
	v, ok := readU8(t)
	if !ok {
		return truncated("BatteryLevelRequest.Which")
	}
	m.Which = v
	m.setNeedsAction(true)
	return nil
}
func (m *BatteryLevelRequestMsg) SendOut(t Transport) error { writeU8(t, m.Which); return nil }

// BatteryLevelUpdateMsg{which:u8, volts:f32}.
type BatteryLevelUpdateMsg struct {
	Base
	Which uint8
	Volts float32
}

func (m *BatteryLevelUpdateMsg) ID() MsgID { return MsgBatteryLevelUpdate }
func (m *BatteryLevelUpdateMsg) ReadIn(t Transport) error {
	which, ok := readU8(t)
	if !ok {
		return truncated("BatteryLevelUpdate.Which")
	}
	volts, ok := readF32(t)
	if !ok {
		return truncated("BatteryLevelUpdate.Volts")
	}
	m.Which, m.Volts = which, volts
	m.setNeedsAction(true)
	return nil
}
func (m *BatteryLevelUpdateMsg) SendOut(t Transport) error {
	writeU8(t, m.Which)
	writeF32(t, m.Volts)
	return nil
}

// BatteryLowAlertMsg{which:u8, volts:f32}.
type BatteryLowAlertMsg struct {
	Base
	Which uint8
	Volts float32
}

func (m *BatteryLowAlertMsg) ID() MsgID { return MsgBatteryLowAlert }
func (m *BatteryLowAlertMsg) ReadIn(t Transport) error {
	which, ok := readU8(t)
	if !ok {
		return truncated("BatteryLowAlert.Which")
	}
	volts, ok := readF32(t)
	if !ok {
		return truncated("BatteryLowAlert.Volts")
	}
	m.Which, m.Volts = which, volts
	m.setNeedsAction(true)
	return nil
}
func (m *BatteryLowAlertMsg) SendOut(t Transport) error {
	writeU8(t, m.Which)
	writeF32(t, m.Volts)
	return nil
}

// ---- Error reporting ----

// ErrorReportMsg{fatal:u8, code:i32, time:u32}. Code is always a structured
// error id (errcode package), per spec §7.
type ErrorReportMsg struct {
	Base
	Fatal uint8
	Code  int32
	Time  uint32
}

func (m *ErrorReportMsg) ID() MsgID { return MsgErrorReportFromPico }
func (m *ErrorReportMsg) ReadIn(t Transport) error {
	fatal, ok := readU8(t)
	if !ok {
		return truncated("ErrorReport.Fatal")
	}
	code, ok := readI32(t)
	if !ok {
		return truncated("ErrorReport.Code")
	}
	tm, ok := readU32(t)
	if !ok {
		return truncated("ErrorReport.Time")
	}
	m.Fatal, m.Code, m.Time = fatal, code, tm
	m.setNeedsAction(true)
	return nil
}
func (m *ErrorReportMsg) SendOut(t Transport) error {
	writeU8(t, m.Fatal)
	writeI32(t, m.Code)
	writeU32(t, m.Time)
	return nil
}

// ---- Test / debug variants ----

// TestPicoErrorRptMsg{fatal:u8, code:i32}.
type TestPicoErrorRptMsg struct {
	Base
	Fatal uint8
	Code  int32
}

func (m *TestPicoErrorRptMsg) ID() MsgID { return MsgTestPicoReportError }
func (m *TestPicoErrorRptMsg) ReadIn(t Transport) error {
	fatal, ok := readU8(t)
	if !ok {
		return truncated("TestPicoErrorRpt.Fatal")
	}
	code, ok := readI32(t)
	if !ok {
		return truncated("TestPicoErrorRpt.Code")
	}
	m.Fatal, m.Code = fatal, code
	m.setNeedsAction(true)
	return nil
}
func (m *TestPicoErrorRptMsg) SendOut(t Transport) error {
	writeU8(t, m.Fatal)
	writeI32(t, m.Code)
	return nil
}

// TestPicoMessagesMsg{id:u8}.
type TestPicoMessagesMsg struct {
	Base
	MsgIDField uint8
}

func (m *TestPicoMessagesMsg) ID() MsgID { return MsgTestPicoMessages }
func (m *TestPicoMessagesMsg) ReadIn(t Transport) error {
	v, ok := readU8(t)
	if !ok {
		return truncated("TestPicoMessages.Id")
	}
	m.MsgIDField = v
	m.setNeedsAction(true)
	return nil
}
func (m *TestPicoMessagesMsg) SendOut(t Transport) error { writeU8(t, m.MsgIDField); return nil }

// PicoReceivedTestMsg{id:u8}.
type PicoReceivedTestMsg struct {
	Base
	MsgIDField uint8
}

func (m *PicoReceivedTestMsg) ID() MsgID { return MsgPicoReceivedTestMsg }
func (m *PicoReceivedTestMsg) ReadIn(t Transport) error {
	v, ok := readU8(t)
	if !ok {
		return truncated("PicoReceivedTest.Id")
	}
	m.MsgIDField = v
	m.setNeedsAction(true)
	return nil
}
func (m *PicoReceivedTestMsg) SendOut(t Transport) error { writeU8(t, m.MsgIDField); return nil }

// DebugLinkMsg{i:i32, b:u8, f:f32, u:u32} exercises all four field widths
// in one message, for link self-test.
type DebugLinkMsg struct {
	Base
	I int32
	B uint8
	F float32
	U uint32
}

func (m *DebugLinkMsg) ID() MsgID { return MsgDebugSerialLink }
func (m *DebugLinkMsg) ReadIn(t Transport) error {
	i, ok := readI32(t)
	if !ok {
		return truncated("DebugLink.I")
	}
	b, ok := readU8(t)
	if !ok {
		return truncated("DebugLink.B")
	}
	f, ok := readF32(t)
	if !ok {
		return truncated("DebugLink.F")
	}
	u, ok := readU32(t)
	if !ok {
		return truncated("DebugLink.U")
	}
	m.I, m.B, m.F, m.U = i, b, f, u
	m.setNeedsAction(true)
	return nil
}
func (m *DebugLinkMsg) SendOut(t Transport) error {
	writeI32(t, m.I)
	writeU8(t, m.B)
	writeF32(t, m.F)
	writeU32(t, m.U)
	return nil
}
