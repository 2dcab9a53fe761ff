// Package wire implements the binary, self-delimiting serial link protocol
// shared by MCU-B and SBC-A: the RawMessage-style codec, the SerialLink
// transport contract, and the message registry/factory (spec §4.1-§4.3,
// §6). Grounded on original_source/source/shared/SerialMessage{s,Processor}
// .h/.cpp for the authoritative Message family (see DESIGN.md Open Question
// 1) and on services/hal/registry.go for the hard-error-on-duplicate
// registration contract.
package wire

// MsgID is the one-byte wire identifier. The ordered enumeration below is
// the authoritative list from spec §6: a dense 0-based enum over that
// order, plus MsgUnknown = 0xFF and a one-past-the-last count sentinel.
// Ids are stable across versions: appending is fine, renumbering is not.
type MsgID uint8

const (
	MsgPing MsgID = iota
	MsgPingReply
	MsgPicoReady
	MsgPicoNavStatusUpdate
	MsgPicoSaysStop
	MsgControl
	MsgResetPico
	MsgTimerEvent
	MsgTimerControl
	MsgBeginCalibration
	MsgRequestCalibStatus
	MsgCalibrationInfoUpdate
	MsgSetAutoCalibrate
	MsgResetBNO055
	MsgTimerNavUpdate
	MsgNavUpdateControl
	MsgDrivingStatusUpdate
	MsgEncoderUpdate
	MsgEncoderUpdateControl
	MsgBatteryLevelRequest
	MsgBatteryLevelUpdate
	MsgBatteryLowAlert
	MsgErrorReportFromPico
	MsgTestPicoReportError
	MsgTestPicoMessages
	MsgPicoReceivedTestMsg
	MsgDebugSerialLink

	msgCount // kCountOfMsgIds: one past the last real id
)

// MsgCount is the exported sentinel one past the last real id (27).
const MsgCount = msgCount

// MsgUnknown is the reserved id for messages that decode with no matching
// registration.
const MsgUnknown MsgID = 0xFF

// msgNames is used only for diagnostics (error reports, logs); it carries
// no wire meaning.
var msgNames = [...]string{
	MsgPing:                  "Ping",
	MsgPingReply:             "PingReply",
	MsgPicoReady:             "PicoReady",
	MsgPicoNavStatusUpdate:   "PicoNavStatusUpdate",
	MsgPicoSaysStop:          "PicoSaysStop",
	MsgControl:               "MsgControl",
	MsgResetPico:             "ResetPico",
	MsgTimerEvent:            "TimerEvent",
	MsgTimerControl:          "TimerControl",
	MsgBeginCalibration:      "BeginCalibration",
	MsgRequestCalibStatus:    "RequestCalibStatus",
	MsgCalibrationInfoUpdate: "CalibrationInfoUpdate",
	MsgSetAutoCalibrate:      "SetAutoCalibrate",
	MsgResetBNO055:           "ResetBNO055",
	MsgTimerNavUpdate:        "TimerNavUpdate",
	MsgNavUpdateControl:      "NavUpdateControl",
	MsgDrivingStatusUpdate:   "DrivingStatusUpdate",
	MsgEncoderUpdate:         "EncoderUpdate",
	MsgEncoderUpdateControl:  "EncoderUpdateControl",
	MsgBatteryLevelRequest:   "BatteryLevelRequest",
	MsgBatteryLevelUpdate:    "BatteryLevelUpdate",
	MsgBatteryLowAlert:       "BatteryLowAlert",
	MsgErrorReportFromPico:   "ErrorReportFromPico",
	MsgTestPicoReportError:   "TestPicoReportError",
	MsgTestPicoMessages:      "TestPicoMessages",
	MsgPicoReceivedTestMsg:   "PicoReceivedTestMsg",
	MsgDebugSerialLink:       "DebugSerialLink",
}

func (id MsgID) String() string {
	if id == MsgUnknown {
		return "Unknown"
	}
	if int(id) < len(msgNames) && msgNames[id] != "" {
		return msgNames[id]
	}
	return "?"
}
