package wire

import (
	"carrt/errcode"
)

// Constructor builds a fresh, zero-valued Message for a given id.
type Constructor func() Message

// Registry is the process-wide id -> constructor map from spec §4.3.
// Registration happens once at startup; lookup at decode time is O(1).
// Re-registering an id is a hard error, grounded on
// services/hal/registry.go's RegisterBuilder (panic on duplicate) and on
// MessageFactory::registerMessage's CarrtError(kSerialMsgDupeError) — this
// rewrite returns the error rather than panicking, since registration
// happens during ordinary startup wiring where a caller can decide how to
// fail.
type Registry struct {
	ctor          [int(msgCount)]Constructor
	registered    [int(msgCount)]bool
	anyRegistered bool
}

func NewRegistry() *Registry { return &Registry{} }

// Register binds id to ctor. Either side may register only the ids it
// expects to receive; outbound-only ids need not be registered.
func (r *Registry) Register(id MsgID, ctor Constructor) error {
	if int(id) >= len(r.ctor) {
		return errcode.NewCarrtError(
			errcode.MakeSharedErrorID(errcode.ModuleSerialMessage, 1, int32(id)),
			false, "wire: id out of range for registration")
	}
	if r.registered[id] {
		return errcode.NewCarrtError(
			errcode.MakeSharedErrorID(errcode.ModuleSerialMessage, 1, int32(id)),
			false, "wire: duplicate registration for "+id.String())
	}
	r.ctor[id] = ctor
	r.registered[id] = true
	r.anyRegistered = true
	return nil
}

// Create constructs the message registered for id. If nothing has ever been
// registered, it returns DumpByteMsg (distinct from "id not found in a
// populated registry"). If id has no registration, it returns UnknownMsg
// carrying a structured error id. If the constructed message's own ID()
// disagrees with id, registration is misconfigured and Create fails fast.
func (r *Registry) Create(id MsgID) (Message, error) {
	if !r.anyRegistered {
		return &DumpByteMsg{}, nil
	}
	if int(id) >= len(r.ctor) || !r.registered[id] {
		code := errcode.MakeSharedErrorID(errcode.ModuleSerialMessage, 2, int32(id))
		return NewUnknownMsg(id, code), nil
	}
	m := r.ctor[id]()
	if m.ID() != id {
		return nil, errcode.NewCarrtError(
			errcode.MakeSharedErrorID(errcode.ModuleSerialMessage, 3, int32(id)),
			false, "wire: constructor built a message whose ID() disagrees with its registered id")
	}
	return m, nil
}

// RegisterAll is a convenience for registering the full 27-message family
// at once (a node that wants to receive everything, e.g. for tests).
func RegisterAll(r *Registry) error {
	ctors := map[MsgID]Constructor{
		MsgPing:                  func() Message { return &PingMsg{} },
		MsgPingReply:             func() Message { return &PingReplyMsg{} },
		MsgPicoReady:             func() Message { return &PicoReadyMsg{} },
		MsgPicoNavStatusUpdate:   func() Message { return &PicoNavStatusUpdateMsg{} },
		MsgPicoSaysStop:          func() Message { return &PicoSaysStopMsg{} },
		MsgControl:               func() Message { return &MsgControlMsg{} },
		MsgResetPico:             func() Message { return &ResetPicoMsg{} },
		MsgTimerEvent:            func() Message { return &TimerEventMsg{} },
		MsgTimerControl:          func() Message { return &TimerControlMsg{} },
		MsgBeginCalibration:      func() Message { return &BeginCalibrationMsg{} },
		MsgRequestCalibStatus:    func() Message { return &RequestCalibStatusMsg{} },
		MsgCalibrationInfoUpdate: func() Message { return &CalibrationInfoUpdateMsg{} },
		MsgSetAutoCalibrate:      func() Message { return &SetAutoCalibrateMsg{} },
		MsgResetBNO055:           func() Message { return &ResetBNO055Msg{} },
		MsgTimerNavUpdate:        func() Message { return &NavUpdateMsg{} },
		MsgNavUpdateControl:      func() Message { return &NavUpdateControlMsg{} },
		MsgDrivingStatusUpdate:   func() Message { return &DrivingStatusUpdateMsg{} },
		MsgEncoderUpdate:         func() Message { return &EncoderUpdateMsg{} },
		MsgEncoderUpdateControl:  func() Message { return &EncoderUpdateControlMsg{} },
		MsgBatteryLevelRequest:   func() Message { return &BatteryLevelRequestMsg{} },
		MsgBatteryLevelUpdate:    func() Message { return &BatteryLevelUpdateMsg{} },
		MsgBatteryLowAlert:       func() Message { return &BatteryLowAlertMsg{} },
		MsgErrorReportFromPico:   func() Message { return &ErrorReportMsg{} },
		MsgTestPicoReportError:   func() Message { return &TestPicoErrorRptMsg{} },
		MsgTestPicoMessages:      func() Message { return &TestPicoMessagesMsg{} },
		MsgPicoReceivedTestMsg:   func() Message { return &PicoReceivedTestMsg{} },
		MsgDebugSerialLink:       func() Message { return &DebugLinkMsg{} },
	}
	for id := MsgPing; id < msgCount; id++ {
		if err := r.Register(id, ctors[id]); err != nil {
			return err
		}
	}
	return nil
}
