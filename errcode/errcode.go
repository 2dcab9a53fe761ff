// Package errcode carries two distinct error identifier schemes used across
// the CARRT core:
//
//   - Code: a lightweight, in-process sentinel (not wire-facing) used by
//     halio/mcu/host for local conditions like "not ready" or "unsupported".
//   - the structured int32 id in structured.go, which IS wire-facing: it is
//     what travels inside ErrorReportMsg.Code per spec §4.11/§7.
package errcode

// Code is a stable, local error identifier. It is a string newtype,
// comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Busy          Code = "busy"
	Unsupported   Code = "unsupported"
	InvalidParams Code = "invalid_params"
	NotReady      Code = "not_ready"
	Timeout       Code = "timeout"

	NoValidRange Code = "no_valid_range" // lidar out-of-range (spec §7 Application errors)
	BadBatteryID Code = "bad_battery_id"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// MapDriverErr maps low-level driver errors to a Code.
// Extend the heuristics per platform/driver.
func MapDriverErr(err error) Code {
	if err == nil {
		return OK
	}
	return Error
}
