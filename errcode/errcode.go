package errcode

// Code is a stable error identifier for the driver surface.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	InvalidParam   Code = "invalid_param"   // nil bus or out-of-range argument
	Interface      Code = "interface_error" // transport read/write failed
	IDMismatch     Code = "id_mismatch"     // chip identity check failed
	NotInitialized Code = "not_initialized" // operation before Init
	Condition      Code = "condition"       // operation illegal in current mode
	Busy           Code = "busy"            // measurement or NVM copy in progress

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
	if e.Op != "" {
		return string(e.C) + ": " + e.Op
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
