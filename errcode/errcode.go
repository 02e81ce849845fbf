package errcode

// Code is a stable, log-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK          Code = "ok"
	Unsupported Code = "unsupported"

	// Ordered initialisation
	InvalidLevel    Code = "invalid_level"
	InvalidPriority Code = "invalid_priority"
	NilRoutine      Code = "nil_routine"
	TableSealed     Code = "table_sealed"
	AlreadyRan      Code = "already_ran"

	// Interrupts
	UnknownIRQ Code = "unknown_irq"
	NoHandler  Code = "no_handler"

	// Pads
	UnknownPad Code = "unknown_pad"

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

// Status maps a code to the integer status returned by init routines.
// OK is 0; everything else is a small negative number, stable per code.
func Status(c Code) int {
	switch c {
	case OK:
		return 0
	case Unsupported:
		return -1
	case InvalidLevel:
		return -2
	case InvalidPriority:
		return -3
	case NilRoutine:
		return -4
	case TableSealed:
		return -5
	case AlreadyRan:
		return -6
	case UnknownIRQ:
		return -7
	case NoHandler:
		return -8
	case UnknownPad:
		return -9
	}
	return -127
}

// FromStatus is the inverse of Status for known values.
func FromStatus(rc int) Code {
	for _, c := range []Code{OK, Unsupported, InvalidLevel, InvalidPriority, NilRoutine,
		TableSealed, AlreadyRan, UnknownIRQ, NoHandler, UnknownPad} {
		if Status(c) == rc {
			return c
		}
	}
	return Error
}
