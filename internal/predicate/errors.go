package predicate

import "errors"

// Causes attached to a False result. None of them is surfaced as a process
// error; callers may log them.
var (
	ErrNoMetadata  = errors.New("metadata unavailable")
	ErrUnparseable = errors.New("operand does not parse")
	ErrUnreachable = errors.New("endpoint unreachable")
	ErrUnset       = errors.New("variable unset or empty")
	ErrUnsupported = errors.New("unsupported on this platform")
	ErrUnknownVerb = errors.New("unknown verb")
)
