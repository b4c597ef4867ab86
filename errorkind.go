package plorth

import "fmt"

// ErrorKind classifies an Error value, per spec section 7.
type ErrorKind uint8

const (
	ErrUnknown ErrorKind = iota
	ErrSyntax
	ErrReference
	ErrType
	ErrValue
	ErrRange
	ErrImport
	ErrIO
)

func (kind ErrorKind) String() string {
	switch kind {
	case ErrSyntax:
		return "syntax error"
	case ErrReference:
		return "reference error"
	case ErrType:
		return "type error"
	case ErrValue:
		return "value error"
	case ErrRange:
		return "range error"
	case ErrImport:
		return "import error"
	case ErrIO:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// Error is the pair of (code, message), optionally positioned, that plorth
// uses to represent failures as first-class stack values. It is distinct
// from Go's error interface, which this package reserves for host-boundary
// failures (file I/O, panics escaping a native quote).
type Error struct {
	Code     ErrorKind
	Message  string
	Position Position
	hasPos   bool
}

// NewError builds an Error without source position information.
func NewError(code ErrorKind, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewPositionedError builds an Error carrying a source position.
func NewPositionedError(code ErrorKind, message string, pos Position) *Error {
	return &Error{Code: code, Message: message, Position: pos, hasPos: true}
}

// HasPosition reports whether the error carries source position information.
func (err *Error) HasPosition() bool { return err.hasPos }

func (err *Error) Kind() Kind { return KindError }

func (err *Error) Equal(other Value) bool {
	o, ok := other.(*Error)
	if !ok {
		return false
	}
	return err.Code == o.Code && err.Message == o.Message
}

func (err *Error) String() string {
	s := err.Code.String()
	if err.Message != "" {
		s += ": " + err.Message
	}
	return s
}

// Source renders a diagnostic-style placeholder; errors are not a literal
// construct a program can write, so there is no round-trippable form.
func (err *Error) Source() string {
	return "<" + err.String() + ">"
}

// Diagnostic formats the error the way the host prints it to stderr /
// the REPL: "filename:line:column: <kind> - <message>".
func (err *Error) Diagnostic() string {
	if err.hasPos && !err.Position.IsZero() {
		return fmt.Sprintf("%v: %v - %v", err.Position, err.Code, err.Message)
	}
	return fmt.Sprintf("%v - %v", err.Code, err.Message)
}
