package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInput    ErrKind = iota // session root is not a plain associative structure
	ErrKindConfig                  // an adapter option resolved to something non-callable
	ErrKindArgument                // a call-time argument of an unsupported kind
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so wrapped errors built with
// Wrap* constructors satisfy errors.Is against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels returned (possibly wrapped with detail) by session construction
// and query invocation.
var (
	// ErrInvalidInput indicates the session root is not a plain object.
	ErrInvalidInput = &Error{Kind: ErrKindInput, Msg: "invalid input: expected an object"}
	// ErrInvalidConfig indicates an adapter override is not callable.
	ErrInvalidConfig = &Error{Kind: ErrKindConfig, Msg: "invalid adapter configuration"}
	// ErrInvalidArgument indicates an argument of an unsupported kind.
	ErrInvalidArgument = &Error{Kind: ErrKindArgument, Msg: "invalid argument"}
)

// NewInputError builds an input error with detail.
func NewInputError(msg string) *Error {
	return &Error{Kind: ErrKindInput, Msg: msg}
}

// NewConfigError builds a config error naming the offending option.
func NewConfigError(option string) *Error {
	return &Error{Kind: ErrKindConfig, Msg: "invalid adapter configuration: " + option + " is not a function"}
}

// NewArgumentError builds an argument error with detail.
func NewArgumentError(msg string) *Error {
	return &Error{Kind: ErrKindArgument, Msg: msg}
}
