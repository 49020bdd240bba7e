// Package errors provides structured error reporting for the controls library.
//
// The selection core itself never fails: coercion clamps instead of rejecting
// and every transition is total. Errors arise only at the edges, when theme or
// scene files are loaded, when a rendering host encodes output, or when an
// observer panics inside a change notification.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a theme or scene file that could not be used.
	KindConfig
	// KindParsing indicates malformed input data.
	KindParsing
	// KindRender indicates a rendering host failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindListener indicates a failure inside a change listener.
	KindListener
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindListener:
		return "listener"
	default:
		return "unknown"
	}
}

// ControlError represents a structured error raised around a control.
type ControlError struct {
	// Op is the operation that failed (e.g., "theme.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Path is the file involved, if any.
	Path string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ControlError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ControlError) Unwrap() error {
	return e.Err
}

// New returns a ControlError stamped with the current time.
func New(op string, kind ErrorKind, err error) *ControlError {
	return &ControlError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// WithPath returns a ControlError for a failure involving a file.
func WithPath(op string, kind ErrorKind, path string, err error) *ControlError {
	e := New(op, kind, err)
	e.Path = path
	return e
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "selection.Group.SelectedValue").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ControlError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
