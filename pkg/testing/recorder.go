package testing

import "github.com/go-drift/controls/pkg/errors"

// Change is one recorded old/new pair.
type Change[T any] struct {
	Old T
	New T
}

// Recorder collects change notifications in arrival order.
type Recorder[T any] struct {
	changes []Change[T]
}

// NewRecorder creates an empty recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Record appends a change. Its signature matches change listeners so it can
// be registered directly.
func (r *Recorder[T]) Record(old, new T) {
	r.changes = append(r.changes, Change[T]{Old: old, New: new})
}

// Changes returns a copy of the recorded changes.
func (r *Recorder[T]) Changes() []Change[T] {
	return append([]Change[T](nil), r.changes...)
}

// Values returns the New side of every recorded change.
func (r *Recorder[T]) Values() []T {
	out := make([]T, len(r.changes))
	for i, c := range r.changes {
		out[i] = c.New
	}
	return out
}

// Len returns the number of recorded changes.
func (r *Recorder[T]) Len() int {
	return len(r.changes)
}

// Last returns the most recent change, or the zero Change when none exist.
func (r *Recorder[T]) Last() Change[T] {
	if len(r.changes) == 0 {
		return Change[T]{}
	}
	return r.changes[len(r.changes)-1]
}

// Reset discards recorded changes.
func (r *Recorder[T]) Reset() {
	r.changes = nil
}

// ErrorRecorder is an errors.ErrorHandler that keeps every report.
type ErrorRecorder struct {
	errs   []*errors.ControlError
	panics []*errors.PanicError
}

// NewErrorRecorder creates an empty ErrorRecorder.
func NewErrorRecorder() *ErrorRecorder {
	return &ErrorRecorder{}
}

// HandleError implements errors.ErrorHandler.
func (r *ErrorRecorder) HandleError(err *errors.ControlError) {
	r.errs = append(r.errs, err)
}

// HandlePanic implements errors.ErrorHandler.
func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.panics = append(r.panics, err)
}

// Errors returns the recorded errors.
func (r *ErrorRecorder) Errors() []*errors.ControlError {
	return append([]*errors.ControlError(nil), r.errs...)
}

// Panics returns the recorded panics.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	return append([]*errors.PanicError(nil), r.panics...)
}
