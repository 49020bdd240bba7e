package errors

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

type testHandler struct {
	onError func(*ControlError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *ControlError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestControlErrorString(t *testing.T) {
	err := &ControlError{Op: "theme.Load", Kind: KindConfig, Err: fs.ErrNotExist}
	want := "theme.Load [config]: file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestControlErrorWithPath(t *testing.T) {
	err := WithPath("theme.Load", KindParsing, "dark.yaml", fs.ErrInvalid)
	if !strings.Contains(err.Error(), "path=dark.yaml") {
		t.Errorf("error string %q should contain path", err.Error())
	}
	if err.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if !stderrors.Is(err, fs.ErrInvalid) {
		t.Error("expected errors.Is to see the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindParsing, "parsing"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindListener, "listener"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err.Op = "selection.Group.OnSelectionChanged"
	if got, want := err.Error(), "panic in selection.Group.OnSelectionChanged: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *ControlError
	SetHandler(&testHandler{onError: func(err *ControlError) { captured = err }})
	defer SetHandler(nil)

	Report(&ControlError{Op: "scene.Load", Kind: KindConfig, Err: fs.ErrNotExist})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "scene.Load" {
		t.Errorf("Op = %q, want %q", captured.Op, "scene.Load")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	SetHandler(&testHandler{onError: func(*ControlError) { called = true }})
	defer SetHandler(nil)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("nil errors must not reach the handler")
	}
}

func TestGuard(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	if ok := Guard("listener", func() {}); !ok {
		t.Error("Guard() = false for a function that returned normally")
	}
	if captured != nil {
		t.Fatal("unexpected panic report")
	}

	if ok := Guard("listener", func() { panic("bad observer") }); ok {
		t.Error("Guard() = true for a panicking function")
	}
	if captured == nil {
		t.Fatal("expected panic to be reported")
	}
	if captured.Op != "listener" || captured.Value != "bad observer" {
		t.Errorf("captured = %+v", captured)
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&testHandler{})
	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("handler = %T, want *LogHandler", getHandler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&ControlError{Op: "preview.EncodePNG", Kind: KindRender, Err: fs.ErrClosed})
	if got, want := buf.String(), "[controls error] preview.EncodePNG: file already closed\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&ControlError{Op: "theme.Load", Kind: KindConfig, Path: "a.toml", Err: fs.ErrNotExist})
	if !strings.Contains(buf.String(), "[config] path=a.toml") {
		t.Errorf("verbose output = %q", buf.String())
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "op", Value: 1, StackTrace: "frame"})
	if !strings.Contains(buf.String(), "[controls panic] op: 1") || !strings.Contains(buf.String(), "Stack trace:") {
		t.Errorf("panic output = %q", buf.String())
	}
}
