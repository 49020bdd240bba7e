package testing_test

import (
	"testing"

	"github.com/go-drift/controls/pkg/errors"
	drifttest "github.com/go-drift/controls/pkg/testing"
)

func TestRecorder(t *testing.T) {
	rec := drifttest.NewRecorder[int]()
	if got := rec.Last(); got != (drifttest.Change[int]{}) {
		t.Errorf("Last() on empty recorder = %+v", got)
	}
	rec.Record(0, 2)
	rec.Record(2, 3)
	if rec.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", rec.Len())
	}
	if got := rec.Last(); got.Old != 2 || got.New != 3 {
		t.Errorf("Last() = %+v", got)
	}
	if got := rec.Values(); len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("Values() = %v, want [2 3]", got)
	}
	changes := rec.Changes()
	changes[0].New = 99
	if rec.Changes()[0].New != 2 {
		t.Error("Changes() must return a copy")
	}
	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Len() after Reset = %d", rec.Len())
	}
}

func TestErrorRecorder(t *testing.T) {
	rec := drifttest.NewErrorRecorder()
	errors.SetHandler(rec)
	defer errors.SetHandler(nil)

	errors.Report(&errors.ControlError{Op: "theme.Load", Kind: errors.KindConfig})
	errors.Guard("listener", func() { panic("x") })

	if len(rec.Errors()) != 1 || rec.Errors()[0].Op != "theme.Load" {
		t.Errorf("Errors() = %+v", rec.Errors())
	}
	if len(rec.Panics()) != 1 {
		t.Errorf("Panics() = %+v", rec.Panics())
	}
}
