package scene_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-drift/controls/cmd/controls/internal/scene"
	"github.com/go-drift/controls/pkg/controls"
	controlerrors "github.com/go-drift/controls/pkg/errors"
	"github.com/go-drift/controls/pkg/graphics"
	"github.com/go-drift/controls/pkg/selection"
	"github.com/go-drift/controls/pkg/theme"
)

func TestLoadRadioScene(t *testing.T) {
	s, err := scene.Load(filepath.Join("testdata", "radio.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	built, err := s.Build(theme.DefaultLightTheme())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	p := built.Panel
	if p == nil || built.ThreeWay != nil {
		t.Fatalf("Build() = %+v, want a panel", built)
	}
	if built.Title != "Transport" {
		t.Errorf("Title = %q", built.Title)
	}

	// The disabled Train button ignores its scripted activation.
	if p.SelectedValue() != 2 {
		t.Errorf("SelectedValue = %d, want 2", p.SelectedValue())
	}
	checked := 0
	for _, b := range p.Buttons() {
		if b.IsChecked() {
			checked++
			if b.Label() != "Bike" {
				t.Errorf("checked button = %q, want Bike", b.Label())
			}
		}
	}
	if checked != 1 {
		t.Errorf("checked buttons = %d, want 1", checked)
	}
	if p.Orientation() != controls.Horizontal || p.TemplateStyle() != selection.VariantUnderline {
		t.Errorf("orientation %v template %v", p.Orientation(), p.TemplateStyle())
	}
	if b, _ := p.Button(1); b.UnderlineHeight() != 3 {
		t.Errorf("UnderlineHeight = %v, want 3", b.UnderlineHeight())
	}
}

func TestLoadThreeWayScene(t *testing.T) {
	s, err := scene.Load(filepath.Join("testdata", "threeway.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	built, err := s.Build(nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	tw := built.ThreeWay
	if tw == nil {
		t.Fatal("Build() did not produce a three-way selector")
	}
	if tw.State() != controls.On {
		t.Errorf("State = %v, want on", tw.State())
	}
	if tw.Geometry() != controls.DeriveGeometry(10) {
		t.Errorf("Geometry = %+v", tw.Geometry())
	}
	if tw.SelectorWidth() != 36 || tw.BorderThickness() != -2 {
		t.Errorf("width %v border %v", tw.SelectorWidth(), tw.BorderThickness())
	}
	if tw.StateColor(controls.On) != graphics.RGB(0x2E, 0x7D, 0x32) {
		t.Errorf("On color = %s", tw.StateColor(controls.On).Hex())
	}
}

func TestParseDefaultsToRadio(t *testing.T) {
	s, err := scene.Parse([]byte("buttons:\n  - value: 0\n  - value: 1\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Kind != scene.KindRadio {
		t.Errorf("Kind = %q, want radio", s.Kind)
	}
	built, err := s.Build(nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if b, _ := built.Panel.Button(0); !b.IsChecked() {
		t.Error("zero-valued button should start checked")
	}
}

func TestSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind controlerrors.ErrorKind
	}{
		{"unknown key", "kind: radio\nbogus: 1\n", controlerrors.KindParsing},
		{"unknown kind", "kind: slider\n", controlerrors.KindConfig},
		{"bad template", "template: fancy\n", controlerrors.KindConfig},
		{"bad orientation", "orientation: diagonal\n", controlerrors.KindConfig},
		{"missing activation target", "buttons:\n  - value: 1\nactivate: [4]\n", controlerrors.KindConfig},
		{"bad state", "kind: threeway\nstate: maybe\n", controlerrors.KindConfig},
		{"bad color", "kind: threeway\ncolors:\n  on: nope\n", controlerrors.KindConfig},
		{"bad color key", "kind: threeway\ncolors:\n  up: \"#FFFFFF\"\n", controlerrors.KindConfig},
		{"bad press", "kind: threeway\npress: [sideways]\n", controlerrors.KindConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := scene.Parse([]byte(tt.data))
			if err == nil {
				_, err = s.Build(nil)
			}
			var ce *controlerrors.ControlError
			if !errors.As(err, &ce) {
				t.Fatalf("error = %v, want *ControlError", err)
			}
			if ce.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", ce.Kind, tt.kind)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := scene.Load(path)
	var ce *controlerrors.ControlError
	if !errors.As(err, &ce) || ce.Path != path {
		t.Errorf("Load() error = %v, want ControlError with path", err)
	}
}
