// Package scene loads the YAML scene files the controls CLI renders and
// hosts. A scene describes one control, its style, and a script of
// activations replayed after construction.
package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/controls/pkg/controls"
	"github.com/go-drift/controls/pkg/errors"
	"github.com/go-drift/controls/pkg/graphics"
	"github.com/go-drift/controls/pkg/theme"
)

// Kinds of control a scene can describe.
const (
	KindRadio    = "radio"
	KindThreeWay = "threeway"
)

// Scene is the decoded form of a scene file.
type Scene struct {
	Kind  string `yaml:"kind"`
	Title string `yaml:"title,omitempty"`

	// Radio panel.
	Orientation     string   `yaml:"orientation,omitempty"`
	Template        string   `yaml:"template,omitempty"`
	CornerRadius    *float64 `yaml:"cornerRadius,omitempty"`
	UnderlineHeight *float64 `yaml:"underlineHeight,omitempty"`
	Selected        int      `yaml:"selected,omitempty"`
	Buttons         []Button `yaml:"buttons,omitempty"`
	Activate        []int    `yaml:"activate,omitempty"`

	// Three-way selector.
	State           string            `yaml:"state,omitempty"`
	SelectorWidth   *float64          `yaml:"selectorWidth,omitempty"`
	BorderThickness *float64          `yaml:"borderThickness,omitempty"`
	Colors          map[string]string `yaml:"colors,omitempty"`
	Press           []string          `yaml:"press,omitempty"`
}

// Button is one radio button of a scene.
type Button struct {
	Value    int    `yaml:"value"`
	Label    string `yaml:"label,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Built holds the control a scene produced. Exactly one field is set.
type Built struct {
	Title    string
	Panel    *controls.RadioButtonPanel
	ThreeWay *controls.ThreeWay
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithPath("scene.Load", errors.KindConfig, path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.WithPath("scene.Load", errors.KindParsing, path, err)
	}
	return s, nil
}

// Parse decodes a scene. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.New("scene.Parse", errors.KindParsing, err)
	}
	s.Kind = strings.ToLower(strings.TrimSpace(s.Kind))
	if s.Kind == "" {
		s.Kind = KindRadio
	}
	return &s, nil
}

// Build constructs the control, applies th and the scene's own style, then
// replays the scripted activations in order.
func (s *Scene) Build(th *theme.ThemeData) (*Built, error) {
	switch s.Kind {
	case KindRadio:
		p, err := s.buildPanel(th)
		if err != nil {
			return nil, err
		}
		return &Built{Title: s.Title, Panel: p}, nil
	case KindThreeWay:
		tw, err := s.buildThreeWay(th)
		if err != nil {
			return nil, err
		}
		return &Built{Title: s.Title, ThreeWay: tw}, nil
	default:
		return nil, errors.New("scene.Build", errors.KindConfig,
			fmt.Errorf("unknown kind %q", s.Kind))
	}
}

func (s *Scene) buildPanel(th *theme.ThemeData) (*controls.RadioButtonPanel, error) {
	p := controls.NewRadioButtonPanel()
	p.ApplyTheme(th)

	switch strings.ToLower(s.Orientation) {
	case "", "vertical":
	case "horizontal":
		p.SetOrientation(controls.Horizontal)
	default:
		return nil, configError("orientation", s.Orientation)
	}
	if s.Template != "" {
		tmpl, ok := controls.ParseRadioButtonTemplateStyle(strings.ToLower(s.Template))
		if !ok {
			return nil, configError("template", s.Template)
		}
		p.SetTemplateStyle(tmpl)
	}
	if s.CornerRadius != nil {
		p.SetCornerRadius(*s.CornerRadius)
	}
	if s.UnderlineHeight != nil {
		p.SetUnderlineHeight(*s.UnderlineHeight)
	}

	for _, b := range s.Buttons {
		rb := controls.NewRadioButton(b.Value, b.Label)
		rb.SetDisabled(b.Disabled)
		p.Add(rb)
	}
	p.SetSelectedValue(s.Selected)

	for _, v := range s.Activate {
		b, ok := p.Button(v)
		if !ok {
			return nil, errors.New("scene.Build", errors.KindConfig,
				fmt.Errorf("activate: no button with value %d", v))
		}
		b.Check()
	}
	return p, nil
}

func (s *Scene) buildThreeWay(th *theme.ThemeData) (*controls.ThreeWay, error) {
	tw := controls.NewThreeWayWithTheme(th)

	if s.CornerRadius != nil {
		tw.SetCornerRadius(*s.CornerRadius)
	}
	if s.SelectorWidth != nil {
		tw.SetSelectorWidth(*s.SelectorWidth)
	}
	if s.BorderThickness != nil {
		tw.SetBorderThickness(*s.BorderThickness)
	}
	for name, hex := range s.Colors {
		state, ok := controls.ParseThreeWayState(strings.ToLower(name))
		if !ok {
			return nil, configError("colors", name)
		}
		c, err := graphics.ParseHex(hex)
		if err != nil {
			return nil, errors.New("scene.Build", errors.KindConfig,
				fmt.Errorf("colors.%s: %w", name, err))
		}
		tw.SetStateColor(state, c)
	}
	if s.State != "" {
		state, ok := controls.ParseThreeWayState(strings.ToLower(s.State))
		if !ok {
			return nil, configError("state", s.State)
		}
		tw.SetState(state)
	}

	for _, name := range s.Press {
		if strings.ToLower(name) == "cycle" {
			tw.Cycle()
			continue
		}
		state, ok := controls.ParseThreeWayState(strings.ToLower(name))
		if !ok {
			return nil, configError("press", name)
		}
		for _, b := range tw.Buttons() {
			if b.State() == state {
				b.Check()
			}
		}
	}
	return tw, nil
}

func configError(field, value string) error {
	return errors.New("scene.Build", errors.KindConfig,
		fmt.Errorf("%s: invalid value %q", field, value))
}
