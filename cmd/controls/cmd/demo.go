package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/controls/cmd/controls/internal/scene"
	"github.com/go-drift/controls/pkg/controls"
	"github.com/go-drift/controls/pkg/term"
	"github.com/go-drift/controls/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Try a control in the terminal",
		Long: `Host a control interactively in the terminal.

Without a scene a three-button radio panel is shown; --threeway shows a
three-way selector instead.

Keys:
  left/right     Move focus
  space/enter    Select the focused child
  c              Cycle a three-way selector
  q              Quit

Flags:
  --scene FILE    Scene file
  --theme FILE    Theme file
  --threeway      Show the default three-way selector`,
		Usage: "controls demo [--scene scene.yaml] [--theme theme.yaml] [--threeway]",
		Run:   runDemo,
	})
}

type demoOptions struct {
	scene    string
	theme    string
	threeWay bool
}

func parseDemoArgs(args []string) (demoOptions, error) {
	var opts demoOptions
	for i := 0; i < len(args); i++ {
		if args[i] == "--threeway" || args[i] == "-threeway" {
			opts.threeWay = true
			continue
		}
		v, skip, ok, err := flagValue(args, i, "scene")
		if err != nil {
			return opts, err
		}
		if ok {
			opts.scene = v
			i += skip
			continue
		}
		v, skip, ok, err = flagValue(args, i, "theme")
		if err != nil {
			return opts, err
		}
		if ok {
			opts.theme = v
			i += skip
			continue
		}
		return opts, fmt.Errorf("unknown argument %q", args[i])
	}
	return opts, nil
}

func runDemo(args []string) error {
	opts, err := parseDemoArgs(args)
	if err != nil {
		return err
	}
	th, err := loadTheme(opts.theme)
	if err != nil {
		return err
	}
	model, report, err := demoModel(opts, th)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	fmt.Println(report())
	return nil
}

// demoModel builds the hosted control and a function describing its final
// state.
func demoModel(opts demoOptions, th *theme.ThemeData) (*term.Model, func() string, error) {
	built := &scene.Built{}
	switch {
	case opts.scene != "":
		s, err := scene.Load(opts.scene)
		if err != nil {
			return nil, nil, err
		}
		if built, err = s.Build(th); err != nil {
			return nil, nil, err
		}
	case opts.threeWay:
		built.ThreeWay = controls.NewThreeWayWithTheme(th)
	default:
		p := controls.NewRadioButtonPanel()
		p.ApplyTheme(th)
		p.SetOrientation(controls.Horizontal)
		p.Add(
			controls.NewRadioButton(1, "Small"),
			controls.NewRadioButton(2, "Medium"),
			controls.NewRadioButton(3, "Large"),
		)
		built.Panel = p
	}

	st := term.NewStyles(th)
	if tw := built.ThreeWay; tw != nil {
		m := term.NewThreeWayModel(tw, st)
		if built.Title != "" {
			m.SetTitle(built.Title)
		}
		return m, func() string { return fmt.Sprintf("state: %s", tw.State()) }, nil
	}
	p := built.Panel
	m := term.NewPanelModel(p, st)
	if built.Title != "" {
		m.SetTitle(built.Title)
	}
	return m, func() string { return fmt.Sprintf("selected: %d", p.SelectedValue()) }, nil
}
