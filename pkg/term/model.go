package term

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/controls/pkg/controls"
)

// host adapts one control to the model.
type host interface {
	count() int
	activate(i int) bool
	cycle() bool
	render(st Styles, focus int) string
}

type panelHost struct{ p *controls.RadioButtonPanel }

func (h panelHost) count() int { return h.p.Len() }

func (h panelHost) activate(i int) bool {
	buttons := h.p.Buttons()
	if i < 0 || i >= len(buttons) {
		return false
	}
	return buttons[i].Check()
}

func (h panelHost) cycle() bool { return false }

func (h panelHost) render(st Styles, focus int) string {
	return renderRadioPanel(h.p, st, focus)
}

type threeWayHost struct{ tw *controls.ThreeWay }

func (h threeWayHost) count() int { return h.tw.Len() }

func (h threeWayHost) activate(i int) bool {
	buttons := h.tw.Buttons()
	if i < 0 || i >= len(buttons) {
		return false
	}
	return buttons[i].Check()
}

func (h threeWayHost) cycle() bool {
	h.tw.Cycle()
	return true
}

func (h threeWayHost) render(st Styles, focus int) string {
	return renderThreeWay(h.tw, st, focus)
}

// Model is a tea.Model hosting a single control. Left and right move focus,
// space or enter activates the focused child, c cycles a three-way selector
// and q or ctrl+c quits.
type Model struct {
	host     host
	styles   Styles
	title    string
	focus    int
	quitting bool
}

// NewPanelModel hosts a radio panel.
func NewPanelModel(p *controls.RadioButtonPanel, st Styles) *Model {
	return &Model{host: panelHost{p}, styles: st, title: "radio panel"}
}

// NewThreeWayModel hosts a three-way selector. Focus starts on the selected
// segment.
func NewThreeWayModel(tw *controls.ThreeWay, st Styles) *Model {
	m := &Model{host: threeWayHost{tw}, styles: st, title: "three-way"}
	for i, b := range tw.Buttons() {
		if b.IsChecked() {
			m.focus = i
		}
	}
	return m
}

// SetTitle replaces the heading shown above the control.
func (m *Model) SetTitle(title string) {
	m.title = title
}

// Focus returns the index of the focused child.
func (m *Model) Focus() int {
	return m.focus
}

// Quitting reports whether the model asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := m.host.count()
	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "right", "l", "down", "j", "tab":
		if n > 0 {
			m.focus = (m.focus + 1) % n
		}
	case "left", "h", "up", "k", "shift+tab":
		if n > 0 {
			m.focus = (m.focus - 1 + n) % n
		}
	case " ", "enter":
		m.host.activate(m.focus)
	case "c":
		m.host.cycle()
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var s strings.Builder
	if m.title != "" {
		s.WriteString(m.styles.Active.Render(m.title))
		s.WriteString("\n\n")
	}
	s.WriteString(m.host.render(m.styles, m.focus))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Help.Render("←/→ focus • space select • c cycle • q quit"))
	s.WriteString("\n")
	return s.String()
}
