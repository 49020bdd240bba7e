package term

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/controls/pkg/controls"
	"github.com/go-drift/controls/pkg/selection"
)

// NoFocus renders without a focused child.
const NoFocus = -1

// RenderRadioPanel renders the panel in its template style and orientation.
// Checked buttons carry a textual mark in every template, so the state reads
// without color.
func RenderRadioPanel(p *controls.RadioButtonPanel, st Styles) string {
	return renderRadioPanel(p, st, NoFocus)
}

// RenderThreeWay renders the selector as a framed row of Off, Neutral and On
// segments with the selected one bracketed and filled.
func RenderThreeWay(tw *controls.ThreeWay, st Styles) string {
	return renderThreeWay(tw, st, NoFocus)
}

func renderRadioPanel(p *controls.RadioButtonPanel, st Styles, focus int) string {
	buttons := p.Buttons()
	cells := make([]string, len(buttons))
	for i, b := range buttons {
		cells[i] = renderButton(b, st, i == focus)
	}

	if p.Orientation() != controls.Horizontal {
		return lipgloss.JoinVertical(lipgloss.Left, cells...)
	}
	sep := "  "
	if p.TemplateStyle() == selection.VariantSegmented {
		sep = "│"
	}
	parts := make([]string, 0, 2*len(cells))
	for i, c := range cells {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderButton(b *controls.RadioButton, st Styles, focused bool) string {
	label := b.Label()
	if label == "" {
		label = strconv.Itoa(b.Value())
	}

	style := st.Text
	if b.IsChecked() {
		style = st.Active
	}
	if focused {
		style = style.Underline(true)
	}
	if b.Disabled() {
		style = style.Faint(true)
	}

	prefix := " "
	if focused {
		prefix = FocusMarker
	}

	switch b.TemplateStyle() {
	case selection.VariantUnderline:
		text := prefix + label
		mark := strings.Repeat(" ", lipgloss.Width(text))
		if b.IsChecked() {
			mark = " " + strings.Repeat(UnderlineRune, lipgloss.Width(label))
		}
		return lipgloss.JoinVertical(lipgloss.Left, style.Render(text), st.Active.Render(mark))
	case selection.VariantSegmented:
		if b.IsChecked() {
			return prefix + style.Render("["+label+"]")
		}
		return prefix + style.Render(" "+label+" ")
	default:
		ind := st.Inactive.Render(RadioUnselected)
		if b.IsChecked() {
			ind = st.Active.Render(RadioSelected)
		}
		return prefix + ind + " " + style.Render(label)
	}
}

func renderThreeWay(tw *controls.ThreeWay, st Styles, focus int) string {
	width := max(int(tw.SelectorWidth()/8), 3)
	buttons := tw.Buttons()
	cells := make([]string, len(buttons))
	for i, b := range buttons {
		label := b.Label()
		cell := lipgloss.PlaceHorizontal(width, lipgloss.Center, label)
		style := lipgloss.NewStyle()
		if b.IsChecked() {
			cell = "[" + cell + "]"
			style = stateStyle(st, b.State())
		} else {
			cell = " " + cell + " "
		}
		if i == focus {
			style = style.Underline(true)
		}
		cells[i] = style.Render(cell)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, cells...)
	return st.Frame.Render(row)
}

func stateStyle(st Styles, s controls.ThreeWayState) lipgloss.Style {
	switch s {
	case controls.On:
		return st.On
	case controls.Off:
		return st.Off
	default:
		return st.Neutral
	}
}
