package controls

import "testing"

func TestPanelForgetsButtonsThatLeave(t *testing.T) {
	p := NewRadioButtonPanel()
	other := NewRadioButtonPanel()
	a, b, c := NewRadioButton(1, "A"), NewRadioButton(2, "B"), NewRadioButton(3, "C")
	p.Add(a, b, c)

	other.Insert(0, a)
	p.RemoveChild(b.Item)
	p.Buttons()
	if len(p.buttons) != 1 || p.buttons[c.Item] != c {
		t.Fatalf("wrappers = %d, want only C", len(p.buttons))
	}

	p.ClearChildren()
	if _, ok := p.Button(3); ok {
		t.Error("Button(3) found after ClearChildren")
	}
	if len(p.buttons) != 0 {
		t.Errorf("wrappers after ClearChildren = %d, want 0", len(p.buttons))
	}

	p.Insert(0, a)
	if got, ok := p.Button(1); !ok || got != a {
		t.Error("re-inserted button lost its wrapper identity")
	}
	if len(other.Buttons()) != 0 || len(other.buttons) != 0 {
		t.Errorf("other panel still tracks %d wrappers", len(other.buttons))
	}
}
