// Package controls provides the radio button panel and the three-way
// selector.
//
// Both are thin compositions over selection.Group and selection.Item: the
// group owns the selected value and shared style, the buttons carry candidate
// values and mirror what the group pushes to them.
//
//	panel := controls.NewRadioButtonPanel()
//	panel.Add(
//	    controls.NewRadioButton(1, "Small"),
//	    controls.NewRadioButton(2, "Medium"),
//	    controls.NewRadioButton(3, "Large"),
//	)
//	panel.OnSelectionChanged(func(_, v int) { fmt.Println("size", v) })
//	panel.SetTemplateStyle(controls.TemplateUnderline)
//
//	sw := controls.NewThreeWay()
//	sw.SetCornerRadius(6)
//	sw.OnButton().Check()
//	sw.State()    // controls.On
//	sw.Geometry() // Leading = (0, 6, 6, 0)
//
// Rendering is left to hosts such as pkg/preview and pkg/term.
package controls
