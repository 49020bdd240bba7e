// Package testing provides helpers for testing controls.
//
// Record outward selection notifications and assert on them:
//
//	func TestPanel(t *testing.T) {
//	    panel := controls.NewRadioButtonPanel()
//	    rec := drifttest.NewRecorder[int]()
//	    panel.OnSelectionChanged(rec.Record)
//
//	    panel.SetSelectedValue(2)
//	    if got := rec.Last(); got.New != 2 {
//	        t.Errorf("last change = %+v", got)
//	    }
//	}
//
// Capture reports sent through the errors package:
//
//	rec := drifttest.NewErrorRecorder()
//	errors.SetHandler(rec)
//	defer errors.SetHandler(nil)
package testing
