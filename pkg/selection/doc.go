// Package selection coordinates a group of mutually exclusive items.
//
// A Group owns the selected value and a SharedStyle. Each Item carries a
// candidate value fixed at construction. The group keeps three things true
// whenever a call into it returns:
//
//   - an item is active exactly when its value equals the selected value
//   - every attached item holds a copy of the group's SharedStyle
//   - the SelectionMode is SelectionSingle
//
// Items influence the selection only by raising the bubbling Activated event.
// The first Group on the route adopts the item's value and marks the event
// handled:
//
//	group := selection.NewGroup[int]()
//	small := selection.NewItem(1, "Small")
//	large := selection.NewItem(2, "Large")
//	group.AddChild(small)
//	group.AddChild(large)
//
//	large.Activate()
//	group.SelectedValue() // 2
//	large.IsActive()      // true
//
// Everything runs synchronously on the caller's goroutine; neither type is
// safe for concurrent use.
package selection
