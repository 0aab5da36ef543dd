package view

import "tableflip.dev/vita/pkg/timeutil"

// Navigator tracks the selected calendar date for a date-keyed view. It is
// owned by that view alone; every change is expected to drive a key-change
// refresh, independent of coordinator invalidation.
type Navigator struct {
	date timeutil.Date
}

// NewNavigator starts at today in the client's local calendar.
func NewNavigator() *Navigator {
	return &Navigator{date: timeutil.Today()}
}

// Date returns the current selection.
func (n *Navigator) Date() timeutil.Date {
	return n.date
}

// Prev moves the selection one calendar day back and returns it.
func (n *Navigator) Prev() timeutil.Date {
	n.date = n.date.Prev()
	return n.date
}

// Next moves the selection one calendar day forward and returns it.
func (n *Navigator) Next() timeutil.Date {
	n.date = n.date.Next()
	return n.date
}

// Set replaces the selection verbatim, as from a picker.
func (n *Navigator) Set(d timeutil.Date) timeutil.Date {
	n.date = d
	return n.date
}
