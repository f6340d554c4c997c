package widget

import "io"

// MacFactory creates Mac-style widgets.
type MacFactory struct{}

// NewMacFactory returns the Mac family factory.
func NewMacFactory() Factory { return MacFactory{} }

// CreateButton implements Factory.
func (MacFactory) CreateButton() Button { return MacButton{} }

// CreateCheckbox implements Factory.
func (MacFactory) CreateCheckbox() Checkbox { return MacCheckbox{} }

// MacButton is a button painted in a Mac style.
type MacButton struct{}

// Paint implements Button.
func (MacButton) Paint(w io.Writer) error { return paintLine(w, "button", "Mac") }

// MacCheckbox is a checkbox painted in a Mac style.
type MacCheckbox struct{}

// Paint implements Checkbox.
func (MacCheckbox) Paint(w io.Writer) error { return paintLine(w, "checkbox", "Mac") }
