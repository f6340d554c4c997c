package widget

import "io"

// WinFactory creates Windows-style widgets.
type WinFactory struct{}

// NewWinFactory returns the Windows family factory.
func NewWinFactory() Factory { return WinFactory{} }

// CreateButton implements Factory.
func (WinFactory) CreateButton() Button { return WinButton{} }

// CreateCheckbox implements Factory.
func (WinFactory) CreateCheckbox() Checkbox { return WinCheckbox{} }

// WinButton is a button painted in a Windows style.
type WinButton struct{}

// Paint implements Button.
func (WinButton) Paint(w io.Writer) error { return paintLine(w, "button", "Windows") }

// WinCheckbox is a checkbox painted in a Windows style.
type WinCheckbox struct{}

// Paint implements Checkbox.
func (WinCheckbox) Paint(w io.Writer) error { return paintLine(w, "checkbox", "Windows") }
