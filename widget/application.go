package widget

import "io"

// Application holds one button and one checkbox from a single factory and
// paints them together.
type Application struct {
	button   Button
	checkbox Checkbox
}

// NewApplication creates the button, then the checkbox, from f.
func NewApplication(f Factory) *Application {
	return &Application{
		button:   f.CreateButton(),
		checkbox: f.CreateCheckbox(),
	}
}

// Paint paints the button and then the checkbox.
// It stops at the first write error.
func (a *Application) Paint(w io.Writer) error {
	if err := a.button.Paint(w); err != nil {
		return err
	}
	return a.checkbox.Paint(w)
}
