package widget

import (
	"fmt"
	"io"
)

// Button is a family-specific push button.
type Button interface {
	// Paint writes one line describing the rendered button to w.
	Paint(w io.Writer) error
}

// Checkbox is a family-specific checkbox.
type Checkbox interface {
	// Paint writes one line describing the rendered checkbox to w.
	Paint(w io.Writer) error
}

// Factory produces a matched Button/Checkbox pair for one family, so callers
// never name the family they render.
type Factory interface {
	CreateButton() Button
	CreateCheckbox() Checkbox
}

// paintLine writes the description shared by every family.
func paintLine(w io.Writer, kind, family string) error {
	_, err := fmt.Fprintf(w, "Render a %s in a %s Style\n", kind, family)
	return err
}
