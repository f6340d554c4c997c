// Package widget implements the Abstract Factory pattern with two widget
// families, Windows and Mac.
//
// A Factory yields a Button and a Checkbox of one family; an Application
// composes the pair without knowing which family it got. The family is
// picked once, from a platform name:
//
//	f, err := widget.NewFactory(widget.HostPlatformName())
//	if err != nil {
//		// errors.Is(err, widget.ErrUnknownPlatform)
//	}
//	app := widget.NewApplication(f)
//	_ = app.Paint(os.Stdout)
//
// Every Paint writes a single line, e.g. "Render a button in a Mac Style".
package widget
