package widget

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingWriter records each Write as one entry and can fail after n writes.
type recordingWriter struct {
	lines   []string
	failAt  int
	failErr error
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	if w.failErr != nil && len(w.lines) == w.failAt {
		return 0, w.failErr
	}
	w.lines = append(w.lines, string(p))
	return len(p), nil
}

//
// -----------------------------------------------------------------------------
// Families
// -----------------------------------------------------------------------------

func TestFamilies_PaintLines(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		factory      Factory
		wantButton   string
		wantCheckbox string
	}{
		{
			name:         "windows",
			factory:      NewWinFactory(),
			wantButton:   "Render a button in a Windows Style\n",
			wantCheckbox: "Render a checkbox in a Windows Style\n",
		},
		{
			name:         "mac",
			factory:      NewMacFactory(),
			wantButton:   "Render a button in a Mac Style\n",
			wantCheckbox: "Render a checkbox in a Mac Style\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, tc.factory.CreateButton().Paint(&buf))
			assert.Equal(t, tc.wantButton, buf.String())

			buf.Reset()
			require.NoError(t, tc.factory.CreateCheckbox().Paint(&buf))
			assert.Equal(t, tc.wantCheckbox, buf.String())
		})
	}
}

// TestMacFactory_ReturnsMacPair guards against handing out the Windows pair.
func TestMacFactory_ReturnsMacPair(t *testing.T) {
	t.Parallel()

	f := NewMacFactory()
	assert.IsType(t, MacButton{}, f.CreateButton())
	assert.IsType(t, MacCheckbox{}, f.CreateCheckbox())

	w := NewWinFactory()
	assert.IsType(t, WinButton{}, w.CreateButton())
	assert.IsType(t, WinCheckbox{}, w.CreateCheckbox())
}

//
// -----------------------------------------------------------------------------
// ParsePlatform / HostPlatformName
// -----------------------------------------------------------------------------

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	ok := map[string]Platform{
		"windows":    PlatformWindows,
		"WINDOWS":    PlatformWindows,
		"Windows 11": PlatformWindows,
		" wInDoWs ":  PlatformWindows,
		"mac":        PlatformMac,
		"MAC":        PlatformMac,
		"Mac OS X":   PlatformMac,
		"macos":      PlatformMac,
	}
	for in, want := range ok {
		got, err := ParsePlatform(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "linux", "darwin", "freebsd", "win"} {
		_, err := ParsePlatform(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, ErrUnknownPlatform, in)

		var unknown UnknownPlatformError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, in, unknown.Name)
	}
}

func TestPlatform_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Windows", PlatformWindows.String())
	assert.Equal(t, "Mac", PlatformMac.String())
	assert.Equal(t, "Platform(0)", Platform(0).String())
	assert.Equal(t, []Platform{PlatformWindows, PlatformMac}, Platforms)
}

func TestUnknownPlatformError_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `widget: unknown platform "linux"`, UnknownPlatformError{Name: "linux"}.Error())
}

func TestHostPlatformName(t *testing.T) {
	t.Parallel()

	name := HostPlatformName()
	_, err := ParsePlatform(name)

	switch runtime.GOOS {
	case "windows", "darwin":
		assert.NoError(t, err)
	default:
		assert.Equal(t, runtime.GOOS, name)
		assert.ErrorIs(t, err, ErrUnknownPlatform)
	}
}

//
// -----------------------------------------------------------------------------
// Application
// -----------------------------------------------------------------------------

func TestApplication_PaintsButtonThenCheckbox(t *testing.T) {
	t.Parallel()

	w := &recordingWriter{}
	require.NoError(t, NewApplication(NewMacFactory()).Paint(w))
	assert.Equal(t, []string{
		"Render a button in a Mac Style\n",
		"Render a checkbox in a Mac Style\n",
	}, w.lines)
}

// countingFactory hands out widgets that record paint calls in a shared log.
type countingFactory struct{ log *[]string }

type countingButton struct{ log *[]string }

func (b countingButton) Paint(_ io.Writer) error {
	*b.log = append(*b.log, "button")
	return nil
}

type countingCheckbox struct{ log *[]string }

func (c countingCheckbox) Paint(_ io.Writer) error {
	*c.log = append(*c.log, "checkbox")
	return nil
}

func (f countingFactory) CreateButton() Button     { return countingButton(f) }
func (f countingFactory) CreateCheckbox() Checkbox { return countingCheckbox(f) }

func TestApplication_PaintsEachExactlyOnce(t *testing.T) {
	t.Parallel()

	var calls []string
	app := NewApplication(countingFactory{log: &calls})
	require.NoError(t, app.Paint(io.Discard))
	assert.Equal(t, []string{"button", "checkbox"}, calls)
}

func TestApplication_StopsOnWriteError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")

	w := &recordingWriter{failAt: 0, failErr: boom}
	err := NewApplication(NewWinFactory()).Paint(w)
	require.ErrorIs(t, err, boom)
	assert.Empty(t, w.lines)

	w = &recordingWriter{failAt: 1, failErr: boom}
	err = NewApplication(NewWinFactory()).Paint(w)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"Render a button in a Windows Style\n"}, w.lines)
}
