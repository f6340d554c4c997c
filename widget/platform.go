package widget

import (
	"errors"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Platform is the closed set of widget families.
type Platform int

const (
	// PlatformWindows selects the Windows family.
	PlatformWindows Platform = iota + 1
	// PlatformMac selects the Mac family.
	PlatformMac
)

// Platforms lists every recognized platform.
var Platforms = []Platform{PlatformWindows, PlatformMac}

// String returns the family name.
func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "Windows"
	case PlatformMac:
		return "Mac"
	default:
		return "Platform(" + strconv.Itoa(int(p)) + ")"
	}
}

// ErrUnknownPlatform is matched by UnknownPlatformError.
var ErrUnknownPlatform = errors.New("widget: unknown platform")

// UnknownPlatformError is returned when a platform name matches no family.
type UnknownPlatformError struct{ Name string }

// Error implements the error interface.
func (e UnknownPlatformError) Error() string {
	// Example: widget: unknown platform "linux"
	return "widget: unknown platform " + strconv.Quote(e.Name)
}

// Is reports whether target is ErrUnknownPlatform.
func (e UnknownPlatformError) Is(target error) bool { return target == ErrUnknownPlatform }

// ParsePlatform resolves a host OS name, such as "Windows 11" or "Mac OS X",
// to a Platform. Matching is case-insensitive and by substring; anything
// that mentions neither "windows" nor "mac" is an UnknownPlatformError.
func ParsePlatform(name string) (Platform, error) {
	folded := cases.Fold().String(strings.TrimSpace(name))
	switch {
	case strings.Contains(folded, "windows"):
		return PlatformWindows, nil
	case strings.Contains(folded, "mac"):
		return PlatformMac, nil
	default:
		return 0, UnknownPlatformError{Name: name}
	}
}

// HostPlatformName describes the running OS in the style of Java's os.name,
// so that ParsePlatform(HostPlatformName()) selects the native family.
func HostPlatformName() string {
	switch runtime.GOOS {
	case "windows":
		return "Windows"
	case "darwin":
		return "Mac OS X"
	default:
		return runtime.GOOS
	}
}
