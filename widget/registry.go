package widget

import (
	"errors"
	"fmt"

	"github.com/sghaida/designpatterns/internal/logger"
)

// Constructor builds a fresh Factory for one family.
type Constructor func() Factory

// ErrRegistryPanic is returned if a family constructor panics during Resolve.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// Registry maps platforms to factory constructors.
//
// It is read-only once built and side effect free apart from calling the
// constructor on Resolve.
type Registry struct {
	items map[Platform]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[Platform]Constructor{}}
}

// DefaultRegistry returns a registry holding the Windows and Mac families.
func DefaultRegistry() *Registry {
	return NewRegistry().
		Provide(PlatformWindows, NewWinFactory).
		Provide(PlatformMac, NewMacFactory)
}

// Provide stores a constructor under a platform and returns the registry for chaining.
func (r *Registry) Provide(p Platform, ctor Constructor) *Registry {
	r.items[p] = ctor
	return r
}

// Resolve builds the factory for p.
//
// It returns UnknownPlatformError when nothing is registered for p, and
// converts a constructor panic (or a nil receiver) into ErrRegistryPanic.
func (r *Registry) Resolve(p Platform) (f Factory, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			f = nil
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	ctor, ok := r.items[p]
	if !ok || ctor == nil {
		return nil, UnknownPlatformError{Name: p.String()}
	}
	return ctor(), nil
}

// Get returns the constructor if present (no panic).
func (r *Registry) Get(p Platform) (Constructor, bool) {
	ctor, ok := r.items[p]
	return ctor, ok
}

// MustGet builds the factory for p or panics with a helpful message.
// Useful in examples/tests where a missing family should fail fast.
func (r *Registry) MustGet(p Platform) Factory {
	ctor, ok := r.items[p]
	if !ok || ctor == nil {
		panic(fmt.Errorf("widget: registry missing platform %s", p))
	}
	return ctor()
}

// NewFactory selects the family for a platform name using the default registry.
// An unrecognized name fails with UnknownPlatformError; there is no fallback.
func NewFactory(platformName string) (Factory, error) {
	p, err := ParsePlatform(platformName)
	if err != nil {
		return nil, err
	}
	f, err := DefaultRegistry().Resolve(p)
	if err != nil {
		return nil, err
	}
	logger.With("widget").Debug("selected widget family", "platform", platformName, "family", p)
	return f, nil
}
