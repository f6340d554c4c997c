package document

import (
	"errors"
	"strconv"
)

var (
	// ErrMissingProperty is matched by MissingPropertyError.
	ErrMissingProperty = errors.New("document: missing property")

	// ErrWrongType is matched by WrongTypeError.
	ErrWrongType = errors.New("document: property has wrong type")

	// ErrDecode wraps failures while building a document from JSON or YAML.
	ErrDecode = errors.New("document: decode failed")
)

// MissingPropertyError is returned when a key was never put (or holds nil).
//
// It is used by TryGetAs to distinguish "missing" from "wrong type".
type MissingPropertyError struct{ Key string }

// Error implements the error interface.
func (e MissingPropertyError) Error() string {
	// Example: document: property "model" missing
	return "document: property " + strconv.Quote(e.Key) + " missing"
}

// Is reports whether target is ErrMissingProperty.
func (e MissingPropertyError) Is(target error) bool { return target == ErrMissingProperty }

// WrongTypeError is returned when a property exists but cannot be narrowed
// to the requested type.
type WrongTypeError struct {
	// Key is the property key requested.
	Key string

	// Want is the requested type, e.g. "string".
	Want string

	// Got is the dynamic type of the stored value, e.g. "int".
	Got string
}

// Error implements the error interface.
func (e WrongTypeError) Error() string {
	// Example: document: property "model" has wrong type (want string, got int)
	return "document: property " + strconv.Quote(e.Key) + " has wrong type (want " + e.Want + ", got " + e.Got + ")"
}

// Is reports whether target is ErrWrongType.
func (e WrongTypeError) Is(target error) bool { return target == ErrWrongType }
