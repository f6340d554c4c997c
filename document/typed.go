package document

import (
	"reflect"

	"github.com/sghaida/designpatterns/internal/logger"
)

// As is the typed form of Get.
//
// It returns:
//   - (zero, false, nil) if key is absent or holds nil
//   - (v, true, nil) if the stored value is a T
//   - (zero, false, WrongTypeError) if the stored value is something else
//
// Narrowing is a plain type assertion: an int is never widened to int64
// and a float64 is never truncated to int.
func As[T any](d Document, key string) (T, bool, error) {
	var zero T
	if d == nil {
		return zero, false, nil
	}
	raw, ok := d.Get(key)
	if !ok || raw == nil {
		return zero, false, nil
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false, WrongTypeError{
			Key:  key,
			Want: typeName[T](),
			Got:  reflect.TypeOf(raw).String(),
		}
	}
	return v, true, nil
}

// GetAs returns the property typed as T.
//
// ok is false if the key is missing or the stored value is not a T.
func GetAs[T any](d Document, key string) (T, bool) {
	v, ok, err := As[T](d, key)
	if err != nil {
		return v, false
	}
	return v, ok
}

// TryGetAs returns the property typed as T.
//
// It returns:
//   - MissingPropertyError if the key is not present
//   - WrongTypeError if the key exists but is not a T
func TryGetAs[T any](d Document, key string) (T, error) {
	v, ok, err := As[T](d, key)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, MissingPropertyError{Key: key}
	}
	return v, nil
}

// MustGetAs returns the property typed as T or panics with the TryGetAs error.
func MustGetAs[T any](d Document, key string) T {
	v, err := TryGetAs[T](d, key)
	if err != nil {
		panic(err)
	}
	return v
}

// ValueOr returns the property typed as T, or def when it is absent or of
// another type. A type mismatch is logged at debug level and otherwise
// treated like absence.
func ValueOr[T any](d Document, key string, def T) T {
	v, ok, err := As[T](d, key)
	if err != nil {
		logger.With("document").Debug("property type mismatch, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	return v
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.String()
}
