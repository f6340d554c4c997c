// Package document implements the Abstract Document pattern: a schema-less
// property bag with typed retrieval, meant to be embedded by entities that
// add named accessors over well-known keys.
//
// Storage is untyped (map[string]any). Narrowing to a concrete type is an
// explicit, checked step:
//
//   - As[T]: (value, present, error). Absence is not an error; a value of
//     another type is a WrongTypeError.
//   - GetAs[T]: (value, ok). ok is false for absence and for mismatch.
//   - TryGetAs[T]: MissingPropertyError or WrongTypeError.
//   - MustGetAs[T]: panics with the TryGetAs error.
//   - ValueOr[T]: default on absence or mismatch.
//
// Example:
//
//	doc := document.New(map[string]any{"model": "Tesla", "year": 2022})
//	model, _ := document.GetAs[string](doc, "model")
//	year, ok, err := document.As[int](doc, "year")
//
// Documents can also be loaded with FromJSON and FromYAML.
//
// A document is exclusively owned by whoever created it and is not safe for
// concurrent use.
package document
