// Package designpatterns collects two small, explicit design pattern
// implementations for Go.
//
//   - document: the Abstract Document pattern. A string-keyed property bag
//     (document.Base) plus typed narrowing helpers (document.As, GetAs,
//     TryGetAs, MustGetAs, ValueOr) and JSON/YAML loading.
//   - entity: domain types layered on a document. Car exposes named accessors
//     for "model", "price" and "color" that are generated by cmd/docgen from
//     car.entity.json.
//   - widget: the Abstract Factory pattern. A Factory creates a matching
//     Button and Checkbox for one platform family (Windows or Mac), and an
//     Application paints whatever family it was handed.
//
// The goal is to keep each pattern readable end to end: no reflection-based
// containers, plain constructors, and errors you can match with errors.Is.
//
// See subpackages:
//   - cmd/patterns: CLI that runs both demos
//   - cmd/docgen: accessor generator used by go:generate in entity
//   - internal/config, internal/logger: settings and logging shared by the CLI
package designpatterns
