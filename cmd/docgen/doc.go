// Command docgen generates typed accessors for entities built on a document.
//
// An entity such as entity.Car is a thin struct embedding *document.Base.
// Its named accessors (Model, SetModel, TryModel, ...) are mechanical: each
// one maps a Go name to a document key and a Go type. docgen writes them
// from a small JSON spec so they never drift from the keys.
//
// Spec format (*.entity.json)
//
//	{
//	  "package": "entity",
//	  "type": "Car",
//	  "imports": {
//	    "document": "github.com/sghaida/designpatterns/document"
//	  },
//	  "fields": [
//	    { "name": "Model", "key": "model", "type": "string" },
//	    { "name": "Price", "key": "price", "type": "int", "default": "0" }
//	  ]
//	}
//
// "imports.document" is optional. When it is empty, docgen reuses the owner
// file's import of a package named document (alias included), and falls back
// to this module's document package.
//
// "default" is a Go expression returned when the key is absent or holds the
// wrong type. It defaults to the zero value of the field type.
//
// Typical go:generate usage
//
// Put this in the owner Go file (same directory as the spec):
//
//	//go:generate go run ../cmd/docgen -spec car.entity.json -out car.gen.go
//
// Generated API (per field)
//
//   - <Type><Name>Key: the document key constant
//   - <Name>() T: value, or the default when absent or mismatched
//   - Try<Name>() (T, error): default when absent, document.WrongTypeError on mismatch
//   - Set<Name>(v T): stores v under the key
//
// The output is gofmt'ed and written atomically.
package main
