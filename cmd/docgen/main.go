// cmd/docgen/main.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	json "github.com/goccy/go-json"
)

// This binary is a code-generation tool.
//
// It reads a JSON specification describing an entity type and the document keys it exposes,
// then generates typed accessors (getter, Try getter, setter) over the generic document contract.
//
// Key behaviors:
// - Reads spec JSON: package, type, fields (name/key/type/default)
// - Locates the "owner" Go file (the file containing the go:generate for cmd/docgen) in the same directory
// - Reuses the owner file's import of the document package (alias included) when the spec does not name one
// - gofmt's the output
// - Writes output atomically (temp file + rename) to avoid partial writes

// defaultDocumentImport is used when neither the spec nor the owner file names the document package.
const defaultDocumentImport = "github.com/sghaida/designpatterns/document"

// Field describes one named accessor over a document key.
type Field struct {
	// Name is used for method naming (<Name>, Try<Name>, Set<Name>).
	Name string `json:"name"`

	// Key is the document key read and written by the accessors.
	Key string `json:"key"`

	// Type is the Go type the value is narrowed to.
	Type string `json:"type"`

	// Default is an optional Go expression returned when the key is absent.
	// Empty means the zero value of Type.
	Default string `json:"default"`
}

// Imports defines external packages required by the generated code.
type Imports struct {
	// Optional import path of the document package.
	Document string `json:"document"`
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	Package string  `json:"package"`
	Type    string  `json:"type"`
	Imports Imports `json:"imports"`
	Fields  []Field `json:"fields"`
}

// ImportSpec models one Go import: optional alias and full import path.
type ImportSpec struct {
	Alias string
	Path  string
}

// Ident returns the identifier generated code uses to refer to the import.
func (i ImportSpec) Ident() string {
	if i.Alias != "" {
		return i.Alias
	}
	return importDefaultIdent(i.Path)
}

// templateData is the input passed to the Go template.
type templateData struct {
	Spec     Spec
	Document ImportSpec
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("docgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to entity .entity.json")
	outPath := flags.String("out", "", "output .gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: docgen -spec <file.entity.json> -out <file.gen.go>")
		return 2
	}

	specBytes, err := os.ReadFile(*specPath)
	must(err)

	var spec Spec
	must(json.Unmarshal(specBytes, &spec))

	validateSpec(&spec)

	generatedFilePath := filepath.Clean(*outPath)
	packageDir := filepath.Dir(generatedFilePath)

	ownerGoFilePath, err := findOwnerGoGenerateFile(packageDir)
	if err != nil {
		// Generation still works: resolveDocumentImport falls back to the default path.
		ownerGoFilePath = ""
	}

	data := templateData{
		Spec:     spec,
		Document: resolveDocumentImport(ownerGoFilePath, &spec),
	}

	src, err := render(data)
	must(err)

	must(writeFileAtomic(generatedFilePath, src, 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// validateSpec validates semantic correctness of the input specification.
func validateSpec(spec *Spec) {
	var missingFields []string

	requireNonEmpty := func(fieldName, value string) {
		if strings.TrimSpace(value) == "" {
			missingFields = append(missingFields, fieldName)
		}
	}

	requireNonEmpty("package", spec.Package)
	requireNonEmpty("type", spec.Type)

	if len(spec.Fields) == 0 {
		missingFields = append(missingFields, "fields (must have at least 1)")
	}

	if len(missingFields) > 0 {
		panic(fmt.Errorf("spec missing required fields: %v", missingFields))
	}

	if !token.IsIdentifier(spec.Package) {
		panic(fmt.Errorf("package is not a valid identifier: %q", spec.Package))
	}
	if !token.IsIdentifier(spec.Type) {
		panic(fmt.Errorf("type is not a valid identifier: %q", spec.Type))
	}

	seenNames := make(map[string]struct{}, len(spec.Fields))
	seenKeys := make(map[string]struct{}, len(spec.Fields))

	for _, field := range spec.Fields {
		if field.Name == "" || field.Key == "" || field.Type == "" {
			panic(fmt.Errorf("each field must have name/key/type; got: %+v", field))
		}
		if !token.IsIdentifier(field.Name) || !token.IsExported(field.Name) {
			panic(fmt.Errorf("field name must be an exported identifier: %s", field.Name))
		}
		if _, ok := seenNames[field.Name]; ok {
			panic(fmt.Errorf("duplicate field name: %s", field.Name))
		}
		if _, ok := seenKeys[field.Key]; ok {
			panic(fmt.Errorf("duplicate field key: %s", field.Key))
		}
		seenNames[field.Name] = struct{}{}
		seenKeys[field.Key] = struct{}{}
	}
}

// findOwnerGoGenerateFile finds the Go source file in packageDir that contains a go:generate
// directive invoking cmd/docgen.
func findOwnerGoGenerateFile(packageDir string) (string, error) {
	dirEntries, err := os.ReadDir(packageDir)
	if err != nil {
		return "", err
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		filePath := filepath.Join(packageDir, fileName)
		fileBytes, err := os.ReadFile(filePath)
		if err != nil {
			// Best-effort: unreadable file shouldn't break generation.
			continue
		}

		if bytes.Contains(fileBytes, []byte("go:generate")) && bytes.Contains(fileBytes, []byte("cmd/docgen")) {
			return filePath, nil
		}
	}

	return "", fmt.Errorf("could not find owner file with go:generate invoking cmd/docgen in %s", packageDir)
}

// readImportsFromFile parses imports from a Go file.
func readImportsFromFile(goFilePath string) ([]ImportSpec, error) {
	fileSet := token.NewFileSet()
	parsedFile, err := parser.ParseFile(fileSet, goFilePath, nil, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}

	var imports []ImportSpec
	for _, importDecl := range parsedFile.Imports {
		importPath := strings.Trim(importDecl.Path.Value, `"`)
		importAlias := ""
		if importDecl.Name != nil {
			importAlias = importDecl.Name.Name
		}
		imports = append(imports, ImportSpec{Alias: importAlias, Path: importPath})
	}

	return imports, nil
}

func importDefaultIdent(importPath string) string {
	// Import paths always use forward slashes, even on Windows.
	return path.Base(strings.TrimSpace(importPath))
}

// resolveDocumentImport picks the import generated code uses for the document package.
//
// Rules:
// - spec.imports.document wins when set; the owner file may still supply its alias
// - otherwise the owner file's import whose path ends in /document is reused as-is
// - otherwise defaultDocumentImport
func resolveDocumentImport(ownerFilePath string, spec *Spec) ImportSpec {
	var ownerImports []ImportSpec
	if strings.TrimSpace(ownerFilePath) != "" {
		parsed, err := readImportsFromFile(ownerFilePath)
		if err == nil {
			ownerImports = parsed
		}
	}

	wanted := strings.TrimSpace(spec.Imports.Document)
	if wanted != "" {
		for _, imp := range ownerImports {
			if imp.Path == wanted {
				return imp
			}
		}
		return ImportSpec{Path: wanted}
	}

	for _, imp := range ownerImports {
		if importDefaultIdent(imp.Path) == "document" {
			return imp
		}
	}
	return ImportSpec{Path: defaultDocumentImport}
}

// zeroExpr returns a Go expression for the zero value of typ.
func zeroExpr(typ string) string {
	switch typ {
	case "string":
		return `""`
	case "bool":
		return "false"
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "byte", "rune":
		return "0"
	default:
		return "*new(" + typ + ")"
	}
}

// defaultExpr returns the field's configured default or the zero value of its type.
func defaultExpr(f Field) string {
	if strings.TrimSpace(f.Default) != "" {
		return f.Default
	}
	return zeroExpr(f.Type)
}

// render executes the template and gofmt's the result.
func render(data templateData) ([]byte, error) {
	var out bytes.Buffer
	if err := genTemplate.Execute(&out, data); err != nil {
		return nil, err
	}
	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return src, nil
}

// genTemplate is the Go source template used to generate the accessors.
var genTemplate = template.Must(
	template.New("docgen").Funcs(template.FuncMap{
		"defaultExpr": defaultExpr,
	}).Parse(`// Code generated by docgen; DO NOT EDIT.

package {{.Spec.Package}}

import (
	{{if .Document.Alias}}{{.Document.Alias}} {{end}}"{{.Document.Path}}"
)

const (
{{- range .Spec.Fields}}
	// {{$.Spec.Type}}{{.Name}}Key is the document key backing {{$.Spec.Type}}.{{.Name}}.
	{{$.Spec.Type}}{{.Name}}Key = {{printf "%q" .Key}}
{{- end}}
)
{{range .Spec.Fields}}
// {{.Name}} returns the {{printf "%q" .Key}} property, or {{defaultExpr .}} when it is absent or not a {{.Type}}.
func (e *{{$.Spec.Type}}) {{.Name}}() {{.Type}} {
	return {{$.Document.Ident}}.ValueOr[{{.Type}}](e, {{$.Spec.Type}}{{.Name}}Key, {{defaultExpr .}})
}

// Try{{.Name}} is like {{.Name}} but reports a stored value that is not a {{.Type}}.
func (e *{{$.Spec.Type}}) Try{{.Name}}() ({{.Type}}, error) {
	v, ok, err := {{$.Document.Ident}}.As[{{.Type}}](e, {{$.Spec.Type}}{{.Name}}Key)
	if err != nil {
		return v, err
	}
	if !ok {
		return {{defaultExpr .}}, nil
	}
	return v, nil
}

// Set{{.Name}} stores the {{printf "%q" .Key}} property.
func (e *{{$.Spec.Type}}) Set{{.Name}}(v {{.Type}}) {
	e.Put({{$.Spec.Type}}{{.Name}}Key, v)
}
{{end}}`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, so readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
