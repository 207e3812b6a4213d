package embedgen

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const generatedHeader = "// Code generated by orus generate; DO NOT EDIT."

type emitter struct {
	buf strings.Builder
}

func (e *emitter) writef(format string, args ...any) {
	e.buf.WriteString(fmt.Sprintf(format, args...))
}

// ln writes a line. With no args the line is taken verbatim, so generated
// bodies may contain format verbs.
func (e *emitter) ln(line string, args ...any) {
	if len(args) == 0 {
		e.buf.WriteString(line)
	} else {
		e.writef(line, args...)
	}
	e.buf.WriteByte('\n')
}

func (e *emitter) String() string { return e.buf.String() }

// Emit writes the declarations artifact to declsPath and the definitions
// artifact to defsPath, both under package pkg. Module order is preserved
// verbatim; duplicate names are emitted as-is. Emit fails on the first write
// error and verifies both artifacts exist and are non-empty before reporting
// success.
func Emit(modules []Module, pkg, defsPath, declsPath string) error {
	if err := writeArtifact(declsPath, Declarations(pkg)); err != nil {
		return err
	}
	if err := writeArtifact(defsPath, Definitions(pkg, modules)); err != nil {
		return err
	}
	for _, p := range []string{defsPath, declsPath} {
		info, err := os.Stat(p)
		if err != nil {
			return &EmitError{Path: p, Err: err}
		}
		if info.Size() == 0 {
			return &EmitError{Path: p, Err: errors.New("empty artifact")}
		}
	}
	return nil
}

func writeArtifact(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &EmitError{Path: path, Err: err}
	}
	return nil
}

// Declarations renders the artifact exposing the registry's shape.
func Declarations(pkg string) string {
	var e emitter
	e.ln(generatedHeader)
	e.ln("")
	e.ln("package %s", pkg)
	e.ln("")
	e.ln("// Module is a single embedded source file.")
	e.ln("type Module struct {")
	e.ln("\tName   string // slash-separated path under the logical namespace")
	e.ln("\tSource string // raw content, exactly as scanned")
	e.ln("}")
	e.ln("")
	e.ln("// Registry is the ordered collection of embedded modules.")
	e.ln("type Registry []Module")
	return e.String()
}

// Definitions renders the artifact holding the static table plus the lookup
// and materialize implementations.
func Definitions(pkg string, modules []Module) string {
	var e emitter
	e.ln(generatedHeader)
	e.ln("")
	e.ln("package %s", pkg)
	e.ln("")
	e.ln("import (")
	e.ln("\t\"errors\"")
	e.ln("\t\"fmt\"")
	e.ln("\t\"os\"")
	e.ln("\t\"path/filepath\"")
	e.ln(")")
	e.ln("")
	e.ln("// Embedded is the static module table, in scan order.")
	e.ln("var Embedded = Registry{")
	for _, m := range modules {
		e.ln("\t{Name: \"%s\", Source: \"%s\"},", m.Name, Escape(m.Source))
	}
	e.ln("}")
	e.ln("")
	e.ln("// Count is the number of embedded modules.")
	e.ln("var Count = len(Embedded)")
	e.ln("")
	e.ln("// Lookup returns the source of the first module in r named name. The")
	e.ln("// second result is false when no module matches.")
	e.ln("func (r Registry) Lookup(name string) (string, bool) {")
	e.ln("\tfor _, m := range r {")
	e.ln("\t\tif m.Name == name {")
	e.ln("\t\t\treturn m.Source, true")
	e.ln("\t\t}")
	e.ln("\t}")
	e.ln("\treturn \"\", false")
	e.ln("}")
	e.ln("")
	e.ln("// Materialize writes every module in r under dir, creating intermediate")
	e.ln("// directories and overwriting existing files. A failed module is reported")
	e.ln("// in the combined error; the remaining modules are still written.")
	e.ln("func (r Registry) Materialize(dir string) error {")
	e.ln("\tvar errs []error")
	e.ln("\tfor _, m := range r {")
	e.ln("\t\tdst := filepath.Join(dir, filepath.FromSlash(m.Name))")
	e.ln("\t\tif err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {")
	e.ln("%s", "\t\t\terrs = append(errs, fmt.Errorf(\"materialize %s: %w\", m.Name, err))")
	e.ln("\t\t\tcontinue")
	e.ln("\t\t}")
	e.ln("\t\tif err := os.WriteFile(dst, []byte(m.Source), 0o644); err != nil {")
	e.ln("%s", "\t\t\terrs = append(errs, fmt.Errorf(\"materialize %s: %w\", m.Name, err))")
	e.ln("\t\t}")
	e.ln("\t}")
	e.ln("\treturn errors.Join(errs...)")
	e.ln("}")
	e.ln("")
	e.ln("// Lookup queries the embedded table.")
	e.ln("func Lookup(name string) (string, bool) { return Embedded.Lookup(name) }")
	e.ln("")
	e.ln("// Materialize dumps the embedded table under dir.")
	e.ln("func Materialize(dir string) error { return Embedded.Materialize(dir) }")
	return e.String()
}
