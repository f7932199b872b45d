// Package exports maintains generated aggregator files: an ordered list of
// import statements followed by a single default-export object re-exporting
// every generated module of a given kind.
//
// Instead of patching the file text in place, the file is parsed into a
// structured form, mutated, and re-serialized in a canonical layout, so the
// output never needs an external formatting pass.
package exports

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/uskit/cli/internal/errors"
)

// Import is a single import statement.
type Import struct {
	// Name is the local binding the export block refers to.
	Name string

	// Raw is the full statement text without the trailing newline.
	Raw string
}

// File is the structured form of an aggregator file.
// Invariant: every name in Exports has a matching entry in Imports, and
// Exports contains no duplicates. Order is insertion order.
type File struct {
	Imports []Import
	Exports []string
}

var (
	importNameRe  = regexp.MustCompile(`^import\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	exportBlockRe = regexp.MustCompile(`export\s+default\s*\{([^}]*)\}`)
)

// Parse reads an aggregator file into its structured form.
// A non-empty file without a single ';'-terminated import statement is
// malformed and returns ErrFormat.
func Parse(src string) (*File, error) {
	f := &File{}

	importSection := src
	if m := exportBlockRe.FindStringSubmatchIndex(src); m != nil {
		importSection = src[:m[0]]

		for _, key := range strings.Split(src[m[2]:m[3]], ",") {
			key = strings.TrimSpace(key)
			if key != "" {
				f.Exports = append(f.Exports, key)
			}
		}
	}

	if !strings.Contains(importSection, ";") {
		return nil, oerrors.Wrap(oerrors.ErrFormat, "no import statement terminator found")
	}

	for _, stmt := range strings.Split(importSection, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		imp := Import{Raw: stmt + ";"}
		if m := importNameRe.FindStringSubmatch(stmt); m != nil {
			imp.Name = m[1]
		}
		f.Imports = append(f.Imports, imp)
	}

	return f, nil
}

// Serialize renders the canonical textual form: import statements, a blank
// line, then the export block with one key per line.
func (f *File) Serialize() string {
	var b strings.Builder

	for _, imp := range f.Imports {
		b.WriteString(imp.Raw)
		b.WriteString("\n")
	}
	if len(f.Imports) > 0 {
		b.WriteString("\n")
	}

	if len(f.Exports) == 0 {
		b.WriteString("export default {};\n")
		return b.String()
	}

	b.WriteString("export default {\n")
	for i, name := range f.Exports {
		b.WriteString("  ")
		b.WriteString(name)
		if i < len(f.Exports)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("};\n")

	return b.String()
}

// Add appends an import and its export key. Adding a name that is already
// exported is a no-op, preserving the no-duplicates invariant.
func (f *File) Add(name, importStatement string) {
	for _, existing := range f.Exports {
		if existing == name {
			return
		}
	}

	f.Imports = append(f.Imports, Import{
		Name: name,
		Raw:  strings.TrimRight(importStatement, "\n"),
	})
	f.Exports = append(f.Exports, name)
}

// Remove deletes every import bound to name and its export key.
// Returns whether anything was removed.
func (f *File) Remove(name string) bool {
	removed := false

	imports := f.Imports[:0]
	for _, imp := range f.Imports {
		if imp.Name == name {
			removed = true
			continue
		}
		imports = append(imports, imp)
	}
	f.Imports = imports

	kept := f.Exports[:0]
	for _, exp := range f.Exports {
		if exp == name {
			removed = true
			continue
		}
		kept = append(kept, exp)
	}
	f.Exports = kept

	return removed
}

// ContainsExport reports whether name is currently an export key.
func (f *File) ContainsExport(name string) bool {
	for _, exp := range f.Exports {
		if exp == name {
			return true
		}
	}
	return false
}

// Validate checks the exports-subset-of-imports invariant.
func (f *File) Validate() error {
	imported := make(map[string]bool, len(f.Imports))
	for _, imp := range f.Imports {
		imported[imp.Name] = true
	}

	seen := make(map[string]bool, len(f.Exports))
	for _, exp := range f.Exports {
		if !imported[exp] {
			return oerrors.Wrap(oerrors.ErrFormat,
				fmt.Sprintf("export %q has no matching import", exp))
		}
		if seen[exp] {
			return oerrors.Wrap(oerrors.ErrFormat,
				fmt.Sprintf("duplicate export %q", exp))
		}
		seen[exp] = true
	}

	return nil
}
