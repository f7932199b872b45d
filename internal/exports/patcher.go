package exports

import (
	"errors"
	"fmt"
	"os"

	oerrors "github.com/uskit/cli/internal/errors"
	"github.com/uskit/cli/internal/output"
)

// AddEntry inserts an import statement and its export key into the
// aggregator file at path, creating the file if it does not exist.
//
// A file that exists but has no recognizable import structure is rebuilt
// from scratch with only the new entry. The original tool recovered the
// same way; the overwrite is logged at warn level since it discards
// whatever was there.
func AddEntry(path, exportName, importStatement string) error {
	f := &File{}

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Start from an empty file.
	case err != nil:
		return fmt.Errorf("reading %s: %w", path, err)
	default:
		parsed, parseErr := Parse(string(content))
		if parseErr != nil {
			if !errors.Is(parseErr, oerrors.ErrFormat) {
				return fmt.Errorf("parsing %s: %w", path, parseErr)
			}
			output.Warn("aggregator file is malformed, rebuilding it",
				"path", path, "error", parseErr)
		} else {
			f = parsed
		}
	}

	if f.ContainsExport(exportName) {
		output.Debug("export already present", "path", path, "name", exportName)
		return nil
	}

	f.Add(exportName, importStatement)

	if err := os.WriteFile(path, []byte(f.Serialize()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	output.Debug("added aggregator entry", "path", path, "name", exportName)
	return nil
}

// RemoveEntry deletes the import and export key for exportName from the
// aggregator file at path. A missing file or absent name is a no-op.
func RemoveEntry(path, exportName string) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	f, err := Parse(string(content))
	if err != nil {
		// Nothing recognizable to remove from.
		output.Debug("skipping malformed aggregator file", "path", path)
		return nil
	}

	if !f.Remove(exportName) {
		return nil
	}

	if err := os.WriteFile(path, []byte(f.Serialize()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	output.Debug("removed aggregator entry", "path", path, "name", exportName)
	return nil
}
