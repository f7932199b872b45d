package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/uskit/cli/internal/casing"
	oerrors "github.com/uskit/cli/internal/errors"
	"github.com/uskit/cli/internal/output"
	"github.com/uskit/cli/internal/version"
)

// Materializer stages template trees into module destinations.
type Materializer struct {
	// TemplatesRoot contains one subdirectory per template location.
	TemplatesRoot string

	// Force allows overwriting existing destination files.
	Force bool
}

// NewMaterializer creates a materializer reading templates from root.
func NewMaterializer(root string, force bool) *Materializer {
	return &Materializer{TemplatesRoot: root, Force: force}
}

// Result describes a completed materialization.
type Result struct {
	// Files lists the destination-relative paths that were created.
	Files []string

	// Location is the template location that was used.
	Location string

	// Dest is the destination directory.
	Dest string
}

// Copy recursively copies the template tree for location into dest,
// creating dest as needed. The template manifest file is not copied.
// Existing destination files are an error unless Force is set.
func (m *Materializer) Copy(dest, location string) (*Result, error) {
	src := filepath.Join(m.TemplatesRoot, location)

	info, err := os.Stat(src)
	if os.IsNotExist(err) {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("no template for location %q", location),
			src,
			"Run 'uskit module templates' to list available locations.",
		)
	}
	if err != nil {
		return nil, fmt.Errorf("checking template %s: %w", src, err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("template for location %q is not a directory", location), src, "")
	}

	manifest, err := LoadManifest(src)
	if err != nil {
		return nil, err
	}
	if err := manifest.CheckCLIVersion(version.Version); err != nil {
		return nil, err
	}

	result := &Result{Location: location, Dest: dest}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return os.MkdirAll(dest, 0o755)
		}

		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if d.Name() == ManifestFileName {
			return nil
		}

		if !m.Force {
			if _, err := os.Stat(target); err == nil {
				return oerrors.NewExistsError(
					fmt.Sprintf("file %s already exists", target),
					target,
					"Use --force to overwrite.",
				)
			}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}

		output.Debug("copied template file", "path", rel)
		result.Files = append(result.Files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Rename walks every file under dest in two phases: first renaming files
// whose basename contains the Module token, then substituting placeholder
// tokens in file contents. Each phase collects its targets before mutating
// so a rename can never desynchronize an in-flight walk.
func Rename(dest, moduleName string) error {
	tokens := casing.Render(moduleName)

	files, err := collectFiles(dest)
	if err != nil {
		return err
	}

	// Phase 1: filename renames.
	for _, path := range files {
		base := filepath.Base(path)
		if !strings.Contains(base, FilenameToken) {
			continue
		}

		renamed := filepath.Join(filepath.Dir(path),
			strings.ReplaceAll(base, FilenameToken, tokens.Pascal))
		if err := os.Rename(path, renamed); err != nil {
			return fmt.Errorf("renaming %s: %w", path, err)
		}
		output.Debug("renamed template file", "from", base, "to", filepath.Base(renamed))
	}

	// Phase 2: content substitution over the post-rename tree.
	files, err = collectFiles(dest)
	if err != nil {
		return err
	}

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		if !utf8.Valid(content) {
			output.Debug("skipping binary file", "path", path)
			continue
		}

		substituted, changed := Substitute(content, tokens)
		if !changed {
			continue
		}

		if err := os.WriteFile(path, substituted, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return nil
}

// Materialize copies the template for location into dest and applies the
// module-name renames and substitutions.
func (m *Materializer) Materialize(dest, location, moduleName string) (*Result, error) {
	if err := ValidateModuleName(moduleName); err != nil {
		return nil, err
	}

	result, err := m.Copy(dest, location)
	if err != nil {
		return nil, err
	}

	if err := Rename(dest, moduleName); err != nil {
		return nil, err
	}

	// Report post-rename names.
	pascal := casing.Render(moduleName).Pascal
	for i, f := range result.Files {
		result.Files[i] = strings.ReplaceAll(f, FilenameToken, pascal)
	}

	return result, nil
}

// collectFiles returns every regular file under root, sorted by WalkDir's
// lexical order.
func collectFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return files, nil
}
