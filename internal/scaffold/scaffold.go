// Package scaffold orchestrates module creation and removal: template
// materialization, aggregator patching, and new-layout package
// registration.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uskit/cli/internal/casing"
	"github.com/uskit/cli/internal/exports"
	"github.com/uskit/cli/internal/layout"
	"github.com/uskit/cli/internal/output"
	"github.com/uskit/cli/internal/templates"
)

// AggregatorFileName is the generated file re-exporting all modules of a
// package.
const AggregatorFileName = "index.js"

// Scaffolder performs module add/remove operations against a workspace.
type Scaffolder struct {
	layout       layout.Layout
	materializer *templates.Materializer
	opts         layout.Options
}

// New creates a scaffolder for the given workspace layout and templates.
func New(l layout.Layout, m *templates.Materializer, opts layout.Options) *Scaffolder {
	return &Scaffolder{layout: l, materializer: m, opts: opts}
}

// AddResult describes one completed module addition.
type AddResult struct {
	// ModuleName is the module name as given.
	ModuleName string

	// Location is the template location that was materialized.
	Location string

	// Dest is the directory the module was created in.
	Dest string

	// Files lists the created files relative to Dest.
	Files []string

	// Aggregator is the patched aggregator file path.
	Aggregator string
}

// Add materializes the template for location under the module's computed
// destination and wires the module into the package aggregator. In the new
// layout it also registers the module as a scoped package.
func (s *Scaffolder) Add(name, location string) (*AddResult, error) {
	if err := templates.ValidateModuleName(name); err != nil {
		return nil, err
	}
	if err := layout.ValidateLocation(location); err != nil {
		return nil, err
	}

	dest := s.layout.ModulesPath(location, s.opts, name)

	result, err := s.materializer.Materialize(dest, location, name)
	if err != nil {
		return nil, err
	}

	aggregator, err := s.patchAggregator(name, location)
	if err != nil {
		return nil, err
	}

	if !s.opts.Old {
		if err := s.registerPackage(name, location, dest); err != nil {
			return nil, err
		}
	}

	return &AddResult{
		ModuleName: name,
		Location:   location,
		Dest:       dest,
		Files:      result.Files,
		Aggregator: aggregator,
	}, nil
}

// RemoveResult describes one completed module removal.
type RemoveResult struct {
	// ModuleName is the module name as given.
	ModuleName string

	// Location is the location that was removed.
	Location string

	// Removed lists the paths that were deleted.
	Removed []string
}

// Remove deletes the module's files for location and unwires it from the
// package aggregator. Missing pieces are skipped rather than reported:
// removal is idempotent.
func (s *Scaffolder) Remove(name, location string) (*RemoveResult, error) {
	if err := templates.ValidateModuleName(name); err != nil {
		return nil, err
	}
	if err := layout.ValidateLocation(location); err != nil {
		return nil, err
	}

	result := &RemoveResult{ModuleName: name, Location: location}
	pascal := casing.Render(name).Pascal

	aggregator := filepath.Join(s.layout.ModulesPath(location, s.opts, ""), AggregatorFileName)
	if err := exports.RemoveEntry(aggregator, pascal); err != nil {
		return nil, err
	}

	moduleDir := s.layout.ModulesPath(location, s.opts, name)
	if _, err := os.Stat(moduleDir); err == nil {
		if err := os.RemoveAll(moduleDir); err != nil {
			return nil, fmt.Errorf("removing %s: %w", moduleDir, err)
		}
		result.Removed = append(result.Removed, moduleDir)
	}

	if !s.opts.Old {
		if err := s.unregisterPackage(name, location, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// patchAggregator inserts the module's import + export into the package
// aggregator file and returns the file's path.
func (s *Scaffolder) patchAggregator(name, location string) (string, error) {
	pascal := casing.Render(name).Pascal
	pkgRef := layout.PackageName(location, s.opts, name)

	aggregatorDir := s.layout.ModulesPath(location, s.opts, "")
	if err := os.MkdirAll(aggregatorDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", aggregatorDir, err)
	}

	aggregator := filepath.Join(aggregatorDir, AggregatorFileName)
	statement := fmt.Sprintf("import %s from '%s';\n", pascal, pkgRef)

	if err := exports.AddEntry(aggregator, pascal, statement); err != nil {
		return "", err
	}

	return aggregator, nil
}

// registerPackage wires a new-layout module into the workspace: a
// dependency entry in the target package.json and a node_modules symlink.
func (s *Scaffolder) registerPackage(name, location, moduleDir string) error {
	pkgRef := layout.PackageName(location, s.opts, name)

	if err := addDependency(s.layout.PackageJSONPath(location), pkgRef, moduleDir); err != nil {
		return err
	}

	link := s.layout.NodeModulePath(name, location)
	if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(link), err)
	}

	if _, err := os.Lstat(link); err == nil {
		output.Debug("symlink already exists", "path", link)
		return nil
	}

	abs, err := filepath.Abs(moduleDir)
	if err != nil {
		return err
	}
	if err := os.Symlink(abs, link); err != nil {
		return fmt.Errorf("linking %s: %w", link, err)
	}

	output.Debug("registered module package", "package", pkgRef, "link", link)
	return nil
}

// unregisterPackage removes the symlink, the package.json dependency, and,
// when no location remains, the module's root directory.
func (s *Scaffolder) unregisterPackage(name, location string, result *RemoveResult) error {
	link := s.layout.NodeModulePath(name, location)
	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("removing %s: %w", link, err)
		}
		result.Removed = append(result.Removed, link)
	}

	pkgRef := layout.PackageName(location, s.opts, name)
	if err := removeDependency(s.layout.PackageJSONPath(location), pkgRef); err != nil {
		return err
	}

	root := s.layout.RootModulePath(name)
	entries, err := os.ReadDir(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", root, err)
	}

	if len(entries) == 0 {
		if err := os.Remove(root); err != nil {
			return fmt.Errorf("removing %s: %w", root, err)
		}
		result.Removed = append(result.Removed, root)
	}

	return nil
}
