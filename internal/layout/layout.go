// Package layout computes filesystem paths and package names for generated
// modules. All functions are pure; the workspace base directory is injected
// rather than read from process-wide state.
package layout

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/uskit/cli/internal/casing"
	oerrors "github.com/uskit/cli/internal/errors"
)

// PackageScope is the npm scope under which new-layout modules are published.
const PackageScope = "@module"

// knownSegments are the package categories a location tag may resolve to.
var knownSegments = map[string]bool{
	"client": true,
	"server": true,
}

// Layout resolves paths inside a starter-kit workspace.
type Layout struct {
	// BaseDir is the workspace root containing packages/ and modules/.
	BaseDir string
}

// Options carries the flags that alter path resolution.
type Options struct {
	// Old selects the legacy per-package layout
	// (packages/<segment>/src/modules/<name>).
	Old bool
}

// New creates a Layout rooted at baseDir.
func New(baseDir string) Layout {
	return Layout{BaseDir: baseDir}
}

// Segment returns the package category of a location tag: the text before
// the first hyphen, so "server-old" resolves to "server".
func Segment(location string) string {
	segment, _, _ := strings.Cut(location, "-")
	return segment
}

// ValidateLocation checks that a location tag resolves to a known package
// category. The original tool silently accepted anything here; unknown
// segments now fail validation.
func ValidateLocation(location string) error {
	if knownSegments[Segment(location)] {
		return nil
	}
	return oerrors.NewValidationError(
		fmt.Sprintf("unknown location %q", location),
		"",
		"Valid locations are client, server, or both.",
	)
}

// ModulesPath returns the directory a module's files live in for the given
// location. With an empty name it returns the directory holding the
// aggregator index file instead.
func (l Layout) ModulesPath(location string, opts Options, name string) string {
	segment := Segment(location)

	if opts.Old || (name == "" && segment == "server") {
		return filepath.Join(l.BaseDir, "packages", segment, "src", "modules", name)
	}
	if name == "" {
		return filepath.Join(l.BaseDir, "packages", segment, "src")
	}
	return filepath.Join(l.BaseDir, "modules", name, location)
}

// RootModulePath returns the per-module root shared by all locations in the
// new layout.
func (l Layout) RootModulePath(name string) string {
	return filepath.Join(l.BaseDir, "modules", name)
}

// PackageName returns the reference the aggregator file imports the module
// by: a relative path in the legacy layout, a scoped package name in the
// new layout.
func PackageName(location string, opts Options, name string) string {
	if opts.Old {
		return "./" + name
	}
	return fmt.Sprintf("%s/%s-%s", PackageScope, casing.Render(name).Kebab, location)
}

// PackageJSONPath returns the package.json of the target package category.
func (l Layout) PackageJSONPath(location string) string {
	return filepath.Join(l.BaseDir, "packages", Segment(location), "package.json")
}

// NodeModulePath returns the node_modules symlink target registering a
// new-layout module as a scoped package.
func (l Layout) NodeModulePath(name, location string) string {
	return filepath.Join(l.BaseDir, "node_modules", PackageScope,
		fmt.Sprintf("%s-%s", casing.Render(name).Kebab, location))
}
