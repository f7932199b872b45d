package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	oerrors "github.com/uskit/cli/internal/errors"
)

// ManifestFileName is the optional per-location metadata file. It is never
// copied into the destination tree.
const ManifestFileName = "template.yaml"

// Manifest describes a template location.
type Manifest struct {
	// Name is a human-readable template name.
	Name string `yaml:"name"`

	// Description explains what the template scaffolds.
	Description string `yaml:"description"`

	// MinCLIVersion is a semver constraint the CLI version must satisfy,
	// e.g. ">= 0.2.0". Empty means no constraint.
	MinCLIVersion string `yaml:"minCliVersion"`
}

// LoadManifest reads the manifest of a template location. A missing
// manifest file yields an empty Manifest, not an error.
func LoadManifest(locationDir string) (Manifest, error) {
	var m Manifest

	content, err := os.ReadFile(filepath.Join(locationDir, ManifestFileName))
	if errors.Is(err, os.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return m, fmt.Errorf("reading template manifest: %w", err)
	}

	if err := yaml.Unmarshal(content, &m); err != nil {
		return m, oerrors.Wrap(oerrors.ErrFormat,
			fmt.Sprintf("parsing template manifest in %s: %v", locationDir, err))
	}

	return m, nil
}

// CheckCLIVersion verifies that cliVersion satisfies the manifest's
// MinCLIVersion constraint, if any. Prerelease and unparsable versions
// (development builds) skip the check.
func (m Manifest) CheckCLIVersion(cliVersion string) error {
	if m.MinCLIVersion == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(m.MinCLIVersion)
	if err != nil {
		return oerrors.Wrap(oerrors.ErrFormat,
			fmt.Sprintf("invalid minCliVersion constraint %q", m.MinCLIVersion))
	}

	v, err := semver.NewVersion(cliVersion)
	if err != nil || v.Prerelease() != "" {
		// Development builds skip the constraint check.
		return nil
	}

	if !constraint.Check(v) {
		return oerrors.NewValidationError(
			fmt.Sprintf("template requires CLI version %s, have %s", m.MinCLIVersion, cliVersion),
			"",
			"Upgrade uskit to use this template.",
		)
	}

	return nil
}
