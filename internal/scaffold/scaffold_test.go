package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/uskit/cli/internal/errors"
	"github.com/uskit/cli/internal/layout"
	"github.com/uskit/cli/internal/templates"
)

// newWorkspace builds a workspace with a server template and the package
// trees both layouts expect.
func newWorkspace(t *testing.T) (base, templatesRoot string) {
	t.Helper()

	base = t.TempDir()
	templatesRoot = filepath.Join(base, "tools", "templates")

	serverTemplate := filepath.Join(templatesRoot, "server")
	require.NoError(t, os.MkdirAll(serverTemplate, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(serverTemplate, "ModuleResolvers.js"),
		[]byte("export const $module$ = '$Module$';\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(serverTemplate, "package.json"),
		[]byte("{\n  \"name\": \"$-module$-server\"\n}\n"), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(base, "packages", "server", "src", "modules"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(base, "packages", "server", "package.json"),
		[]byte("{\n  \"name\": \"server\",\n  \"dependencies\": {}\n}\n"), 0o644))

	return base, templatesRoot
}

func newScaffolder(base, templatesRoot string, old bool) *Scaffolder {
	return New(
		layout.New(base),
		templates.NewMaterializer(templatesRoot, false),
		layout.Options{Old: old},
	)
}

func TestAddNewLayout(t *testing.T) {
	base, templatesRoot := newWorkspace(t)
	s := newScaffolder(base, templatesRoot, false)

	result, err := s.Add("contactUs", "server")
	require.NoError(t, err)

	// Module files land in the per-module layout with renamed files.
	moduleDir := filepath.Join(base, "modules", "contactUs", "server")
	assert.Equal(t, moduleDir, result.Dest)
	content, err := os.ReadFile(filepath.Join(moduleDir, "ContactUsResolvers.js"))
	require.NoError(t, err)
	assert.Equal(t, "export const contactUs = 'ContactUs';\n", string(content))

	// The aggregator imports the scoped package.
	aggregator, err := os.ReadFile(result.Aggregator)
	require.NoError(t, err)
	assert.Equal(t,
		"import ContactUs from '@module/contact-us-server';\n\nexport default {\n  ContactUs\n};\n",
		string(aggregator))

	// package.json gained the dependency and node_modules the symlink.
	pkg, err := os.ReadFile(filepath.Join(base, "packages", "server", "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(pkg), "@module/contact-us-server")

	link := filepath.Join(base, "node_modules", "@module", "contact-us-server")
	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, moduleDir, target)
}

func TestAddOldLayout(t *testing.T) {
	base, templatesRoot := newWorkspace(t)
	s := newScaffolder(base, templatesRoot, true)

	result, err := s.Add("billing", "server")
	require.NoError(t, err)

	moduleDir := filepath.Join(base, "packages", "server", "src", "modules", "billing")
	assert.Equal(t, moduleDir, result.Dest)
	assert.FileExists(t, filepath.Join(moduleDir, "BillingResolvers.js"))

	aggregator, err := os.ReadFile(
		filepath.Join(base, "packages", "server", "src", "modules", "index.js"))
	require.NoError(t, err)
	assert.Equal(t,
		"import Billing from './billing';\n\nexport default {\n  Billing\n};\n",
		string(aggregator))

	// Legacy layout does not touch node_modules.
	assert.NoDirExists(t, filepath.Join(base, "node_modules"))
}

func TestAddSecondModulePreservesFirst(t *testing.T) {
	base, templatesRoot := newWorkspace(t)
	s := newScaffolder(base, templatesRoot, true)

	_, err := s.Add("billing", "server")
	require.NoError(t, err)
	_, err = s.Add("contactUs", "server")
	require.NoError(t, err)

	aggregator, err := os.ReadFile(
		filepath.Join(base, "packages", "server", "src", "modules", "index.js"))
	require.NoError(t, err)
	assert.Equal(t,
		"import Billing from './billing';\nimport ContactUs from './contactUs';\n\n"+
			"export default {\n  Billing,\n  ContactUs\n};\n",
		string(aggregator))
}

func TestAddUnknownLocation(t *testing.T) {
	base, templatesRoot := newWorkspace(t)
	s := newScaffolder(base, templatesRoot, false)

	_, err := s.Add("billing", "mobile")
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestAddMissingTemplate(t *testing.T) {
	base, templatesRoot := newWorkspace(t)
	s := newScaffolder(base, templatesRoot, false)

	_, err := s.Add("billing", "client")
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestRemoveNewLayout(t *testing.T) {
	base, templatesRoot := newWorkspace(t)
	s := newScaffolder(base, templatesRoot, false)

	added, err := s.Add("contactUs", "server")
	require.NoError(t, err)

	result, err := s.Remove("contactUs", "server")
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(base, "modules", "contactUs"))
	assert.Contains(t, result.Removed, filepath.Join(base, "modules", "contactUs", "server"))

	aggregator, err := os.ReadFile(added.Aggregator)
	require.NoError(t, err)
	assert.NotContains(t, string(aggregator), "ContactUs")

	pkg, err := os.ReadFile(filepath.Join(base, "packages", "server", "package.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(pkg), "@module/contact-us-server")

	_, err = os.Lstat(filepath.Join(base, "node_modules", "@module", "contact-us-server"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveIsIdempotent(t *testing.T) {
	base, templatesRoot := newWorkspace(t)
	s := newScaffolder(base, templatesRoot, false)

	_, err := s.Remove("ghost", "server")
	require.NoError(t, err)

	result, err := s.Remove("ghost", "server")
	require.NoError(t, err)
	assert.Empty(t, result.Removed)
}

// Add then remove restores the aggregator's semantic key set.
func TestAddRemoveRoundTrip(t *testing.T) {
	base, templatesRoot := newWorkspace(t)
	s := newScaffolder(base, templatesRoot, true)

	_, err := s.Add("billing", "server")
	require.NoError(t, err)
	before, err := os.ReadFile(
		filepath.Join(base, "packages", "server", "src", "modules", "index.js"))
	require.NoError(t, err)

	_, err = s.Add("contactUs", "server")
	require.NoError(t, err)
	_, err = s.Remove("contactUs", "server")
	require.NoError(t, err)

	after, err := os.ReadFile(
		filepath.Join(base, "packages", "server", "src", "modules", "index.js"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
