package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLocations(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "server"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "client"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "server", ManifestFileName),
		[]byte("name: Server module\n"), 0o644))
	// Stray files in the root are not locations.
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("docs\n"), 0o644))

	locations, err := ListLocations(root)
	require.NoError(t, err)

	require.Len(t, locations, 2)
	assert.Equal(t, "client", locations[0].Location)
	assert.Equal(t, "server", locations[1].Location)
	assert.Equal(t, "Server module", locations[1].Manifest.Name)
}

func TestListLocationsMissingRoot(t *testing.T) {
	_, err := ListLocations(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
