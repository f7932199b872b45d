package templates

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uskit/cli/internal/casing"
	oerrors "github.com/uskit/cli/internal/errors"
)

// writeTemplate lays out a minimal server template tree under root.
func writeTemplate(t *testing.T, root string) {
	t.Helper()

	serverDir := filepath.Join(root, "server", "resolvers")
	require.NoError(t, os.MkdirAll(serverDir, 0o755))

	files := map[string]string{
		"server/ModuleSchema.js":         "type $Module$ { name: String }\n// token: $module$\n",
		"server/resolvers/Module.js":     "export const $_module$ = '$-module$';\n// $MODULE$ / $MoDuLe$\n",
		"server/index.js":                "// no tokens here\n",
		"server/" + ManifestFileName:     "name: Server module\ndescription: Server-side feature slice\n",
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, filepath.FromSlash(path)), []byte(content), 0o644))
	}
}

func TestCopyMissingLocation(t *testing.T) {
	m := NewMaterializer(t.TempDir(), false)

	_, err := m.Copy(t.TempDir(), "server")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestCopyRefusesOverwriteWithoutForce(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root)

	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "index.js"), []byte("existing\n"), 0o644))

	m := NewMaterializer(root, false)
	_, err := m.Copy(dest, "server")
	assert.True(t, errors.Is(err, oerrors.ErrExists))

	m = NewMaterializer(root, true)
	_, err = m.Copy(dest, "server")
	assert.NoError(t, err)
}

func TestCopySkipsManifest(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root)

	dest := t.TempDir()
	m := NewMaterializer(root, false)
	result, err := m.Copy(dest, "server")
	require.NoError(t, err)

	assert.NotContains(t, result.Files, ManifestFileName)
	_, statErr := os.Stat(filepath.Join(dest, ManifestFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMaterialize(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root)

	dest := t.TempDir()
	m := NewMaterializer(root, false)
	result, err := m.Materialize(dest, "server", "contactUs")
	require.NoError(t, err)

	// Files containing the Module token are renamed with the Pascal variant.
	schema, err := os.ReadFile(filepath.Join(dest, "ContactUsSchema.js"))
	require.NoError(t, err)
	resolver, err := os.ReadFile(filepath.Join(dest, "resolvers", "ContactUs.js"))
	require.NoError(t, err)

	assert.Equal(t, "type ContactUs { name: String }\n// token: contactUs\n", string(schema))
	assert.Equal(t, "export const contact_us = 'contact-us';\n// CONTACTUS / Contact Us\n", string(resolver))

	// No placeholder token survives substitution.
	for _, token := range []string{TokenLiteral, TokenSnake, TokenKebab, TokenPascal, TokenTitle, TokenUpper} {
		assert.NotContains(t, string(schema), token)
		assert.NotContains(t, string(resolver), token)
	}

	assert.Contains(t, result.Files, "ContactUsSchema.js")
	assert.Contains(t, result.Files, filepath.Join("resolvers", "ContactUs.js"))
}

func TestMaterializeRejectsBadName(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root)

	m := NewMaterializer(root, false)
	_, err := m.Materialize(t.TempDir(), "server", "../escape")
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

// Renaming an already-materialized tree with the same name changes nothing.
func TestRenameIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root)

	dest := t.TempDir()
	m := NewMaterializer(root, false)
	_, err := m.Materialize(dest, "server", "billing")
	require.NoError(t, err)

	before, err := os.ReadFile(filepath.Join(dest, "BillingSchema.js"))
	require.NoError(t, err)

	require.NoError(t, Rename(dest, "billing"))

	after, err := os.ReadFile(filepath.Join(dest, "BillingSchema.js"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestRenameSkipsBinaryFiles(t *testing.T) {
	dest := t.TempDir()
	binary := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff, '$', 'm', 'o', 'd', 'u', 'l', 'e', '$'}
	require.NoError(t, os.WriteFile(filepath.Join(dest, "logo.png"), binary, 0o644))

	require.NoError(t, Rename(dest, "billing"))

	content, err := os.ReadFile(filepath.Join(dest, "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, binary, content)
}

func TestSubstituteNoTokens(t *testing.T) {
	tokens := casing.Render("billing")
	content := []byte("plain content\n")

	got, changed := Substitute(content, tokens)
	assert.False(t, changed)
	assert.Equal(t, content, got)
}
