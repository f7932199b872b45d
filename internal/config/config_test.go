package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	assert.Equal(t, ".", cfg.BasePath)
	assert.Equal(t, DefaultTemplatesDir, cfg.TemplatesDir)
	assert.Equal(t, DefaultLocation, cfg.DefaultLocation)
	assert.False(t, cfg.Legacy)
}

func TestApplyDefaultsKeepsSetValues(t *testing.T) {
	cfg := Config{
		BasePath:        "/workspace",
		TemplatesDir:    "templates",
		DefaultLocation: "server",
		Legacy:          true,
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "/workspace", cfg.BasePath)
	assert.Equal(t, "templates", cfg.TemplatesDir)
	assert.Equal(t, "server", cfg.DefaultLocation)
	assert.True(t, cfg.Legacy)
}

func TestTemplatesRoot(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "relative templates dir resolves against base",
			cfg:  Config{BasePath: "/workspace", TemplatesDir: "tools/templates"},
			want: filepath.Join("/workspace", "tools", "templates"),
		},
		{
			name: "absolute templates dir wins",
			cfg:  Config{BasePath: "/workspace", TemplatesDir: "/templates"},
			want: "/templates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.TemplatesRoot())
		})
	}
}
