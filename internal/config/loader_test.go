package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scaffoldkit/cli/internal/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, t.TempDir(), "config.yaml", content)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
author: Alex
basePath: ~/projects
log:
  timestamps: false
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Alex", cfg.Author)
	assert.Equal(t, "~/projects", cfg.BasePath)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.False(t, *cfg.Log.Timestamps)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Author)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "author: Alex\n")
	t.Setenv("SCAFFOLD_AUTHOR", "Robin")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Robin", cfg.Author)
}

func TestLoadWithDefaults_Author(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultAuthor, cfg.Author)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "author: [unclosed\n")

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}
