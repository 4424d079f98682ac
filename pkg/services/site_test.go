package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSiteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Tors
tagline: Software engineer
email: hello@example.com
social:
  - label: GitHub
    url: https://github.com/saent-x
services:
  - title: Backend Development
    description: APIs and services in Go
projects:
  - title: Portfolio
    repo: https://github.com/saent-x/tors-x.dev
    tags: [go, web]
`), 0644))

	cfg, err := LoadSiteConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "Tors", cfg.Name)
	assert.Equal(t, "hello@example.com", cfg.Email)
	require.Len(t, cfg.Social, 1)
	assert.Equal(t, "GitHub", cfg.Social[0].Label)
	require.Len(t, cfg.Services, 1)
	require.Len(t, cfg.Projects, 1)
	assert.Equal(t, []string{"go", "web"}, cfg.Projects[0].Tags)
}

func TestLoadSiteConfigMissingFile(t *testing.T) {
	_, err := LoadSiteConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadSiteConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0644))

	_, err := LoadSiteConfig(path)
	assert.Error(t, err)
}
