package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, sources, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "New Project", cfg.ProjectName)
	assert.Equal(t, 40, cfg.DeliveryLeadWeeks)
	assert.Equal(t, "text", cfg.Format)
	assert.Empty(t, sources.Global)
	assert.Empty(t, sources.Project)
}

func TestLoadProjectConfigWithComments(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ConfigFileName), `{
		// site-specific defaults
		"project_name": "SCR Package",
		"delivery_lead_weeks": 50,
		"catalog_overrides": {
			"Catalyst": 60,
		},
	}`)

	cfg, sources, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "SCR Package", cfg.ProjectName)
	assert.Equal(t, 50, cfg.DeliveryLeadWeeks)
	assert.Equal(t, "text", cfg.Format) // untouched default
	assert.Equal(t, 60.0, cfg.CatalogOverrides["Catalyst"])
	assert.Equal(t, filepath.Join(dir, ConfigFileName), sources.Project)
}

func TestLoadPrecedenceProjectOverGlobal(t *testing.T) {
	global := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", global)
	writeConfig(t, filepath.Join(global, "mpr", "config.json"),
		`{"project_name": "Global Name", "format": "json"}`)

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ConfigFileName), `{"project_name": "Project Name"}`)

	cfg, sources, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Project Name", cfg.ProjectName)
	assert.Equal(t, "json", cfg.Format) // from the global layer
	assert.NotEmpty(t, sources.Global)
	assert.NotEmpty(t, sources.Project)
}

func TestLoadRejectsBadFormat(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ConfigFileName), `{"format": "yaml"}`)

	_, _, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestLoadRejectsNegativeLeadWeeks(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ConfigFileName), `{"delivery_lead_weeks": -1}`)

	_, _, err := Load(dir)
	require.Error(t, err)
}

func TestLoadMalformedConfigFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ConfigFileName), `{"project_name": `)

	_, _, err := Load(dir)
	require.Error(t, err)
}
