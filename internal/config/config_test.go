package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/ats-checker/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"catalog_path": "skills.yaml",
		"max_input_bytes": 2048,
		"concurrency": 8,
		"style_match": "word",
		"fold_accents": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "skills.yaml", cfg.CatalogPath)
	assert.Equal(t, 2048, cfg.MaxInputBytes)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, "word", cfg.StyleMatch)
	assert.True(t, cfg.FoldAccents)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, style.ModeWord, cfg.StyleMode())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	catalogFile := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(catalogFile, []byte(`{"skills": []}`), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero value", cfg: Config{}},
		{name: "defaults", cfg: Defaults()},
		{name: "existing catalog", cfg: Config{CatalogPath: catalogFile}},
		{name: "negative max input", cfg: Config{MaxInputBytes: -1}, wantErr: "max_input_bytes"},
		{name: "negative concurrency", cfg: Config{Concurrency: -2}, wantErr: "concurrency"},
		{name: "excessive concurrency", cfg: Config{Concurrency: 1000}, wantErr: "concurrency"},
		{name: "unknown style mode", cfg: Config{StyleMatch: "fuzzy"}, wantErr: "unknown style match mode"},
		{name: "missing catalog", cfg: Config{CatalogPath: "/nonexistent/skills.json"}, wantErr: "catalog file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config error")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Concurrency: 2}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 2, merged.Concurrency)
	assert.Equal(t, DefaultMaxInputBytes, merged.MaxInputBytes)
	assert.Equal(t, "substring", merged.StyleMatch)
	assert.False(t, merged.FoldAccents)

	// Original is not modified
	assert.Equal(t, 0, cfg.MaxInputBytes)

	withBools := (&Config{}).MergeWithDefaults(Config{FoldAccents: true, Verbose: true, CatalogPath: "x.yaml"})
	assert.True(t, withBools.FoldAccents)
	assert.True(t, withBools.Verbose)
	assert.Equal(t, "x.yaml", withBools.CatalogPath)
}

func TestStyleMode_Fallback(t *testing.T) {
	assert.Equal(t, style.ModeSubstring, (&Config{}).StyleMode())
	assert.Equal(t, style.ModeSubstring, (&Config{StyleMatch: "bogus"}).StyleMode())
}
