package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config lookup at an empty directory and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{
		"JARGON_DATABASE_PATH", "JARGON_DECKS_FILE", "JARGON_LOG_LEVEL",
		"JARGON_LOG_FILE", "JARGON_STUDY_START_DECK",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Database.Path)
	assert.Equal(t, "", cfg.Decks.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "terms", cfg.Study.StartDeck)
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)
	decks := filepath.Join(dir, "decks.yaml")
	require.NoError(t, os.WriteFile(decks, []byte("terms: []\n"), 0o644))

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  path: /tmp/jargon-test.db
decks:
  file: `+decks+`
log:
  level: DEBUG
  file: "-"
study:
  start_deck: acronyms
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/jargon-test.db", cfg.Database.Path)
	assert.Equal(t, decks, cfg.Decks.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "-", cfg.Log.File)
	assert.Equal(t, "acronyms", cfg.Study.StartDeck)
}

func TestLoadXDGConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "jargon"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jargon", "config.yaml"),
		[]byte("log:\n  level: warn\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("study:\n  start_deck: terms\n"), 0o644))
	t.Setenv("JARGON_STUDY_START_DECK", "acronyms")
	t.Setenv("JARGON_DATABASE_PATH", "/data/env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "acronyms", cfg.Study.StartDeck)
	assert.Equal(t, "/data/env.db", cfg.Database.Path)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad level", "log:\n  level: loud\n"},
		{"bad deck", "study:\n  start_deck: idioms\n"},
		{"missing deck file", "decks:\n  file: /does/not/exist.yaml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}
