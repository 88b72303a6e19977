package labeler

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputFile, cfg.OutputPath)
	assert.Equal(t, DefaultColumns(), cfg.Columns)
	assert.Greater(t, cfg.Window.Width, float32(0))
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Config{
		OutputPath:       "out.csv",
		Columns:          Columns{Text: "body"},
		LastCommentsPath: "/tmp/comments.csv",
		Window:           WindowConfig{Width: 800, Height: 600},
	}
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "out.csv", loaded.OutputPath)
	assert.Equal(t, "body", loaded.Columns.Text)
	assert.Equal(t, "videoId", loaded.Columns.Video, "unset columns fall back to defaults")
	assert.Equal(t, "/tmp/comments.csv", loaded.LastCommentsPath)
	assert.Equal(t, float32(800), loaded.Window.Width)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeTempFile(t, "config.json", "{not json")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode config")
}
