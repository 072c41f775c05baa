package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	// An explicit path that does not exist is a real error.
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, loadErr := LoadConfig("")
	require.NoError(t, loadErr)

	assert.Equal(t, DefaultServerListen, cfg.Server.Listen)
	assert.Equal(t, DefaultTheme, cfg.Dashboard.Theme)
	assert.InDelta(t, DefaultGridCellSize, cfg.Dashboard.GridCellSize, 1e-9)
	assert.Equal(t, DefaultTopN, cfg.Dashboard.TopN)
	assert.Equal(t, DefaultDebounceMS, cfg.Dashboard.DebounceMS)
	assert.Equal(t, DefaultExportPath, cfg.Export.Path)
	assert.Empty(t, cfg.Data.Path)
}

func TestLoadConfig_File(t *testing.T) {
	t.Parallel()

	const fileContent = `
data:
  path: /data/collisions.csv
server:
  listen: ":9090"
dashboard:
  theme: dark
  top_n: 5
`

	path := filepath.Join(t.TempDir(), "roadviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fileContent), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/collisions.csv", cfg.Data.Path)
	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, ThemeDark, cfg.Dashboard.Theme)
	assert.Equal(t, 5, cfg.Dashboard.TopN)

	// Unset keys keep their defaults.
	assert.InDelta(t, DefaultGridCellSize, cfg.Dashboard.GridCellSize, 1e-9)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "bad theme",
			content: "dashboard:\n  theme: sepia\n",
			wantErr: ErrInvalidTheme,
		},
		{
			name:    "zero cell size",
			content: "dashboard:\n  grid_cell_size: 0\n",
			wantErr: ErrInvalidGridCellSize,
		},
		{
			name:    "negative top n",
			content: "dashboard:\n  top_n: -3\n",
			wantErr: ErrInvalidTopN,
		},
		{
			name:    "negative debounce",
			content: "dashboard:\n  debounce_ms: -1\n",
			wantErr: ErrInvalidDebounce,
		},
		{
			name:    "blank listen",
			content: "server:\n  listen: \"\"\n",
			wantErr: ErrEmptyListen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "roadviz.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadConfig(path)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("ROADVIZ_SERVER_LISTEN", ":7070")
	t.Setenv("ROADVIZ_DASHBOARD_THEME", "dark")

	path := filepath.Join(t.TempDir(), "roadviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  path: x.csv\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Listen)
	assert.Equal(t, ThemeDark, cfg.Dashboard.Theme)
}
