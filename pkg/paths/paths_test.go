package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/modsync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvBackupDir, "")
	t.Setenv(EnvModsDir, "")
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		envSetup map[string]string
		validate func(t *testing.T, p Paths)
	}{
		{
			name: "XDG defaults",
			envSetup: map[string]string{
				"XDG_DATA_HOME":   "/xdg/data",
				"XDG_CONFIG_HOME": "/xdg/config",
				"XDG_STATE_HOME":  "/xdg/state",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/xdg/data/modsync", p.DataDir())
				assert.Equal(t, "/xdg/config/modsync", p.ConfigDir())
				assert.Equal(t, "/xdg/config/modsync/config.toml", p.ConfigFile())
				assert.Equal(t, "/xdg/data/modsync/backups", p.BackupRoot())
				assert.Equal(t, "/xdg/state/modsync/modsync.log", p.LogFilePath())
			},
		},
		{
			name: "custom directories",
			envSetup: map[string]string{
				EnvDataDir:   "/custom/data",
				EnvConfigDir: "/custom/config",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/custom/data", p.DataDir())
				assert.Equal(t, "/custom/config", p.ConfigDir())
				assert.Equal(t, "/custom/data/backups", p.BackupRoot())
			},
		},
		{
			name: "backup dir override with tilde",
			envSetup: map[string]string{
				EnvBackupDir: "~/mod-backups",
			},
			validate: func(t *testing.T, p Paths) {
				home, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(home, "mod-backups"), p.BackupRoot())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}
			xdg.Reload()
			t.Cleanup(xdg.Reload)

			p, err := New()
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/mods", filepath.Join(home, "mods")},
		{"~other/mods", "~other/mods"},
		{"/abs/mods", "/abs/mods"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestNormalizePath(t *testing.T) {
	_, err := NormalizePath("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	got, err := NormalizePath("/games/./minecraft/../minecraft/mods")
	require.NoError(t, err)
	assert.Equal(t, "/games/minecraft/mods", got)

	rel, err := NormalizePath("mods")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(rel))
}
