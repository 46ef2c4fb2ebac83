package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/modsync/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, e := range os.Environ() {
		name, _, _ := strings.Cut(e, "=")
		if strings.HasPrefix(name, EnvPrefix) {
			// t.Setenv registers the restore, then drop the variable entirely
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Remote.BaseURL)
	assert.Equal(t, "/manifest", cfg.Remote.ManifestPath)
	assert.Equal(t, "/mods", cfg.Remote.ContentPath)
	assert.Equal(t, 30*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "latest", cfg.Backup.Name)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadLayering(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[remote]
base_url = "https://mods.example.org/"
timeout = "5s"

[mods]
dir = "/games/minecraft/mods"
`), 0644))

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)

		assert.Equal(t, "https://mods.example.org", cfg.Remote.BaseURL, "trailing slash is trimmed")
		assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
		assert.Equal(t, "/games/minecraft/mods", cfg.Mods.Dir)
		assert.Equal(t, "/manifest", cfg.Remote.ManifestPath, "untouched keys keep defaults")
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("MODSYNC_REMOTE_BASE_URL", "http://localhost:9000")
		t.Setenv("MODSYNC_BACKUP_NAME", "pre-sync")

		cfg, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:9000", cfg.Remote.BaseURL)
		assert.Equal(t, "pre-sync", cfg.Backup.Name)
	})

	t.Run("overrides win", func(t *testing.T) {
		t.Setenv("MODSYNC_REMOTE_BASE_URL", "http://localhost:9000")

		cfg, err := Load(LoadOptions{
			ConfigFile: path,
			Overrides:  map[string]interface{}{"remote.base_url": "http://flag:1"},
		})
		require.NoError(t, err)

		assert.Equal(t, "http://flag:1", cfg.Remote.BaseURL)
	})

	t.Run("MODSYNC_CONFIG selects the file", func(t *testing.T) {
		t.Setenv(EnvConfigFile, path)

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)

		assert.Equal(t, "/games/minecraft/mods", cfg.Mods.Dir)
	})
}

func TestLoadInvalidFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[remote\nbase_url = "), 0644))

	_, err := Load(LoadOptions{ConfigFile: path})
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MODSYNC_REMOTE_BASE_URL", "remote.base_url"},
		{"MODSYNC_MODS_DIR", "mods.dir"},
		{"MODSYNC_SERVER_ADDR", "server.addr"},
		{"MODSYNC_DATA_DIR", ""},
		{"MODSYNC_CONFIG", ""},
		{"MODSYNC_REMOTE", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}

func TestValidateRemote(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		timeout time.Duration
		wantErr bool
	}{
		{"valid https", "https://mods.example.org", time.Second, false},
		{"valid http with port", "http://127.0.0.1:8080", 0, false},
		{"missing", "", time.Second, true},
		{"bad scheme", "ftp://mods.example.org", time.Second, true},
		{"negative timeout", "https://mods.example.org", -time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Remote: Remote{BaseURL: tt.baseURL, Timeout: tt.timeout}}
			err := cfg.ValidateRemote()
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBackup(t *testing.T) {
	assert.NoError(t, (&Config{Backup: Backup{Name: "latest"}}).ValidateBackup())
	assert.Error(t, (&Config{Backup: Backup{Name: ".."}}).ValidateBackup())
	assert.Error(t, (&Config{Backup: Backup{Name: ""}}).ValidateBackup())

	for _, name := range []string{"../precious", "nested/latest", `..\x`} {
		err := (&Config{Backup: Backup{Name: name}}).ValidateBackup()
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "name %q: got %v", name, err)
	}
}

func TestGenerate(t *testing.T) {
	clearConfigEnv(t)

	out, err := Generate(LoadOptions{
		ConfigFile: filepath.Join(t.TempDir(), "missing.toml"),
		Overrides:  map[string]interface{}{"remote.base_url": "https://mods.example.org"},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "# modsync configuration")

	var decoded map[string]map[string]interface{}
	require.NoError(t, toml.Unmarshal(out, &decoded))
	assert.Equal(t, "https://mods.example.org", decoded["remote"]["base_url"])
	assert.Equal(t, "30s", decoded["remote"]["timeout"])
	assert.Equal(t, "latest", decoded["backup"]["name"])
}
