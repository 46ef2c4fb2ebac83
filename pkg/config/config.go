package config

import (
	"net/url"
	"time"

	"github.com/arthur-debert/modsync/pkg/errors"
	"github.com/arthur-debert/modsync/pkg/types"
)

// Config is the complete modsync configuration
type Config struct {
	Remote Remote `koanf:"remote"`
	Backup Backup `koanf:"backup"`
	Mods   Mods   `koanf:"mods"`
	Server Server `koanf:"server"`
}

// Remote describes the mod server the manifest client talks to
type Remote struct {
	BaseURL      string        `koanf:"base_url"`
	ManifestPath string        `koanf:"manifest_path"`
	ContentPath  string        `koanf:"content_path"`
	Timeout      time.Duration `koanf:"timeout"`
}

// Backup controls where the pre-sync snapshot is written
type Backup struct {
	Root string `koanf:"root"`
	Name string `koanf:"name"`
}

// Mods holds the default mods directory
type Mods struct {
	Dir string `koanf:"dir"`
}

// Server configures `modsync serve`
type Server struct {
	Addr string `koanf:"addr"`
	Dir  string `koanf:"dir"`
}

// ValidateRemote checks the settings needed to talk to a mod server
func (c *Config) ValidateRemote() error {
	if c.Remote.BaseURL == "" {
		return errors.New(errors.ErrConfigValid, "remote.base_url is not set").
			WithDetail("key", "remote.base_url")
	}

	u, err := url.Parse(c.Remote.BaseURL)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "remote.base_url is not a valid URL").
			WithDetail("key", "remote.base_url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Newf(errors.ErrConfigValid, "remote.base_url must be http or https, got %q", u.Scheme).
			WithDetail("key", "remote.base_url")
	}

	if c.Remote.Timeout < 0 {
		return errors.New(errors.ErrConfigValid, "remote.timeout must not be negative").
			WithDetail("key", "remote.timeout")
	}

	return nil
}

// ValidateBackup checks the backup settings
func (c *Config) ValidateBackup() error {
	if !types.ModName(c.Backup.Name).Valid() {
		return errors.Newf(errors.ErrConfigValid, "backup.name %q is not a usable directory name", c.Backup.Name).
			WithDetail("key", "backup.name")
	}
	return nil
}
