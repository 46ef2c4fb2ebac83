package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/modsync/pkg/errors"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for modsync
	EnvDataDir = "MODSYNC_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for modsync
	EnvConfigDir = "MODSYNC_CONFIG_DIR"

	// EnvBackupDir overrides the backup root
	EnvBackupDir = "MODSYNC_BACKUP_DIR"

	// EnvModsDir names the mods directory
	EnvModsDir = "MODSYNC_MODS_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for modsync-specific files
	AppDirName = "modsync"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// BackupsDir is the data subdirectory holding backup snapshots
	BackupsDir = "backups"

	// LogFileName is the name of the log file
	LogFileName = "modsync.log"
)

// Paths provides centralized path management for modsync
type Paths interface {
	DataDir() string
	ConfigDir() string
	StateDir() string
	ConfigFile() string
	BackupRoot() string
	LogFilePath() string
}

type paths struct {
	xdgData    string
	xdgConfig  string
	xdgState   string
	backupRoot string
}

// New creates a new Paths instance from the environment
func New() (Paths, error) {
	p := &paths{}

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	p.xdgState = filepath.Join(xdg.StateHome, AppDirName)

	if backupDir := os.Getenv(EnvBackupDir); backupDir != "" {
		p.backupRoot = expandHome(backupDir)
	} else {
		p.backupRoot = filepath.Join(p.xdgData, BackupsDir)
	}

	for _, dir := range []*string{&p.xdgData, &p.xdgConfig, &p.xdgState, &p.backupRoot} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// DataDir returns the XDG data directory for modsync
func (p *paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the XDG config directory for modsync
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for modsync
func (p *paths) StateDir() string {
	return p.xdgState
}

// ConfigFile returns the path of the user configuration file
func (p *paths) ConfigFile() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// BackupRoot returns the directory that holds backup snapshots
func (p *paths) BackupRoot() string {
	return p.backupRoot
}

// LogFilePath returns the path of the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
