// Package paths provides centralized path handling for modsync.
//
// This package implements the XDG Base Directory specification and provides
// a consistent API for the locations modsync reads and writes outside of the
// mods directory itself. It handles:
//
//   - XDG directory structure (data, config, state)
//   - The fixed backup root and backup snapshot location
//   - Path normalization and ~ expansion
//   - Resolution of the mods directory when the caller did not supply one
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - MODSYNC_DATA_DIR: Override XDG data directory (default: $XDG_DATA_HOME/modsync)
//   - MODSYNC_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/modsync)
//   - MODSYNC_BACKUP_DIR: Override the backup root (default: <data dir>/backups)
//   - MODSYNC_MODS_DIR: Mods directory used by EnvResolver
//
// # Usage
//
//	p, err := paths.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	root := p.BackupRoot()       // /home/user/.local/share/modsync/backups
//	cfg := p.ConfigFile()        // /home/user/.config/modsync/config.toml
//
//	resolver := paths.Chain(paths.Static(flagDir), paths.Env(), paths.Static(cfg.Mods.Dir))
//	dir, err := resolver.ResolveModsDir()
package paths
