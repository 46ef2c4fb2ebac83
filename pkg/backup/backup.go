// Package backup snapshots the mods directory before a sync mutates it.
//
// The snapshot lives at a fixed location (<root>/<name>) and is replaced
// wholesale on every run; it is never pruned and never read back by
// modsync. Restoring from it is a manual action.
package backup

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/modsync/pkg/errors"
	"github.com/arthur-debert/modsync/pkg/filesystem"
	"github.com/arthur-debert/modsync/pkg/logging"
	"github.com/arthur-debert/modsync/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultName is the snapshot directory name used when none is configured
const DefaultName = "latest"

// Manager writes backup snapshots
type Manager struct {
	fs     types.FS
	root   string
	name   string
	logger zerolog.Logger
}

// NewManager creates a manager writing to <root>/<name>
func NewManager(fs types.FS, root, name string) *Manager {
	if name == "" {
		name = DefaultName
	}
	return &Manager{
		fs:     fs,
		root:   root,
		name:   name,
		logger: logging.GetLogger("backup"),
	}
}

// Target returns the snapshot directory
func (m *Manager) Target() string {
	return filepath.Join(m.root, m.name)
}

// Backup replaces the snapshot with a flat copy of every file in sourceDir.
// On failure the snapshot is left in whatever state the copy reached.
func (m *Manager) Backup(sourceDir string) error {
	done := logging.LogOperationStart(m.logger, "backup")
	defer done()

	if !types.ModName(m.name).Valid() {
		return errors.Newf(errors.ErrInvalidInput, "backup name %q must be a plain directory name", m.name).
			WithDetail(errors.DetailPath, m.name)
	}
	target := m.Target()

	info, err := m.fs.Stat(sourceDir)
	if err != nil {
		return fsError(err, "cannot read mods directory", sourceDir, "stat")
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrFilesystem, "mods directory %s is not a directory", sourceDir).
			WithDetail(errors.DetailPath, sourceDir).
			WithDetail(errors.DetailOp, "stat")
	}

	if within(target, sourceDir) {
		return errors.Newf(errors.ErrInvalidInput, "backup location %s is inside the mods directory %s", target, sourceDir).
			WithDetail(errors.DetailPath, target)
	}
	if within(sourceDir, target) {
		return errors.Newf(errors.ErrInvalidInput, "mods directory %s is inside the backup location %s", sourceDir, target).
			WithDetail(errors.DetailPath, target)
	}

	// List before touching the backup so a bad source leaves the old snapshot
	names, err := filesystem.ListFiles(m.fs, sourceDir)
	if err != nil {
		return fsError(err, "cannot list mods directory", sourceDir, "readdir")
	}

	if err := m.fs.MkdirAll(m.root, 0755); err != nil {
		return fsError(err, "cannot create backup root", m.root, "mkdir")
	}

	if _, err := m.fs.Stat(target); err == nil {
		m.logger.Debug().Str("path", target).Msg("Removing previous backup")
		if err := m.fs.RemoveAll(target); err != nil {
			return fsError(err, "cannot remove previous backup", target, "remove")
		}
	} else if !os.IsNotExist(err) {
		return fsError(err, "cannot inspect previous backup", target, "stat")
	}

	if err := m.fs.MkdirAll(target, 0755); err != nil {
		return fsError(err, "cannot create backup directory", target, "mkdir")
	}

	for _, name := range names {
		src := filepath.Join(sourceDir, name)
		dst := filepath.Join(target, name)
		if err := filesystem.CopyFile(m.fs, src, dst); err != nil {
			return fsError(err, "cannot back up "+name, src, "copy").
				WithDetail(errors.DetailMod, name)
		}
		m.logger.Trace().Str("file", name).Msg("Backed up")
	}

	m.logger.Info().
		Str("source", sourceDir).
		Str("target", target).
		Int("files", len(names)).
		Msg("Backup complete")

	return nil
}

func fsError(err error, msg, path, op string) *errors.ModsyncError {
	return errors.Wrap(err, errors.ErrFilesystem, msg).
		WithDetail(errors.DetailPath, path).
		WithDetail(errors.DetailOp, op)
}

// within reports whether path is dir or lies below it
func within(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
