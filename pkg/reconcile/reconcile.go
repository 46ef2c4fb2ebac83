// Package reconcile brings a local mods directory in line with a remote
// manifest.
//
// A reconcile runs in two passes. The removal pass deletes every local file
// whose name is not in the manifest. The download pass then walks the
// manifest in order, reports progress for every entry and fetches the
// entries that were not present before the run. Files that exist under
// the same name are never fetched again, whatever their contents.
//
// The first failure in either pass aborts the run. Nothing is rolled back.
package reconcile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/modsync/pkg/errors"
	"github.com/arthur-debert/modsync/pkg/filesystem"
	"github.com/arthur-debert/modsync/pkg/logging"
	"github.com/arthur-debert/modsync/pkg/observer"
	"github.com/arthur-debert/modsync/pkg/types"
	"github.com/rs/zerolog"
)

// ContentFetcher downloads the bytes of a single mod
type ContentFetcher interface {
	FetchContent(ctx context.Context, name types.ModName) ([]byte, error)
}

// Result summarizes a completed reconcile
type Result struct {
	Removed    []types.ModName
	Downloaded []types.ModName
	Present    []types.ModName
}

// Reconciler applies manifests to a directory
type Reconciler struct {
	fs       types.FS
	fetcher  ContentFetcher
	observer types.Observer
	logger   zerolog.Logger
}

// New creates a reconciler. A nil observer discards notifications.
func New(fs types.FS, fetcher ContentFetcher, obs types.Observer) *Reconciler {
	return &Reconciler{
		fs:       fs,
		fetcher:  fetcher,
		observer: observer.OrNop(obs),
		logger:   logging.GetLogger("reconcile"),
	}
}

// List returns the mod names currently in dir. A missing dir is an empty
// listing.
func (r *Reconciler) List(dir string) ([]types.ModName, error) {
	names, err := filesystem.ListFiles(r.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.ModName{}, nil
		}
		return nil, errors.Wrap(err, errors.ErrFilesystem, "cannot list mods directory").
			WithDetail(errors.DetailPath, dir).
			WithDetail(errors.DetailOp, "readdir")
	}
	return types.ModNames(names...), nil
}

// Plan lists dir and diffs it against remote without touching anything
func (r *Reconciler) Plan(dir string, remote []types.ModName) (Plan, error) {
	local, err := r.List(dir)
	if err != nil {
		return Plan{}, err
	}
	return NewPlan(local, remote), nil
}

// Reconcile makes the set of file names in dir equal to remote
func (r *Reconciler) Reconcile(ctx context.Context, dir string, remote []types.ModName) (*Result, error) {
	done := logging.LogOperationStart(r.logger, "reconcile")
	defer done()

	plan, err := r.Plan(dir, remote)
	if err != nil {
		return nil, err
	}

	r.logger.Debug().
		Str("dir", dir).
		Int("remote", len(remote)).
		Int("remove", len(plan.Remove)).
		Int("download", len(plan.Download)).
		Msg("Reconcile plan")

	result := &Result{
		Removed:    []types.ModName{},
		Downloaded: []types.ModName{},
		Present:    plan.Present,
	}

	for _, name := range plan.Remove {
		path := filepath.Join(dir, name.String())
		if err := r.fs.Remove(path); err != nil {
			return result, errors.Wrapf(err, errors.ErrFilesystem, "cannot remove %s", name).
				WithDetail(errors.DetailPath, path).
				WithDetail(errors.DetailOp, "remove").
				WithDetail(errors.DetailMod, name.String())
		}
		r.logger.Info().Str("mod", name.String()).Msg("Removed")
		result.Removed = append(result.Removed, name)
	}

	if len(plan.Download) > 0 {
		if err := r.fs.MkdirAll(dir, 0755); err != nil {
			return result, errors.Wrap(err, errors.ErrFilesystem, "cannot create mods directory").
				WithDetail(errors.DetailPath, dir).
				WithDetail(errors.DetailOp, "mkdir")
		}
	}

	pending := types.NewModSet(plan.Download)
	total := len(remote)
	for i, name := range remote {
		r.observer.Progress(types.SyncProgress{Current: i + 1, Total: total, Name: name})

		if !pending.Has(name) {
			continue
		}
		delete(pending, name)

		if err := r.download(ctx, dir, name); err != nil {
			return result, err
		}
		result.Downloaded = append(result.Downloaded, name)
	}

	return result, nil
}

func (r *Reconciler) download(ctx context.Context, dir string, name types.ModName) error {
	data, err := r.fetcher.FetchContent(ctx, name)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, name.String())
	if err := r.fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "cannot write %s", name).
			WithDetail(errors.DetailPath, path).
			WithDetail(errors.DetailOp, "write").
			WithDetail(errors.DetailMod, name.String())
	}

	r.logger.Info().Str("mod", name.String()).Int("bytes", len(data)).Msg("Downloaded")
	return nil
}
