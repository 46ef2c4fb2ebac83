package orchestration

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/modsync/pkg/errors"
	"github.com/arthur-debert/modsync/pkg/filesystem"
	"github.com/arthur-debert/modsync/pkg/logging"
	"github.com/arthur-debert/modsync/pkg/observer"
	"github.com/arthur-debert/modsync/pkg/reconcile"
	"github.com/arthur-debert/modsync/pkg/types"
)

// Status messages sent to the observer
const (
	StatusResolving = "Locating mods directory..."
	StatusBackingUp = "Backing up mods..."
	StatusFetching  = "Fetching manifest..."
	StatusSyncing   = "Synchronizing mods..."
	StatusPlanning  = "Computing changes (dry run)..."
	StatusComplete  = "Sync complete"
)

// Source is the remote side of a sync
type Source interface {
	FetchManifest(ctx context.Context) ([]types.ModName, error)
	reconcile.ContentFetcher
}

// Backupper snapshots the mods directory before it is changed
type Backupper interface {
	Backup(sourceDir string) error
	Target() string
}

// Options wires the collaborators of an Orchestrator
type Options struct {
	Source   Source
	Backup   Backupper
	Resolver types.PathResolver
	Observer types.Observer

	// FileSystem defaults to the OS filesystem
	FileSystem types.FS

	// DryRun skips the backup and every change to the mods directory
	DryRun bool
}

// Report describes a finished sync
type Report struct {
	ModsDir   string
	BackupDir string
	DryRun    bool

	// Remote is the manifest as fetched
	Remote []types.ModName

	// Plan is what the sync set out to do
	Plan reconcile.Plan

	// Result is nil for dry runs
	Result *reconcile.Result
}

// Orchestrator runs syncs
type Orchestrator struct {
	opts       Options
	observer   types.Observer
	reconciler *reconcile.Reconciler
}

// New validates opts and creates an Orchestrator
func New(opts Options) (*Orchestrator, error) {
	if opts.Source == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no mod source configured")
	}
	if opts.Backup == nil && !opts.DryRun {
		return nil, errors.New(errors.ErrInvalidInput, "no backup manager configured")
	}
	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}

	obs := observer.OrNop(opts.Observer)
	return &Orchestrator{
		opts:       opts,
		observer:   obs,
		reconciler: reconcile.New(opts.FileSystem, opts.Source, obs),
	}, nil
}

// RunSync brings targetPath in line with the remote manifest. An empty
// targetPath is resolved through the configured PathResolver.
func (o *Orchestrator) RunSync(ctx context.Context, targetPath string) (*Report, error) {
	logger := logging.GetLogger("orchestration")

	report, err := o.run(ctx, targetPath)
	if err != nil {
		logger.Error().Err(err).Str("target", targetPath).Msg("Sync failed")
		o.observer.Error(err)
		return report, err
	}

	logger.Info().
		Str("dir", report.ModsDir).
		Bool("dryRun", report.DryRun).
		Int("remote", len(report.Remote)).
		Int("removed", len(report.Plan.Remove)).
		Int("downloaded", len(report.Plan.Download)).
		Msg("Sync finished")

	o.observer.Status(StatusComplete)
	o.observer.Complete()
	return report, nil
}

func (o *Orchestrator) run(ctx context.Context, targetPath string) (*Report, error) {
	// Step 1: Resolve the mods directory
	dir, err := o.resolve(targetPath)
	if err != nil {
		return nil, err
	}

	report := &Report{ModsDir: dir, DryRun: o.opts.DryRun}

	// Step 2: Back up the current state
	if !o.opts.DryRun {
		o.observer.Status(StatusBackingUp)
		if err := o.opts.Backup.Backup(dir); err != nil {
			return report, err
		}
		report.BackupDir = o.opts.Backup.Target()
	}

	// Step 3: Fetch the manifest
	o.observer.Status(StatusFetching)
	remote, err := o.opts.Source.FetchManifest(ctx)
	if err != nil {
		return report, coded(err, "cannot fetch manifest")
	}
	report.Remote = remote

	// Step 4: Reconcile
	if o.opts.DryRun {
		o.observer.Status(StatusPlanning)
		plan, err := o.reconciler.Plan(dir, remote)
		if err != nil {
			return report, err
		}
		report.Plan = plan
		return report, nil
	}

	o.observer.Status(fmt.Sprintf("%s (%d in manifest)", StatusSyncing, len(remote)))
	result, err := o.reconciler.Reconcile(ctx, dir, remote)
	if result != nil {
		report.Result = result
		report.Plan = reconcile.Plan{
			Remove:   result.Removed,
			Download: result.Downloaded,
			Present:  result.Present,
		}
	}
	if err != nil {
		return report, coded(err, "cannot synchronize mods")
	}

	return report, nil
}

func (o *Orchestrator) resolve(targetPath string) (string, error) {
	if targetPath != "" {
		return filepath.Clean(targetPath), nil
	}

	if o.opts.Resolver == nil {
		return "", errors.New(errors.ErrInvalidInput, "no mods directory given and no resolver configured")
	}

	o.observer.Status(StatusResolving)
	dir, err := o.opts.Resolver.ResolveModsDir()
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrInvalidInput) {
			return "", err
		}
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot locate mods directory")
	}
	if dir == "" {
		return "", errors.New(errors.ErrInvalidInput, "cannot locate mods directory")
	}
	return filepath.Clean(dir), nil
}

// coded leaves coded errors alone and tags anything else as internal
func coded(err error, msg string) error {
	if errors.GetErrorCode(err) != errors.ErrUnknown {
		return err
	}
	return errors.Wrap(err, errors.ErrInternal, msg)
}
