package cli

import (
	"fmt"

	"github.com/arthur-debert/modsync/pkg/backup"
	"github.com/arthur-debert/modsync/pkg/filesystem"
	"github.com/arthur-debert/modsync/pkg/logging"
	"github.com/arthur-debert/modsync/pkg/manifest"
	"github.com/arthur-debert/modsync/pkg/observer"
	"github.com/arthur-debert/modsync/pkg/orchestration"
	"github.com/arthur-debert/modsync/pkg/paths"
	"github.com/arthur-debert/modsync/pkg/ui/progress"
	"github.com/spf13/cobra"
)

type syncOptions struct {
	dryRun    bool
	url       string
	backupDir string
	format    string
}

func newSyncCmd(global *globalOptions) *cobra.Command {
	opts := &syncOptions{}

	cmd := &cobra.Command{
		Use:     "sync [path]",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		Example: MsgSyncExample,
		GroupID: "sync",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, global, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Show what would change without backing up or modifying anything")
	cmd.Flags().StringVar(&opts.url, "url", "", "Mod server base URL (overrides remote.base_url)")
	cmd.Flags().StringVar(&opts.backupDir, "backup-dir", "", "Backup root (overrides backup.root)")
	cmd.Flags().StringVar(&opts.format, "format", "auto", "Output format: auto, term or text")

	return cmd
}

func runSync(cmd *cobra.Command, global *globalOptions, opts *syncOptions, args []string) error {
	logger := logging.GetLogger("cli.sync")

	overrides := map[string]interface{}{}
	if opts.url != "" {
		overrides["remote.base_url"] = opts.url
	}
	if opts.backupDir != "" {
		overrides["backup.root"] = opts.backupDir
	}

	cfg, err := global.load(overrides)
	if err != nil {
		return err
	}
	if err := cfg.ValidateRemote(); err != nil {
		return err
	}
	if err := cfg.ValidateBackup(); err != nil {
		return err
	}

	format, err := outputFormat(cmd, opts.format)
	if err != nil {
		return err
	}
	rich := format == progress.FormatTerminal

	p, err := paths.New()
	if err != nil {
		return err
	}
	backupRoot := p.BackupRoot()
	if cfg.Backup.Root != "" {
		if backupRoot, err = paths.NormalizePath(cfg.Backup.Root); err != nil {
			return err
		}
	}

	client, err := manifest.NewClient(manifest.Options{
		BaseURL:      cfg.Remote.BaseURL,
		ManifestPath: cfg.Remote.ManifestPath,
		ContentPath:  cfg.Remote.ContentPath,
		Timeout:      cfg.Remote.Timeout,
	})
	if err != nil {
		return err
	}

	target := ""
	if len(args) == 1 {
		if target, err = paths.NormalizePath(args[0]); err != nil {
			return err
		}
	}

	fs := filesystem.NewOS()
	orch, err := orchestration.New(orchestration.Options{
		Source:     client,
		Backup:     backup.NewManager(fs, backupRoot, cfg.Backup.Name),
		Resolver:   paths.Chain(paths.Env(), paths.Static(cfg.Mods.Dir)),
		Observer:   observer.NewMulti(progress.New(cmd.OutOrStdout(), format), observer.NewLog(logger)),
		FileSystem: fs,
		DryRun:     opts.dryRun,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("url", cfg.Remote.BaseURL).
		Str("target", target).
		Str("backupRoot", backupRoot).
		Bool("dryRun", opts.dryRun).
		Msg("Starting sync")

	report, err := orch.RunSync(cmd.Context(), target)
	if err != nil {
		return reported(err)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), "\n"+progress.RenderReport(report, rich))
	return nil
}
