package cli

import (
	"fmt"

	"github.com/arthur-debert/modsync/internal/version"
	"github.com/arthur-debert/modsync/pkg/paths"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newPathsCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "paths",
		Short:   MsgPathsShort,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return err
			}
			cfg, err := global.load(nil)
			if err != nil {
				return err
			}

			backupRoot := p.BackupRoot()
			if cfg.Backup.Root != "" {
				backupRoot = paths.ExpandHome(cfg.Backup.Root)
			}
			mods, err := paths.Chain(paths.Env(), paths.Static(cfg.Mods.Dir)).ResolveModsDir()
			if err != nil {
				mods = "(not set)"
			}

			out := cmd.OutOrStdout()
			for _, row := range [][2]string{
				{"config", p.ConfigFile()},
				{"data", p.DataDir()},
				{"backups", backupRoot},
				{"log", p.LogFilePath()},
				{"mods", mods},
			} {
				_, _ = fmt.Fprintf(out, MsgPathsFormat, row[0], row[1])
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompletionShort,
		GroupID:   "misc",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf(MsgUnknownShell, args[0])
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "MODSYNC",
				Section: "1",
				Source:  "modsync " + version.Version,
				Manual:  "modsync manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
