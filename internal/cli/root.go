// Package cli wires modsync's cobra commands. It only adapts flags,
// configuration and terminal output to the packages under pkg/.
package cli

import (
	"os"

	"github.com/arthur-debert/modsync/internal/version"
	"github.com/arthur-debert/modsync/pkg/config"
	"github.com/arthur-debert/modsync/pkg/logging"
	"github.com/arthur-debert/modsync/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	verbosity  int
	configFile string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "modsync",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Configuration file (default $XDG_CONFIG_HOME/modsync/config.toml)")

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddGroup(
		&cobra.Group{ID: "sync", Title: "Sync Commands:"},
		&cobra.Group{ID: "config", Title: "Configuration Commands:"},
		&cobra.Group{ID: "misc", Title: "Other Commands:"},
	)

	rootCmd.AddCommand(newSyncCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newPathsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadOptions returns the config sources for the current invocation. The
// XDG config file is used unless --config or MODSYNC_CONFIG name another.
func (o *globalOptions) loadOptions(overrides map[string]interface{}) (config.LoadOptions, error) {
	lo := config.LoadOptions{ConfigFile: o.configFile, Overrides: overrides}
	if lo.ConfigFile != "" {
		lo.ConfigFile = paths.ExpandHome(lo.ConfigFile)
		return lo, nil
	}
	if os.Getenv(config.EnvConfigFile) != "" {
		return lo, nil
	}

	p, err := paths.New()
	if err != nil {
		return lo, err
	}
	lo.ConfigFile = p.ConfigFile()
	return lo, nil
}

func (o *globalOptions) load(overrides map[string]interface{}) (*config.Config, error) {
	lo, err := o.loadOptions(overrides)
	if err != nil {
		return nil, err
	}
	return config.Load(lo)
}
