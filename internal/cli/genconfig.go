package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/modsync/pkg/config"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(global *globalOptions) *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := global.loadOptions(nil)
			if err != nil {
				return err
			}

			data, err := config.Generate(lo)
			if err != nil {
				return err
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}

			target := lo.ConfigFile
			if target == "" {
				target = os.Getenv(config.EnvConfigFile)
			}
			if _, err := os.Stat(target); err == nil && !force {
				return fmt.Errorf(MsgConfigExists, target)
			}
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(target, data, 0644); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the configuration file instead of printing it")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	return cmd
}
