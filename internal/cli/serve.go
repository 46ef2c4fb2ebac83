package cli

import (
	"fmt"

	"github.com/arthur-debert/modsync/pkg/errors"
	"github.com/arthur-debert/modsync/pkg/filesystem"
	"github.com/arthur-debert/modsync/pkg/paths"
	"github.com/arthur-debert/modsync/pkg/server"
	"github.com/spf13/cobra"
)

func newServeCmd(global *globalOptions) *cobra.Command {
	var dir, addr string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   MsgServeShort,
		Long:    MsgServeLong,
		Example: MsgServeExample,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if dir != "" {
				overrides["server.dir"] = dir
			}
			if addr != "" {
				overrides["server.addr"] = addr
			}
			cfg, err := global.load(overrides)
			if err != nil {
				return err
			}

			if cfg.Server.Dir == "" {
				return errors.New(errors.ErrInvalidInput, "no directory to serve; pass --dir or set server.dir")
			}
			root, err := paths.NormalizePath(cfg.Server.Dir)
			if err != nil {
				return err
			}

			fs := filesystem.NewOS()
			info, err := fs.Stat(root)
			if err != nil || !info.IsDir() {
				return errors.Newf(errors.ErrFilesystem, "%s is not a readable directory", root).
					WithDetail(errors.DetailPath, root)
			}

			srv := server.New(server.Options{
				FS:           fs,
				Dir:          root,
				ManifestPath: cfg.Remote.ManifestPath,
				ContentPath:  cfg.Remote.ContentPath,
			})

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgServing, root, cfg.Server.Addr)
			return srv.ListenAndServe(cmd.Context(), cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory of mods to publish (overrides server.dir)")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.addr)")

	return cmd
}
