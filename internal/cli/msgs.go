package cli

// Command descriptions
const (
	MsgRootShort = "Keep a mods directory in line with a mod server"
	MsgRootLong  = `modsync makes a local mods directory match the manifest published by a
mod server. Before every sync the directory is copied to a backup
location; files missing from the manifest are then removed and files
missing locally are downloaded.

Mods are compared by file name only.`

	MsgSyncShort = "Synchronize a mods directory with the server manifest"
	MsgSyncLong  = `Back up the mods directory, fetch the manifest and reconcile the directory
against it.

The directory is taken from the argument, then from MODSYNC_MODS_DIR, then
from mods.dir in the configuration file.`
	MsgSyncExample = `  # Sync using the configured server and directory
  modsync sync

  # Sync an explicit directory against a given server
  modsync sync ~/games/minecraft/mods --url https://mods.example.org

  # Show what would change without touching anything
  modsync sync --dry-run`

	MsgServeShort = "Publish a directory of mods over HTTP"
	MsgServeLong  = `Serve the manifest and the contents of a directory so that other machines
can sync against it. Every regular file in the directory is listed in the
manifest in name order.`
	MsgServeExample = `  modsync serve --dir ./mods --addr :8080`

	MsgGenConfigShort   = "Print the effective configuration as TOML"
	MsgGenConfigLong    = "Print the configuration modsync would use, with defaults, the config file and\nenvironment applied. With -w the output is written to the user config file."
	MsgGenConfigExample = `  modsync genconfig                 # Output to stdout
  modsync genconfig -w              # Write to $XDG_CONFIG_HOME/modsync/config.toml`

	MsgPathsShort      = "Show the directories modsync uses"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgManShort        = "Generate the man page"
	MsgCompletionShort = "Generate shell completion script"
)

// Output
const (
	MsgVersionFormat = "modsync version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
	MsgConfigWritten = "Wrote configuration to %s\n"
	MsgConfigExists  = "configuration file %s already exists; use --force to overwrite"
	MsgServing       = "Serving %s on %s\n"
	MsgUnknownShell  = "unknown shell %q (supported: bash, zsh, fish, powershell)"
	MsgPathsFormat   = "%-12s %s\n"
)
