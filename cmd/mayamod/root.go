package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/mayamod/cmd/mayamod/commands/docs"
	"github.com/arthur-debert/mayamod/cmd/mayamod/commands/install"
	"github.com/arthur-debert/mayamod/cmd/mayamod/commands/register"
	"github.com/arthur-debert/mayamod/cmd/mayamod/commands/snippet"
	"github.com/arthur-debert/mayamod/cmd/mayamod/commands/status"
	"github.com/arthur-debert/mayamod/internal/version"
	"github.com/arthur-debert/mayamod/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "mayamod",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help and signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	// Subcommands read this through the inherited flag set
	rootCmd.PersistentFlags().Bool("dry-run", false, MsgFlagDryRun)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(register.NewCommand())
	rootCmd.AddCommand(install.NewCommand())
	rootCmd.AddCommand(status.NewCommand())
	rootCmd.AddCommand(snippet.NewCommand())
	rootCmd.AddCommand(docs.NewCommand())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print version information",
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mayamod version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
