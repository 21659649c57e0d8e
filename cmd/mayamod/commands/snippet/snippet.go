package snippet

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/mayamod/internal/cli"
)

// NewCommand creates the snippet command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "snippet",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE:    run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	rt, err := cli.NewRuntime()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	snippet := rt.Store.Snippet()
	if snippet == "" {
		fmt.Fprintln(out, MsgNotNeeded)
		return nil
	}

	fmt.Fprintln(out, snippet)
	return nil
}
