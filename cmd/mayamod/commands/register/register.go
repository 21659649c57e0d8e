package register

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/mayamod/internal/cli"
	"github.com/arthur-debert/mayamod/pkg/commands"
	"github.com/arthur-debert/mayamod/pkg/style"
)

// NewCommand creates the register command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "register [dir]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE:    run,
	}

	cmd.Flags().StringP("var", "n", "", MsgFlagVar)

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	rt, err := cli.NewRuntime()
	if err != nil {
		return err
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}

	variable, _ := cmd.Flags().GetString("var")
	if variable == "" {
		variable = rt.Config.ModulePathVar
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	result, err := commands.Register(commands.RegisterOptions{
		Dir:      dir,
		Variable: variable,
		Store:    rt.Store,
		Policy:   rt.Policy(),
		DryRun:   dryRun,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case result.AlreadyPresent:
		fmt.Fprintf(out, MsgAlreadyPresent+"\n",
			style.Render(style.PathStyle, result.Dir), result.Variable)
	case result.DryRun:
		fmt.Fprintf(out, MsgWouldRegister+"\n",
			style.Render(style.PathStyle, result.Dir), result.Variable, result.NewValue)
	default:
		fmt.Fprintf(out, MsgRegistered+"\n",
			style.Render(style.SuccessStyle, result.Dir), result.Variable)
		fmt.Fprintln(out, MsgNewSessionHint)
		if rt.Store.Snippet() != "" {
			fmt.Fprintln(out, MsgSnippetHint)
		}
	}

	return nil
}
