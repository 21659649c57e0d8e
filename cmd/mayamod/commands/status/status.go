package status

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/mayamod/internal/cli"
	"github.com/arthur-debert/mayamod/pkg/commands"
	"github.com/arthur-debert/mayamod/pkg/style"
)

// NewCommand creates the status command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status [dir]",
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

	result, err := commands.Status(commands.StatusOptions{
		Dir:      dir,
		Variable: variable,
		Store:    rt.Store,
		Policy:   rt.Policy(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Registered {
		fmt.Fprintf(out, MsgRegistered+"\n", style.Render(style.SuccessStyle, result.Dir), result.Variable)
	} else {
		fmt.Fprintf(out, MsgNotRegistered+"\n", style.Render(style.WarningStyle, result.Dir), result.Variable)
	}

	if len(result.Entries) == 0 {
		fmt.Fprintf(out, MsgNoEntries+"\n", result.Variable)
		return nil
	}

	fmt.Fprintf(out, MsgEntriesHeader+"\n", result.Variable)

	policy := rt.Policy()
	items := make([]pterm.BulletListItem, 0, len(result.Entries))
	for _, entry := range result.Entries {
		item := pterm.BulletListItem{Level: 0, Text: entry, Bullet: "-"}
		if policy.Equal(entry, result.Dir) {
			item.Bullet = ">"
			item.BulletStyle = pterm.NewStyle(pterm.FgGreen)
			item.TextStyle = pterm.NewStyle(pterm.FgGreen)
		}
		items = append(items, item)
	}

	rendered, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)

	return nil
}
