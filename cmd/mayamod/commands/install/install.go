package install

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/mayamod/internal/cli"
	"github.com/arthur-debert/mayamod/pkg/commands"
	"github.com/arthur-debert/mayamod/pkg/style"
)

// NewCommand creates the install command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "install [dir]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE:    run,
	}
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

	modulesDir, err := rt.ModulesDir()
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	result, err := commands.Install(commands.InstallOptions{
		Dir:           dir,
		ModulesDir:    modulesDir,
		ModulePathVar: rt.Config.ModulePathVar,
		IconPathVar:   rt.Config.IconPathVar,
		Store:         rt.Store,
		Policy:        rt.Policy(),
		DryRun:        dryRun,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	name := style.Render(style.SuccessStyle, result.ModuleName)

	if result.DryRun {
		fmt.Fprintf(out, MsgWouldInstall+"\n", name, result.InstalledPath)
	} else {
		fmt.Fprintf(out, MsgInstalled+"\n", name, result.InstalledPath)
	}

	if result.Module.AlreadyPresent {
		fmt.Fprintf(out, MsgModuleAlreadyRegistered+"\n", result.Module.Variable)
	} else {
		fmt.Fprintf(out, MsgModuleRegistered+"\n",
			style.Render(style.PathStyle, result.Module.Dir), result.Module.Variable)
	}

	if result.Icons != nil && !result.Icons.AlreadyPresent {
		fmt.Fprintf(out, MsgIconsRegistered+"\n",
			style.Render(style.PathStyle, result.Icons.Dir), result.Icons.Variable)
	}

	if !result.DryRun {
		fmt.Fprintln(out, MsgNewSessionHint)
	}

	return nil
}
