package docs

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs.md
var docsRaw string

// NewCommand creates the docs command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "docs",
		Short:   MsgShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE:    run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}

	rendered, err := renderer.Render(docsRaw)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
