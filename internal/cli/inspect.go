package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/powergraph/adminviz/pkg/pipeline"
)

// inspectCommand creates the inspect command for browsing a traversal table.
func (c *CLI) inspectCommand() *cobra.Command {
	flags := &renderFlags{}
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect <graph.csv>",
		Short: "Browse nodes, neighbors and the reconstructed path",
		Long: `Browse the traversal graph without writing a diagram.

The table lists every node with its category, distance, neighbors and its
position on the reconstructed path. Press enter to show all neighbors of
the selected node, p to show only the path.

Unresolved neighbor references are reported the same way the render
command reports them; use --placeholders to browse the graph anyway.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, c.configPath, args[0])
			if err != nil {
				return err
			}
			return c.runInspect(cmd, opts, plain)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&plain, "plain", false, "print the node table instead of starting the browser (default when stdout is not a terminal)")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, opts pipeline.Options, plain bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	prog := newProgress(logger)
	g, path, _, err := pipeline.NewRunner(logger).Parse(ctx, opts)
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %d nodes", g.Len()))

	if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(cmd.OutOrStdout(), renderNodeTable(g, path))
		if len(path) > 1 {
			fmt.Fprintln(cmd.OutOrStdout(), formatPath(path))
		}
		return nil
	}

	m := NewNodeListModel(fmt.Sprintf("%s · %d nodes", opts.Input, g.Len()), g, path)
	_, err = tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}
