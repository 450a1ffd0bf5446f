// Package cli implements the adminviz command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/powergraph/adminviz/pkg/buildinfo"
	"github.com/powergraph/adminviz/pkg/config"
	"github.com/powergraph/adminviz/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels accepted by [New].
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Persistent flags shared by all commands.
	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself renders a traversal CSV.
func (c *CLI) RootCommand() *cobra.Command {
	flags := &renderFlags{}

	root := &cobra.Command{
		Use:   appName + " [flags] <graph.csv>",
		Short: "Visualize derivative local admin traversals",
		Long: `adminviz turns a derivative local admin traversal table into a diagram.

Each CSV row is a host or user reached during the breadth-first traversal.
Hosts are drawn as red rectangles, users as green rounded rectangles, and
the reconstructed path is overlaid with blue dotted edges.

The diagram is written to the output directory (default: the working
directory) as <input name>.<format>, GraphML by default (open it in yEd).`,
		Version:       buildinfo.Get().Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetPipelineHooks(newHookLogger(c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			opts, err := flags.options(cmd, c.configPath, args[0])
			if err != nil {
				return err
			}
			return c.render(cmd.Context(), opts, flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+config.LocalFile+" or $XDG_CONFIG_HOME/"+appName+"/config.toml)")
	flags.register(root, true)

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}
