// Package commands implements the CLI commands for stow.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/stow/internal/app"
	"go.trai.ch/stow/internal/build"
	"go.trai.ch/stow/internal/core/domain"
)

// CLI represents the command line interface for stow.
type CLI struct {
	app     Application
	logger  Verbosity
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// Verbosity is the part of the logger the global flags control.
type Verbosity interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, log Verbosity) *CLI {
	c := &CLI{
		app:    a,
		logger: log,
	}

	rootCmd := &cobra.Command{
		Use:   "stow [flags] <Cargo.lock>...",
		Short: "Generate flatpak-builder sources for cargo dependencies",
		Long: "stow reads Cargo.lock files and writes the flatpak-builder sources that vendor\n" +
			"every registry and git dependency for an offline build. Lockfile arguments may\n" +
			"be comma-separated lists.",
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.configureLogging,
		RunE:              c.runGenerate,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	addGenerateFlags(rootCmd)

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")

	c.logger.SetVerbose(debug)
	c.logger.SetJSON(jsonLogs)
	return nil
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Where to write generated sources (default \""+domain.DefaultOutputPath+"\", \"-\" for stdout)")
	cmd.Flags().StringP("format", "f", "", "Output format: json or yaml (default \"json\")")
	cmd.Flags().String("cache-dir", "", "Directory holding the persistent git clone cache")
	cmd.Flags().IntP("jobs", "j", 0, "Number of packages planned concurrently (default: number of CPUs)")
}
