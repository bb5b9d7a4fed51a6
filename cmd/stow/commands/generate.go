package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stow/internal/app"
	"go.trai.ch/stow/internal/core/domain"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <Cargo.lock>...",
		Short: "Generate sources for the given lockfiles",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.runGenerate,
	}
	addGenerateFlags(cmd)
	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// Display command usage help without returning an error
		_ = cmd.Help()
		return nil
	}

	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	jobs, _ := cmd.Flags().GetInt("jobs")

	return c.app.Generate(cmd.Context(), app.GenerateOptions{
		Lockfiles:   args,
		Output:      output,
		Format:      domain.OutputFormat(format),
		CacheDir:    cacheDir,
		Parallelism: jobs,
	})
}
