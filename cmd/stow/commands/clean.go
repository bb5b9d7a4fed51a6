package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stow/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the persistent git clone cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			return c.app.Clean(cmd.Context(), app.CleanOptions{CacheDir: cacheDir})
		},
	}

	cmd.Flags().String("cache-dir", "", "Directory holding the persistent git clone cache")

	return cmd
}
