package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dex/internal/app"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that sidecars and manifests still match the files on disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, config, jsonMode := commonFlags(cmd)
			return c.app.Verify(cmd.Context(), app.VerifyOptions{
				Root:       root,
				ConfigPath: config,
				JSON:       jsonMode,
			})
		},
	}
}
