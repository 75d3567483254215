package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dex/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Synthesize descriptors and regenerate every listing page and manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, config, jsonMode := commonFlags(cmd)
			jobs, _ := cmd.Flags().GetInt("jobs")
			metricsFile, _ := cmd.Flags().GetString("metrics-file")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				Root:        root,
				ConfigPath:  config,
				Jobs:        jobs,
				MetricsFile: metricsFile,
				JSON:        jsonMode,
			})
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Files hashed concurrently per directory (default: number of CPUs)")
	cmd.Flags().String("metrics-file", "", "Write run metrics to this file in Prometheus text format")
	return cmd
}
