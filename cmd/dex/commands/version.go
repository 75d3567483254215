package commands

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/dex/internal/build"
)

type versionInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Long: "Print the application version, the commit and date it was built from, and the Go toolchain.\n" +
			"With --json the same fields are printed as a JSON object.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{
				Version:  build.Version,
				Commit:   build.Commit,
				Date:     build.Date,
				Go:       runtime.Version(),
				Platform: runtime.GOOS + "/" + runtime.GOARCH,
			}

			out := cmd.OutOrStdout()
			if _, _, jsonMode := commonFlags(cmd); jsonMode {
				return json.NewEncoder(out).Encode(info)
			}

			_, err := fmt.Fprintf(out, "dex version %s (commit: %s, date: %s, %s %s)\n",
				info.Version, info.Commit, info.Date, info.Go, info.Platform)
			return err
		},
	}
}
