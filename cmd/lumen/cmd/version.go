package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumen-cv/lumen/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		v, commit, date := version.Info()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "lumen %s (api %s)\n", v, version.String(version.API))
		fmt.Fprintf(out, "Commit: %s\n", commit)
		fmt.Fprintf(out, "Built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
