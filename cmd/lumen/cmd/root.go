package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "Inspect tensor and image buffer layouts",
	Long: `Command line companion to the lumen resource library.

It exposes the deterministic buffer layout calculator so that memory
requirements for tensors and images can be inspected without writing code.

Examples:
  lumen calc --shape 5,48,32 --dtype u8
  lumen calc --shape 1,1080,1920,3 --layout NHWC --dtype u8 --row-align 32
  lumen calc image --width 1920 --height 1080 --format nv12
  lumen version`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}
