package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/termstat/internal/logger"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	verbose bool
)

// rootCmd is the base command when termstat is called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "termstat",
	Short: "Live terminal tables for dotted metrics",
	Long: `termstat prints a stream of measurements as a live table.

Names are split on "." into a multi-line grouped header; each interval a new
row of values is printed underneath, aligned to the header.

Examples:
  termstat demo simple
  vmstat-like-tool | termstat pipe
  termstat pipe -- ./emit-metrics.sh
  termstat init`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetDefault(logger.New(cmd.ErrOrStderr(), "termstat", verbose))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .termstat.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command and exits non-zero on failure. An interrupt
// or SIGTERM cancels the command's context, which ends live output cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
