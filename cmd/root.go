package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var (
	verbose bool
	quiet   bool
)

var log = commonlog.GetLogger("swift-bridge")

var rootCmd = &cobra.Command{
	Use:   "swift-bridge",
	Short: "Rust wrapper generator for foreign functions",
	Long:  "swift-bridge generates safe Rust wrappers, handle types and extern declarations for foreign functions described in a YAML bridge definition.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(logVerbosity(), nil)
		log = commonlog.GetLogger("swift-bridge")
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

// logVerbosity maps -q/-v onto commonlog verbosity: errors only, warnings,
// or everything down to debug.
func logVerbosity() int {
	switch {
	case quiet:
		return -2
	case verbose:
		return 2
	default:
		return -1
	}
}

// Execute runs the root command. An interrupt cancels in-flight generation.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
