package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  *zap.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "hlsync",
		Short: "Concurrency primitive demonstrations",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "human-readable log output")

	root.AddCommand(countersCmd(), orderingCmd(), matmulCmd(), pingpongCmd(), spinCmd())
	return root.Execute()
}
