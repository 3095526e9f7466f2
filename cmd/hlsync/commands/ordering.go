package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/momentics/hioload-sync/ordering"
)

func orderingCmd() *cobra.Command {
	var trials int

	cmd := &cobra.Command{
		Use:   "ordering",
		Short: "Tally interleaving-probe outcomes over many trials",
		RunE: func(cmd *cobra.Command, args []string) error {
			lb := ordering.Collect(trials, ordering.LoadBufferingProbe)
			for outcome, n := range lb.Outcomes() {
				logger.Info("load buffering",
					zap.String("outcome", fmt.Sprintf("x=%v y=%v", outcome.X, outcome.Y)),
					zap.Int("count", n),
				)
			}

			ir := ordering.Collect(trials, ordering.IndependentReadsProbe)
			for outcome, n := range ir.Outcomes() {
				logger.Info("independent reads",
					zap.Int("readers_counted", outcome),
					zap.Int("count", n),
				)
			}

			mp := ordering.Collect(trials, func() int64 {
				return ordering.MessagePassingProbe(42)
			})
			logger.Info("message passing",
				zap.Int("observed_payload", mp.Count(42)),
				zap.Int("trials", mp.Trials()),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&trials, "trials", 1000, "trials per probe")
	return cmd
}
