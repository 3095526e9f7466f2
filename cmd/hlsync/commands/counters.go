package commands

import (
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/momentics/hioload-sync/api"
	"github.com/momentics/hioload-sync/counter"
)

func countersCmd() *cobra.Command {
	var goroutines int
	var increments int

	cmd := &cobra.Command{
		Use:   "counters",
		Short: "Race every counter strategy and report totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategies := []struct {
				name string
				c    api.Counter
			}{
				{"mutex", &counter.MutexCounter{}},
				{"atomic", &counter.AtomicCounter{}},
				{"sharded", counter.NewShardedCounter(0)},
				{"keyed", new(counter.KeyedCounter).Bind("value")},
			}

			want := int64(goroutines * increments)
			for _, s := range strategies {
				start := time.Now()
				var wg sync.WaitGroup
				for g := 0; g < goroutines; g++ {
					wg.Add(1)
					go func(c api.Counter) {
						defer wg.Done()
						for i := 0; i < increments; i++ {
							c.Inc()
						}
					}(s.c)
				}
				wg.Wait()

				logger.Info("counter done",
					zap.String("strategy", s.name),
					zap.Int64("total", s.c.Value()),
					zap.Int64("expected", want),
					zap.Duration("elapsed", time.Since(start)),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&goroutines, "goroutines", 10, "concurrent incrementers")
	cmd.Flags().IntVar(&increments, "increments", 100000, "increments per goroutine")
	return cmd
}
