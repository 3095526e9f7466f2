package commands

import (
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/momentics/hioload-sync/spinlock"
)

func spinCmd() *cobra.Command {
	var goroutines int
	var iterations int

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Contend goroutines over a spin lock",
		RunE: func(cmd *cobra.Command, args []string) error {
			var lock spinlock.SpinLock
			counter := 0

			start := time.Now()
			var wg sync.WaitGroup
			for g := 0; g < goroutines; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < iterations; i++ {
						lock.Lock()
						counter++
						lock.Unlock()
					}
				}()
			}
			wg.Wait()

			logger.Info("spin lock done",
				zap.Int("goroutines", goroutines),
				zap.Int("iterations", iterations),
				zap.Int("counter", counter),
				zap.Int("expected", goroutines*iterations),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&goroutines, "goroutines", 8, "contending goroutines")
	cmd.Flags().IntVar(&iterations, "iterations", 100000, "lock/unlock cycles per goroutine")
	return cmd
}
