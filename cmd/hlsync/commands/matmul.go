package commands

import (
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/momentics/hioload-sync/concurrency"
	"github.com/momentics/hioload-sync/control"
	"github.com/momentics/hioload-sync/matrix"
)

func matmulCmd() *cobra.Command {
	var size int
	var workers int
	var pin bool

	cmd := &cobra.Command{
		Use:   "matmul",
		Short: "Compare matrix-multiply kernels on one input",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := make([]float32, size*size)
			b := make([]float32, size*size)
			for i := 0; i < size; i++ {
				for j := 0; j < size; j++ {
					a[i*size+j] = float32(i + j)
					b[i*size+j] = float32(i * j)
				}
			}

			run := func(name string, f func() ([]float32, error)) error {
				start := time.Now()
				if _, err := f(); err != nil {
					return err
				}
				logger.Info("kernel done",
					zap.String("kernel", name),
					zap.Int("size", size),
					zap.Duration("elapsed", time.Since(start)),
				)
				return nil
			}

			if err := run("simple", func() ([]float32, error) {
				return matrix.Multiply(a, b, size, size, size)
			}); err != nil {
				return err
			}
			if err := run("unrolled", func() ([]float32, error) {
				return matrix.MultiplyUnrolled(a, b, size, size, size)
			}); err != nil {
				return err
			}

			opts := []concurrency.Option{}
			if pin {
				opts = append(opts, concurrency.WithPinning())
			}
			exec := concurrency.NewExecutor(workers, opts...)
			defer exec.Close()

			if err := run("parallel", func() ([]float32, error) {
				return matrix.MultiplyParallel(exec, a, b, size, size, size)
			}); err != nil {
				return err
			}
			if err := run("chunked", func() ([]float32, error) {
				return matrix.MultiplyChunked(cmd.Context(), a, b, size, size, size, workers)
			}); err != nil {
				return err
			}

			registry := control.NewMetricsRegistry()
			control.PublishStats(registry, "matmul", exec.Snapshot())
			logger.Info("executor stats", zap.Any("metrics", registry.GetSnapshot()))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 256, "matrix dimension")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "pool workers")
	cmd.Flags().BoolVar(&pin, "pin", false, "pin workers to CPU cores")
	return cmd
}
