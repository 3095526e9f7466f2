package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/momentics/hioload-sync/actor"
)

type pingMsg struct{}
type pongMsg struct{}
type bindMsg struct{ peer *actor.Ref }
type countMsg struct{}

// rally counts pongs and keeps serving until the target is reached.
type rally struct {
	target int
	count  int
	peer   *actor.Ref
}

func (r *rally) Receive(ctx *actor.Context, msg any) {
	switch m := msg.(type) {
	case bindMsg:
		r.peer = m.peer
		_ = r.peer.Send(pingMsg{})
	case pongMsg:
		r.count++
		if r.count < r.target {
			_ = r.peer.Send(pingMsg{})
		}
	case countMsg:
		ctx.Reply(r.count)
	}
}

func pingpongCmd() *cobra.Command {
	var exchanges int

	cmd := &cobra.Command{
		Use:   "pingpong",
		Short: "Run the actor ping-pong exchange",
		RunE: func(cmd *cobra.Command, args []string) error {
			sys := actor.NewSystem()
			defer sys.Shutdown()

			ping := sys.Spawn("ping", &rally{target: exchanges})
			pong := sys.Spawn("pong", actor.HandlerFunc(func(ctx *actor.Context, msg any) {
				if _, ok := msg.(pingMsg); ok {
					_ = ping.Send(pongMsg{})
				}
			}))

			start := time.Now()
			if err := ping.Send(bindMsg{peer: pong}); err != nil {
				return err
			}

			deadline, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			for {
				v, err := ping.Ask(deadline, countMsg{})
				if err != nil {
					return err
				}
				if v.(int) >= exchanges {
					break
				}
				time.Sleep(time.Millisecond)
			}

			logger.Info("rally complete",
				zap.Int("exchanges", exchanges),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&exchanges, "exchanges", 10, "ping/pong round trips")
	return cmd
}
