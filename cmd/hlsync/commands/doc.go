// Package commands defines the hlsync CLI for running the library's
// concurrency demonstrations from a terminal.
//
// Commands
//
//   - counters   Race every counter strategy and report totals
//   - ordering   Tally interleaving-probe outcomes over many trials
//   - matmul     Compare matrix-multiply kernels on one input
//   - pingpong   Run the actor ping-pong exchange
//   - spin       Contend goroutines over a spin lock
//
// The root command builds a zap logger before any subcommand runs, so
// handlers share structured output.
package commands
