package main

import (
	"os"

	"github.com/momentics/hioload-sync/cmd/hlsync/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
