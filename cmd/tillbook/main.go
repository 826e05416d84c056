package main

import (
	"os"

	"github.com/tillbook-dev/tillbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
