package main

import (
	"os"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
