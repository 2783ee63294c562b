package main

import (
	"os"

	"github.com/penny-dev/penny/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
