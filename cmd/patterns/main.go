package main

import (
	"os"

	"github.com/comalice/storex/cmd/patterns/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
