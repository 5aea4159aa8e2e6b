package main

import (
	"os"

	"github.com/comalice/storex/cmd/todo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
