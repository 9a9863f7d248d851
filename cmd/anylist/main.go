package main

import (
	"os"

	"anylist/cmd/anylist/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
