package main

import (
	"os"

	"saltbox/cmd/saltbox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
