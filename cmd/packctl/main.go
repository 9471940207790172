package main

import (
	"os"

	"github.com/bulbacards/packmint/cmd/packctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
