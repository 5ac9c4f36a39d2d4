package main

import (
	"os"

	"github.com/rustyeddy/breakeven/cmd/breakeven/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
