package main

import (
	"os"

	"github.com/marketcrew/mc-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
