package main

import (
	"os"

	"github.com/linoteia/portfolio/cmd/portfolio/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
