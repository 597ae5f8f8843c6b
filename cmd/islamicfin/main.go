package main

import (
	"os"

	"github.com/segyhp/islamicfin-engine/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
