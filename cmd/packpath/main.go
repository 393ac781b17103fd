package main

import (
	"os"

	"github.com/packpath/packpath/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
