package main

import (
	"os"

	"github.com/fatih/color"

	"ealert.io/src/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
