// Package main is the entry point for the shellbuild CLI.
package main

import (
	"os"

	"shellbuild/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
