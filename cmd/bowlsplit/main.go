// Package main provides the CLI for the bowlsplit split judge.
package main

import (
	"os"

	"github.com/leapstack-labs/bowlsplit/internal/cli"
)

func main() {
	// Every verdict, including an invalid pin, exits 0. Only shell-level
	// failures such as an unknown flag or a broken config file exit 1.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
