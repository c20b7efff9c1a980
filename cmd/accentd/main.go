// Package main is the entry point for the accentd application.
package main

import (
	"os"

	"github.com/jmylchreest/accentd/cmd/accentd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
