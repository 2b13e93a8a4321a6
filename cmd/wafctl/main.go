// Package main is the entry point for the wafctl CLI.
package main

import (
	"os"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands"
)

func main() {
	os.Exit(commands.Execute())
}
