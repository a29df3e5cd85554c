// Package main is the entry point for the numdelta CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/numdelta/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
