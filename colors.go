package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Package-level color variables
var (
	colorInfo    = color.New(color.FgCyan)
	colorSuccess = color.New(color.FgGreen)
	colorWarning = color.New(color.FgYellow)
)

// initializeColors disables color output when stdout is not a terminal
func initializeColors() {
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd())
}
