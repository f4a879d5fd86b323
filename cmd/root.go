package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd defines the base command for the mygit CLI.
// All subcommands (init, hash-object, cat-file, etc.) register under this root.
// Uses cobra for command parsing, flag handling, and help generation.
var rootCmd = &cobra.Command{
	Use:   "mygit",
	Short: "A simplified Git implementation in GO",
	Long: `Mygit is a simplified Git implementation developed in GO built around a
	content-addressable object store. It offers the core plumbing commands like
	init, hash-object and cat-file.`,
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
