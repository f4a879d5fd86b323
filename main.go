package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mygit-vcs/mygit/cmd"
)

func main() {
	// Route slog output through the charmbracelet handler. Diagnostics go to
	// stderr so object content written to stdout stays clean.
	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if os.Getenv("MYGIT_DEBUG") != "" {
		handler.SetLevel(log.DebugLevel)
	}
	slog.SetDefault(slog.New(handler))

	cmd.Execute()
}
