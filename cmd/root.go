package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/viadee/roboscope/internal/keywords"
	"github.com/viadee/roboscope/internal/scanner"
)

var rootCmd = &cobra.Command{
	Use:   "roboscope",
	Short: "roboscope — Robot Framework suite index and highlighter",
}

// One dictionary and scanner per process; both are read-only after start.
var suiteScanner = scanner.New(keywords.New())

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
