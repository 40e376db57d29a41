package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viadee/roboscope/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize roboscope in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	// suites/ directory
	_, err := os.Stat("suites")
	suitesExists := err == nil
	if err := os.MkdirAll("suites", 0o755); err != nil {
		return fmt.Errorf("creating suites directory: %w", err)
	}
	if suitesExists {
		fmt.Fprintln(w, "suites/ already exists")
	} else {
		fmt.Fprintln(w, "suites/ created")
	}

	// database
	_, err = os.Stat("suites/roboscope.db")
	dbExists := err == nil
	sqlDB, err := db.Open("suites/roboscope.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintln(w, "suites/roboscope.db already exists")
	} else {
		fmt.Fprintln(w, "suites/roboscope.db created")
	}

	// gitignore
	msgs, err := ensureGitignore()
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func ensureGitignore() ([]string, error) {
	const entry = "suites/roboscope.db"

	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", entry + " added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == entry {
			return []string{entry + " already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{entry + " added to .gitignore"}, nil
}
