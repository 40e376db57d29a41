package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viadee/roboscope/internal/db"
	"github.com/viadee/roboscope/internal/keywords"
)

var callsCmd = &cobra.Command{
	Use:   "calls <keyword name>",
	Short: "List call sites of a builtin keyword",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunCalls(cmd.OutOrStdout(), strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(callsCmd)
}

func RunCalls(w io.Writer, name string) error {
	normalized := keywords.Normalize(name)
	if normalized == "" {
		return fmt.Errorf("empty keyword name")
	}

	if _, err := os.Stat("suites"); os.IsNotExist(err) {
		return fmt.Errorf("run `roboscope init` first")
	}

	sqlDB, err := db.Open("suites/roboscope.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT f.file_path, c.line
		FROM calls c
		JOIN files f ON c.file_id = f.id
		WHERE c.keyword = ?
		ORDER BY f.file_path, c.line
	`, normalized)
	if err != nil {
		return fmt.Errorf("querying calls: %w", err)
	}
	defer rows.Close()

	var found bool
	for rows.Next() {
		var filePath string
		var line int
		if err := rows.Scan(&filePath, &line); err != nil {
			continue
		}
		fmt.Fprintf(w, "  %s:%d\n", filePath, line)
		found = true
	}

	if !found {
		fmt.Fprintf(w, "no indexed calls of %s\n", normalized)
	}

	return rows.Err()
}
