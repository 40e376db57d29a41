package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/viadee/roboscope/internal/db"
	"github.com/viadee/roboscope/internal/ui"
)

var kindFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List indexed tests and keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), kindFlag)
	},
}

func init() {
	listCmd.Flags().StringVar(&kindFlag, "kind", "", "Filter by kind (test or keyword)")
	rootCmd.AddCommand(listCmd)
}

type listRow struct {
	fileName string
	name     string
	kind     string
	line     int
}

func RunList(w io.Writer, kindFilter string) error {
	if _, err := os.Stat("suites"); os.IsNotExist(err) {
		return fmt.Errorf("run `roboscope init` first")
	}

	sqlDB, err := db.Open("suites/roboscope.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	rows, err := sqlDB.Query(`
		SELECT f.file_path, d.name, d.kind, d.line
		FROM definitions d
		JOIN files f ON d.file_id = f.id
		ORDER BY f.file_path, d.line
	`)
	if err != nil {
		return fmt.Errorf("querying definitions: %w", err)
	}
	defer rows.Close()

	var results []listRow
	for rows.Next() {
		var r listRow
		var filePath string
		if err := rows.Scan(&filePath, &r.name, &r.kind, &r.line); err != nil {
			return fmt.Errorf("scanning row: %w", err)
		}
		r.fileName = filepath.Base(filePath)

		if kindFilter != "" && r.kind != kindFilter {
			continue
		}

		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating rows: %w", err)
	}

	if len(results) == 0 {
		return nil
	}

	fileWidth, nameWidth := 0, 0
	for _, r := range results {
		if len(r.fileName) > fileWidth {
			fileWidth = len(r.fileName)
		}
		if len(r.name) > nameWidth {
			nameWidth = len(r.name)
		}
	}

	for _, r := range results {
		ui.ListRow(w, r.fileName, r.name, r.kind, r.line, fileWidth, nameWidth)
	}

	return nil
}
