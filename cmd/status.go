package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/viadee/roboscope/internal/db"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunStatus(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func RunStatus(w io.Writer) error {
	if _, err := os.Stat("suites"); os.IsNotExist(err) {
		return fmt.Errorf("run `roboscope init` first")
	}

	sqlDB, err := db.Open("suites/roboscope.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	var files int
	if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&files); err != nil {
		return fmt.Errorf("counting files: %w", err)
	}
	fmt.Fprintf(w, "Files: %d\n", files)

	if files == 0 {
		return nil
	}

	rows, err := sqlDB.Query(`SELECT kind, COUNT(*) FROM definitions GROUP BY kind ORDER BY kind DESC`)
	if err != nil {
		return fmt.Errorf("querying definition counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var cnt int
		if err := rows.Scan(&kind, &cnt); err != nil {
			return fmt.Errorf("scanning kind row: %w", err)
		}
		fmt.Fprintf(w, "  %ss: %d\n", kind, cnt)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating kind rows: %w", err)
	}

	var calls, distinct int
	if err := sqlDB.QueryRow(`SELECT COUNT(*), COUNT(DISTINCT keyword) FROM calls`).Scan(&calls, &distinct); err != nil {
		return fmt.Errorf("counting calls: %w", err)
	}
	fmt.Fprintf(w, "Builtin calls: %d (%d distinct)\n", calls, distinct)

	return nil
}
