package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/viadee/roboscope/internal/db"
	"github.com/viadee/roboscope/internal/scanner"
	"github.com/viadee/roboscope/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scan suites/ for suite files and index their tests and keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSync(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func RunSync(w io.Writer) error {
	if _, err := os.Stat("suites"); os.IsNotExist(err) {
		return fmt.Errorf("run `roboscope init` first")
	}

	sqlDB, err := db.Open("suites/roboscope.db")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	matches, err := suiteFiles()
	if err != nil {
		return err
	}

	files, tests, kws := 0, 0, 0
	for _, path := range matches {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		outline := suiteScanner.OutlineFile(content)

		var id int64
		err = sqlDB.QueryRow(`SELECT id FROM files WHERE file_path = ?`, path).Scan(&id)
		if err == sql.ErrNoRows {
			res, err := sqlDB.Exec(`INSERT INTO files (file_path) VALUES (?)`, path)
			if err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
			if id, err = res.LastInsertId(); err != nil {
				return fmt.Errorf("inserting %s: %w", path, err)
			}
			ui.NewLine(w, path)
		} else if err != nil {
			return fmt.Errorf("querying %s: %w", path, err)
		} else {
			if _, err := sqlDB.Exec(`UPDATE files SET updated_at = datetime('now') WHERE id = ?`, id); err != nil {
				return fmt.Errorf("touching %s: %w", path, err)
			}
			ui.TrkLine(w, path)
		}

		t, k, err := reindexFile(sqlDB, id, outline)
		if err != nil {
			return fmt.Errorf("indexing %s: %w", path, err)
		}
		tests += t
		kws += k
		files++
	}

	ui.SummaryLine(w, files, tests, kws)
	return nil
}

func suiteFiles() ([]string, error) {
	var matches []string
	for _, pattern := range []string{"suites/*.robot", "suites/*.resource"} {
		found, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("scanning suites/: %w", err)
		}
		matches = append(matches, found...)
	}
	sort.Strings(matches)
	return matches, nil
}

// reindexFile replaces the indexed definitions and calls for one file with
// the tokenizer's current view. Returns how many tests and keywords were
// indexed.
func reindexFile(sqlDB *sql.DB, fileID int64, outline *scanner.Outline) (int, int, error) {
	if _, err := sqlDB.Exec(`DELETE FROM definitions WHERE file_id = ?`, fileID); err != nil {
		return 0, 0, err
	}
	if _, err := sqlDB.Exec(`DELETE FROM calls WHERE file_id = ?`, fileID); err != nil {
		return 0, 0, err
	}

	tests, kws := 0, 0
	for _, def := range outline.Definitions {
		if _, err := sqlDB.Exec(
			`INSERT INTO definitions (file_id, name, kind, line) VALUES (?, ?, ?, ?)`,
			fileID, def.Name, def.Kind, def.Line,
		); err != nil {
			return tests, kws, err
		}
		if def.Kind == scanner.KindTest {
			tests++
		} else {
			kws++
		}
	}
	for _, call := range outline.Calls {
		if _, err := sqlDB.Exec(
			`INSERT INTO calls (file_id, keyword, line) VALUES (?, ?, ?)`,
			fileID, call.Keyword, call.Line,
		); err != nil {
			return tests, kws, err
		}
	}
	return tests, kws, nil
}
