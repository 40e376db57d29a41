package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	newStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	trkStyle  = lipgloss.NewStyle().Faint(true)
	kindStyle = lipgloss.NewStyle().Faint(true)
)

func NewLine(w io.Writer, path string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+path)
}

func TrkLine(w io.Writer, path string) {
	fmt.Fprintln(w, trkStyle.Render("trk")+"  "+path)
}

func SummaryLine(w io.Writer, files, tests, keywords int) {
	fmt.Fprintf(w, "synced %d files (%d tests, %d keywords)\n", files, tests, keywords)
}

func ListRow(w io.Writer, fileName, name, kind string, line, fileWidth, nameWidth int) {
	fmt.Fprintf(w, "%-*s  %-*s  %s %s\n",
		fileWidth, fileName,
		nameWidth, name,
		kindStyle.Render(kind),
		fmt.Sprintf(":%d", line),
	)
}
