package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/viadee/roboscope/internal/scanner"
	"github.com/viadee/roboscope/internal/token"
)

// One style per token class; classes missing here render unstyled.
var classStyles = map[token.Class]lipgloss.Style{
	token.Heading:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	token.Comment:       lipgloss.NewStyle().Faint(true),
	token.Definition:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	token.VariableName:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	token.Meta:          lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	token.Keyword:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	token.Function:      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	token.String:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	token.Number:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	token.AttributeName: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
}

// HighlightLine renders one tokenized line. Token text is emitted verbatim,
// so the visible characters always match the source line.
func HighlightLine(tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if style, ok := classStyles[tok.Class]; ok {
			b.WriteString(style.Render(tok.Text))
		} else {
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}

// Highlight renders a whole suite file, threading scanner state from line
// to line.
func Highlight(w io.Writer, scn *scanner.Scanner, content []byte) {
	text := strings.TrimSuffix(string(content), "\n")
	var st scanner.State
	for _, line := range strings.Split(text, "\n") {
		tokens, next := scn.ScanLine(st, line)
		fmt.Fprintln(w, HighlightLine(tokens))
		st = next
	}
}
