// Package scanner tokenizes Robot Framework plain-text suite files one line
// at a time. Each line is scanned left to right with priority-ordered rules;
// the only state carried between lines is which section the scan is inside.
package scanner

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/viadee/roboscope/internal/keywords"
	"github.com/viadee/roboscope/internal/token"
)

// Section identifies which table of a suite file the scan is inside.
type Section int

const (
	SectionNone Section = iota
	SectionSettings
	SectionVariables
	SectionTestCases
	SectionKeywords
	SectionComments
)

var sectionNames = [...]string{
	SectionNone:      "none",
	SectionSettings:  "settings",
	SectionVariables: "variables",
	SectionTestCases: "testcases",
	SectionKeywords:  "keywords",
	SectionComments:  "comments",
}

func (s Section) String() string {
	if s < 0 || int(s) >= len(sectionNames) {
		return "unknown"
	}
	return sectionNames[s]
}

// State is the scan state threaded from one line to the next. Callers keep
// the value returned by ScanLine and pass it back in for the following line.
// Section changes only when a header line is recognized; DefinitionLine is
// recomputed on every line.
type State struct {
	Section        Section
	DefinitionLine bool
}

// Scanner tokenizes lines against a fixed builtin keyword dictionary. It
// holds no mutable state, so one Scanner may serve concurrent documents.
type Scanner struct {
	dict *keywords.Set
}

func New(dict *keywords.Set) *Scanner {
	return &Scanner{dict: dict}
}

var headerPattern = regexp.MustCompile(
	`(?i)^\*{3,}[ \t]*(settings|variables|test cases|tasks|keywords|comments)[ \t]*\**`)

var sectionByName = map[string]Section{
	"settings":   SectionSettings,
	"variables":  SectionVariables,
	"test cases": SectionTestCases,
	"tasks":      SectionTestCases,
	"keywords":   SectionKeywords,
	"comments":   SectionComments,
}

// ScanLine tokenizes one line given the state left by the previous line,
// returning the line's tokens and the state for the next line. It never
// fails: malformed input degrades to Plain spans, and the emitted tokens
// always cover the line exactly.
func (s *Scanner) ScanLine(st State, line string) ([]token.Token, State) {
	var em emitter
	st.DefinitionLine = false
	pos := 0

	if m := headerPattern.FindStringSubmatch(line); m != nil {
		st.Section = sectionByName[strings.ToLower(m[1])]
		em.emit(token.Heading, 0, len(m[0]), line)
		pos = len(m[0])
	}

	// Inside the comments table nothing is ever reclassified, not even
	// text shaped like a header or keyword call.
	if st.Section == SectionComments {
		em.emit(token.Comment, pos, len(line), line)
		return em.tokens, st
	}

	// A non-indented line in a test or keyword table names a new test or
	// keyword. The name is one opaque span.
	if (st.Section == SectionTestCases || st.Section == SectionKeywords) &&
		len(line) > 0 && line[0] != ' ' && line[0] != '\t' {
		st.DefinitionLine = true
		em.emit(token.Definition, pos, len(line), line)
		return em.tokens, st
	}

	atCellStart := true
	for pos < len(line) {
		pos = s.scanToken(&em, st, line, pos, atCellStart)
		atCellStart = em.last() == token.Punctuation
	}
	return em.tokens, st
}

// scanToken applies the classification rules at pos, emits one token and
// returns the new position. Every rule consumes at least one byte.
func (s *Scanner) scanToken(em *emitter, st State, line string, pos int, atCellStart bool) int {
	ch := line[pos]

	// Comment to end of line.
	if ch == '#' {
		em.emit(token.Comment, pos, len(line), line)
		return len(line)
	}

	// A tab or a run of two-or-more spaces separates cells.
	if n := separatorLen(line, pos); n > 0 {
		em.emit(token.Punctuation, pos, pos+n, line)
		return pos + n
	}

	// Variable reference with nested braces, e.g. ${OUTER${INNER}}.
	if isSigil(ch) && pos+1 < len(line) && line[pos+1] == '{' {
		end := variableEnd(line, pos)
		em.emit(token.VariableName, pos, end, line)
		return end
	}

	// [Setup]-style bracket settings.
	if ch == '[' {
		if n := bracketSettingLen(line, pos); n > 0 {
			em.emit(token.Meta, pos, pos+n, line)
			return pos + n
		}
	}

	if atCellStart {
		// Directives like Library or Suite Setup, settings table only.
		if st.Section == SectionSettings {
			if n := directiveLen(line, pos); n > 0 {
				em.emit(token.Meta, pos, pos+n, line)
				return pos + n
			}
		}

		// Control-flow words and BDD prefixes. These win over the
		// dictionary even when the same word is also an entry.
		if n := controlLen(line, pos); n > 0 {
			em.emit(token.Keyword, pos, pos+n, line)
			return pos + n
		}
	}

	// Greedy builtin keyword match over a separator-bounded word run.
	if isLetter(ch) {
		if next, ok := s.matchKeyword(em, line, pos); ok {
			return next
		}
	}

	// Quoted strings with backslash escapes. An unterminated quote falls
	// through and is consumed as plain text.
	if ch == '"' || ch == '\'' {
		if n := stringLen(line, pos); n > 0 {
			em.emit(token.String, pos, pos+n, line)
			return pos + n
		}
	}

	if n := numberLen(line, pos); n > 0 {
		em.emit(token.Number, pos, pos+n, line)
		return pos + n
	}

	// The key of a key=value argument cell. The = itself stays unclassified.
	if n := attributeLen(line, pos); n > 0 {
		em.emit(token.AttributeName, pos, pos+n, line)
		return pos + n
	}

	// Single spaces and anything no rule claimed carry no class.
	_, size := utf8.DecodeRuneInString(line[pos:])
	em.emit(token.Plain, pos, pos+size, line)
	return pos + size
}

// matchKeyword runs the longest-match dictionary lookup. The rule applies
// only when the run of single-space-separated alphanumeric words at pos is
// bounded by a cell separator or the end of the line; a run cut short by any
// other character (key=value, quotes) falls through to the later rules.
func (s *Scanner) matchKeyword(em *emitter, line string, pos int) (int, bool) {
	words := wordRun(line, pos)
	if len(words) == 0 {
		return 0, false
	}
	after := words[len(words)-1].end
	if after < len(line) && separatorLen(line, after) == 0 {
		return 0, false
	}

	limit := len(words)
	if max := s.dict.MaxWords(); limit > max {
		limit = max
	}
	for n := limit; n >= 1; n-- {
		end := words[n-1].end
		if s.dict.Contains(strings.ToLower(line[pos:end])) {
			em.emit(token.Function, pos, end, line)
			return end, true
		}
	}

	// No entry starts here. Give up only the first word so the rest of the
	// cell still gets scanned; arguments sharing leading words with a
	// keyword name stay tokenizable.
	em.emit(token.Plain, pos, words[0].end, line)
	return words[0].end, true
}

type span struct {
	start, end int
}

// wordRun collects words of letters and digits separated by exactly one
// space, starting at pos. The run ends at the first character that is
// neither part of a word nor a single space followed by another word.
func wordRun(line string, pos int) []span {
	var words []span
	i := pos
	for {
		start := i
		for i < len(line) && isAlnum(line[i]) {
			i++
		}
		if i == start {
			break
		}
		words = append(words, span{start, i})
		if i+1 >= len(line) || line[i] != ' ' || !isAlnum(line[i+1]) {
			break
		}
		i++
	}
	return words
}

// separatorLen returns the length of the cell separator at pos, or zero. A
// separator is a tab, or two-plus whitespace characters starting with a
// space; the whole run is one token.
func separatorLen(line string, pos int) int {
	if line[pos] != '\t' {
		if line[pos] != ' ' {
			return 0
		}
		if pos+1 >= len(line) || (line[pos+1] != ' ' && line[pos+1] != '\t') {
			return 0
		}
	}
	i := pos
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i - pos
}

// variableEnd scans a sigil-and-brace variable reference at pos, tracking
// brace depth so nested references stay inside one span. An unbalanced run
// consumes to the end of the line.
func variableEnd(line string, pos int) int {
	i := pos + 2
	depth := 1
	for i < len(line) && depth > 0 {
		switch line[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		i++
	}
	return i
}

var bracketSettings = map[string]bool{
	"setup":         true,
	"tags":          true,
	"teardown":      true,
	"documentation": true,
	"arguments":     true,
	"return":        true,
	"template":      true,
	"timeout":       true,
}

func bracketSettingLen(line string, pos int) int {
	end := strings.IndexByte(line[pos:], ']')
	if end < 0 {
		return 0
	}
	if bracketSettings[strings.ToLower(line[pos+1:pos+end])] {
		return end + 1
	}
	return 0
}

// Longest phrases first so Suite Setup is not cut down to a bare prefix.
var settingsDirectives = []string{
	"suite setup",
	"suite teardown",
	"test setup",
	"test teardown",
	"test template",
	"test timeout",
	"force tags",
	"default tags",
	"library",
	"resource",
	"variables",
	"metadata",
}

func directiveLen(line string, pos int) int {
	rest := strings.ToLower(line[pos:])
	for _, d := range settingsDirectives {
		if strings.HasPrefix(rest, d) && boundaryAt(line, pos+len(d)) {
			return len(d)
		}
	}
	return 0
}

// Control-flow words match case-sensitively; two-word forms come first so
// ELSE IF and the IN variants beat their prefixes.
var controlWords = []string{
	"ELSE IF",
	"IN RANGE",
	"IN ENUMERATE",
	"IN ZIP",
	"FOR",
	"END",
	"IF",
	"ELSE",
	"TRY",
	"EXCEPT",
	"FINALLY",
	"WHILE",
	"BREAK",
	"CONTINUE",
	"RETURN",
	"IN",
}

var bddPrefixes = []string{"given", "when", "then", "and", "but"}

func controlLen(line string, pos int) int {
	rest := line[pos:]
	for _, w := range controlWords {
		if strings.HasPrefix(rest, w) && boundaryAt(line, pos+len(w)) {
			return len(w)
		}
	}
	lower := strings.ToLower(rest)
	for _, w := range bddPrefixes {
		if strings.HasPrefix(lower, w) && boundaryAt(line, pos+len(w)) {
			return len(w)
		}
	}
	return 0
}

func stringLen(line string, pos int) int {
	quote := line[pos]
	i := pos + 1
	for i < len(line) {
		switch line[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1 - pos
		default:
			i++
		}
	}
	return 0
}

func numberLen(line string, pos int) int {
	i := pos
	if line[i] == '-' {
		i++
	}
	digits := i
	for i < len(line) && isDigit(line[i]) {
		i++
	}
	if i == digits {
		return 0
	}
	if i+1 < len(line) && line[i] == '.' && isDigit(line[i+1]) {
		i++
		for i < len(line) && isDigit(line[i]) {
			i++
		}
	}
	return i - pos
}

func attributeLen(line string, pos int) int {
	i := pos
	for i < len(line) && (isAlnum(line[i]) || line[i] == '_') {
		i++
	}
	if i == pos || i >= len(line) || line[i] != '=' {
		return 0
	}
	return i - pos
}

func boundaryAt(line string, pos int) bool {
	return pos >= len(line) || !isAlnum(line[pos])
}

func isSigil(c byte) bool {
	return c == '$' || c == '@' || c == '%' || c == '&'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isLetter(c) || isDigit(c)
}

// emitter accumulates tokens for one line, merging adjacent unclassified
// spans so skipped spaces and fallback runes come out as one Plain token.
type emitter struct {
	tokens []token.Token
}

func (e *emitter) emit(class token.Class, start, end int, line string) {
	if end <= start {
		return
	}
	if class == token.Plain && len(e.tokens) > 0 {
		last := &e.tokens[len(e.tokens)-1]
		if last.Class == token.Plain && last.End == start {
			last.End = end
			last.Text = line[last.Start:end]
			return
		}
	}
	e.tokens = append(e.tokens, token.Token{
		Class: class,
		Start: start,
		End:   end,
		Text:  line[start:end],
	})
}

func (e *emitter) last() token.Class {
	if len(e.tokens) == 0 {
		return token.Plain
	}
	return e.tokens[len(e.tokens)-1].Class
}
