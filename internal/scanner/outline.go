package scanner

import (
	"strings"

	"github.com/viadee/roboscope/internal/keywords"
	"github.com/viadee/roboscope/internal/token"
)

// Definition kinds as stored in the index.
const (
	KindTest    = "test"
	KindKeyword = "keyword"
)

// Definition is a named test or user keyword introduced by a non-indented
// line in a test or keyword table.
type Definition struct {
	Name string
	Kind string
	Line int // 1-based
}

// Call is one builtin keyword invocation recognized by the dictionary.
type Call struct {
	Keyword string // normalized form
	Line    int    // 1-based
}

// Outline is the application-level view of a whole suite file, extracted
// from the raw token stream.
type Outline struct {
	Definitions []Definition
	Calls       []Call
}

// OutlineFile tokenizes every line of content, threading scan state forward,
// and collects the definitions and builtin calls found along the way.
func (s *Scanner) OutlineFile(content []byte) *Outline {
	out := &Outline{}
	var st State
	for i, line := range strings.Split(string(content), "\n") {
		tokens, next := s.ScanLine(st, line)
		for _, tok := range tokens {
			switch tok.Class {
			case token.Definition:
				name := strings.TrimSpace(tok.Text)
				if name == "" {
					continue
				}
				kind := KindTest
				if next.Section == SectionKeywords {
					kind = KindKeyword
				}
				out.Definitions = append(out.Definitions, Definition{
					Name: name,
					Kind: kind,
					Line: i + 1,
				})
			case token.Function:
				out.Calls = append(out.Calls, Call{
					Keyword: keywords.Normalize(tok.Text),
					Line:    i + 1,
				})
			}
		}
		st = next
	}
	return out
}
