package token

// Class is the semantic class of a scanned span. The set is closed: the
// scanner never invents new classes, and Plain covers everything that no
// other rule claimed.
type Class int

const (
	Plain Class = iota
	Heading
	Comment
	Definition
	VariableName
	Meta
	Keyword
	Function
	String
	Number
	AttributeName
	Punctuation
)

var classNames = [...]string{
	Plain:         "plain",
	Heading:       "heading",
	Comment:       "comment",
	Definition:    "definition",
	VariableName:  "variableName",
	Meta:          "meta",
	Keyword:       "keyword",
	Function:      "function",
	String:        "string",
	Number:        "number",
	AttributeName: "attributeName",
	Punctuation:   "punctuation",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// Token is one classified span of a single source line. Start and End are
// byte offsets into the line and Text is line[Start:End], so concatenating
// the Text of all tokens for a line reproduces the line exactly.
type Token struct {
	Class Class
	Start int
	End   int
	Text  string
}
