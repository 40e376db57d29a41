// Package keywords holds the builtin keyword dictionary the scanner matches
// cell text against. The entry lists below are grouped by the standard
// library they come from, but lookup happens over one flat set of
// normalized phrases.
package keywords

import "strings"

var builtIn = []string{
	"Call Method",
	"Catenate",
	"Comment",
	"Continue For Loop",
	"Continue For Loop If",
	"Convert To Binary",
	"Convert To Boolean",
	"Convert To Bytes",
	"Convert To Hex",
	"Convert To Integer",
	"Convert To Number",
	"Convert To Octal",
	"Convert To String",
	"Create Dictionary",
	"Create List",
	"Evaluate",
	"Exit For Loop",
	"Exit For Loop If",
	"Fail",
	"Fatal Error",
	"Get Count",
	"Get Length",
	"Get Library Instance",
	"Get Time",
	"Get Variable Value",
	"Get Variables",
	"Import Library",
	"Import Resource",
	"Import Variables",
	"Keyword Should Exist",
	"Length Should Be",
	"Log",
	"Log Many",
	"Log To Console",
	"Log Variables",
	"No Operation",
	"Pass Execution",
	"Pass Execution If",
	"Regexp Escape",
	"Reload Library",
	"Remove Tags",
	"Repeat Keyword",
	"Replace Variables",
	"Return From Keyword",
	"Return From Keyword If",
	"Run Keyword",
	"Run Keyword And Continue On Failure",
	"Run Keyword And Expect Error",
	"Run Keyword And Ignore Error",
	"Run Keyword And Return",
	"Run Keyword And Return If",
	"Run Keyword And Return Status",
	"Run Keyword And Warn On Failure",
	"Run Keyword If",
	"Run Keyword If All Tests Passed",
	"Run Keyword If Any Tests Failed",
	"Run Keyword If Test Failed",
	"Run Keyword If Test Passed",
	"Run Keyword If Timeout Occurred",
	"Run Keyword Unless",
	"Run Keywords",
	"Set Global Variable",
	"Set Library Search Order",
	"Set Local Variable",
	"Set Log Level",
	"Set Suite Documentation",
	"Set Suite Metadata",
	"Set Suite Variable",
	"Set Tags",
	"Set Test Documentation",
	"Set Test Message",
	"Set Test Variable",
	"Set Variable",
	"Set Variable If",
	"Should Be Empty",
	"Should Be Equal",
	"Should Be Equal As Integers",
	"Should Be Equal As Numbers",
	"Should Be Equal As Strings",
	"Should Be True",
	"Should Contain",
	"Should Contain Any",
	"Should Contain X Times",
	"Should End With",
	"Should Match",
	"Should Match Regexp",
	"Should Not Be Empty",
	"Should Not Be Equal",
	"Should Not Be Equal As Integers",
	"Should Not Be Equal As Numbers",
	"Should Not Be Equal As Strings",
	"Should Not Be True",
	"Should Not Contain",
	"Should Not Contain Any",
	"Should Not End With",
	"Should Not Match",
	"Should Not Match Regexp",
	"Should Not Start With",
	"Should Start With",
	"Skip",
	"Skip If",
	"Sleep",
	"Variable Should Exist",
	"Variable Should Not Exist",
	"Wait Until Keyword Succeeds",
}

var stringLib = []string{
	"Convert To Lower Case",
	"Convert To Title Case",
	"Convert To Upper Case",
	"Decode Bytes To String",
	"Encode String To Bytes",
	"Fetch From Left",
	"Fetch From Right",
	"Format String",
	"Generate Random String",
	"Get Line",
	"Get Line Count",
	"Get Lines Containing String",
	"Get Lines Matching Pattern",
	"Get Lines Matching Regexp",
	"Get Regexp Matches",
	"Get Substring",
	"Remove String",
	"Remove String Using Regexp",
	"Replace String",
	"Replace String Using Regexp",
	"Should Be Byte String",
	"Should Be Lower Case",
	"Should Be String",
	"Should Be Title Case",
	"Should Be Unicode String",
	"Should Be Upper Case",
	"Should Not Be String",
	"Split String",
	"Split String From Right",
	"Split String To Characters",
	"Split To Lines",
	"Strip String",
}

var collections = []string{
	"Append To List",
	"Combine Lists",
	"Convert To Dictionary",
	"Convert To List",
	"Copy Dictionary",
	"Copy List",
	"Count Values In List",
	"Dictionaries Should Be Equal",
	"Dictionary Should Contain Item",
	"Dictionary Should Contain Key",
	"Dictionary Should Contain Sub Dictionary",
	"Dictionary Should Contain Value",
	"Dictionary Should Not Contain Key",
	"Dictionary Should Not Contain Value",
	"Get Dictionary Items",
	"Get Dictionary Keys",
	"Get Dictionary Values",
	"Get From Dictionary",
	"Get From List",
	"Get Index From List",
	"Get Match Count",
	"Get Matches",
	"Get Slice From List",
	"Insert Into List",
	"Keep In Dictionary",
	"List Should Contain Sub List",
	"List Should Contain Value",
	"List Should Not Contain Duplicates",
	"List Should Not Contain Value",
	"Lists Should Be Equal",
	"Log Dictionary",
	"Log List",
	"Pop From Dictionary",
	"Remove Duplicates",
	"Remove From Dictionary",
	"Remove From List",
	"Remove Values From List",
	"Reverse List",
	"Set List Value",
	"Set To Dictionary",
	"Should Contain Match",
	"Should Not Contain Match",
	"Sort List",
}

var dateTime = []string{
	"Add Time To Date",
	"Add Time To Time",
	"Convert Date",
	"Convert Time",
	"Get Current Date",
	"Subtract Date From Date",
	"Subtract Time From Date",
	"Subtract Time From Time",
}

var operatingSystem = []string{
	"Append To Environment Variable",
	"Append To File",
	"Copy Directory",
	"Copy File",
	"Copy Files",
	"Count Directories In Directory",
	"Count Files In Directory",
	"Count Items In Directory",
	"Create Binary File",
	"Create Directory",
	"Create File",
	"Directory Should Be Empty",
	"Directory Should Exist",
	"Directory Should Not Be Empty",
	"Directory Should Not Exist",
	"Empty Directory",
	"Environment Variable Should Be Set",
	"Environment Variable Should Not Be Set",
	"File Should Be Empty",
	"File Should Exist",
	"File Should Not Be Empty",
	"File Should Not Exist",
	"Get Binary File",
	"Get Environment Variable",
	"Get Environment Variables",
	"Get File",
	"Get File Size",
	"Get Modified Time",
	"Grep File",
	"Join Path",
	"Join Paths",
	"List Directories In Directory",
	"List Directory",
	"List Files In Directory",
	"Log Environment Variables",
	"Log File",
	"Move Directory",
	"Move File",
	"Move Files",
	"Normalize Path",
	"Remove Directory",
	"Remove Environment Variable",
	"Remove File",
	"Remove Files",
	"Run And Return Rc",
	"Run And Return Rc And Output",
	"Set Environment Variable",
	"Set Modified Time",
	"Should Exist",
	"Should Not Exist",
	"Split Extension",
	"Split Path",
	"Touch",
	"Wait Until Created",
	"Wait Until Removed",
}

var process = []string{
	"Get Process Id",
	"Get Process Object",
	"Get Process Result",
	"Is Process Running",
	"Join Command Line",
	"Process Should Be Running",
	"Process Should Be Stopped",
	"Run Process",
	"Send Signal To Process",
	"Split Command Line",
	"Start Process",
	"Switch Process",
	"Terminate All Processes",
	"Terminate Process",
	"Wait For Process",
}

var telnet = []string{
	"Close All Connections",
	"Close Connection",
	"Execute Command",
	"Login",
	"Open Connection",
	"Read",
	"Read Until",
	"Read Until Prompt",
	"Read Until Regexp",
	"Set Default Log Level",
	"Set Encoding",
	"Set Newline",
	"Set Prompt",
	"Set Telnetlib Log Level",
	"Set Timeout",
	"Switch Connection",
	"Write",
	"Write Bare",
	"Write Control Character",
	"Write Until Expected Output",
}

var xmlLib = []string{
	"Add Element",
	"Clear Element",
	"Copy Element",
	"Element Attribute Should Be",
	"Element Attribute Should Match",
	"Element Should Exist",
	"Element Should Not Exist",
	"Element Should Not Have Attribute",
	"Element Text Should Be",
	"Element Text Should Match",
	"Element To String",
	"Elements Should Be Equal",
	"Elements Should Match",
	"Evaluate Xpath",
	"Get Child Elements",
	"Get Element",
	"Get Element Attribute",
	"Get Element Attributes",
	"Get Element Count",
	"Get Element Text",
	"Get Elements",
	"Get Elements Texts",
	"Log Element",
	"Parse Xml",
	"Remove Element",
	"Remove Element Attribute",
	"Remove Element Attributes",
	"Remove Elements",
	"Remove Elements Attribute",
	"Remove Elements Attributes",
	"Save Xml",
	"Set Element Attribute",
	"Set Element Tag",
	"Set Element Text",
	"Set Elements Attribute",
	"Set Elements Tag",
	"Set Elements Text",
}

var screenshot = []string{
	"Set Screenshot Directory",
	"Take Screenshot",
	"Take Screenshot Without Embedding",
}

var dialogs = []string{
	"Execute Manual Step",
	"Get Selection From User",
	"Get Selections From User",
	"Get Value From User",
	"Pause Execution",
}

// Set is an immutable membership set of normalized keyword phrases. One
// instance can safely serve any number of concurrent scanners.
type Set struct {
	phrases  map[string]struct{}
	maxWords int
}

// New builds the dictionary from the standard library entry lists.
func New() *Set {
	return FromPhrases(concat(
		builtIn, stringLib, collections, dateTime, operatingSystem,
		process, telnet, xmlLib, screenshot, dialogs,
	))
}

// FromPhrases builds a dictionary from an arbitrary phrase list, for
// dialects that ship their own keyword libraries.
func FromPhrases(phrases []string) *Set {
	s := &Set{phrases: make(map[string]struct{}, len(phrases))}
	for _, p := range phrases {
		norm := Normalize(p)
		if norm == "" {
			continue
		}
		s.phrases[norm] = struct{}{}
		if n := strings.Count(norm, " ") + 1; n > s.maxWords {
			s.maxWords = n
		}
	}
	return s
}

// Contains reports whether phrase is a dictionary entry. The phrase must
// already be normalized (lowercase, words joined by single spaces).
func (s *Set) Contains(phrase string) bool {
	_, ok := s.phrases[phrase]
	return ok
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.phrases)
}

// MaxWords returns the word count of the longest entry, so matchers can cap
// how many words of a cell are worth looking up.
func (s *Set) MaxWords() int {
	return s.maxWords
}

// Normalize lowercases a phrase and collapses runs of whitespace to single
// spaces, the form dictionary entries are stored in.
func Normalize(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

func concat(lists ...[]string) []string {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	return all
}
