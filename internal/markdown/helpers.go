package markdown

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InlineCode wraps input in a code span whose fence is longer than any
// backtick run inside it.
func InlineCode(input string) string {
	longestRun, run := 0, 0
	for i := range input {
		if input[i] == '`' {
			run++
			longestRun = max(longestRun, run)
		} else {
			run = 0
		}
	}

	if longestRun == 0 {
		return "`" + input + "`"
	}

	fence := strings.Repeat("`", longestRun+1)

	return fence + " " + input + " " + fence
}

// TitleCase upper-cases the first letter of each word, e.g. "detailed" to
// "Detailed".
func TitleCase(input string) string {
	return cases.Title(language.English).String(input)
}
