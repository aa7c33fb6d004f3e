package cli

import (
	"fmt"
	"io"
	"strings"
)

const helpText = `Usage:
  gistmaker --test                                     # Run test cases
  gistmaker --interactive                              # Interactive mode
  gistmaker --file <path>                              # Summarize a file
  gistmaker --file <path> --style <type>               # Set summary style
  gistmaker --file <path> --source <publication>       # Add source attribution
  gistmaker --file <path> --output <file.md>           # Save summary to markdown

Styles: detailed (default), structured, comprehensive

Examples:
  gistmaker --file article.txt --style comprehensive
  gistmaker --file research.txt --source 'Nature Journal, 2024'
  gistmaker --file report.txt --output summary.md
  gistmaker --file study.txt --style structured --source 'MIT' --output study_summary.md`

const unknownArgumentText = "Unknown argument. Use --help for usage information."

const interactiveMenuText = `
=== Interactive Summarization Mode ===
Choose summary style:
1. Detailed (3+ paragraphs with comprehensive coverage)
2. Structured (exactly 3 paragraphs: main points, details, implications)
3. Comprehensive (multiple well-developed paragraphs)

Enter your text to summarize (or 'quit' to exit):`

var (
	testRule    = strings.Repeat("=", 70)
	fileRule    = strings.Repeat("=", 60)
	summaryRule = strings.Repeat("-", 40)
)

// console remembers the first write error so handlers can print freely and
// check once.
type console struct {
	w   io.Writer
	err error
}

func (c *console) println(a ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintln(c.w, a...)
}

func (c *console) printf(format string, a ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, a...)
}
