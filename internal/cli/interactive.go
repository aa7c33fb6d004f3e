package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"gistmaker/internal/domain"
	"gistmaker/internal/markdown"
)

const (
	minInteractiveTextLen = 50
	interactiveMaxTokens  = 300
)

var styleSelectors = map[string]domain.Style{
	"1": domain.StyleDetailed,
	"2": domain.StyleStructured,
	"3": domain.StyleComprehensive,
}

// StyleForSelector maps a menu token to its style.
func StyleForSelector(token string) (domain.Style, bool) {
	style, ok := styleSelectors[strings.TrimSpace(token)]

	return style, ok
}

func isExitCommand(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "quit", "exit", "q":
		return true
	default:
		return false
	}
}

// runInteractive loops until an exit command, end of input, or ctx is done.
func (a *App) runInteractive(ctx context.Context) {
	reader := bufio.NewReader(a.in)
	var readErr error

	readLine := func() (string, bool) {
		a.out.printf("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = err
			}
			if line == "" {
				return "", false
			}
		}

		return strings.TrimRight(line, "\r\n"), true
	}

	a.out.println(interactiveMenuText)

	for ctx.Err() == nil && a.out.err == nil {
		a.out.println("\nSelect style (1-3) or enter text directly:")

		input, ok := readLine()
		if !ok {
			break
		}

		if isExitCommand(input) {
			return
		}

		style, selected := StyleForSelector(input)
		text := input
		if selected {
			a.out.printf("Selected: %s style\n", markdown.TitleCase(style.String()))
			a.out.println("Now enter your text:")

			if text, ok = readLine(); !ok {
				break
			}
		} else {
			style = domain.StyleDetailed
		}

		if utf8.RuneCountInString(strings.TrimSpace(text)) < minInteractiveTextLen {
			a.out.println("Please enter a longer text (at least 50 characters) for meaningful summarization")

			continue
		}

		a.out.printf("\nGenerating %s summary...\n", style)

		summary, err := a.summarizer.Summarize(ctx, domain.SummaryRequest{
			Text:      text,
			Style:     style,
			MaxTokens: interactiveMaxTokens,
		})
		if err != nil {
			a.log.WarnContext(ctx, "Failed to summarize interactive input",
				"error", err,
				"style", style,
				"textLen", len(text))
			a.out.printf("Error generating summary: %v\n", err)

			continue
		}

		a.out.printf("\n%s Summary:\n", markdown.TitleCase(style.String()))
		a.out.println(summaryRule)
		a.out.println(summary)
		a.out.println(summaryRule)
	}

	if readErr != nil {
		a.log.WarnContext(ctx, "Failed to read interactive input",
			"error", readErr)
		a.out.printf("Error: %v\n", readErr)
	}
}
