package domain

import "errors"

type Style string

const (
	StyleDetailed      Style = "detailed"
	StyleStructured    Style = "structured"
	StyleComprehensive Style = "comprehensive"
)

const DefaultMaxTokens int64 = 200

var ErrEmptyCompletion = errors.New("completion is empty")

// ParseStyle maps a style name to a known Style. Names match exactly;
// anything else, including case or whitespace variants, silently resolves
// to StyleDetailed.
func ParseStyle(raw string) Style {
	switch s := Style(raw); s {
	case StyleDetailed, StyleStructured, StyleComprehensive:
		return s
	default:
		return StyleDetailed
	}
}

func (s Style) String() string {
	return string(s)
}

type SummaryRequest struct {
	Text      string
	Style     Style
	MaxTokens int64
	// Source is an optional provenance label, e.g. "Nature Journal, 2024".
	Source string
}

// DocumentMeta holds the optional header fields of a summary document.
// Empty strings are treated as absent.
type DocumentMeta struct {
	OriginalFile string
	Source       string
	Style        string
}
