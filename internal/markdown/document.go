package markdown

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gistmaker/internal/domain"
)

const (
	TimestampLayout     = "2006-01-02 15:04:05"
	DefaultModelDisplay = "Phi-4-mini-instruct"
)

// Formatter renders summaries as Markdown documents.
type Formatter struct {
	// Model is credited in the footer.
	Model string
	// Now supplies the generation timestamp.
	Now func() time.Time
}

func NewFormatter(model string) *Formatter {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModelDisplay
	}

	return &Formatter{
		Model: model,
		Now:   time.Now,
	}
}

// Format emits a metadata line only for non-empty fields of meta; the
// generation timestamp is always present.
func (f *Formatter) Format(summary string, meta domain.DocumentMeta) string {
	lines := make([]string, 0, 9)

	lines = append(lines, "# Summary\n")

	if meta.OriginalFile != "" {
		lines = append(lines, "**Original File:** "+InlineCode(meta.OriginalFile)+"  ")
	}
	if meta.Source != "" {
		lines = append(lines, "**Source:** "+meta.Source+"  ")
	}
	if meta.Style != "" {
		lines = append(lines, "**Summary Style:** "+TitleCase(meta.Style)+"  ")
	}

	lines = append(lines, "**Generated:** "+f.now().Local().Format(TimestampLayout)+"  \n")

	lines = append(lines,
		"## Summary Content\n",
		summary,
		"\n---",
		"\n*Summary generated using "+f.Model+"*",
	)

	return strings.Join(lines, "\n")
}

// Save formats the document and writes it to path.
func (f *Formatter) Save(path string, summary string, meta domain.DocumentMeta) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("output path is empty")
	}

	if err := os.WriteFile(path, []byte(f.Format(summary, meta)), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	return nil
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}

	return f.Now()
}
