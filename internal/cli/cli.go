package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"gistmaker/internal/domain"
)

type Summarizer interface {
	Summarize(ctx context.Context, req domain.SummaryRequest) (string, error)
}

type DocumentWriter interface {
	Save(path string, summary string, meta domain.DocumentMeta) error
}

// App runs one invocation against a summarizer. Handled failures are
// printed; Run only returns an error when the console cannot be written.
type App struct {
	summarizer Summarizer
	documents  DocumentWriter
	modelName  string
	in         io.Reader
	out        *console
	readFile   func(name string) ([]byte, error)
	log        *slog.Logger
}

type Options struct {
	// ModelName appears in the test mode banner.
	ModelName string
	In        io.Reader
	Out       io.Writer
	// ReadFile defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

func New(s Summarizer, documents DocumentWriter, opts Options, log *slog.Logger) *App {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	readFile := opts.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	modelName := opts.ModelName
	if modelName == "" {
		modelName = "Phi-4"
	}

	return &App{
		summarizer: s,
		documents:  documents,
		modelName:  modelName,
		in:         in,
		out:        &console{w: out},
		readFile:   readFile,
		log:        log,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	inv := ParseArgs(args)

	a.log.DebugContext(ctx, "Invocation is parsed",
		"mode", inv.Mode,
		"arg", inv.Arg,
		"filePath", inv.FilePath)

	switch inv.Mode {
	case ModeTest:
		a.runTests(ctx)
	case ModeInteractive:
		a.runInteractive(ctx)
	case ModeFile:
		a.runFile(ctx, inv)
	case ModeHelp:
		a.out.println(helpText)
	default:
		a.out.println(unknownArgumentText)
	}

	return a.out.err
}
