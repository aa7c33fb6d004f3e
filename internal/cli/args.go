package cli

type Mode int

const (
	ModeUnknown Mode = iota
	ModeTest
	ModeInteractive
	ModeFile
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeTest:
		return "test"
	case ModeInteractive:
		return "interactive"
	case ModeFile:
		return "file"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

const (
	flagTest        = "--test"
	flagInteractive = "--interactive"
	flagHelp        = "--help"
	flagFile        = "--file"
	flagStyle       = "--style"
	flagSource      = "--source"
	flagOutput      = "--output"
)

// Invocation is the parsed command line. Empty option fields mean the flag
// was absent or had no value.
type Invocation struct {
	Mode     Mode
	Arg      string
	FilePath string
	Style    string
	Source   string
	Output   string
}

// ParseArgs selects a mode from the first argument. In file mode the
// --style, --source and --output options may appear in any order after the
// path and take the next token as their value.
func ParseArgs(args []string) Invocation {
	if len(args) == 0 {
		return Invocation{Mode: ModeTest}
	}

	first := args[0]
	switch first {
	case flagTest:
		return Invocation{Mode: ModeTest, Arg: first}
	case flagInteractive:
		return Invocation{Mode: ModeInteractive, Arg: first}
	case flagHelp:
		return Invocation{Mode: ModeHelp, Arg: first}
	case flagFile:
		if len(args) < 2 {
			return Invocation{Mode: ModeUnknown, Arg: first}
		}
	default:
		return Invocation{Mode: ModeUnknown, Arg: first}
	}

	rest := args[2:]

	return Invocation{
		Mode:     ModeFile,
		Arg:      first,
		FilePath: args[1],
		Style:    optionValue(rest, flagStyle),
		Source:   optionValue(rest, flagSource),
		Output:   optionValue(rest, flagOutput),
	}
}

func optionValue(args []string, name string) string {
	for i, arg := range args {
		if arg != name {
			continue
		}

		if i+1 < len(args) {
			return args[i+1]
		}

		return ""
	}

	return ""
}
