package domain

import "strings"

// Subcommand is one of the external tool's operations.
type Subcommand string

// Supported subcommands.
const (
	SubBinary   Subcommand = "binary"
	SubTest     Subcommand = "test"
	SubRun      Subcommand = "run"
	SubRepl     Subcommand = "repl"
	SubFmt      Subcommand = "fmt"
	SubList     Subcommand = "list"
	SubFiledeps Subcommand = "filedeps"
)

// ParseSubcommand validates a user-supplied subcommand name.
func ParseSubcommand(s string) (Subcommand, bool) {
	switch sub := Subcommand(s); sub {
	case SubBinary, SubTest, SubRun, SubRepl, SubFmt, SubList, SubFiledeps:
		return sub, true
	default:
		return "", false
	}
}

// Interactive reports whether the subcommand wants a terminal attached.
func (s Subcommand) Interactive() bool {
	return s == SubRepl || s == SubRun
}

// Invocation is one fully composed external command. It is a structured
// argument vector, never a shell string, so target names containing shell
// metacharacters are passed through verbatim. Constructed fresh per call and
// never reused.
type Invocation struct {
	// Path is the executable to spawn.
	Path string

	// Args is the ordered argument vector, excluding the executable itself.
	Args []string

	// Dir is the working directory, always the project root.
	Dir string

	// Interactive requests a terminal-attached run.
	Interactive bool

	// Line is the fixed-order command line as the tool's own documentation
	// writes it. Display only; execution always uses the structured vector.
	Line string
}

// String renders the invocation the way it would be typed at a prompt.
func (i Invocation) String() string {
	if i.Line != "" {
		return i.Line
	}
	return i.Path + " " + strings.Join(i.Args, " ")
}
