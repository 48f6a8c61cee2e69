// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"slices"

	"editreplay/internal/config"
	"editreplay/internal/writers"
)

// Script forms accepted by --form.
const (
	FormAuto  = "auto"
	FormPoint = "point"
	FormBlock = "block"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	ScriptFile string
	SourceFile string
	DestFile   string
	Form       string // auto | point | block

	// Replay
	Invert  bool
	Threads int
	Verify  bool

	// Output
	Output    string // text | json | jsonl | fasta
	Header    bool   // true unless --no-header
	WithSeq   bool
	LineWidth int

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this, print examples and exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// NewFlagSet returns a FlagSet with ContinueOnError and the tool's usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}

// ParseArgs registers flags on fs (defaults from d), parses argv and
// validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string, d config.Defaults) (Options, error) {
	var (
		o            Options
		help         bool
		showExamples bool
		noHeader     bool
	)

	fs.StringVar(&o.ScriptFile, "script", "", "edit script file (.tsv, .yaml, .json)")
	fs.StringVar(&o.ScriptFile, "S", "", "alias of --script")
	fs.StringVar(&o.Form, "form", d.Form, "accepted script form: auto | point | block")

	fs.BoolVar(&o.Invert, "invert", false, "replay the inverse script to rebuild the source [false]")
	fs.IntVar(&o.Threads, "threads", d.Threads, "worker threads (0=all CPUs)")
	fs.IntVar(&o.Threads, "t", d.Threads, "alias of --threads")
	fs.BoolVar(&o.Verify, "verify", false, "exit 1 when an output differs from its target [false]")

	fs.StringVar(&o.Output, "output", d.Output, "output: "+formatList())
	fs.StringVar(&o.Output, "o", d.Output, "alias of --output")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.BoolVar(&o.WithSeq, "seq", false, "include sequences in json/jsonl [false]")
	fs.IntVar(&o.LineWidth, "line-width", 60, "FASTA line width (0=single line) [60]")

	fs.BoolVar(&o.Quiet, "quiet", d.Quiet, "only log warnings and errors")
	fs.BoolVar(&o.Quiet, "q", d.Quiet, "alias of --quiet")
	fs.BoolVar(&o.Verbose, "verbose", false, "log every replayed record [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	o.Header = !noHeader

	// an explicit --verbose overrides EDITREPLAY_QUIET
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if o.Verbose && !explicit["quiet"] && !explicit["q"] {
		o.Quiet = false
	}

	if len(posArgs) != 2 {
		return o, fmt.Errorf("want 2 sequence files (source, destination), got %d", len(posArgs))
	}
	o.SourceFile, o.DestFile = posArgs[0], posArgs[1]
	return o, Validate(&o)
}

// Validate applies CLI invariants.
func Validate(o *Options) error {
	if o.ScriptFile == "" {
		return errors.New("--script is required")
	}
	if o.SourceFile == "-" && o.DestFile == "-" {
		return errors.New("only one sequence file may be read from stdin")
	}
	switch o.Form {
	case FormAuto, FormPoint, FormBlock:
	default:
		return fmt.Errorf("invalid --form %q", o.Form)
	}
	if !slices.Contains(writers.Formats(), o.Output) {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.LineWidth < 0 {
		return errors.New("--line-width must be ≥ 0")
	}
	if o.Quiet && o.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}
