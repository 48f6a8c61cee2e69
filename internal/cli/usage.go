package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"editreplay/internal/version"
	"editreplay/internal/writers"
)

func formatList() string { return strings.Join(writers.Formats(), " | ") }

func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – replay edit scripts over sequences\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] --script FILE source.fa dest.fa\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -S, --script file           Edit script (.tsv, .yaml/.yml, .json) [required]")
		fmt.Fprintf(out, "      --form string           Accepted script form: auto | point | block [%s]\n", def("form"))

		fmt.Fprintln(out, "\nReplay:")
		fmt.Fprintf(out, "      --invert                Replay the inverse script to rebuild the source [%s]\n", def("invert"))
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --verify                Exit 1 when an output differs from its target [%s]\n", def("verify"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: %s [%s]\n", formatList(), def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --seq                   Include sequences in json/jsonl [%s]\n", def("seq"))
		fmt.Fprintf(out, "      --line-width int        FASTA line width (0=single line) [%s]\n", def("line-width"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Only log warnings and errors [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Log every replayed record [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")

		fmt.Fprintln(out, "\nEnvironment:")
		fmt.Fprintln(out, "  EDITREPLAY_OUTPUT, EDITREPLAY_FORM, EDITREPLAY_THREADS, EDITREPLAY_QUIET set flag defaults.")
	}
}

// PrintExamples prints a small quickstart.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	_, _ = fmt.Fprintln(out, "Rebuild destination records from sources and a point-form TSV script:")
	_, _ = fmt.Fprintln(out, "  # id      kind     src_pos dest_pos")
	_, _ = fmt.Fprintln(out, "  kitten    replace  0       0")
	_, _ = fmt.Fprintln(out, "  kitten    replace  4       4")
	_, _ = fmt.Fprintln(out, "  kitten    insert   6       6")
	_, _ = fmt.Fprintln(out, "\nExample:")
	_, _ = fmt.Fprintf(out, "  %s --script edits.tsv --verify -o fasta src.fa dst.fa\n", name)
	_, _ = fmt.Fprintln(out, "\nBlock form uses six fields: id kind src_begin src_end dest_begin dest_end.")
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
