package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"editreplay/internal/replay"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// Options tune presentation.
type Options struct {
	Header    bool // TSV header line (text)
	WithSeq   bool // include sequences in JSON/JSONL
	LineWidth int  // FASTA line wrap; 0 = single line
}

// WriteFunc serializes a result set.
type WriteFunc func(w io.Writer, results []replay.Result, o Options) error

// Writer registry (format → handler). Formats register themselves in init().
var registry = map[string]WriteFunc{}

// Register installs fn for format (last wins).
func Register(format string, fn WriteFunc) { registry[format] = fn }

// Formats lists registered formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, results []replay.Result, o Options) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, results, o)
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers (like `head`) may close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
