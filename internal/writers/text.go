package writers

import (
	"fmt"
	"io"

	"editreplay/internal/replay"
)

// TSVHeader names the text columns.
const TSVHeader = "id\tform\tops\tsrc_len\tdest_len\tlength\tmatch"

func init() { Register(FormatText, WriteText) }

// WriteText prints one tab-delimited line per record.
func WriteText(w io.Writer, results []replay.Result, o Options) error {
	if o.Header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%t\n",
			r.ID, r.Form, r.Ops, r.SrcLen, r.DestLen, len(r.Seq), r.Match,
		); err != nil {
			return err
		}
	}
	return nil
}
