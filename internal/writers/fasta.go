package writers

import (
	"fmt"
	"io"

	"editreplay/internal/replay"
)

func init() { Register(FormatFASTA, WriteFASTA) }

// WriteFASTA writes each reconstructed sequence as a FASTA record.
func WriteFASTA(w io.Writer, results []replay.Result, o Options) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, ">%s form=%s len=%d match=%t\n", r.ID, r.Form, len(r.Seq), r.Match); err != nil {
			return err
		}
		seq := r.Seq
		if o.LineWidth <= 0 {
			if _, err := fmt.Fprintf(w, "%s\n", seq); err != nil {
				return err
			}
			continue
		}
		for len(seq) > 0 {
			n := min(o.LineWidth, len(seq))
			if _, err := fmt.Fprintf(w, "%s\n", seq[:n]); err != nil {
				return err
			}
			seq = seq[n:]
		}
	}
	return nil
}
