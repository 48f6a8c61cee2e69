package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"editreplay/internal/replay"
	"editreplay/pkg/api"
)

func init() {
	Register(FormatJSON, WriteJSON)
	Register(FormatJSONL, WriteJSONL)
}

// ToAPI converts a replay result to the stable wire schema (v1).
func ToAPI(r replay.Result, withSeq bool) api.ReplayV1 {
	v := api.ReplayV1{
		ID:      r.ID,
		Form:    string(r.Form),
		Ops:     r.Ops,
		SrcLen:  r.SrcLen,
		DestLen: r.DestLen,
		Length:  len(r.Seq),
		Match:   r.Match,
	}
	if withSeq {
		v.Seq = string(r.Seq)
	}
	return v
}

// WriteJSON writes a single indented JSON array.
func WriteJSON(w io.Writer, results []replay.Result, o Options) error {
	list := make([]api.ReplayV1, 0, len(results))
	for _, r := range results {
		list = append(list, ToAPI(r, o.WithSeq))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// WriteJSONL writes one JSON object per line.
func WriteJSONL(w io.Writer, results []replay.Result, o Options) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	enc := json.NewEncoder(bw)
	for _, r := range results {
		if err := enc.Encode(ToAPI(r, o.WithSeq)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
