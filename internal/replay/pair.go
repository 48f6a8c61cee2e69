package replay

import (
	"fmt"

	"editreplay-core/fasta"
)

// Pair is a source record and the destination record with the same id.
type Pair struct {
	ID     string
	Source []byte
	Dest   []byte
}

// PairRecords matches records by id, in source order. Every record must
// have exactly one partner.
func PairRecords(src, dst []fasta.Record) ([]Pair, error) {
	byID := make(map[string]int, len(dst))
	for i, r := range dst {
		if _, dup := byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate destination record %q", r.ID)
		}
		byID[r.ID] = i
	}

	pairs := make([]Pair, 0, len(src))
	seen := make(map[string]struct{}, len(src))
	for _, r := range src {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("duplicate source record %q", r.ID)
		}
		seen[r.ID] = struct{}{}
		j, ok := byID[r.ID]
		if !ok {
			return nil, fmt.Errorf("source record %q has no destination record", r.ID)
		}
		pairs = append(pairs, Pair{ID: r.ID, Source: r.Seq, Dest: dst[j].Seq})
	}
	if len(pairs) != len(dst) {
		for _, r := range dst {
			if _, ok := seen[r.ID]; !ok {
				return nil, fmt.Errorf("destination record %q has no source record", r.ID)
			}
		}
	}
	return pairs, nil
}
