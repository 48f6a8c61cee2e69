// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry. Sequence bytes are kept verbatim
// (no case folding) apart from stripped line breaks and whitespace.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Read loads every record from path ("-" for stdin, gzip detected).
func Read(ctx context.Context, path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var recs []Record
	err = Parse(ctx, rc, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Parse scans FASTA from r and calls emit once per record.
// It stops between lines when ctx is done.
func Parse(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id, desc string
		seq      []byte
		started  bool
		ln       int
	)
	flush := func() error {
		if !started {
			return nil
		}
		rec := Record{ID: id, Desc: desc, Seq: append([]byte{}, seq...)}
		seq = seq[:0]
		return emit(rec)
	}

	for sc.Scan() {
		ln++
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, desc = parseHeader(line[1:])
			if id == "" {
				return fmt.Errorf("line %d: empty record id", ln)
			}
			started = true
			continue
		}
		if !started {
			return fmt.Errorf("line %d: sequence data before first header", ln)
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
