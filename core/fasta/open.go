package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
)

// readCloser pairs a (possibly decompressing) reader with the closers that
// must run when it is done.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path ("-" is stdin) and unwraps gzip when the stream
// starts with the gzip magic bytes, whatever the file is called.
func openReader(path string) (io.ReadCloser, error) {
	var (
		raw    io.Reader = os.Stdin
		closer io.Closer = io.NopCloser(os.Stdin)
	)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		raw, closer = fh, fh
	}

	br := bufio.NewReaderSize(raw, 64<<10)
	if sig, _ := br.Peek(2); len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
		return &readCloser{Reader: gr, closers: []io.Closer{gr, closer}}, nil
	}
	return &readCloser{Reader: br, closers: []io.Closer{closer}}, nil
}
