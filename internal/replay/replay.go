package replay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"editreplay-core/editops"
	"editreplay/internal/script"
)

// Config controls a replay run.
type Config struct {
	Threads int  // 0 = all CPUs
	Invert  bool // rebuild the source from the destination
	Logger  *slog.Logger
}

// Result is the outcome for one record.
type Result struct {
	ID      string
	Form    script.Form
	Ops     int // records in the script
	SrcLen  int
	DestLen int
	Seq     []byte
	Match   bool // Seq equals the expected target
}

// Apply replays e over src and dst. With invert set, the inverse script is
// replayed over (dst, src) so the output should equal src.
func Apply(e script.Entry, src, dst []byte, invert bool) ([]byte, error) {
	from, to := src, dst
	if invert {
		from, to = dst, src
	}
	switch e.Form {
	case script.FormBlock:
		ops := e.Opcodes
		if invert {
			ops = ops.Inverse()
		}
		return editops.ApplyOpcodes(ops, from, to)
	case script.FormPoint, "":
		ops := e.Editops
		if invert {
			ops = ops.Inverse()
		}
		return editops.ApplyEditops(ops, from, to)
	}
	return nil, fmt.Errorf("unknown script form %q", e.Form)
}

// Run replays every pair. A pair without a script replays an empty point
// script and so reproduces its source.
func Run(ctx context.Context, cfg Config, pairs []Pair, doc *script.Document) ([]Result, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	thr := cfg.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	if doc != nil {
		known := make(map[string]struct{}, len(pairs))
		for _, p := range pairs {
			known[p.ID] = struct{}{}
		}
		for _, e := range doc.Entries {
			if _, ok := known[e.ID]; !ok {
				log.Warn("script has no matching record", "id", e.ID)
			}
		}
	}

	results := make([]Result, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(thr)
	for i, p := range pairs {
		i, p := i, p
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e, ok := doc.Lookup(p.ID)
			if !ok {
				log.Debug("no script for record; replaying identity", "id", p.ID)
				e = script.Entry{ID: p.ID, Form: script.FormPoint}
			}
			out, err := Apply(e, p.Source, p.Dest, cfg.Invert)
			if err != nil {
				return fmt.Errorf("record %q: %w", p.ID, err)
			}
			target := p.Dest
			if cfg.Invert {
				target = p.Source
			}
			r := Result{
				ID:      p.ID,
				Form:    e.Form,
				Ops:     max(len(e.Editops), len(e.Opcodes)),
				SrcLen:  len(p.Source),
				DestLen: len(p.Dest),
				Seq:     out,
				Match:   bytes.Equal(out, target),
			}
			log.Debug("replayed", "id", r.ID, "form", r.Form, "ops", r.Ops, "len", len(out), "match", r.Match)
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
