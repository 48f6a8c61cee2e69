// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"editreplay-core/fasta"
	"editreplay/internal/cli"
	"editreplay/internal/cmdutil"
	"editreplay/internal/config"
	"editreplay/internal/replay"
	"editreplay/internal/script"
	"editreplay/internal/version"
	"editreplay/internal/writers"
)

const name = "editreplay"

// Exit codes.
const (
	ExitOK       = 0
	ExitMismatch = 1 // --verify and some output differs from its target
	ExitUsage    = 2
	ExitWrite    = 3
	ExitReplay   = 4
	ExitCanceled = 130
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	flush := func(code int) int {
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return code
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitWrite
		}
		return code
	}

	defaults, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard) // silence default flag pkg
	opts, err := cli.ParseArgs(fs, argv, defaults)
	switch {
	case errors.Is(err, cli.ErrPrintedAndExitOK):
		cli.PrintExamples(outw, name)
		return flush(ExitOK)
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return flush(ExitOK)
	case err != nil:
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(ExitUsage)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(ExitOK)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	doc, err := script.Load(opts.ScriptFile)
	if err != nil {
		log.Error("load script", "err", err)
		return ExitUsage
	}
	if opts.Form != cli.FormAuto {
		form, err := script.ParseForm(opts.Form)
		if err == nil {
			err = doc.RequireForm(form)
		}
		if err != nil {
			log.Error("script form", "err", err)
			return ExitUsage
		}
	}

	src, err := fasta.Read(ctx, opts.SourceFile)
	if err != nil {
		return inputErr(ctx, log, "read source", err)
	}
	dst, err := fasta.Read(ctx, opts.DestFile)
	if err != nil {
		return inputErr(ctx, log, "read destination", err)
	}
	pairs, err := replay.PairRecords(src, dst)
	if err != nil {
		log.Error("pair records", "err", err)
		return ExitUsage
	}
	log.Debug("inputs loaded", "records", len(pairs), "scripts", doc.Len())

	results, err := replay.Run(ctx, replay.Config{
		Threads: opts.Threads,
		Invert:  opts.Invert,
		Logger:  log,
	}, pairs, doc)
	if err != nil {
		if ctx.Err() != nil {
			return ExitCanceled
		}
		log.Error("replay failed", "err", err)
		return ExitReplay
	}

	werr := writers.Write(opts.Output, outw, results, writers.Options{
		Header:    opts.Header,
		WithSeq:   opts.WithSeq,
		LineWidth: opts.LineWidth,
	})
	if writers.IsBrokenPipe(werr) {
		return ExitOK
	}
	if werr != nil {
		log.Error("write output", "err", werr)
		return ExitWrite
	}

	mismatched := 0
	for _, r := range results {
		if !r.Match {
			mismatched++
			log.Warn("output differs from target", "id", r.ID)
		}
	}
	log.Info("replay complete", "records", len(results), "mismatched", mismatched)

	code := ExitOK
	if opts.Verify && mismatched > 0 {
		code = ExitMismatch
	}
	return flush(code)
}

func inputErr(ctx context.Context, log *slog.Logger, msg string, err error) int {
	if ctx.Err() != nil {
		return ExitCanceled
	}
	log.Error(msg, "err", err)
	return ExitUsage
}
