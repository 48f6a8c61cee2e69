package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"syscall"
	"testing"

	"editreplay/internal/replay"
	"editreplay/internal/script"
	"editreplay/pkg/api"
)

var sample = []replay.Result{
	{ID: "k1", Form: script.FormPoint, Ops: 3, SrcLen: 6, DestLen: 7, Seq: []byte("sitting"), Match: true},
	{ID: "x", Form: script.FormBlock, Ops: 1, SrcLen: 3, DestLen: 3, Seq: []byte("abc"), Match: false},
}

func TestFormats_Stable(t *testing.T) {
	want := []string{FormatFASTA, FormatJSON, FormatJSONL, FormatText}
	if got := Formats(); !reflect.DeepEqual(got, want) {
		t.Fatalf("registered formats = %v, want %v", got, want)
	}
}

func TestWriteText_Snapshot(t *testing.T) {
	var b bytes.Buffer
	if err := Write(FormatText, &b, sample, Options{Header: true}); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := TSVHeader + "\n" +
		"k1\tpoint\t3\t6\t7\t7\ttrue\n" +
		"x\tblock\t1\t3\t3\t3\tfalse\n"
	if b.String() != want {
		t.Fatalf("text output changed:\n got  %q\n want %q", b.String(), want)
	}
}

func TestWriteFASTAWrapped(t *testing.T) {
	var b bytes.Buffer
	if err := Write(FormatFASTA, &b, sample[:1], Options{LineWidth: 3}); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := ">k1 form=point len=7 match=true\nsit\ntin\ng\n"
	if b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	if err := Write(FormatJSON, &b, sample, Options{WithSeq: true}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got []api.ReplayV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, b.String())
	}
	if len(got) != 2 || got[0].Seq != "sitting" || got[0].Length != 7 || got[1].Match {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestWriteJSONLOmitsSeqByDefault(t *testing.T) {
	var b bytes.Buffer
	if err := Write(FormatJSONL, &b, sample, Options{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	const want = `{"id":"k1","form":"point","ops":3,"src_len":6,"dest_len":7,"length":7,"match":true}`
	if lines[0] != want {
		t.Fatalf("line 0:\n got  %s\n want %s", lines[0], want)
	}
}

func TestUnknownFormatError(t *testing.T) {
	err := Write("nope-format", io.Discard, sample, Options{})
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want unknown format error, got %v", err)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("broken pipe not recognized")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("disk full")) {
		t.Fatal("false positive")
	}
}
