package editops

import (
	"errors"
	"testing"
)

func TestApplyEditopsScenarios(t *testing.T) {
	cases := []struct {
		name     string
		ops      Editops
		src, dst string
		want     string
	}{
		{"replace", Editops{{Kind: Replace, SrcPos: 1, DestPos: 1}}, "abc", "axc", "axc"},
		{"insert at end", Editops{{Kind: Insert, SrcPos: 2, DestPos: 2}}, "ab", "abc", "abc"},
		{"delete", Editops{{Kind: Delete, SrcPos: 1, DestPos: 1}}, "abc", "ac", "ac"},
		{"delete with zero dest_pos", Editops{{Kind: Delete, SrcPos: 1}}, "abc", "ac", "ac"},
		{"insert at start", Editops{{Kind: Insert, SrcPos: 0, DestPos: 0}}, "bc", "abc", "abc"},
		{"keep emits dest element", Editops{{Kind: Keep, SrcPos: 0, DestPos: 0}}, "abc", "abc", "abc"},
		{"kitten", Editops{
			{Kind: Replace, SrcPos: 0, DestPos: 0},
			{Kind: Replace, SrcPos: 4, DestPos: 4},
			{Kind: Insert, SrcPos: 6, DestPos: 6},
		}, "kitten", "sitting", "sitting"},
		{"delete everything", Editops{
			{Kind: Delete, SrcPos: 0}, {Kind: Delete, SrcPos: 1}, {Kind: Delete, SrcPos: 2},
		}, "abc", "", ""},
		{"code points", Editops{{Kind: Replace, SrcPos: 1, DestPos: 1}}, "añb", "aßb", "aßb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ApplyEditopsString(tc.ops, tc.src, tc.dst)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestApplyEditopsIdentity(t *testing.T) {
	for _, dst := range []string{"", "zzz", "abcdef"} {
		got, err := ApplyEditops(nil, []byte("abc"), []byte(dst))
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if string(got) != "abc" {
			t.Fatalf("empty script against %q: got %q", dst, got)
		}
	}
}

func TestApplyEditopsExactLength(t *testing.T) {
	ops := Editops{
		{Kind: Delete, SrcPos: 0},
		{Kind: Delete, SrcPos: 1},
		{Kind: Insert, SrcPos: 4, DestPos: 2},
	}
	got, err := ApplyEditops(ops, []byte("xyab"), []byte("abc"))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if string(got) != "abc" {
		t.Fatalf("got %q", got)
	}
	if cap(got) != len(got) {
		t.Fatalf("output over-allocated: len %d cap %d", len(got), cap(got))
	}
}

func TestApplyEditopsTokens(t *testing.T) {
	type tok struct{ word string }
	src := []tok{{"the"}, {"quick"}, {"fox"}}
	dst := []tok{{"the"}, {"slow"}, {"red"}, {"fox"}}
	ops := Editops{
		{Kind: Replace, SrcPos: 1, DestPos: 1},
		{Kind: Insert, SrcPos: 2, DestPos: 2},
	}
	got, err := ApplyEditops(ops, src, dst)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(got) != len(dst) {
		t.Fatalf("len %d, want %d", len(got), len(dst))
	}
	for i := range dst {
		if got[i] != dst[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], dst[i])
		}
	}
}

func TestApplyEditopsOutOfRange(t *testing.T) {
	cases := []struct {
		name string
		ops  Editops
	}{
		{"replace one past end", Editops{{Kind: Replace, SrcPos: 3, DestPos: 0}}},
		{"delete one past end", Editops{{Kind: Delete, SrcPos: 3, DestPos: 0}}},
		{"keep one past end", Editops{{Kind: Keep, SrcPos: 3, DestPos: 0}}},
		{"insert past end", Editops{{Kind: Insert, SrcPos: 4, DestPos: 0}}},
		{"dest past end", Editops{{Kind: Insert, SrcPos: 0, DestPos: 2}}},
		{"negative", Editops{{Kind: Replace, SrcPos: -1, DestPos: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ApplyEditops(tc.ops, []byte("abc"), []byte("xy"))
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("want ErrOutOfRange, got %v", err)
			}
			if got != nil {
				t.Fatalf("partial output returned: %q", got)
			}
		})
	}
}

func TestApplyEditopsMalformed(t *testing.T) {
	cases := []struct {
		name string
		ops  Editops
	}{
		{"src goes backwards", Editops{
			{Kind: Replace, SrcPos: 2, DestPos: 0},
			{Kind: Replace, SrcPos: 1, DestPos: 1},
		}},
		{"same source consumed twice", Editops{
			{Kind: Delete, SrcPos: 1, DestPos: 0},
			{Kind: Delete, SrcPos: 1, DestPos: 0},
		}},
		{"dest goes backwards", Editops{
			{Kind: Insert, SrcPos: 0, DestPos: 1},
			{Kind: Insert, SrcPos: 0, DestPos: 0},
		}},
		{"same dest emitted twice", Editops{
			{Kind: Replace, SrcPos: 0, DestPos: 0},
			{Kind: Replace, SrcPos: 1, DestPos: 0},
		}},
		{"duplicate insert", Editops{
			{Kind: Insert, SrcPos: 0, DestPos: 0},
			{Kind: Insert, SrcPos: 0, DestPos: 0},
		}},
		{"keep then insert of same dest", Editops{
			{Kind: Keep, SrcPos: 0, DestPos: 1},
			{Kind: Insert, SrcPos: 1, DestPos: 1},
		}},
		{"unknown kind", Editops{{Kind: Kind(9), SrcPos: 0, DestPos: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ApplyEditops(tc.ops, []byte("abc"), []byte("xyz"))
			if !errors.Is(err, ErrMalformedScript) {
				t.Fatalf("want ErrMalformedScript, got %v", err)
			}
		})
	}
}

func TestApplyEditopsRepeatedDestRejected(t *testing.T) {
	cases := []struct {
		name     string
		ops      Editops
		src, dst string
	}{
		{"insert twice into empty source", Editops{
			{Kind: Insert, SrcPos: 0, DestPos: 0},
			{Kind: Insert, SrcPos: 0, DestPos: 0},
		}, "", "x"},
		{"replace twice from one dest element", Editops{
			{Kind: Replace, SrcPos: 0, DestPos: 0},
			{Kind: Replace, SrcPos: 1, DestPos: 0},
		}, "ab", "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := tc.ops.Validate(len([]rune(tc.src)), len([]rune(tc.dst)))
			if err == nil {
				if bound := len(tc.src) + len(tc.dst); n > bound {
					t.Fatalf("validated output length %d exceeds %d", n, bound)
				}
				t.Fatalf("Validate accepted a script that emits a dest element twice")
			}
			got, err := ApplyEditopsString(tc.ops, tc.src, tc.dst)
			if !errors.Is(err, ErrMalformedScript) {
				t.Fatalf("want ErrMalformedScript, got %v", err)
			}
			if got != "" {
				t.Fatalf("output returned on error: %q", got)
			}
		})
	}
}

func TestApplyEditopsDeleteDestPosIgnored(t *testing.T) {
	// dest_pos 0 after dest[1] was emitted
	ops := Editops{
		{Kind: Replace, SrcPos: 1, DestPos: 1},
		{Kind: Delete, SrcPos: 2, DestPos: 0},
	}
	got, err := ApplyEditopsString(ops, "abc", "ax")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got != "ax" {
		t.Fatalf("got %q, want ax", got)
	}
	inv, err := ApplyEditopsString(ops.Inverse(), "ax", "abc")
	if err != nil {
		t.Fatalf("apply inverse: %v", err)
	}
	if inv != "abc" {
		t.Fatalf("inverse replay = %q, want abc", inv)
	}
}

func TestScriptErrorReportsIndex(t *testing.T) {
	ops := Editops{
		{Kind: Replace, SrcPos: 0, DestPos: 0},
		{Kind: Replace, SrcPos: 5, DestPos: 1},
	}
	_, err := ApplyEditops(ops, []byte("abc"), []byte("xyz"))
	var se *ScriptError
	if !errors.As(err, &se) {
		t.Fatalf("want *ScriptError, got %T %v", err, err)
	}
	if se.Index != 1 || se.Form != "editops" {
		t.Fatalf("unexpected error fields: %+v", se)
	}
}

func TestEditopsInverse(t *testing.T) {
	src, dst := "abcdef", "azced"
	ops := levenshteinEditops([]rune(src), []rune(dst))
	got, err := ApplyEditopsString(ops.Inverse(), dst, src)
	if err != nil {
		t.Fatalf("apply inverse: %v", err)
	}
	if got != src {
		t.Fatalf("inverse replay = %q, want %q", got, src)
	}
}

func TestEditopsInverseLooseDeletePositions(t *testing.T) {
	// Delete's DestPos is irrelevant to forward replay; the inverse must not depend on it.
	ops := Editops{{Kind: Delete, SrcPos: 1}}
	got, err := ApplyEditopsString(ops.Inverse(), "ac", "abc")
	if err != nil {
		t.Fatalf("apply inverse: %v", err)
	}
	if got != "abc" {
		t.Fatalf("got %q, want abc", got)
	}
}
