package editops

// Edit is a single-element change in the point form of a script.
// SrcPos is unused by the replay of an Insert and DestPos by that of a
// Delete, but both are carried so the script can be inverted or compressed.
type Edit struct {
	Kind    Kind `json:"kind" yaml:"kind"`
	SrcPos  int  `json:"src_pos" yaml:"src_pos"`
	DestPos int  `json:"dest_pos" yaml:"dest_pos"`
}

// Editops is the point form of an edit script. Source positions are
// non-decreasing and every destination element is emitted at most once, in
// order. A Delete's DestPos only has to lie within the destination.
type Editops []Edit

const editopsForm = "editops"

// Validate checks ops against sequences of length srcLen and destLen and
// returns the exact length of the replayed output.
func (ops Editops) Validate(srcLen, destLen int) (int, error) {
	srcPos, destNext, n := 0, 0, 0
	for i, op := range ops {
		if !op.Kind.Valid() {
			return 0, malformed(editopsForm, i, "unknown kind %d", uint8(op.Kind))
		}
		if op.SrcPos < 0 || op.DestPos < 0 {
			return 0, outOfRange(editopsForm, i, "negative position (src %d, dest %d)", op.SrcPos, op.DestPos)
		}
		srcMax, destMax := srcLen-1, destLen-1
		switch op.Kind {
		case Insert:
			srcMax = srcLen
		case Delete:
			destMax = destLen
		}
		if op.SrcPos > srcMax {
			return 0, outOfRange(editopsForm, i, "%s src_pos %d, source length %d", op.Kind, op.SrcPos, srcLen)
		}
		if op.DestPos > destMax {
			return 0, outOfRange(editopsForm, i, "%s dest_pos %d, destination length %d", op.Kind, op.DestPos, destLen)
		}
		if op.SrcPos < srcPos {
			return 0, malformed(editopsForm, i, "src_pos %d precedes consumed position %d", op.SrcPos, srcPos)
		}
		if op.Kind != Delete && op.DestPos < destNext {
			return 0, malformed(editopsForm, i, "dest_pos %d already emitted (next unemitted %d)", op.DestPos, destNext)
		}

		n += op.SrcPos - srcPos
		srcPos = op.SrcPos
		if op.Kind != Delete {
			destNext = op.DestPos + 1
		}
		switch op.Kind {
		case Keep, Replace:
			n++
			srcPos++
		case Insert:
			n++
		case Delete:
			srcPos++
		}
	}
	return n + srcLen - srcPos, nil
}

// ApplyEditopsSeq replays ops: source runs between edits are copied as-is,
// Keep/Replace/Insert emit dest[DestPos] and Delete emits nothing.
// On error the output is nil.
func ApplyEditopsSeq[T any](ops Editops, src, dest Sequence[T]) ([]T, error) {
	n, err := ops.Validate(src.Len(), dest.Len())
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, n)
	srcPos := 0
	for _, op := range ops {
		// untouched span since the previous edit
		out = appendRange(out, src, srcPos, op.SrcPos)
		srcPos = op.SrcPos

		switch op.Kind {
		case Keep, Replace:
			out = append(out, dest.At(op.DestPos))
			srcPos++
		case Insert:
			out = append(out, dest.At(op.DestPos))
		case Delete:
			srcPos++
		}
	}
	return appendRange(out, src, srcPos, src.Len()), nil
}

// ApplyEditops is ApplyEditopsSeq over slices.
func ApplyEditops[T any](ops Editops, src, dest []T) ([]T, error) {
	return ApplyEditopsSeq[T](ops, Slice[T](src), Slice[T](dest))
}

// ApplyEditopsString replays ops over the code points of s1 and s2.
func ApplyEditopsString(ops Editops, s1, s2 string) (string, error) {
	out, err := ApplyEditopsSeq[rune](ops, Runes(s1), Runes(s2))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Inverse returns the script that turns the replayed output back into the
// source. Positions are recomputed from the replay cursors, so a Delete's
// DestPos in ops does not need to be exact.
func (ops Editops) Inverse() Editops {
	if ops == nil {
		return nil
	}
	inv := make(Editops, 0, len(ops))
	srcPos, outPos := 0, 0
	for _, op := range ops {
		outPos += op.SrcPos - srcPos
		srcPos = op.SrcPos
		switch op.Kind {
		case Keep, Replace:
			inv = append(inv, Edit{Kind: op.Kind, SrcPos: outPos, DestPos: srcPos})
			outPos++
			srcPos++
		case Insert:
			inv = append(inv, Edit{Kind: Delete, SrcPos: outPos, DestPos: srcPos})
			outPos++
		case Delete:
			inv = append(inv, Edit{Kind: Insert, SrcPos: outPos, DestPos: srcPos})
			srcPos++
		}
	}
	return inv
}
