package editops

// Opcode is one block of the run-length form: source range
// [SrcBegin, SrcEnd) maps to destination range [DestBegin, DestEnd).
type Opcode struct {
	Kind      Kind `json:"kind" yaml:"kind"`
	SrcBegin  int  `json:"src_begin" yaml:"src_begin"`
	SrcEnd    int  `json:"src_end" yaml:"src_end"`
	DestBegin int  `json:"dest_begin" yaml:"dest_begin"`
	DestEnd   int  `json:"dest_end" yaml:"dest_end"`
}

func (op Opcode) srcLen() int  { return op.SrcEnd - op.SrcBegin }
func (op Opcode) destLen() int { return op.DestEnd - op.DestBegin }

// Opcodes is the block form of an edit script. Blocks are contiguous and
// together cover both sequences from start to end.
type Opcodes []Opcode

const opcodesForm = "opcodes"

// Validate checks that ops partitions sequences of length srcLen and destLen
// and returns the exact length of the replayed output.
//
// Keep and Replace blocks must span ranges of equal length, Insert blocks an
// empty source range and Delete blocks an empty destination range.
func (ops Opcodes) Validate(srcLen, destLen int) (int, error) {
	srcPos, destPos := 0, 0
	for i, op := range ops {
		if !op.Kind.Valid() {
			return 0, malformed(opcodesForm, i, "unknown kind %d", uint8(op.Kind))
		}
		if op.SrcBegin < 0 || op.SrcEnd > srcLen || op.DestBegin < 0 || op.DestEnd > destLen {
			return 0, outOfRange(opcodesForm, i, "%s [%d,%d)->[%d,%d), lengths %d/%d",
				op.Kind, op.SrcBegin, op.SrcEnd, op.DestBegin, op.DestEnd, srcLen, destLen)
		}
		if op.SrcBegin > op.SrcEnd || op.DestBegin > op.DestEnd {
			return 0, malformed(opcodesForm, i, "inverted range [%d,%d)->[%d,%d)",
				op.SrcBegin, op.SrcEnd, op.DestBegin, op.DestEnd)
		}
		if op.SrcBegin != srcPos || op.DestBegin != destPos {
			return 0, malformed(opcodesForm, i, "block starts at %d/%d, previous ended at %d/%d",
				op.SrcBegin, op.DestBegin, srcPos, destPos)
		}
		switch op.Kind {
		case Keep, Replace:
			if op.srcLen() != op.destLen() {
				return 0, malformed(opcodesForm, i, "%s ranges differ in length (%d vs %d)", op.Kind, op.srcLen(), op.destLen())
			}
		case Insert:
			if op.srcLen() != 0 {
				return 0, malformed(opcodesForm, i, "insert consumes %d source elements", op.srcLen())
			}
		case Delete:
			if op.destLen() != 0 {
				return 0, malformed(opcodesForm, i, "delete covers %d destination elements", op.destLen())
			}
		}
		srcPos, destPos = op.SrcEnd, op.DestEnd
	}
	if srcPos != srcLen || destPos != destLen {
		return 0, malformed(opcodesForm, len(ops), "blocks end at %d/%d, lengths %d/%d", srcPos, destPos, srcLen, destLen)
	}
	return ops.OutputLen(), nil
}

// OutputLen is the number of elements a replay of ops emits.
func (ops Opcodes) OutputLen() int {
	n := 0
	for _, op := range ops {
		switch op.Kind {
		case Keep:
			n += op.srcLen()
		case Replace, Insert:
			n += op.destLen()
		}
	}
	return n
}

// ApplyOpcodesSeq replays ops: Keep copies the source range, Replace and
// Insert copy the destination range, Delete copies nothing.
// On error the output is nil.
func ApplyOpcodesSeq[T any](ops Opcodes, src, dest Sequence[T]) ([]T, error) {
	n, err := ops.Validate(src.Len(), dest.Len())
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, n)
	for _, op := range ops {
		switch op.Kind {
		case Keep:
			out = appendRange(out, src, op.SrcBegin, op.SrcEnd)
		case Replace, Insert:
			out = appendRange(out, dest, op.DestBegin, op.DestEnd)
		}
	}
	return out, nil
}

// ApplyOpcodes is ApplyOpcodesSeq over slices.
func ApplyOpcodes[T any](ops Opcodes, src, dest []T) ([]T, error) {
	return ApplyOpcodesSeq[T](ops, Slice[T](src), Slice[T](dest))
}

// ApplyOpcodesString replays ops over the code points of s1 and s2.
func ApplyOpcodesString(ops Opcodes, s1, s2 string) (string, error) {
	out, err := ApplyOpcodesSeq[rune](ops, Runes(s1), Runes(s2))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Inverse swaps the roles of source and destination.
func (ops Opcodes) Inverse() Opcodes {
	if ops == nil {
		return nil
	}
	inv := make(Opcodes, len(ops))
	for i, op := range ops {
		k := op.Kind
		switch k {
		case Insert:
			k = Delete
		case Delete:
			k = Insert
		}
		inv[i] = Opcode{Kind: k, SrcBegin: op.DestBegin, SrcEnd: op.DestEnd, DestBegin: op.SrcBegin, DestEnd: op.SrcEnd}
	}
	return inv
}
