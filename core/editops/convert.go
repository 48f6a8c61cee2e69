package editops

// ToOpcodes compresses ops into blocks over sequences of length srcLen and
// destLen. Unchanged spans become Keep blocks and adjacent blocks of the same
// kind are merged. ops is expected to be valid for those lengths.
func (ops Editops) ToOpcodes(srcLen, destLen int) Opcodes {
	var blocks Opcodes
	srcPos, destPos := 0, 0
	for _, op := range ops {
		if gap := op.SrcPos - srcPos; gap > 0 {
			blocks = appendBlock(blocks, Opcode{Kind: Keep, SrcBegin: srcPos, SrcEnd: op.SrcPos, DestBegin: destPos, DestEnd: destPos + gap})
			srcPos, destPos = op.SrcPos, destPos+gap
		}
		b := Opcode{Kind: op.Kind, SrcBegin: srcPos, SrcEnd: srcPos, DestBegin: destPos, DestEnd: destPos}
		switch op.Kind {
		case Keep, Replace:
			b.SrcEnd++
			b.DestEnd++
		case Insert:
			b.DestEnd++
		case Delete:
			b.SrcEnd++
		}
		blocks = appendBlock(blocks, b)
		srcPos, destPos = b.SrcEnd, b.DestEnd
	}
	if srcPos < srcLen || destPos < destLen {
		blocks = appendBlock(blocks, Opcode{Kind: Keep, SrcBegin: srcPos, SrcEnd: srcLen, DestBegin: destPos, DestEnd: destLen})
	}
	return blocks
}

func appendBlock(blocks Opcodes, b Opcode) Opcodes {
	if n := len(blocks); n > 0 {
		last := &blocks[n-1]
		if last.Kind == b.Kind && last.SrcEnd == b.SrcBegin && last.DestEnd == b.DestBegin {
			last.SrcEnd, last.DestEnd = b.SrcEnd, b.DestEnd
			return blocks
		}
	}
	return append(blocks, b)
}

// ToEditops expands blocks into single-element edits. Keep blocks produce
// no edits.
func (ops Opcodes) ToEditops() Editops {
	var out Editops
	for _, op := range ops {
		switch op.Kind {
		case Replace:
			for j := 0; j < op.srcLen(); j++ {
				out = append(out, Edit{Kind: Replace, SrcPos: op.SrcBegin + j, DestPos: op.DestBegin + j})
			}
		case Insert:
			for j := 0; j < op.destLen(); j++ {
				out = append(out, Edit{Kind: Insert, SrcPos: op.SrcBegin, DestPos: op.DestBegin + j})
			}
		case Delete:
			for j := 0; j < op.srcLen(); j++ {
				out = append(out, Edit{Kind: Delete, SrcPos: op.SrcBegin + j, DestPos: op.DestBegin})
			}
		}
	}
	return out
}
