package script

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"editreplay-core/editops"
)

// LoadTSV reads a whitespace-separated file, one record per line:
//
//	id kind src_pos dest_pos                        (point form)
//	id kind src_begin src_end dest_begin dest_end   (block form)
//
// Lines for the same id are appended in file order.
func LoadTSV(path string) (*Document, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	doc := &Document{}
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 4 && len(f) != 6 {
			return nil, fmt.Errorf("%s:%d bad field count %d (want 4 or 6)", path, ln, len(f))
		}
		kind, err := editops.ParseKind(f[1])
		if err != nil {
			return nil, fmt.Errorf("%s:%d %w", path, ln, err)
		}
		nums := make([]int, len(f)-2)
		for i, s := range f[2:] {
			if nums[i], err = strconv.Atoi(s); err != nil {
				return nil, fmt.Errorf("%s:%d bad position %q", path, ln, s)
			}
		}

		form := FormPoint
		if len(f) == 6 {
			form = FormBlock
		}
		e, err := doc.entry(f[0], form)
		if err != nil {
			return nil, fmt.Errorf("%s:%d %w", path, ln, err)
		}
		if form == FormPoint {
			e.Editops = append(e.Editops, editops.Edit{Kind: kind, SrcPos: nums[0], DestPos: nums[1]})
		} else {
			e.Opcodes = append(e.Opcodes, editops.Opcode{
				Kind: kind, SrcBegin: nums[0], SrcEnd: nums[1], DestBegin: nums[2], DestEnd: nums[3],
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}
