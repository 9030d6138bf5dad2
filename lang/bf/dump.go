package bf

import (
	"io"
	"strconv"

	"github.com/CredibleOpossum/bf-fast/internal/bfi"
	"github.com/CredibleOpossum/bf-fast/vm"
)

// DumpTape writes the machine registers and the tape cells within radius of the
// cursor to the specified io.Writer. The current cell is enclosed in brackets:
//
//	pc=12/12 cursor=3 insns=40
//	0: 0 72 101 [108] 0 0 0
func DumpTape(i *vm.Instance, radius int, w io.Writer) error {
	ew := bfi.NewErrWriter(w)
	tape := i.Tape()
	b := make([]byte, 0, 64)
	b = append(b, "pc="...)
	b = strconv.AppendInt(b, int64(i.PC), 10)
	b = append(b, '/')
	b = strconv.AppendInt(b, int64(len(i.Program)), 10)
	b = append(b, " cursor="...)
	b = strconv.AppendInt(b, int64(i.Cursor), 10)
	b = append(b, " insns="...)
	b = strconv.AppendInt(b, i.InsCount(), 10)
	b = append(b, '\n')
	ew.Write(b)

	start, end := i.Cursor-radius, i.Cursor+radius+1
	if start < 0 {
		start = 0
	}
	if end > len(tape) {
		end = len(tape)
	}
	if start >= end {
		return ew.Err
	}
	b = strconv.AppendInt(b[:0], int64(start), 10)
	b = append(b, ':')
	for c := start; c < end; c++ {
		b = append(b, ' ')
		if c == i.Cursor {
			b = append(b, '[')
		}
		b = strconv.AppendUint(b, uint64(tape[c]), 10)
		if c == i.Cursor {
			b = append(b, ']')
		}
	}
	b = append(b, '\n')
	ew.Write(b)
	return ew.Err
}
