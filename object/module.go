package object

import (
	"bufio"
	"io"
	"iter"

	"github.com/ezrec/sicasm/asm"
	"github.com/ezrec/sicasm/internal"
)

// Module is an object module: a header, text records and an end record.
type Module struct {
	Header Header
	Texts  []Text
	End    End
}

// NewModule packs the object code of a program into records.
func NewModule(prog *asm.Program) (mod *Module) {
	mod = &Module{
		Header: Header{Name: prog.Name, Start: prog.Start, Length: prog.Length},
		End:    End{Start: prog.Start},
	}

	packer := &textPacker{}
	for address, code := range prog.Fragments() {
		if len(code) == 0 {
			mod.Texts = packer.flush(mod.Texts)
			continue
		}
		mod.Texts = packer.add(mod.Texts, address, code)
	}
	mod.Texts = packer.flush(mod.Texts)

	return
}

// Records iterates over all records in file order.
func (mod *Module) Records() iter.Seq[Record] {
	texts := func(yield func(Record) bool) {
		for _, text := range mod.Texts {
			if !yield(text) {
				return
			}
		}
	}

	return internal.Concat(internal.Single[Record](mod.Header), texts, internal.Single[Record](mod.End))
}

// WriteTo writes the records, one per line.
func (mod *Module) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)

	for record := range mod.Records() {
		var wrote int
		wrote, err = io.WriteString(bw, record.String()+"\n")
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}

// textPacker accumulates a run of contiguous object code.
type textPacker struct {
	start uint32 // Address of the run.
	code  []byte // Hex digits of the run.
}

// add appends a fragment at address to the run, starting a new record
// when the fragment would not fit in the current one. A fragment longer
// than a whole record is split across records.
func (tp *textPacker) add(texts []Text, address uint32, code string) []Text {
	if len(tp.code) != 0 && len(tp.code)+len(code) > MaxTextBytes*2 {
		texts = tp.flush(texts)
	}

	if len(tp.code) == 0 {
		tp.start = address
	}

	for len(code) != 0 {
		room := MaxTextBytes*2 - len(tp.code)
		if room == 0 {
			next := tp.start + MaxTextBytes
			texts = tp.flush(texts)
			tp.start = next
			continue
		}
		room = min(room, len(code))
		tp.code = append(tp.code, code[:room]...)
		code = code[room:]
	}

	return texts
}

// flush emits the current run, if any.
func (tp *textPacker) flush(texts []Text) []Text {
	if len(tp.code) == 0 {
		return texts
	}

	texts = append(texts, Text{Start: tp.start, Code: string(tp.code)})
	tp.code = tp.code[:0]

	return texts
}
