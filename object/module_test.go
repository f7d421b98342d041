package object

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/sicasm/asm"
)

// build assembles the program and packs it into a module.
func build(t *testing.T, program []string) *Module {
	t.Helper()

	assembler := &asm.Assembler{}
	prog, err := assembler.Assemble(strings.NewReader(strings.Join(program, "\n")))
	require.NoError(t, err)
	require.Empty(t, prog.Diagnostics)

	return NewModule(prog)
}

// text renders a module to a string.
func text(t *testing.T, mod *Module) string {
	t.Helper()

	var buf bytes.Buffer
	n, err := mod.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	return buf.String()
}

func TestRecords(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("HCOPY  00100000107A", Header{Name: "COPY", Start: 0x1000, Length: 0x107a}.String())
	assert.Equal("HLONGPR000000000003", Header{Name: "LONGPROGRAM", Length: 3}.String())
	assert.Equal("H      000000000000", Header{}.String())
	assert.Equal("T00100006004003000005", Text{Start: 0x1000, Code: "004003000005"}.String())
	assert.Equal(6, Text{Code: "004003000005"}.Len())
	assert.Equal("E001000", End{Start: 0x1000}.String())
}

func TestModule_Copy(t *testing.T) {
	assert := assert.New(t)

	mod := build(t, []string{
		"COPY START 1000",
		"FIRST LDA ALPHA",
		"ALPHA WORD 5",
		"END FIRST",
	})

	assert.Equal(strings.Join([]string{
		"HCOPY  001000000006",
		"T00100006004003000005",
		"E001000",
		"",
	}, "\n"), text(t, mod))
}

func TestModule_Gap(t *testing.T) {
	assert := assert.New(t)

	mod := build(t, []string{
		"GAP START 0",
		"A WORD 1",
		"B RESW 2",
		"C WORD 2",
		"CLEAR X",
		"END",
	})

	assert.Equal([]Text{
		{Start: 0, Code: "000001"},
		{Start: 9, Code: "000002B410"},
	}, mod.Texts)
	assert.Equal(Header{Name: "GAP", Start: 0, Length: 14}, mod.Header)
	assert.Equal(End{Start: 0}, mod.End)
}

func TestModule_Split(t *testing.T) {
	assert := assert.New(t)

	program := []string{"SPLIT START 100"}
	for n := range 10 {
		program = append(program, fmt.Sprintf("WORD %d", n))
	}
	program = append(program, "BYTE X'FF'", "END")

	mod := build(t, program)

	assert.Len(mod.Texts, 2)
	assert.Equal(uint32(0x100), mod.Texts[0].Start)
	assert.Equal(30, mod.Texts[0].Len())
	assert.Equal(uint32(0x11E), mod.Texts[1].Start)
	assert.Equal(1, mod.Texts[1].Len())
	assert.Equal("T00011E01FF", mod.Texts[1].String())
	assert.True(strings.HasPrefix(mod.Texts[0].String(), "T0001001E000000000001"))
}

func TestModule_SplitUneven(t *testing.T) {
	assert := assert.New(t)

	mod := build(t, []string{
		"START 0",
		"BYTE C'" + strings.Repeat("A", 29) + "'",
		"WORD 7",
	})

	assert.Equal([]Text{
		{Start: 0, Code: strings.Repeat("41", 29)},
		{Start: 29, Code: "000007"},
	}, mod.Texts)
}

func TestModule_Oversized(t *testing.T) {
	assert := assert.New(t)

	mod := build(t, []string{
		"BIG START 100",
		"BYTE C'" + strings.Repeat("Z", 40) + "'",
		"WORD 1",
		"END",
	})

	assert.Equal([]Text{
		{Start: 0x100, Code: strings.Repeat("5A", 30)},
		{Start: 0x11E, Code: strings.Repeat("5A", 10) + "000001"},
	}, mod.Texts)

	for _, text := range mod.Texts {
		assert.LessOrEqual(text.Len(), MaxTextBytes)
	}
}

func TestModule_Empty(t *testing.T) {
	assert := assert.New(t)

	mod := build(t, []string{"EMPTY START 0", "END"})
	assert.Empty(mod.Texts)
	assert.Equal("HEMPTY 000000000000\nE000000\n", text(t, mod))
}

func TestModule_Records(t *testing.T) {
	assert := assert.New(t)

	mod := &Module{
		Header: Header{Name: "P", Start: 0x10, Length: 6},
		Texts:  []Text{{Start: 0x10, Code: "000001"}, {Start: 0x13, Code: "000002"}},
		End:    End{Start: 0x10},
	}

	var lines []string
	for record := range mod.Records() {
		lines = append(lines, record.String())
	}
	assert.Equal([]string{"HP     000010000006", "T00001003000001", "T00001303000002", "E000010"}, lines)

	lines = lines[:0]
	for record := range mod.Records() {
		lines = append(lines, record.String())
		if len(lines) == 2 {
			break
		}
	}
	assert.Len(lines, 2)
}
