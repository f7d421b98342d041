package catalog

// Opcode is a cataloged machine instruction.
type Opcode struct {
	Mnemonic string // Instruction name, upper case.
	Code     byte   // Opcode byte.
	Format   Format // Instruction format class.
}

// Length returns the number of bytes the instruction occupies.
func (op Opcode) Length() int {
	return op.Format.Length()
}

// opcodeMap maps mnemonics to instructions.
var opcodeMap = map[string]Opcode{}

func init() {
	for _, op := range []Opcode{
		{"LDA", 0x00, FORMAT_3},
		{"LDX", 0x04, FORMAT_3},
		{"LDL", 0x08, FORMAT_3},
		{"STA", 0x0C, FORMAT_3},
		{"STX", 0x10, FORMAT_3},
		{"STL", 0x14, FORMAT_3},
		{"ADD", 0x18, FORMAT_3},
		{"SUB", 0x1C, FORMAT_3},
		{"MUL", 0x20, FORMAT_3},
		{"DIV", 0x24, FORMAT_3},
		{"COMP", 0x28, FORMAT_3},
		{"TIX", 0x2C, FORMAT_3},
		{"JEQ", 0x30, FORMAT_3},
		{"JGT", 0x34, FORMAT_3},
		{"JLT", 0x38, FORMAT_3},
		{"J", 0x3C, FORMAT_3},
		{"AND", 0x40, FORMAT_3},
		{"OR", 0x44, FORMAT_3},
		{"JSUB", 0x48, FORMAT_3},
		{"RSUB", 0x4C, FORMAT_3},
		{"LDCH", 0x50, FORMAT_3},
		{"STCH", 0x54, FORMAT_3},
		{"LDB", 0x68, FORMAT_3},
		{"LDS", 0x6C, FORMAT_3},
		{"LDT", 0x74, FORMAT_3},
		{"STB", 0x78, FORMAT_3},
		{"STS", 0x7C, FORMAT_3},
		{"STT", 0x84, FORMAT_3},
		{"RD", 0xD8, FORMAT_3},
		{"WD", 0xDC, FORMAT_3},
		{"TD", 0xE0, FORMAT_3},
		{"STSW", 0xE8, FORMAT_3},

		{"ADDR", 0x90, FORMAT_2},
		{"SUBR", 0x94, FORMAT_2},
		{"MULR", 0x98, FORMAT_2},
		{"DIVR", 0x9C, FORMAT_2},
		{"COMPR", 0xA0, FORMAT_2},
		{"SHIFTL", 0xA4, FORMAT_2},
		{"SHIFTR", 0xA8, FORMAT_2},
		{"RMO", 0xAC, FORMAT_2},
		{"CLEAR", 0xB4, FORMAT_2},
		{"TIXR", 0xB8, FORMAT_2},
	} {
		opcodeMap[op.Mnemonic] = op
	}
}

// registerMap maps register names to their 4-bit codes.
var registerMap = map[string]byte{
	"A":  0,
	"X":  1,
	"L":  2,
	"B":  3,
	"S":  4,
	"T":  5,
	"F":  6,
	"PC": 8,
	"SW": 9,
}

// directiveSet is the set of assembler directives.
var directiveSet = map[string]bool{
	"START": true,
	"END":   true,
	"BYTE":  true,
	"WORD":  true,
	"RESW":  true,
	"RESB":  true,
	"ORG":   true,
	"EQU":   true,
	"CSECT": true,
}

// Lookup returns the instruction named by mnemonic.
func Lookup(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[mnemonic]
	return
}

// Register returns the code of a register name.
func Register(name string) (code byte, ok bool) {
	code, ok = registerMap[name]
	return
}

// IsDirective reports whether name is an assembler directive.
func IsDirective(name string) bool {
	return directiveSet[name]
}

// IsMnemonic reports whether token names an instruction or a directive.
func IsMnemonic(token string) bool {
	_, ok := opcodeMap[token]
	return ok || directiveSet[token]
}
