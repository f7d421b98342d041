package asm

import (
	"strings"

	"github.com/ezrec/sicasm/catalog"
)

// Statement is the resolved form of one source line.
type Statement struct {
	LineNo     int    // Source line number, 1-based.
	Line       string // Source line text, trimmed.
	Address    uint32 // Location counter, set by Pass 1.
	Label      string // Symbol defined by this statement, if any.
	Mnemonic   string // Instruction or directive name.
	Operand    string // Operand text.
	ObjectCode string // Hexadecimal object code, set by Pass 2.
}

// ParseStatement splits a source line into label, mnemonic and operand.
// It returns false for blank lines.
func ParseStatement(line string) (stmt Statement, ok bool) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	ok = true
	stmt.Line = strings.TrimSpace(line)

	if !catalog.IsMnemonic(words[0]) {
		stmt.Label = words[0]
		words = words[1:]
	}

	if len(words) > 0 {
		stmt.Mnemonic = words[0]
		stmt.Operand = strings.Join(words[1:], " ")
	}

	return
}
