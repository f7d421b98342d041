package asm

import (
	"strings"
)

// Mode is a format 3 addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_SIMPLE    = Mode(0) // simple
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_INDIRECT  = Mode(2) // indirect
)

// Operand is a classified format 3 operand.
type Operand struct {
	Mode    Mode   // Addressing mode.
	Target  string // Symbol name or decimal value.
	Indexed bool   // Trailing ",X".
}

// ClassifyOperand determines the addressing mode of a format 3 operand
// from its prefix.
func ClassifyOperand(text string) (operand Operand) {
	switch {
	case strings.HasPrefix(text, "#"):
		operand.Mode = MODE_IMMEDIATE
		operand.Target = text[1:]
	case strings.HasPrefix(text, "@"):
		operand.Mode = MODE_INDIRECT
		operand.Target = text[1:]
	default:
		operand.Mode = MODE_SIMPLE
		operand.Target, operand.Indexed = strings.CutSuffix(text, ",X")
	}

	return
}

// Flags returns the flag nibble: 1 for immediate, 2 for indirect,
// 4 for simple, plus 1 when indexed.
//
// This is a single nibble, not the n/i/x/b/p/e bits of the SIC/XE
// hardware encoding.
func (operand Operand) Flags() (flags int) {
	switch operand.Mode {
	case MODE_IMMEDIATE:
		flags = 1
	case MODE_INDIRECT:
		flags = 2
	case MODE_SIMPLE:
		flags = 4
	}

	if operand.Indexed {
		flags++
	}

	return
}
