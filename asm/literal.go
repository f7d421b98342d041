package asm

import (
	"encoding/hex"
	"strings"
)

// literal is a BYTE operand, C'text' or X'hexdigits'.
type literal struct {
	Kind byte   // 'C' or 'X'
	Body string // Text between the quotes.
}

// parseLiteral splits a BYTE operand into its kind and body.
func parseLiteral(operand string) (lit literal, err error) {
	if len(operand) < 3 || operand[1] != '\'' || !strings.HasSuffix(operand, "'") {
		err = ErrLiteral(operand)
		return
	}

	switch operand[0] {
	case 'C', 'X':
		lit.Kind = operand[0]
		lit.Body = operand[2 : len(operand)-1]
	default:
		err = ErrLiteral(operand)
	}

	return
}

// Size returns the number of bytes the literal occupies. A trailing
// odd hex digit is not counted.
func (lit literal) Size() int {
	switch lit.Kind {
	case 'C':
		return len(lit.Body)
	case 'X':
		return len(lit.Body) / 2
	}

	return 0
}

// Encode returns the literal as upper case hexadecimal object code.
func (lit literal) Encode() (code string, err error) {
	switch lit.Kind {
	case 'C':
		code = strings.ToUpper(hex.EncodeToString([]byte(lit.Body)))
	case 'X':
		for _, c := range lit.Body {
			if !strings.ContainsRune("0123456789ABCDEFabcdef", c) {
				err = ErrLiteral("X'" + lit.Body + "'")
				return
			}
		}
		code = strings.ToUpper(lit.Body[:lit.Size()*2])
	}

	return
}
