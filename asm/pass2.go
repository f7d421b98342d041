package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/sicasm/catalog"
)

// Pass2 generates the object code of every statement, resolving operands
// against the symbol table built by Pass1.
func Pass2(prog *Program) {
	for n := range prog.Statements {
		stmt := &prog.Statements[n]
		if len(stmt.Mnemonic) == 0 {
			continue
		}

		code, err := prog.encode(stmt)
		if err != nil {
			prog.Diagnostics.Report(stmt, err)
		}
		stmt.ObjectCode = code
	}
}

// encode returns the object code of a single statement. On error, the
// returned code is the placeholder to use in its place.
func (prog *Program) encode(stmt *Statement) (code string, err error) {
	switch stmt.Mnemonic {
	case "BYTE":
		lit, lit_err := parseLiteral(stmt.Operand)
		if lit_err != nil {
			// Reported by Pass 1.
			return
		}
		code, err = lit.Encode()
		return
	case "WORD":
		var value int64
		value, err = strconv.ParseInt(stmt.Operand, 10, 64)
		if err != nil {
			err = ErrParseNumber(stmt.Operand)
			code = "000000"
			return
		}
		code = fmt.Sprintf("%06X", uint32(value)&0xffffff)
		return
	}

	// Remaining directives produce no object code.
	if catalog.IsDirective(stmt.Mnemonic) {
		return
	}

	op, ok := catalog.Lookup(stmt.Mnemonic)
	if !ok {
		err = ErrMnemonicUnknown(stmt.Mnemonic)
		code = "000000"
		return
	}

	if op.Format == catalog.FORMAT_2 {
		return encodeRegisters(op, stmt.Operand)
	}

	if op.Mnemonic == "RSUB" {
		code = fmt.Sprintf("%02X0000", op.Code)
		return
	}

	operand := ClassifyOperand(stmt.Operand)
	field, err := prog.addressField(operand)
	code = fmt.Sprintf("%02X%X%03X", op.Code, operand.Flags(), field)

	return
}

// encodeRegisters encodes a format 2 instruction with one or two
// register operands.
func encodeRegisters(op catalog.Opcode, operand string) (code string, err error) {
	names := strings.Split(operand, ",")
	if len(names) > 2 {
		err = ErrInvalidOperandCount
		code = "0000"
		return
	}

	var regs [2]byte
	for n, name := range names {
		name = strings.TrimSpace(name)
		reg, ok := catalog.Register(name)
		if !ok {
			err = ErrRegisterUnknown(name)
			code = "0000"
			return
		}
		regs[n] = reg
	}

	code = fmt.Sprintf("%02X%X%X", op.Code, regs[0], regs[1])
	return
}

// addressField resolves a format 3 operand to its 12 bit address field.
// Unresolvable operands yield a zero field.
func (prog *Program) addressField(operand Operand) (field uint32, err error) {
	if operand.Mode == MODE_IMMEDIATE && isDecimal(operand.Target) {
		value, parse_err := strconv.ParseUint(operand.Target, 10, 64)
		if parse_err != nil || value > 0xfff {
			err = ErrImmediateRange
			return
		}
		field = uint32(value)
		return
	}

	address, ok := prog.Symbols.Lookup(operand.Target)
	if !ok {
		err = ErrSymbolUndefined(operand.Target)
		return
	}

	field = address & 0xfff
	return
}
