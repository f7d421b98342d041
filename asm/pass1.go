package asm

import (
	"strconv"
	"strings"

	"github.com/ezrec/sicasm/catalog"
)

// resolver is the Pass 1 state.
type resolver struct {
	prog    *Program
	started bool // First START seen.
	ended   bool // First END seen, length frozen.
}

// Pass1 assigns addresses to all statements, fills in the symbol table,
// and computes the program start and length.
func Pass1(prog *Program) {
	if prog.Symbols == nil {
		prog.Symbols = make(SymbolTable)
	}

	r := &resolver{prog: prog}

	var lc uint32
	for n := range prog.Statements {
		lc = r.locate(&prog.Statements[n], lc)
	}

	if !r.ended {
		prog.Length = lc - prog.Start
	}
}

// locate resolves one statement at location lc, and returns the location
// of the next statement.
func (r *resolver) locate(stmt *Statement, lc uint32) (next uint32) {
	prog := r.prog

	if !r.started && stmt.Mnemonic == "START" {
		r.started = true
		prog.Name = stmt.Label
		if name := []rune(prog.Name); len(name) > 6 {
			prog.Name = string(name[:6])
		}
		if len(stmt.Operand) != 0 {
			start, err := strconv.ParseUint(stmt.Operand, 16, 32)
			if err != nil {
				prog.Diagnostics.Report(stmt, ErrParseNumber(stmt.Operand))
				start = 0
			}
			prog.Start = uint32(start)
		}
		stmt.Address = prog.Start
		return prog.Start
	}

	if len(stmt.Label) != 0 {
		err := prog.Symbols.Define(stmt.Label, lc)
		if err != nil {
			prog.Diagnostics.Report(stmt, err)
		}
	}

	stmt.Address = lc
	next = lc

	switch stmt.Mnemonic {
	case "":
		// A bare label still occupies a word.
		next += 3
	case "START", "CSECT":
	case "END":
		if !r.ended {
			r.ended = true
			prog.Length = lc - prog.Start
		}
	case "BYTE":
		lit, err := parseLiteral(stmt.Operand)
		if err == nil && lit.Kind == 'X' && len(lit.Body)%2 != 0 {
			err = ErrLiteral(stmt.Operand)
		}
		if err != nil {
			prog.Diagnostics.Report(stmt, err)
		}
		next += uint32(lit.Size())
	case "WORD":
		next += 3
	case "RESW":
		count, err := r.count(stmt)
		if err == nil {
			next += 3 * count
		}
	case "RESB":
		count, err := r.count(stmt)
		if err == nil {
			next += count
		}
	case "ORG":
		address, ok := prog.Symbols.Lookup(stmt.Operand)
		if ok {
			next = address
			break
		}
		value, err := strconv.ParseUint(stmt.Operand, 16, 32)
		if err != nil {
			prog.Diagnostics.Report(stmt, ErrParseNumber(stmt.Operand))
			break
		}
		next = uint32(value)
	case "EQU":
		if len(stmt.Label) == 0 {
			prog.Diagnostics.Report(stmt, ErrMissingLabel)
			break
		}
		prog.Symbols.Set(stmt.Label, r.equate(stmt))
	default:
		op, ok := catalog.Lookup(stmt.Mnemonic)
		if ok {
			next += uint32(op.Length())
		} else {
			// Pass 2 reports the mnemonic, and emits a 3 byte placeholder.
			next += 3
		}
	}

	return
}

// count parses the decimal operand of RESW and RESB.
func (r *resolver) count(stmt *Statement) (count uint32, err error) {
	value, err := strconv.ParseUint(stmt.Operand, 10, 24)
	if err != nil {
		err = ErrParseNumber(stmt.Operand)
		r.prog.Diagnostics.Report(stmt, err)
		return
	}

	count = uint32(value)
	return
}

// equate resolves the value of an EQU operand: a decimal number,
// or the address of an already defined symbol.
func (r *resolver) equate(stmt *Statement) (value uint32) {
	if isDecimal(stmt.Operand) {
		v64, err := strconv.ParseUint(stmt.Operand, 10, 32)
		if err != nil {
			r.prog.Diagnostics.Report(stmt, ErrParseNumber(stmt.Operand))
			return
		}
		value = uint32(v64)
		return
	}

	value, ok := r.prog.Symbols.Lookup(stmt.Operand)
	if !ok {
		r.prog.Diagnostics.Report(stmt, ErrSymbolUndefined(stmt.Operand))
		value = 0
	}

	return
}

// isDecimal is true if word is a non-empty string of decimal digits.
func isDecimal(word string) bool {
	return len(word) != 0 && strings.Trim(word, "0123456789") == ""
}
