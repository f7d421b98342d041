// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"maps"
)

// Assembler is a two pass assembler for the SIC/XE subset.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine SymbolTable // Symbols defined before Pass 1.
}

// Predefine defines a symbol before assembly starts. A label of the same
// name in the source is then a duplicate.
func (asm *Assembler) Predefine(name string, address uint32) {
	if asm.predefine == nil {
		asm.predefine = SymbolTable{name: address}
	} else {
		asm.predefine[name] = address
	}
}

// Parse reads source lines from the input, and splits each non-blank
// line into a statement.
func (asm *Assembler) Parse(input io.Reader) (stmts []Statement, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		stmt, ok := ParseStatement(text)
		if !ok {
			continue
		}
		stmt.LineNo = lineno
		stmts = append(stmts, stmt)
	}

	err = scanner.Err()
	return
}

// Assemble parses the input and runs both passes over it.
//
// Assembly errors do not stop assembly, and are returned in the program's
// Diagnostics. The error return is only for failures to read the input.
func (asm *Assembler) Assemble(input io.Reader) (prog *Program, err error) {
	stmts, err := asm.Parse(input)
	if err != nil {
		return
	}

	prog = &Program{
		Statements: stmts,
		Symbols:    maps.Clone(asm.predefine),
	}

	Pass1(prog)

	if asm.Verbose {
		log.Printf("pass 1: %q start %04X length %04X, %d symbols\n",
			prog.Name, prog.Start, prog.Length, len(prog.Symbols))
		for name, address := range prog.Symbols.Sorted() {
			log.Printf("  %-8v %04X\n", name, address)
		}
	}

	Pass2(prog)
	prog.Diagnostics.Sort()

	if asm.Verbose {
		for _, stmt := range prog.Statements {
			log.Printf("%04X %-8v %-6v %-12v %v\n",
				stmt.Address, stmt.Label, stmt.Mnemonic, stmt.Operand, stmt.ObjectCode)
		}
	}

	return
}
