package asm

import (
	"iter"
)

// Program is an assembled control section.
type Program struct {
	Name        string      // Program name from START, at most 6 characters.
	Start       uint32      // Start address.
	Length      uint32      // Program length in bytes.
	Statements  []Statement // Statements in source order.
	Symbols     SymbolTable // Symbol table built by Pass 1.
	Diagnostics Diagnostics // Errors reported by both passes.
}

// Fragments iterates over the address and object code of every statement
// in order. Statements without object code yield an empty string.
func (prog *Program) Fragments() iter.Seq2[uint32, string] {
	return func(yield func(address uint32, code string) bool) {
		for _, stmt := range prog.Statements {
			if !yield(stmt.Address, stmt.ObjectCode) {
				return
			}
		}
	}
}
