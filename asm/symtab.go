package asm

import (
	"iter"
	"maps"
	"slices"
)

// SymbolTable maps symbol names to addresses.
type SymbolTable map[string]uint32

// Define adds a new symbol. An existing symbol keeps its first value,
// and ErrSymbolDuplicate is returned.
func (symtab SymbolTable) Define(name string, address uint32) (err error) {
	_, ok := symtab[name]
	if ok {
		err = ErrSymbolDuplicate(name)
		return
	}

	symtab[name] = address
	return
}

// Set defines or redefines a symbol.
func (symtab SymbolTable) Set(name string, address uint32) {
	symtab[name] = address
}

// Lookup returns the address of a symbol.
func (symtab SymbolTable) Lookup(name string) (address uint32, ok bool) {
	address, ok = symtab[name]
	return
}

// Sorted iterates the symbols in name order.
func (symtab SymbolTable) Sorted() iter.Seq2[string, uint32] {
	return func(yield func(string, uint32) bool) {
		for _, name := range slices.Sorted(maps.Keys(symtab)) {
			if !yield(name, symtab[name]) {
				return
			}
		}
	}
}
