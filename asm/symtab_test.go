package asm

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)

	symtab := SymbolTable{}

	assert.NoError(symtab.Define("ALPHA", 0x1003))
	assert.NoError(symtab.Define("BETA", 0x1006))

	err := symtab.Define("ALPHA", 0x2000)
	assert.ErrorIs(err, ErrDuplicateSymbol)
	assert.Equal(ErrSymbolDuplicate("ALPHA"), err)

	address, ok := symtab.Lookup("ALPHA")
	assert.True(ok)
	assert.Equal(uint32(0x1003), address)

	symtab.Set("ALPHA", 0x2000)
	address, _ = symtab.Lookup("ALPHA")
	assert.Equal(uint32(0x2000), address)

	_, ok = symtab.Lookup("GAMMA")
	assert.False(ok)

	assert.Equal(map[string]uint32{"ALPHA": 0x2000, "BETA": 0x1006}, maps.Collect(symtab.Sorted()))

	var names []string
	for name := range symtab.Sorted() {
		names = append(names, name)
	}
	assert.Equal([]string{"ALPHA", "BETA"}, names)

	assert.False(errors.Is(ErrSymbolUndefined("X"), ErrDuplicateSymbol))
}
