package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOperand(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Text    string
		Operand Operand
		Flags   int
	}{
		{"ALPHA", Operand{MODE_SIMPLE, "ALPHA", false}, 4},
		{"BUFFER,X", Operand{MODE_SIMPLE, "BUFFER", true}, 5},
		{"#3", Operand{MODE_IMMEDIATE, "3", false}, 1},
		{"#LENGTH", Operand{MODE_IMMEDIATE, "LENGTH", false}, 1},
		{"@RETADR", Operand{MODE_INDIRECT, "RETADR", false}, 2},
		{"", Operand{MODE_SIMPLE, "", false}, 4},
	}

	for _, entry := range table {
		operand := ClassifyOperand(entry.Text)
		assert.Equal(entry.Operand, operand, entry.Text)
		assert.Equal(entry.Flags, operand.Flags(), entry.Text)
	}
}

func TestMode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("simple", MODE_SIMPLE.String())
	assert.Equal("immediate", MODE_IMMEDIATE.String())
	assert.Equal("indirect", MODE_INDIRECT.String())
	assert.Equal("Mode(9)", Mode(9).String())
}
