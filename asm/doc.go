// Package asm implements a two pass assembler for a simplified SIC/XE
// assembly language.
//
// Source lines are split into statements, Pass 1 assigns every statement
// an address and builds the symbol table, and Pass 2 encodes each statement
// into hexadecimal object code. Errors never stop either pass: each one is
// recorded in the program's Diagnostics, attributed to its source line, and
// assembly continues with a zero placeholder.
package asm
