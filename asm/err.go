package asm

import (
	"cmp"
	"errors"
	"slices"

	"github.com/ezrec/sicasm/translate"
)

var f = translate.From

var (
	ErrDuplicateSymbol     = errors.New(f("duplicate symbol"))
	ErrInvalidLiteral      = errors.New(f("invalid literal"))
	ErrUndefinedSymbol     = errors.New(f("undefined symbol"))
	ErrUnknownMnemonic     = errors.New(f("unknown mnemonic"))
	ErrInvalidRegister     = errors.New(f("invalid register"))
	ErrInvalidOperandCount = errors.New(f("invalid operand count"))
	ErrImmediateRange      = errors.New(f("immediate value out of range"))
	ErrInvalidNumber       = errors.New(f("invalid number"))
	ErrMissingLabel        = errors.New(f("label missing"))
)

type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("duplicate symbol '%v'", string(err))
}

func (err ErrSymbolDuplicate) Is(target error) bool {
	return target == ErrDuplicateSymbol
}

type ErrSymbolUndefined string

func (err ErrSymbolUndefined) Error() string {
	return f("undefined symbol '%v'", string(err))
}

func (err ErrSymbolUndefined) Is(target error) bool {
	return target == ErrUndefinedSymbol
}

type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("undefined mnemonic '%v'", string(err))
}

func (err ErrMnemonicUnknown) Is(target error) bool {
	return target == ErrUnknownMnemonic
}

type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("invalid register '%v'", string(err))
}

func (err ErrRegisterUnknown) Is(target error) bool {
	return target == ErrInvalidRegister
}

type ErrLiteral string

func (err ErrLiteral) Error() string {
	return f("invalid literal %v", string(err))
}

func (err ErrLiteral) Is(target error) bool {
	return target == ErrInvalidLiteral
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrInvalidNumber
}

// ErrSyntax attributes an error to a source line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// Diagnostics collects the errors reported while assembling.
// Each pass only appends to it; Assemble orders it by source line once
// both passes are done.
type Diagnostics []error

// Report records err against the statement's source line.
func (diag *Diagnostics) Report(stmt *Statement, err error) {
	*diag = append(*diag, &ErrSyntax{LineNo: stmt.LineNo, Line: stmt.Line, Err: err})
}

// Sort orders the errors by source line. Errors on the same line keep
// the order they were reported in.
func (diag Diagnostics) Sort() {
	slices.SortStableFunc(diag, func(a, b error) int {
		return cmp.Compare(lineOf(a), lineOf(b))
	})
}

// lineOf returns the source line an error is attributed to.
func lineOf(err error) int {
	var syntax *ErrSyntax
	if errors.As(err, &syntax) {
		return syntax.LineNo
	}
	return 0
}

// Err returns all reported errors joined, or nil if there were none.
func (diag Diagnostics) Err() error {
	return errors.Join(diag...)
}
