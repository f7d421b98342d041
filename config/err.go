package config

import (
	"github.com/ezrec/sicasm/translate"
)

var f = translate.From

// ErrType is a configuration global, or a predefine entry, of the wrong type.
type ErrType struct {
	Name string // Global or symbol name.
	Want string // Expected Starlark type.
	Got  string // Actual Starlark type.
}

func (err *ErrType) Error() string {
	return f("%v: want %v, got %v", err.Name, err.Want, err.Got)
}

// ErrRange is a predefined symbol address outside of the 24 bit address space.
type ErrRange struct {
	Name  string
	Value string
}

func (err *ErrRange) Error() string {
	return f("%v: address %v out of range", err.Name, err.Value)
}
