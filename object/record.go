// Package object formats an assembled program as H/T/E object records.
package object

import (
	"fmt"
)

// MaxTextBytes is the largest payload of a Text record, in bytes.
const MaxTextBytes = 30

// Record is one line of an object module.
type Record interface {
	fmt.Stringer
}

// Header is the H record.
type Header struct {
	Name   string // Program name, space padded to 6 characters.
	Start  uint32 // Start address.
	Length uint32 // Program length.
}

func (hdr Header) String() string {
	return fmt.Sprintf("H%-6.6s%06X%06X", hdr.Name, hdr.Start&0xffffff, hdr.Length&0xffffff)
}

// Text is a T record.
type Text struct {
	Start uint32 // Address of the first byte.
	Code  string // Hexadecimal payload.
}

// Len returns the payload length in bytes.
func (text Text) Len() int {
	return len(text.Code) / 2
}

func (text Text) String() string {
	return fmt.Sprintf("T%06X%02X%v", text.Start&0xffffff, text.Len(), text.Code)
}

// End is the E record.
type End struct {
	Start uint32 // Execution start address.
}

func (end End) String() string {
	return fmt.Sprintf("E%06X", end.Start&0xffffff)
}
