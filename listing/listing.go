// Package listing renders an assembled program as a tab separated listing.
package listing

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/sicasm/asm"
)

// Columns are the listing header fields.
var Columns = []string{"Address", "Label", "Mnemonic", "Operand", "Object Code"}

// Write writes a header row, then one row per statement.
func Write(w io.Writer, prog *asm.Program) (err error) {
	bw := bufio.NewWriter(w)

	_, err = fmt.Fprintln(bw, strings.Join(Columns, "\t"))
	if err != nil {
		return
	}

	for _, stmt := range prog.Statements {
		_, err = fmt.Fprintf(bw, "%04X\t%v\t%v\t%v\t%v\n",
			stmt.Address, stmt.Label, stmt.Mnemonic, stmt.Operand, stmt.ObjectCode)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}
