// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/sicasm/asm"
	"github.com/ezrec/sicasm/config"
	"github.com/ezrec/sicasm/listing"
	"github.com/ezrec/sicasm/object"
	"github.com/ezrec/sicasm/output"
	"github.com/ezrec/sicasm/translate"
)

var f = translate.From

// assemble assembles the input file, and writes the object module and the
// listing to fsys. Assembly errors are in the program's Diagnostics; err is
// only set if a file could not be read or written.
func assemble(assembler *asm.Assembler, input, objName, lstName string, fsys output.CreateFS) (prog *asm.Program, err error) {
	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = assembler.Assemble(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", input, err)
		return
	}

	err = output.WriteFile(fsys, objName, func(w io.Writer) (err error) {
		_, err = object.NewModule(prog).WriteTo(w)
		return
	})
	if err != nil {
		return
	}

	err = output.WriteFile(fsys, lstName, func(w io.Writer) error {
		return listing.Write(w, prog)
	})

	return
}

// summary returns the final status line.
func summary(prog *asm.Program) string {
	if len(prog.Diagnostics) == 0 {
		return f("Assembly completed.")
	}

	return f("Assembly failed, %d errors.", len(prog.Diagnostics))
}

func main() {
	var configFile string
	var verbose bool

	flag.StringVar(&configFile, "config", "", "Starlark configuration file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(),
			f("Usage: %v [options] <input_file> <output_obj> <output_lst>\n", os.Args[0]))
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	assembler := &asm.Assembler{Verbose: verbose}

	if len(configFile) != 0 {
		cfg, err := config.Load(configFile, nil)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
		cfg.Apply(assembler)
	}

	prog, err := assemble(assembler, flag.Arg(0), flag.Arg(1), flag.Arg(2), output.DirFS(""))
	if err != nil {
		log.Fatal(err)
	}

	for _, err := range prog.Diagnostics {
		log.Print(err)
	}

	log.Print(summary(prog))
}
