// Package config loads assembler settings from a Starlark file.
//
// A configuration file is a Starlark program; the assembler reads these
// globals after executing it:
//
//	verbose = True                  # log every line and both passes
//	predefine = {                   # symbols defined before Pass 1
//	    "STDIN": 0xF1,
//	    "BUFSIZE": 4 * 1024,
//	}
//
// Other globals are ignored, so helper variables and functions may be used
// freely.
package config

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/sicasm/asm"
)

// Config is the loaded configuration.
type Config struct {
	Verbose   bool              // Verbose assembler logging.
	Predefine map[string]uint32 // Symbols defined before assembly.
}

// Load executes a configuration file. If src is nil the file is read from
// filename, otherwise src is used as the program text; see
// starlark.ExecFileOptions.
func Load(filename string, src any) (cfg *Config, err error) {
	thread := &starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, nil)
	if err != nil {
		return
	}

	cfg = &Config{}

	if value, ok := globals["verbose"]; ok {
		verbose, ok := value.(starlark.Bool)
		if !ok {
			err = &ErrType{Name: "verbose", Want: "bool", Got: value.Type()}
			cfg = nil
			return
		}
		cfg.Verbose = bool(verbose)
	}

	if value, ok := globals["predefine"]; ok {
		cfg.Predefine, err = predefines(value)
		if err != nil {
			cfg = nil
			return
		}
	}

	return
}

// predefines converts the predefine dict.
func predefines(value starlark.Value) (symbols map[string]uint32, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = &ErrType{Name: "predefine", Want: "dict", Got: value.Type()}
		return
	}

	symbols = make(map[string]uint32, dict.Len())
	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = &ErrType{Name: item[0].String(), Want: "string", Got: item[0].Type()}
			return
		}

		address, ok := item[1].(starlark.Int)
		if !ok {
			err = &ErrType{Name: name, Want: "int", Got: item[1].Type()}
			return
		}

		u64, ok := address.Uint64()
		if !ok || u64 > 0xffffff {
			err = &ErrRange{Name: name, Value: address.String()}
			return
		}

		symbols[name] = uint32(u64)
	}

	return
}

// Apply configures an assembler.
func (cfg *Config) Apply(assembler *asm.Assembler) {
	assembler.Verbose = assembler.Verbose || cfg.Verbose
	for name, address := range cfg.Predefine {
		assembler.Predefine(name, address)
	}
}
