// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/wordisa/asm"
	"github.com/ezrec/wordisa/internal"
	"github.com/ezrec/wordisa/isa"
	"github.com/ezrec/wordisa/vm"
)

// decoders maps the -isa names to their word decoders.
var decoders = map[string](func(word uint32) (fmt.Stringer, error)){
	"isa": func(word uint32) (fmt.Stringer, error) { return isa.Decode(word) },
	"vm":  func(word uint32) (fmt.Stringer, error) { return vm.Decode(word) },
}

func main() {
	var compile string
	var disassemble string
	var output string
	var target string
	var list bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&disassemble, "d", "", ".bin file to disassemble")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.StringVar(&target, "isa", "isa", "Instruction set to disassemble (isa, vm)")
	flag.BoolVar(&list, "l", false, "List the opcode tables")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	decode, ok := decoders[target]
	if !ok {
		log.Fatalf("%v: Unknown instruction set: %v", os.Args[0], target)
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	if list {
		for entry := range internal.IterSeqConcat(isa.Table.All(), vm.Table.All()) {
			fmt.Fprintln(ouf, entry)
		}
	}

	// Assemble to a little-endian binary.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		assembler := &asm.Assembler{Verbose: verbose}
		prog, err := assembler.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if verbose {
			spew.Fdump(os.Stderr, assembler.Label)
		}

		_, err = ouf.Write(prog.Bytes())
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	// Disassemble a little-endian binary.
	if len(disassemble) != 0 {
		data, err := os.ReadFile(disassemble)
		if err != nil {
			log.Fatalf("%v: %v", disassemble, err)
		}

		for offset, word := range internal.Words(data) {
			ins, err := decode(word)
			if err != nil {
				fmt.Fprintf(ouf, "%#06x: %08x  .word %#x ; %v\n", offset, word, word, err)
				continue
			}
			fmt.Fprintf(ouf, "%#06x: %08x  %v\n", offset, word, ins)
			if verbose {
				spew.Fdump(os.Stderr, ins)
			}
		}
	}
}
