// Copyright 2025, Malachi Burnett

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/MalachiBurnett/Logic-Gate-CPU/asm"
	"github.com/MalachiBurnett/Logic-Gate-CPU/export"
	"github.com/MalachiBurnett/Logic-Gate-CPU/gcg"
	"github.com/MalachiBurnett/Logic-Gate-CPU/rom"
)

func main() {
	var compile string
	var binary string
	var format string
	var output string
	var template string
	var name string
	var selects int
	var strict bool
	var verify bool
	var verbose bool

	asmr := &asm.Assembler{}

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&binary, "b", "", ".bin memory image to synthesize")
	flag.StringVar(&format, "f", "xml", "Export format: bin, xml, ic or gcg")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.StringVar(&template, "t", export.DEFAULT_TEMPLATE, "Template for gcg export")
	flag.StringVar(&name, "n", gcg.CIRCUIT_NAME, "Circuit name")
	flag.IntVar(&selects, "s", rom.DEFAULT_SELECTS, "Number of select lines")
	flag.Func("D", "Predefine an equate, NAME=VALUE", func(def string) error {
		equ, value, ok := strings.Cut(def, "=")
		if !ok || len(equ) == 0 {
			return fmt.Errorf("%q is not NAME=VALUE", def)
		}
		asmr.Predefine(equ, value)
		return nil
	})
	flag.BoolVar(&strict, "strict", false, "Fail if the template lacks the circuit")
	flag.BoolVar(&verify, "verify", false, "Check the synthesized network against the image")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if (len(compile) == 0) == (len(binary) == 0) {
		log.Fatalf("%v: exactly one of -c or -b is required", os.Args[0])
	}

	fmtv, err := export.ParseFormat(format)
	if err != nil {
		log.Fatalf("%v: %v", format, err)
	}

	var prog *asm.Program
	var img rom.Image

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asmr.Verbose = verbose
		prog, err = asmr.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		for _, warning := range prog.Warnings {
			log.Printf("%v: %v", compile, warning)
		}
		if verbose {
			log.Printf("%v:\n%v", compile, asmr.String())
		}
		img = prog.Image()
	} else {
		inf, err := os.Open(binary)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		defer inf.Close()

		img, err = rom.ReadImage(inf)
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
	}

	ex := export.NewExporter()
	ex.CircuitName = name
	ex.Selects = selects
	ex.TemplateFS = os.DirFS(filepath.Dir(template))
	ex.Template = filepath.Base(template)
	ex.Strict = strict
	ex.Verify = verify
	ex.Verbose = verbose

	data, err := ex.Render(fmtv, img)
	if err != nil {
		var mismatch *rom.ErrMismatch
		if prog != nil && errors.As(err, &mismatch) {
			if ln := prog.Debug(mismatch.Address); ln != nil {
				log.Printf("%v: line %d: %v", compile, ln.LineNo, strings.Join(ln.Words, " "))
			}
		}
		log.Fatal(err)
	}

	if output == "-" {
		_, err = os.Stdout.Write(data)
	} else {
		err = os.WriteFile(output, data, 0644)
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
