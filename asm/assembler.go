// Copyright 2025, Malachi Burnett

package asm

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/MalachiBurnett/Logic-Gate-CPU/internal"
	"github.com/MalachiBurnett/Logic-Gate-CPU/rom"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":    "0",
	"WORD_BITS": strconv.Itoa(WORD_BITS),
	"REGISTERS": strconv.Itoa(REGISTERS),
	"ROWS":      strconv.Itoa(1 << rom.DEFAULT_SELECTS),
}

var labelRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// Assembler is a single pass assembler. Labels used before their definition
// are linked after the last line.
type Assembler struct {
	Verbose  bool              // If set, verbosely logs the assembler actions.
	Lines    []Line            // Assembled lines, one per ROM row.
	Label    map[string]int    // Map of labels to ROM rows.
	Equate   map[string]string // Map of equates.
	Warnings []string          // Encodings that differ from their documentation.

	predefine map[string]string
}

// Predefine defines an equate for every subsequent Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Defines returns the system equates followed by the predefines.
func (asm *Assembler) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(sysEquate), maps.All(asm.predefine))
}

// valueOf returns the value of a numeric word.
func (asm *Assembler) valueOf(word string) (value uint64, err error) {
	value, err = strconv.ParseUint(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

// register returns the index of an rN register word.
func register(word string) (index uint64, err error) {
	if len(word) < 2 || (word[0] != 'r' && word[0] != 'R') {
		err = ErrRegisterInvalid
		return
	}
	index, err = strconv.ParseUint(word[1:], 10, 8)
	if err != nil || index >= REGISTERS {
		err = ErrRegisterInvalid
	}
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var num uint64
		num, err = asm.valueOf(str)
		if err != nil {
			// Registers and other non-integer equates are not visible.
			err = nil
			continue
		}
		pred[key] = starlark.MakeUint64(num)
	}
	for key, row := range asm.Label {
		pred[key] = starlark.MakeInt(row)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 {
		err = ErrParseExpression(expr)
		return
	}
	value = uint64(st_int64)
	return
}

// parseLine expands a line into words, handling expressions, equates and
// labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return strconv.FormatUint(value, 10)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := strings.TrimSuffix(words[0], ":")
		if !labelRe.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = len(asm.Lines)
		if asm.Verbose {
			log.Printf("%v: row %d", label, len(asm.Lines))
		}
		words = words[1:]
	}

	return
}

// Parse assembles an input stream into a Program, one row per instruction.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Lines = asm.Lines[:0]
	asm.Warnings = asm.Warnings[:0]
	asm.Label = make(map[string]int)
	asm.Equate = make(map[string]string)
	for equ, value := range asm.Defines() {
		asm.Equate[equ] = value
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(strings.Split(text, ";")[0])
		if len(line) == 0 {
			continue
		}

		// A '#' line is an all-zero row.
		if strings.HasPrefix(line, "#") {
			err = asm.parseWords([]string{OP_NOP.String()}, lineno)
			if err != nil {
				return
			}
			continue
		}

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.Lines {
		ln := &asm.Lines[n]
		if len(ln.LinkLabel) == 0 {
			continue
		}
		lineno = ln.LineNo
		line = strings.Join(ln.Words, " ")

		row, ok := asm.Label[ln.LinkLabel]
		if !ok {
			err = ErrLabelMissing(ln.LinkLabel)
			return
		}
		ln.Instruction.Operands[ln.linkOperand] = uint64(row)
		ln.Word, err = ln.Instruction.Encode()
		if err != nil {
			return
		}
	}

	prog = &Program{
		Lines:    slices.Clone(asm.Lines),
		Warnings: slices.Clone(asm.Warnings),
	}

	return
}

// parseWords assembles the words of a line into a single row.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	op, ok := mnemonics[strings.ToUpper(words[0])]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}
	layout, _ := op.Layout()

	fields := layout.Operands()
	args := words[1:]
	if len(args) < len(fields) {
		err = ErrOpcodeValueMissing
		return
	}
	if len(args) > len(fields) {
		err = ErrOpcodeExtraArgs
		return
	}

	ln := Line{
		LineNo:      lineno,
		Row:         len(asm.Lines),
		Words:       words,
		Instruction: Instruction{Op: op, Operands: make([]uint64, len(fields))},
	}

	for n, field := range fields {
		arg := args[n]
		var value uint64
		switch field.Kind {
		case FIELD_REGISTER:
			value, err = register(arg)
		case FIELD_ADDRESS:
			row, is_label := asm.Label[arg]
			switch {
			case is_label:
				value = uint64(row)
			case labelRe.MatchString(arg):
				// Linked after the last line.
				ln.LinkLabel = arg
				ln.linkOperand = n
			default:
				value, err = asm.valueOf(arg)
			}
		default:
			value, err = asm.valueOf(arg)
		}
		if err != nil {
			return
		}
		ln.Instruction.Operands[n] = value
	}

	ln.Word, err = ln.Instruction.Encode()
	if err != nil {
		return
	}

	if op.Collides() {
		warning := f("line %d %v documented as opcode %05b, emitted as %04b",
			lineno, op.String(), uint16(op), layout.Emit)
		asm.Warnings = append(asm.Warnings, warning)
		if asm.Verbose {
			log.Print(warning)
		}
	}

	if asm.Verbose {
		log.Printf("%v: row %d %v", lineno, ln.Row, string(ln.Word))
	}

	asm.Lines = append(asm.Lines, ln)

	return
}

// String returns a listing of the assembled rows.
func (asm *Assembler) String() string {
	var sb strings.Builder
	for _, ln := range asm.Lines {
		fmt.Fprintf(&sb, "%3d %v ; %v\n", ln.Row, string(ln.Word), ln.Instruction.String())
	}
	return sb.String()
}
