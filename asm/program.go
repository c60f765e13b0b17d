package asm

import (
	"github.com/MalachiBurnett/Logic-Gate-CPU/rom"
)

// Line is a single assembled source line.
type Line struct {
	LineNo      int         // Source line number.
	Row         int         // ROM row holding the word.
	Words       []string    // Source words after equate substitution.
	Instruction Instruction // Decoded instruction.
	Word        rom.Word    // Encoded word.
	LinkLabel   string      // Label resolved after the last line, if any.

	linkOperand int
}

type Program struct {
	Lines    []Line
	Warnings []string
}

// Image returns the memory image, one word per row.
func (prog *Program) Image() (img rom.Image) {
	img = make(rom.Image, 0, len(prog.Lines))
	for _, ln := range prog.Lines {
		img = append(img, ln.Word)
	}
	return
}

// Debug returns the line assembled into a row, or nil.
func (prog *Program) Debug(row int) *Line {
	for n, ln := range prog.Lines {
		if ln.Row == row {
			return &prog.Lines[n]
		}
	}
	return nil
}
