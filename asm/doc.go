// Package asm implements the assembler for the Logic-Gate-CPU instruction set.
//
// Every instruction assembles to a single 16-bit word: a 4-bit opcode
// followed by operand fields laid out per opcode. Source lines support
// `;` comments, `#` padding rows, `label:` prefixes, `.equ` equates and
// compile-time `$(...)` expressions. The assembled words form the memory
// image synthesized by package rom.
package asm
