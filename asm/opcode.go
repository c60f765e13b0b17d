package asm

import (
	"fmt"

	"github.com/MalachiBurnett/Logic-Gate-CPU/rom"
)

const (
	WORD_BITS   = 16 // Width of an assembled word.
	OPCODE_BITS = 4  // Width of the opcode field.
	REGISTERS   = 16 // Registers r0 through r15.
)

// Opcode is an instruction mnemonic. Its value is the documented opcode.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP = Opcode(0x00) // NOP
	OP_ADD = Opcode(0x01) // ADD
	OP_SUB = Opcode(0x02) // SUB
	OP_XOR = Opcode(0x03) // XOR
	OP_AND = Opcode(0x04) // AND
	OP_OR  = Opcode(0x05) // OR
	OP_NAD = Opcode(0x06) // NAD
	OP_NOR = Opcode(0x07) // NOR
	OP_BSL = Opcode(0x08) // BSL
	OP_BSR = Opcode(0x09) // BSR
	OP_XNR = Opcode(0x0a) // XNR
	OP_SET = Opcode(0x0b) // SET
	OP_MOV = Opcode(0x0c) // MOV
	OP_JMP = Opcode(0x0d) // JMP
	OP_BRH = Opcode(0x0e) // BRH
	OP_HLT = Opcode(0x0f) // HLT
	OP_EQL = Opcode(0x10) // EQL
	OP_GTT = Opcode(0x11) // GTT
	OP_LST = Opcode(0x12) // LST
	OP_CMP = Opcode(0x13) // CMP
)

// FieldKind is the kind of an operand field.
type FieldKind int

const (
	FIELD_ZERO      = FieldKind(0) // Padding, always zero.
	FIELD_REGISTER  = FieldKind(1) // rN register index.
	FIELD_IMMEDIATE = FieldKind(2) // Literal value.
	FIELD_ADDRESS   = FieldKind(3) // Row address or label.
	FIELD_FLAG      = FieldKind(4) // Branch flag selector.
	FIELD_DIRECTION = FieldKind(5) // Jump direction bit.
)

// Field is one operand field, most significant first.
type Field struct {
	Kind  FieldKind
	Width int
}

// Layout is the encoding of an opcode.
type Layout struct {
	Emit   uint16  // Opcode field value written to the word.
	Fields []Field // Fields after the opcode, filling the rest of the word.
}

var (
	fieldsNone   = []Field{{FIELD_ZERO, 12}}
	fieldsRRR    = []Field{{FIELD_REGISTER, 4}, {FIELD_REGISTER, 4}, {FIELD_REGISTER, 4}}
	fieldsRR     = []Field{{FIELD_REGISTER, 4}, {FIELD_REGISTER, 4}, {FIELD_ZERO, 4}}
	fieldsIR     = []Field{{FIELD_IMMEDIATE, 4}, {FIELD_REGISTER, 4}, {FIELD_ZERO, 4}}
	fieldsJump   = []Field{{FIELD_ADDRESS, 8}, {FIELD_DIRECTION, 1}, {FIELD_ZERO, 3}}
	fieldsBranch = []Field{{FIELD_ADDRESS, 8}, {FIELD_FLAG, 2}, {FIELD_DIRECTION, 1}, {FIELD_ZERO, 1}}
)

// layouts is the encoding table. The comparison opcodes have documented
// values that do not fit the opcode field; they are emitted as AND (EQL)
// and SUB (GTT, LST, CMP) and flagged when assembled.
var layouts = map[Opcode]Layout{
	OP_NOP: {0x0, fieldsNone},
	OP_ADD: {0x1, fieldsRRR},
	OP_SUB: {0x2, fieldsRRR},
	OP_XOR: {0x3, fieldsRRR},
	OP_AND: {0x4, fieldsRRR},
	OP_OR:  {0x5, fieldsRRR},
	OP_NAD: {0x6, fieldsRRR},
	OP_NOR: {0x7, fieldsRRR},
	OP_BSL: {0x8, fieldsRRR},
	OP_BSR: {0x9, fieldsRRR},
	OP_XNR: {0xa, fieldsRRR},
	OP_SET: {0xb, fieldsIR},
	OP_MOV: {0xc, fieldsRR},
	OP_JMP: {0xd, fieldsJump},
	OP_BRH: {0xe, fieldsBranch},
	OP_HLT: {0xf, fieldsNone},
	OP_EQL: {0x4, fieldsRR},
	OP_GTT: {0x2, fieldsRR},
	OP_LST: {0x2, fieldsRR},
	OP_CMP: {0x2, fieldsRR},
}

// mnemonics maps upper case mnemonics to opcodes.
var mnemonics = map[string]Opcode{}

func init() {
	for op := range layouts {
		mnemonics[op.String()] = op
	}
}

// Layout returns the encoding of the opcode.
func (op Opcode) Layout() (layout Layout, ok bool) {
	layout, ok = layouts[op]
	return
}

// Collides returns true if the opcode is emitted with a value other than
// its documented one.
func (op Opcode) Collides() bool {
	layout, ok := layouts[op]
	return ok && uint16(op) != layout.Emit
}

// Operands returns the fields that take an operand.
func (layout Layout) Operands() (fields []Field) {
	for _, field := range layout.Fields {
		if field.Kind != FIELD_ZERO {
			fields = append(fields, field)
		}
	}
	return
}

// Instruction is a decoded instruction with one value per operand field.
type Instruction struct {
	Op       Opcode
	Operands []uint64
}

// Encode packs the instruction into a word.
func (ins Instruction) Encode() (word rom.Word, err error) {
	layout, ok := layouts[ins.Op]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	pos := WORD_BITS - OPCODE_BITS
	code := uint64(layout.Emit) << pos
	n := 0
	for _, field := range layout.Fields {
		pos -= field.Width
		if field.Kind == FIELD_ZERO {
			continue
		}
		if n >= len(ins.Operands) {
			err = ErrOpcodeValueMissing
			return
		}
		value := ins.Operands[n]
		n++
		if value >= 1<<field.Width {
			err = &ErrOperandRange{Value: value, Width: field.Width}
			return
		}
		code |= value << pos
	}
	if n < len(ins.Operands) {
		err = ErrOpcodeExtraArgs
		return
	}

	word = rom.Word(fmt.Sprintf("%0*b", WORD_BITS, code))
	return
}

// String returns the assembly form of the instruction.
func (ins Instruction) String() (out string) {
	layout, ok := layouts[ins.Op]
	if !ok {
		return ins.Op.String()
	}

	out = ins.Op.String()
	for n, field := range layout.Operands() {
		if n >= len(ins.Operands) {
			break
		}
		if field.Kind == FIELD_REGISTER {
			out += fmt.Sprintf(" r%d", ins.Operands[n])
		} else {
			out += fmt.Sprintf(" %d", ins.Operands[n])
		}
	}
	return
}
