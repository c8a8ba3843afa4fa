package isa

import (
	"fmt"
	"iter"
	"maps"
)

// Instruction is a decoded opcode with its operand words.
type Instruction struct {
	Opcode   Opcode
	Operands [2]uint16
}

// MakeInstruction creates a two operand instruction.
func MakeInstruction(op Opcode, arg1, arg2 uint16) Instruction {
	return Instruction{Opcode: op, Operands: [2]uint16{arg1, arg2}}
}

// Words returns the machine words of the instruction.
func (inst Instruction) Words() []uint16 {
	if inst.Opcode.Arity() == 0 {
		return []uint16{uint16(inst.Opcode)}
	}
	return []uint16{uint16(inst.Opcode), inst.Operands[0], inst.Operands[1]}
}

// Valid returns true if the opcode is known and every register operand is
// inside the register file.
func (inst Instruction) Valid() bool {
	if !inst.Opcode.Valid() {
		return false
	}
	if inst.Opcode.Arity() == 0 {
		return true
	}
	if !Register(inst.Operands[0]).Valid() {
		return false
	}
	return inst.Opcode.Immediate() || Register(inst.Operands[1]).Valid()
}

// String returns the assembly text of the instruction.
func (inst Instruction) String() string {
	if inst.Opcode.Arity() == 0 {
		return inst.Opcode.String()
	}

	arg2 := Register(inst.Operands[1]).String()
	if inst.Opcode.Immediate() {
		arg2 = fmt.Sprintf("%d", inst.Operands[1])
	}

	return fmt.Sprintf("%v %v %v", inst.Opcode, Register(inst.Operands[0]), arg2)
}

var _isa_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%d", MEMORY_SIZE),
	"PROGRAM_OFFSET": fmt.Sprintf("%d", PROGRAM_OFFSET),
	"OUTPUT_FLAG":    fmt.Sprintf("%d", OUTPUT_FLAG),
	"OUTPUT_DATA":    fmt.Sprintf("%d", OUTPUT_DATA),
	"OUTPUT_PAIR":    fmt.Sprintf("%d", OUTPUT_PAIR),
	"DATA_STACK":     fmt.Sprintf("%d", DATA_STACK),
	"CALL_STACK":     fmt.Sprintf("%d", CALL_STACK),
}

// Defines returns the layout constants as assembler equates.
func Defines() iter.Seq2[string, string] {
	return maps.All(_isa_defines)
}
