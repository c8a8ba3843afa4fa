// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Opcode is an instruction opcode word.
type Opcode uint16

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT = Opcode(0)  // HLT
	OP_PNT = Opcode(1)  // PNT
	OP_SAV = Opcode(2)  // SAV
	OP_SET = Opcode(3)  // SET
	OP_CPY = Opcode(4)  // CPY
	OP_ADD = Opcode(5)  // ADD
	OP_SUB = Opcode(6)  // SUB
	OP_XOR = Opcode(7)  // XOR
	OP_NOR = Opcode(8)  // NOR
	OP_AND = Opcode(9)  // AND
	OP_LST = Opcode(10) // LST
	OP_JNZ = Opcode(11) // JNZ
)

// OPCODE_COUNT is the number of defined opcodes.
const OPCODE_COUNT = 12

var opcodeMap map[string]Opcode

func init() {
	opcodeMap = make(map[string]Opcode, OPCODE_COUNT)
	for op := range Opcode(OPCODE_COUNT) {
		opcodeMap[op.String()] = op
	}
}

// ParseOpcode returns the opcode for a mnemonic.
func ParseOpcode(mnemonic string) (op Opcode, ok bool) {
	op, ok = opcodeMap[mnemonic]
	return
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	return op < OPCODE_COUNT
}

// Arity returns the number of operand words following the opcode.
func (op Opcode) Arity() int {
	if op == OP_HLT {
		return 0
	}
	return 2
}

// Width returns the total words of an instruction with this opcode.
func (op Opcode) Width() int {
	return 1 + op.Arity()
}

// Immediate returns true if the second operand is a literal, not a register.
func (op Opcode) Immediate() bool {
	return op == OP_SET
}
