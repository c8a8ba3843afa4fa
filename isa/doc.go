// Package isa holds the contract shared by the risc16 assembler, SCC compiler
// and processor: opcode numbering, register numbering, the memory layout and
// the SCC calling convention.
//
// The machine has eight 16-bit registers (out, count, a-f) and 65536 words of
// memory reached over a request/response bus. Every instruction is an opcode
// word followed by zero (HLT) or two operand words.
package isa
