// Package cpu implements the risc16 processor.
//
// The processor owns eight 16-bit registers and nothing else: every memory
// access, including instruction fetch, is a request on bus channel 0. Each
// Tick fetches the opcode at register count, fetches its two operand words,
// advances count by three and applies the instruction. A HLT or any fault
// halts the processor for good; Reset is required before it runs again.
package cpu
