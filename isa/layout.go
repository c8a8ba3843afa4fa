package isa

// Memory layout.
const (
	WORD_BITS      = 16    // Width of a machine word.
	MEMORY_SIZE    = 65536 // Words of addressable memory.
	PROGRAM_OFFSET = 0     // Load address of the program image.

	OUTPUT_FLAG = 8080 // Console flag; nonzero when a character is ready.
	OUTPUT_DATA = 8081 // Console data word.
	OUTPUT_PAIR = 2    // Flag value announcing two characters in OUTPUT_DATA.

	DATA_STACK = 8000  // Initial data stack pointer (register e).
	CALL_STACK = 16000 // Initial call stack pointer (register f).
)

// SCC calling convention.
//
// The data stack pointer addresses the top value; pushes pre-increment. The
// call stack pointer addresses the next free slot; calls post-increment.
const (
	REG_DATA_STACK = REG_E // Data stack pointer register.
	REG_CALL_STACK = REG_F // Call stack pointer register.
	REG_SCRATCH    = REG_A // Register clobbered by every SCC template.

	PREAMBLE_LENGTH = 6  // Words of the stack pointer setup before the first function.
	PUSH_LENGTH     = 15 // Words pushing one value to the data stack.
	CALL_LENGTH     = 21 // Words of one call sequence.
	EPILOGUE_LENGTH = 12 // Words returning from a function.

	// CALL_RETURN_OFFSET is the distance from the ADD that computes the
	// return address to the end of the call sequence.
	CALL_RETURN_OFFSET = 18
)
