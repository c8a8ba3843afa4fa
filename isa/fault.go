package isa

// Fault is the halt code of a processor.
type Fault uint16

//go:generate go tool stringer -linecomment -type=Fault
const (
	FAULT_HALT     = Fault(0) // halt
	FAULT_OPCODE   = Fault(1) // unrecognized opcode
	FAULT_REGISTER = Fault(2) // register out of range
	FAULT_BUS      = Fault(3) // bus failure
)
