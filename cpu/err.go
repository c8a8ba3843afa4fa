package cpu

import (
	"errors"

	"github.com/ezrec/risc16/bus"
	"github.com/ezrec/risc16/isa"
	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("halted"))
	ErrChannelInvalid = errors.New(f("channel invalid"))

	// Instruction errors
	ErrOpcodeInvalid = errors.New(f("unrecognized opcode"))
	ErrRegisterRange = errors.New(f("register out of range"))
	ErrBusFailure    = errors.New(f("bus failure"))
)

// ErrOpcode is an opcode word outside the instruction set.
type ErrOpcode uint16

func (eo ErrOpcode) Error() string {
	return f("bad opcode %d", uint16(eo))
}

func (eo ErrOpcode) Is(err error) bool {
	return err == ErrOpcodeInvalid
}

// ErrRegister is an operand word that does not name a register.
type ErrRegister uint16

func (er ErrRegister) Error() string {
	return f("bad register %d", uint16(er))
}

func (er ErrRegister) Is(err error) bool {
	return err == ErrRegisterRange
}

// ErrBus is a failed bus response.
type ErrBus struct {
	Request  bus.Request
	Response bus.Response
}

func (eb *ErrBus) Error() string {
	return f("%v %d failed with code %d", eb.Request.Kind, eb.Request.Address, eb.Response.Value)
}

func (eb *ErrBus) Is(err error) bool {
	return err == ErrBusFailure
}

// ErrFault records why, and where, the processor halted abnormally.
type ErrFault struct {
	Code  isa.Fault // Halt code.
	Count uint16    // Address of the faulting instruction.
	Err   error
}

func (ef *ErrFault) Error() string {
	return f("fault %d at %d: %v", uint16(ef.Code), ef.Count, ef.Err)
}

func (ef *ErrFault) Unwrap() error {
	return ef.Err
}
