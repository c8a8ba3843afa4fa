// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/risc16/bus"
	"github.com/ezrec/risc16/isa"
)

const (
	CHANNEL_COUNT  = 8 // Bus channels a processor can hold.
	CHANNEL_MEMORY = 0 // Channel of every memory access.
)

// Cpu is the simulation context of a single processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [isa.REGISTER_COUNT]uint16 // Register file.
	Halted   bool                       // Set once HLT runs or a fault occurs.
	Fault    isa.Fault                  // Halt code, valid once Halted.

	Ticks int // Instructions executed since Reset.

	channel [CHANNEL_COUNT]bus.Bus // Bus channels.
}

// NewCpu creates a processor with memory attached on CHANNEL_MEMORY.
func NewCpu(memory bus.Bus) (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.SetChannel(CHANNEL_MEMORY, memory)
	return
}

// SetChannel attaches a bus to a channel index. A nil bus detaches it.
func (cpu *Cpu) SetChannel(index int, channel bus.Bus) {
	cpu.channel[index] = channel
}

// GetChannel gets the bus attached to a channel index.
func (cpu *Cpu) GetChannel(index int) (channel bus.Bus, err error) {
	if index < 0 || index >= len(cpu.channel) || cpu.channel[index] == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel[index]
	return
}

// Reset clears the registers and returns the processor to the running state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Halted = false
	cpu.Fault = isa.FAULT_HALT
	cpu.Ticks = 0
}

// String returns the current register file as a string.
func (cpu *Cpu) String() (text string) {
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %5d (0x%04X)\n", isa.Register(n), val, val)
	}
	if cpu.Halted {
		text += fmt.Sprintf("% 5s: %v\n", "halt", cpu.Fault)
	}

	return
}

// halt stops the processor with a fault code.
func (cpu *Cpu) halt(code isa.Fault, count uint16, err error) error {
	cpu.Halted = true
	cpu.Fault = code

	if code == isa.FAULT_HALT {
		if cpu.Verbose {
			log.Printf("cpu: halt at %d", count)
		}
		return nil
	}

	err = &ErrFault{Code: code, Count: count, Err: err}
	if cpu.Verbose {
		log.Printf("cpu: %v", err)
	}

	return err
}

// faultOf maps an instruction error to its halt code.
func faultOf(err error) isa.Fault {
	switch {
	case errors.Is(err, ErrOpcodeInvalid):
		return isa.FAULT_OPCODE
	case errors.Is(err, ErrRegisterRange):
		return isa.FAULT_REGISTER
	}
	return isa.FAULT_BUS
}

// load reads one word over the memory channel.
func load(mem bus.Bus, address uint16) (value uint16, err error) {
	req := bus.Load(address)
	resp := mem.Query(req)
	if resp.Status != bus.STATUS_DATA {
		err = &ErrBus{Request: req, Response: resp}
		return
	}

	value = resp.Value
	return
}

// Tick executes a single instruction cycle. A cycle that halts the processor
// normally returns nil; a faulting cycle returns an *ErrFault.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		return ErrHalted
	}

	count := cpu.Register[isa.REG_COUNT]

	mem, err := cpu.GetChannel(CHANNEL_MEMORY)
	if err != nil {
		return cpu.halt(isa.FAULT_BUS, count, errors.Join(ErrBusFailure, err))
	}

	word, err := load(mem, count)
	if err != nil {
		return cpu.halt(isa.FAULT_BUS, count, err)
	}

	op := isa.Opcode(word)
	switch {
	case op == isa.OP_HLT:
		cpu.Ticks++
		return cpu.halt(isa.FAULT_HALT, count, nil)
	case !op.Valid():
		return cpu.halt(isa.FAULT_OPCODE, count, ErrOpcode(word))
	}

	var args [2]uint16
	for n := range args {
		args[n], err = load(mem, count+1+uint16(n))
		if err != nil {
			return cpu.halt(isa.FAULT_BUS, count, err)
		}
	}

	inst := isa.Instruction{Opcode: op, Operands: args}
	if cpu.Verbose {
		log.Printf("%05d: %v", count, inst)
	}

	regs, err := cpu.Execute(mem, inst)
	if err != nil {
		return cpu.halt(faultOf(err), count, err)
	}

	cpu.Register = regs
	cpu.Ticks++

	return
}

// Execute applies a decoded instruction to a copy of the register file and
// returns the copy. The processor's own registers are left untouched, so a
// failed instruction has no effect on them.
func (cpu *Cpu) Execute(mem bus.Bus, inst isa.Instruction) (regs [isa.REGISTER_COUNT]uint16, err error) {
	regs = cpu.Register

	// count moves past the instruction before it takes effect.
	regs[isa.REG_COUNT] += uint16(inst.Opcode.Width())

	r1 := isa.Register(inst.Operands[0])
	if !r1.Valid() {
		err = ErrRegister(r1)
		return
	}

	if inst.Opcode == isa.OP_SET {
		regs[r1] = inst.Operands[1]
		return
	}

	r2 := isa.Register(inst.Operands[1])
	if !r2.Valid() {
		err = ErrRegister(r2)
		return
	}

	a := regs[r1]
	b := regs[r2]

	switch inst.Opcode {
	case isa.OP_PNT:
		regs[r2], err = load(mem, a)
	case isa.OP_SAV:
		req := bus.Store(a, b)
		resp := mem.Query(req)
		if resp.Status != bus.STATUS_ACK {
			err = &ErrBus{Request: req, Response: resp}
		}
	case isa.OP_CPY:
		regs[r2] = a
	case isa.OP_ADD:
		regs[isa.REG_OUT] = a + b
	case isa.OP_SUB:
		regs[isa.REG_OUT] = a - b
	case isa.OP_XOR:
		regs[isa.REG_OUT] = a ^ b
	case isa.OP_NOR:
		regs[isa.REG_OUT] = ^(a | b)
	case isa.OP_AND:
		regs[isa.REG_OUT] = a & b
	case isa.OP_LST:
		regs[isa.REG_OUT] = 0
		if a < b {
			regs[isa.REG_OUT] = 1
		}
	case isa.OP_JNZ:
		if a != 0 {
			regs[isa.REG_COUNT] = b
		}
	default:
		err = ErrOpcode(inst.Opcode)
	}

	return
}
