// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives risc16 processors against the memory peripheral.
//
// Emulator steps a single processor synchronously: each Tick runs one
// processor cycle and then one peripheral cycle. Machine runs processors on
// their own goroutines, sharing one memory owned by a bus server.
package emulator

import (
	"log"

	"github.com/ezrec/risc16/asm"
	"github.com/ezrec/risc16/bus"
	"github.com/ezrec/risc16/cpu"
	"github.com/ezrec/risc16/io"
	"github.com/ezrec/risc16/isa"
)

// Emulator state. CPU + memory over a direct bus.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *asm.Program // Listing of the running program, if known.

	Memory *io.Memory // Memory peripheral.

	bus *bus.Direct
}

// NewEmulator creates a new emulator with a full size memory.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Memory: io.NewMemory(),
	}

	emu.bus = bus.NewDirect(emu.Memory)
	emu.Cpu = cpu.NewCpu(emu.bus)

	return
}

// Reset clears memory, loads a program image at isa.PROGRAM_OFFSET and
// resets the processor. A nil image loads the Program listing.
func (emu *Emulator) Reset(image []uint16) {
	if image == nil && emu.Program != nil {
		image = emu.Program.Binary()
	}

	emu.Memory.Verbose = emu.Verbose
	emu.Memory.Rewind()
	emu.Memory.Console.Written = 0
	emu.Memory.LoadImage(isa.PROGRAM_OFFSET, image)

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	if emu.Verbose {
		log.Printf("emulator: loaded %d words", len(image))
	}
}

// Count returns the current program counter.
func (emu *Emulator) Count() uint16 {
	return emu.Cpu.Register[isa.REG_COUNT]
}

// LineNo returns the source line of the instruction at the program counter,
// or -1 when there is no listing for it.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return -1
	}

	dbg := emu.Program.Debug(emu.Count() - isa.PROGRAM_OFFSET)
	if dbg.Opcode == nil {
		return -1
	}

	return dbg.LineNo
}

// Tick performs a single cycle of the emulator. done is set once the
// processor has halted, normally or by a fault.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	count := emu.Count()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Count: count, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	done = emu.Cpu.Halted
	if err != nil {
		return
	}

	err = emu.bus.Tick()
	return
}

// Run ticks the emulator until the processor halts.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %d ticks, %d characters", emu.Cpu.Ticks, emu.Memory.Console.Written)
	}

	return
}
