package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/risc16/asm"
	"github.com/ezrec/risc16/cpu"
	"github.com/ezrec/risc16/isa"
	"github.com/ezrec/risc16/scc"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(isa.MEMORY_SIZE, len(emu.Memory.Data))
	assert.Equal(-1, emu.LineNo())
}

func doRunAsm(emu *Emulator, program []string, t *testing.T) (output string, err error) {
	assert := assert.New(t)

	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}
	emu.Program = prog

	emu.Reset(nil)

	console := &bytes.Buffer{}
	emu.Memory.Console.Output = console

	err = emu.Run()
	output = console.String()
	return
}

func TestEmulatorHalt(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Reset([]uint16{uint16(isa.OP_HLT)})

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.True(emu.Halted)
	assert.Equal(isa.FAULT_HALT, emu.Fault)
	assert.Equal([isa.REGISTER_COUNT]uint16{}, emu.Register)
}

func TestEmulatorListing(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"SET a 2",
		"; skip",
		"SET b 1",
		"SUB a b",
		"CPY out a",
		"JNZ a d", // d = 0, loops back to the start
		"HLT",
	}

	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	emu.Program = prog
	emu.Reset(nil)

	// JNZ is taken, so execution returns to the first line.
	for _, lineno := range []int{0, 2, 3, 4, 5, 0} {
		assert.Equal(lineno, emu.LineNo())
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
	}
}

func TestEmulatorConsole(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"SET a 72", // 'H'
		"SET b OUTPUT_DATA",
		"SAV a b",
		"SET c OUTPUT_FLAG",
		"SET d 1",
		"SAV d c",
		"SET a $((ord('i') << 8) | ord('!'))",
		"SAV a b",
		"SET d OUTPUT_PAIR",
		"SAV d c",
		"HLT",
	}

	output, err := doRunAsm(emu, program, t)
	assert.NoError(err)
	assert.Equal("Hi!", output)
	assert.Equal(3, emu.Memory.Console.Written)
	assert.Equal(uint16(0), emu.Memory.Data[isa.OUTPUT_FLAG])
}

func TestEmulatorFault(t *testing.T) {
	tests := map[string]struct {
		image []uint16
		fault isa.Fault
		err   error
	}{
		"opcode":   {[]uint16{3, 2, 9, 12}, isa.FAULT_OPCODE, cpu.ErrOpcodeInvalid},
		"register": {[]uint16{3, 2, 9, 5, 9, 2}, isa.FAULT_REGISTER, cpu.ErrRegisterRange},
		"bus":      {[]uint16{3, 2, 9, 1, 2, 3}, isa.FAULT_BUS, cpu.ErrBusFailure},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			emu := NewEmulator()
			emu.Memory.Capacity = 8
			emu.Reset(test.image)

			err := emu.Run()
			assert.ErrorIs(err, test.err)
			assert.True(emu.Halted)
			assert.Equal(test.fault, emu.Fault)

			// The faulting instruction left the registers alone.
			assert.Equal(uint16(9), emu.Register[isa.REG_A])
			assert.Equal(uint16(3), emu.Register[isa.REG_COUNT])

			var rt *ErrRuntime
			if assert.ErrorAs(err, &rt) {
				assert.Equal(uint16(3), rt.Count)
			}
		})
	}
}

const sccHello = `main =
    72 emit
    105 emit
    halt

emit ASM =
    PNT e b
    SET a 1
    SUB e a
    CPY out e
    SET c OUTPUT_DATA
    SAV b c
    SET c OUTPUT_FLAG
    SET d 1
    SAV d c

halt ASM =
    HLT
`

func TestEmulatorScc(t *testing.T) {
	assert := assert.New(t)

	text, err := scc.Compile(sccHello)
	assert.NoError(err)

	image, err := asm.Assemble(text)
	assert.NoError(err)

	emu := NewEmulator()
	emu.Reset(image)

	console := &bytes.Buffer{}
	emu.Memory.Console.Output = console

	err = emu.Run()
	assert.NoError(err)
	assert.Equal("Hi", console.String())
	assert.Equal(isa.FAULT_HALT, emu.Fault)

	// Both stacks are back where they started.
	assert.Equal(uint16(isa.DATA_STACK), emu.Register[isa.REG_DATA_STACK])
	assert.Equal(uint16(isa.CALL_STACK+1), emu.Register[isa.REG_CALL_STACK])
}

func TestMachine(t *testing.T) {
	assert := assert.New(t)

	text, err := scc.Compile(sccHello)
	assert.NoError(err)

	image, err := asm.Assemble(text)
	assert.NoError(err)

	m := NewMachine(1)
	m.Reset(image)

	console := &bytes.Buffer{}
	m.Memory.Console.Output = console

	err = m.Run()
	assert.NoError(err)
	assert.Equal("Hi", console.String())
	assert.True(m.Cpu[0].Halted)
	assert.Equal(isa.FAULT_HALT, m.Cpu[0].Fault)
}

func TestMachineWorkers(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(4)
	m.Reset([]uint16{3, 2, 1, 0})

	err := m.Run()
	assert.NoError(err)
	for _, c := range m.Cpu {
		assert.True(c.Halted)
		assert.Equal(uint16(1), c.Register[isa.REG_A])
	}
}

func TestMachineFault(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(2)
	m.Memory.Capacity = 16
	m.Reset([]uint16{3, 2, 100, 1, 2, 2})

	err := m.Run()
	assert.ErrorIs(err, cpu.ErrBusFailure)
	for _, c := range m.Cpu {
		assert.True(c.Halted)
		assert.Equal(isa.FAULT_BUS, c.Fault)
	}
}
