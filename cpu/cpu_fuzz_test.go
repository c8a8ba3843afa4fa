package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/risc16/isa"
)

func FuzzAlu(f *testing.F) {
	for op := isa.OP_ADD; op <= isa.OP_LST; op++ {
		f.Add(uint16(op), uint16(0), uint16(0))
		f.Add(uint16(op), uint16(0xffff), uint16(1))
		f.Add(uint16(op), uint16(0x1234), uint16(0xfedc))
	}

	f.Fuzz(func(t *testing.T, opcode uint16, x uint16, y uint16) {
		assert := assert.New(t)

		op := isa.OP_ADD + isa.Opcode(opcode%6)

		cpu, _ := newTestCpu(uint16(op), uint16(isa.REG_C), uint16(isa.REG_D))
		cpu.Register[isa.REG_C] = x
		cpu.Register[isa.REG_D] = y

		assert.NoError(cpu.Tick())

		sx := uint32(x)
		sy := uint32(y)
		var expected uint16
		switch op {
		case isa.OP_ADD:
			expected = uint16((sx + sy) % 65536)
		case isa.OP_SUB:
			expected = uint16((sx + 65536 - sy) % 65536)
		case isa.OP_XOR:
			expected = x ^ y
		case isa.OP_NOR:
			expected = ^(x | y)
		case isa.OP_AND:
			expected = x & y
		case isa.OP_LST:
			if x < y {
				expected = 1
			}
		}

		assert.Equal(expected, cpu.Register[isa.REG_OUT], "%v %d %d", op, x, y)
		assert.Equal(uint16(3), cpu.Register[isa.REG_COUNT])
		assert.False(cpu.Halted)
	})
}
