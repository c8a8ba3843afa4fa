package isa

// Register is a register file index.
type Register uint16

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_OUT   = Register(0) // out
	REG_COUNT = Register(1) // count
	REG_A     = Register(2) // a
	REG_B     = Register(3) // b
	REG_C     = Register(4) // c
	REG_D     = Register(5) // d
	REG_E     = Register(6) // e
	REG_F     = Register(7) // f
)

// REGISTER_COUNT is the size of the register file.
const REGISTER_COUNT = 8

var registerMap map[string]Register

func init() {
	registerMap = make(map[string]Register, REGISTER_COUNT)
	for reg := range Register(REGISTER_COUNT) {
		registerMap[reg.String()] = reg
	}
}

// ParseRegister returns the register index for a register name.
func ParseRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[name]
	return
}

// Valid returns true if the register index is inside the register file.
func (reg Register) Valid() bool {
	return reg < REGISTER_COUNT
}
