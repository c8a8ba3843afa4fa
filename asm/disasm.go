package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/risc16/isa"
)

// Disassemble returns assembly text for a program image, one line per
// instruction. Words that do not decode to a valid instruction are emitted
// as '.word' directives, so the text assembles back to the same image.
func Disassemble(words []uint16) string {
	var text strings.Builder

	for ip := 0; ip < len(words); {
		op := isa.Opcode(words[ip])
		if !op.Valid() || ip+op.Width() > len(words) {
			fmt.Fprintf(&text, ".word %d\n", words[ip])
			ip++
			continue
		}

		inst := isa.Instruction{Opcode: op}
		copy(inst.Operands[:], words[ip+1:ip+op.Width()])
		if !inst.Valid() {
			fmt.Fprintf(&text, ".word %d\n", words[ip])
			ip++
			continue
		}

		text.WriteString(inst.String())
		text.WriteByte('\n')
		ip += op.Width()
	}

	return text.String()
}
