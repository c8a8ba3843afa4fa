package io

import (
	"errors"
	"io"

	"github.com/ezrec/risc16/isa"
)

// Console is the memory mapped character output device.
//
// When the word at isa.OUTPUT_FLAG is isa.OUTPUT_PAIR, both bytes of the word
// at isa.OUTPUT_DATA are printed, high byte first. Any other nonzero flag
// prints the low byte only. The flag is cleared once the output is taken.
type Console struct {
	Output io.Writer // Destination of printed characters; nil discards them.

	Written int // Characters taken from the device.
}

// Cycle polls the console registers in data.
func (con *Console) Cycle(data []uint16) (err error) {
	if len(data) <= isa.OUTPUT_DATA {
		return
	}

	flag := data[isa.OUTPUT_FLAG]
	if flag == 0 {
		return
	}

	word := data[isa.OUTPUT_DATA]
	var chars []byte
	if flag == isa.OUTPUT_PAIR {
		chars = []byte{byte(word >> 8), byte(word)}
	} else {
		chars = []byte{byte(word)}
	}

	data[isa.OUTPUT_FLAG] = 0

	con.Written += len(chars)
	if con.Output == nil {
		return
	}

	// Each byte is one character of the Latin-1 range.
	var text []rune
	for _, ch := range chars {
		text = append(text, rune(ch))
	}
	_, err = io.WriteString(con.Output, string(text))
	if err != nil {
		err = errors.Join(ErrConsoleWrite, err)
	}

	return
}
