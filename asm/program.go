package asm

import (
	"encoding/binary"
	"iter"
)

// Opcode is a line of assembled code with its source location.
type Opcode struct {
	LineNo int      // 0-based source line.
	Ip     int      // Address of the first word, relative to the program start.
	Words  []string // Source words.
	Codes  []uint16 // Machine words.
}

// Program is an assembled listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates a word of the program listing.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the listing entry covering ip, if any.
func (prog *Program) Debug(ip uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(ip) >= op.Ip && int(ip) < op.Ip+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(ip) - op.Ip,
			}
			break
		}
	}

	return
}

// Codes iterates over every machine word with its address.
func (prog *Program) Codes() iter.Seq2[uint16, uint16] {
	return func(yield func(ip uint16, code uint16) bool) {
		for _, op := range prog.Opcodes {
			for n, code := range op.Codes {
				if !yield(uint16(op.Ip+n), code) {
					return
				}
			}
		}
	}
}

// Binary returns the program image as words.
func (prog *Program) Binary() (words []uint16) {
	words = []uint16{}
	for _, code := range prog.Codes() {
		words = append(words, code)
	}

	return
}

// Marshal returns the program image as big-endian bytes.
func (prog *Program) Marshal() []byte {
	return Marshal(prog.Binary())
}

// Marshal serializes words most significant byte first.
func Marshal(words []uint16) (data []byte) {
	data = make([]byte, 0, len(words)*2)
	for _, word := range words {
		data = binary.BigEndian.AppendUint16(data, word)
	}

	return
}

// Unmarshal decodes big-endian words. A trailing odd byte is discarded.
func Unmarshal(data []byte) (words []uint16) {
	words = make([]uint16, 0, len(data)/2)
	for n := 0; n+1 < len(data); n += 2 {
		words = append(words, binary.BigEndian.Uint16(data[n:]))
	}

	return
}
