// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm translates risc16 assembly text into machine words.
//
// Each non-blank line holds one instruction: a mnemonic followed by its
// arguments, separated by whitespace. HLT takes no arguments. Every other
// mnemonic takes two register names, except SET whose second argument is an
// unsigned 16-bit literal. A ';' starts a comment.
//
// Literals may also be equates (predefined from the machine layout, or set
// with '.equ NAME VALUE') and $(...) expressions evaluated at assembly time.
// '.word VALUE' places a literal word in the image.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/risc16/internal"
	"github.com/ezrec/risc16/isa"
)

// Assembler is a single pass assembler for the risc16 machine.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines an equate before any source is parsed.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// Assemble is a convenience wrapper returning the image of source text.
func Assemble(text string) (words []uint16, err error) {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(text))
	if err != nil {
		return
	}

	words = prog.Binary()
	return
}

// LineWords returns the number of machine words a source line assembles to.
// Lines that do not assemble count as a full instruction.
func LineWords(line string) int {
	words := strings.Fields(stripComment(line))
	if len(words) == 0 {
		return 0
	}

	switch words[0] {
	case ".equ":
		return 0
	case ".word":
		return 1
	}

	op, ok := isa.ParseOpcode(words[0])
	if !ok {
		return isa.OP_SET.Width()
	}

	return op.Width()
}

// stripComment removes a trailing ';' comment.
func stripComment(line string) string {
	text, _, _ := strings.Cut(line, ";")
	return text
}

// valueOf returns the value of a literal or equate.
func (asm *Assembler) valueOf(word string) (value uint16, err error) {
	equate, ok := asm.Equate[word]
	if ok {
		word = equate
	}

	v64, err := strconv.ParseUint(word, 10, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint16(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		value16, err := asm.valueOf(str)
		if err != nil {
			continue
		}
		pred[key] = starlark.MakeInt(int(value16))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xffff {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)
	return
}

var parenRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine splits a line into words, expanding $() and handling .equ.
func (asm *Assembler) parseLine(line string) (words []string, err error) {
	line = stripComment(line)

	line = parenRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	// .equ CONST VALUE
	if len(words) > 0 && words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		var value uint16
		value, err = asm.valueOf(words[2])
		if err != nil {
			return
		}
		asm.Equate[words[1]] = fmt.Sprintf("%d", value)
		words = words[:0]
	}

	return
}

// currentIp gets the address of the next word.
func (asm *Assembler) currentIp() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Ip + len(last.Codes)
}

// Parse parses an input stream into a Program. The first error aborts.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	lineno := -1

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]
	asm.Equate = maps.Collect(internal.IterSeq2Concat(isa.Defines(), maps.All(asm.predefine)))

	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		if asm.Verbose {
			log.Printf("asm: %v: %v", lineno, line)
		}

		var words []string
		words, err = asm.parseLine(line)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// parseWords encodes the words of a single line.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	var codes []uint16

	if words[0] == ".word" {
		if len(words) != 2 {
			err = ErrWordSyntax
			return
		}
		var value uint16
		value, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		codes = append(codes, value)
	} else {
		op, ok := isa.ParseOpcode(words[0])
		if !ok {
			err = ErrMnemonic(words[0])
			return
		}

		args := words[1:]
		if len(args) < op.Arity() {
			err = ErrOpcodeValueMissing
			return
		}
		if len(args) > op.Arity() {
			err = ErrOpcodeExtraArgs
			return
		}

		codes = append(codes, uint16(op))
		for n, arg := range args {
			if n == 1 && op.Immediate() {
				var value uint16
				value, err = asm.valueOf(arg)
				if err != nil {
					return
				}
				codes = append(codes, value)
				continue
			}

			reg, ok := isa.ParseRegister(arg)
			if !ok {
				err = ErrRegister(arg)
				return
			}
			codes = append(codes, uint16(reg))
		}
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo: lineno,
		Ip:     asm.currentIp(),
		Words:  words,
		Codes:  codes,
	})

	return
}
