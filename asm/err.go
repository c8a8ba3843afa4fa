package asm

import (
	"errors"

	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrWordSyntax         = errors.New(f(".word syntax"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrNumberInvalid      = errors.New(f("number invalid"))
)

// ErrSyntax locates an assembly error. LineNo is 0-based.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrMnemonic is an unrecognized mnemonic.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("'%v' is not a mnemonic", string(err))
}

func (err ErrMnemonic) Is(target error) bool {
	return target == ErrOpcodeInvalid
}

// ErrRegister is an unrecognized register name.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrRegisterInvalid
}

// ErrParseNumber is a literal that is not an unsigned 16-bit decimal.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrNumberInvalid
}

// ErrParseExpression is a $(...) expression without a 16-bit result.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrNumberInvalid
}
