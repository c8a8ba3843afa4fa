package scc

import (
	"errors"

	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrHeaderMalformed = errors.New(f("header malformed"))
	ErrHeaderTag       = errors.New(f("header tag unrecognized"))
	ErrBodyOrphan      = errors.New(f("body has no header"))

	// Symbol errors
	ErrSymbolUndefined = errors.New(f("symbol undefined"))
	ErrSymbolDuplicate = errors.New(f("symbol duplicated"))

	// Layout errors
	ErrProgramTooLarge = errors.New(f("program too large"))
)

// ErrLine locates a parse error. LineNo is 0-based.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// ErrSymbol is a reference from a function to an unknown symbol.
type ErrSymbol struct {
	Function string // Function holding the reference.
	Token    string // Token as written.
}

func (err *ErrSymbol) Error() string {
	return f("%v: '%v' %v", err.Function, err.Token, ErrSymbolUndefined)
}

func (err *ErrSymbol) Is(target error) bool {
	return target == ErrSymbolUndefined
}

// ErrTag is a three word header with an unknown tag.
type ErrTag string

func (err ErrTag) Error() string {
	return f("'%v' is not a header tag", string(err))
}

func (err ErrTag) Is(target error) bool {
	return target == ErrHeaderTag
}
