package emulator

import (
	"github.com/ezrec/risc16/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Count  uint16 // Program counter of the failing cycle.
	LineNo int    // Source line, or -1 if unknown.
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo < 0 {
		return f("at %d %v", err.Count, err.Err)
	}
	return f("at %d (line %d) %v", err.Count, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
