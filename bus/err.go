package bus

import (
	"errors"

	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	ErrBusClosed = errors.New(f("bus closed"))
)
