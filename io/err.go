package io

import (
	"errors"

	"github.com/ezrec/risc16/translate"
)

var f = translate.From

var (
	// Console errors
	ErrConsoleWrite = errors.New(f("console write"))
)
