// Package scc compiles SCC source into risc16 assembly text.
//
// SCC source is a list of functions. A function starts with a header line at
// the left margin and continues with the indented lines that follow it:
//
//	main =
//	    72 &emit emit
//	emit ASM =
//	    PNT e b
//
// A header is '<name> =' or '<name> SCC =' for a call list, or '<name> ASM ='
// for a body of assembly lines that are copied into the output as is.
//
// A call list is a sequence of whitespace separated tokens. An unsigned
// 16-bit literal pushes itself on the data stack, '&name' pushes the address
// of a function, and any other name calls that function. Every function ends
// by returning through the call stack.
//
// Function addresses are fixed before any code is generated, since the
// length of a function depends only on its kind and tokens. The first
// function declared is the entry point.
package scc
