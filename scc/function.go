package scc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/risc16/asm"
	"github.com/ezrec/risc16/isa"
)

// Kind is the body kind of a function.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind,TokenKind
const (
	KIND_CALLS = Kind(iota) // SCC
	KIND_ASM                // ASM
)

// TokenKind is the kind of a call list token.
type TokenKind int

const (
	TOKEN_LITERAL = TokenKind(iota) // literal
	TOKEN_ADDRESS                   // address
	TOKEN_CALL                      // call
)

// Token is a single call list entry.
type Token struct {
	Kind  TokenKind
	Text  string // Token as written.
	Value uint16 // Literal value, for TOKEN_LITERAL.
}

// Name returns the symbol a token refers to.
func (tok Token) Name() string {
	if tok.Kind == TOKEN_ADDRESS {
		return tok.Text[1:]
	}
	return tok.Text
}

// Len returns the words the token compiles to.
func (tok Token) Len() int {
	if tok.Kind == TOKEN_CALL {
		return isa.CALL_LENGTH
	}
	return isa.PUSH_LENGTH
}

// ParseToken classifies a call list token.
func ParseToken(text string) (tok Token) {
	tok.Text = text

	value, err := strconv.ParseUint(text, 10, 16)
	switch {
	case err == nil:
		tok.Kind = TOKEN_LITERAL
		tok.Value = uint16(value)
	case strings.HasPrefix(text, "&"):
		tok.Kind = TOKEN_ADDRESS
	default:
		tok.Kind = TOKEN_CALL
	}

	return
}

// Function is a parsed SCC function.
type Function struct {
	Name   string
	Kind   Kind
	LineNo int      // 0-based line of the header.
	Lines  []string // Body lines, trimmed.
	Tokens []Token  // Call list, for KIND_CALLS.
}

// Len returns the words the function compiles to, epilogue included.
func (fn *Function) Len() (words int) {
	switch fn.Kind {
	case KIND_ASM:
		for _, line := range fn.Lines {
			words += asm.LineWords(line)
		}
	default:
		for _, tok := range fn.Tokens {
			words += tok.Len()
		}
	}

	words += isa.EPILOGUE_LENGTH
	return
}

// Compile returns the assembly text of the function, resolving references
// through the symbol table.
func (fn *Function) Compile(symbol map[string]uint16) (text string, err error) {
	var out strings.Builder

	switch fn.Kind {
	case KIND_ASM:
		for _, line := range fn.Lines {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	default:
		for _, tok := range fn.Tokens {
			switch tok.Kind {
			case TOKEN_LITERAL:
				writePush(&out, tok.Value)
			default:
				addr, ok := symbol[tok.Name()]
				if !ok {
					err = &ErrSymbol{Function: fn.Name, Token: tok.Text}
					return
				}
				if tok.Kind == TOKEN_ADDRESS {
					writePush(&out, addr)
				} else {
					writeCall(&out, addr)
				}
			}
		}
	}

	writeEpilogue(&out)

	text = out.String()
	return
}

// writePush pushes value on the data stack.
func writePush(out *strings.Builder, value uint16) {
	fmt.Fprintf(out, "SET %v 1\n", isa.REG_SCRATCH)
	fmt.Fprintf(out, "ADD %v %v\n", isa.REG_SCRATCH, isa.REG_DATA_STACK)
	fmt.Fprintf(out, "CPY %v %v\n", isa.REG_OUT, isa.REG_DATA_STACK)
	fmt.Fprintf(out, "SET %v %d\n", isa.REG_SCRATCH, value)
	fmt.Fprintf(out, "SAV %v %v\n", isa.REG_SCRATCH, isa.REG_DATA_STACK)
}

// writeCall saves the return address on the call stack and jumps to addr.
// count has already moved past the ADD when it adds the offset.
func writeCall(out *strings.Builder, addr uint16) {
	offset := isa.CALL_RETURN_OFFSET - isa.OP_ADD.Width()
	fmt.Fprintf(out, "SET %v %d\n", isa.REG_SCRATCH, offset)
	fmt.Fprintf(out, "ADD %v %v\n", isa.REG_COUNT, isa.REG_SCRATCH)
	fmt.Fprintf(out, "SAV %v %v\n", isa.REG_OUT, isa.REG_CALL_STACK)
	fmt.Fprintf(out, "SET %v 1\n", isa.REG_SCRATCH)
	fmt.Fprintf(out, "ADD %v %v\n", isa.REG_SCRATCH, isa.REG_CALL_STACK)
	fmt.Fprintf(out, "CPY %v %v\n", isa.REG_OUT, isa.REG_CALL_STACK)
	fmt.Fprintf(out, "SET %v %d\n", isa.REG_COUNT, addr)
}

// writeEpilogue pops the return address and jumps to it.
func writeEpilogue(out *strings.Builder) {
	fmt.Fprintf(out, "SET %v 1\n", isa.REG_SCRATCH)
	fmt.Fprintf(out, "SUB %v %v\n", isa.REG_CALL_STACK, isa.REG_SCRATCH)
	fmt.Fprintf(out, "CPY %v %v\n", isa.REG_OUT, isa.REG_CALL_STACK)
	fmt.Fprintf(out, "PNT %v %v\n", isa.REG_CALL_STACK, isa.REG_COUNT)
}
