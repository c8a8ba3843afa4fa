package scc

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ezrec/risc16/isa"
)

var tagMap = map[string]Kind{
	KIND_CALLS.String(): KIND_CALLS,
	KIND_ASM.String():   KIND_ASM,
}

// Compiler is the SCC compiler state.
type Compiler struct {
	Verbose bool // If set, verbosely logs the compiler actions.

	Offset    uint16 // Load address of the program image.
	DataStack uint16 // Initial data stack pointer.
	CallStack uint16 // Initial call stack pointer.

	Symbol   map[string]uint16 // Function addresses.
	Function []*Function       // Functions in declaration order.
}

// NewCompiler creates a compiler for the default memory layout.
func NewCompiler() (cc *Compiler) {
	cc = &Compiler{
		Offset:    isa.PROGRAM_OFFSET,
		DataStack: isa.DATA_STACK,
		CallStack: isa.CALL_STACK,
	}

	return
}

// Compile is a convenience wrapper compiling source text with the default
// memory layout.
func Compile(text string) (code string, err error) {
	return NewCompiler().Compile(strings.NewReader(text))
}

// parseHeader parses a function header line.
func parseHeader(line string) (fn *Function, err error) {
	words := strings.Fields(line)

	switch {
	case len(words) == 2 && words[1] == "=":
		fn = &Function{Name: words[0], Kind: KIND_CALLS}
	case len(words) == 3 && words[2] == "=":
		kind, ok := tagMap[words[1]]
		if !ok {
			err = ErrTag(words[1])
			return
		}
		fn = &Function{Name: words[0], Kind: kind}
	default:
		err = ErrHeaderMalformed
	}

	return
}

// Parse reads SCC source into the function list. The first error aborts.
func (cc *Compiler) Parse(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	lineno := -1

	defer func() {
		if err != nil {
			err = &ErrLine{LineNo: lineno, Line: line, Err: err}
		}
	}()

	cc.Function = cc.Function[:0]
	names := map[string]bool{}

	var fn *Function
	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		if strings.TrimSpace(line) == "" {
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if fn == nil {
				err = ErrBodyOrphan
				return
			}
			fn.Lines = append(fn.Lines, strings.TrimSpace(line))
			continue
		}

		fn, err = parseHeader(line)
		if err != nil {
			return
		}
		if names[fn.Name] {
			err = ErrSymbolDuplicate
			return
		}
		names[fn.Name] = true

		fn.LineNo = lineno
		cc.Function = append(cc.Function, fn)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	for _, fn := range cc.Function {
		if fn.Kind != KIND_CALLS {
			continue
		}
		for _, text := range strings.Fields(strings.Join(fn.Lines, "\n")) {
			fn.Tokens = append(fn.Tokens, ParseToken(text))
		}
	}

	return
}

// Resolve assigns every function its address, in declaration order.
func (cc *Compiler) Resolve() (err error) {
	cc.Symbol = make(map[string]uint16, len(cc.Function))

	ip := int(cc.Offset) + isa.PREAMBLE_LENGTH
	for _, fn := range cc.Function {
		if ip+fn.Len() > isa.MEMORY_SIZE {
			err = fmt.Errorf("%w: %v", ErrProgramTooLarge, fn.Name)
			return
		}

		cc.Symbol[fn.Name] = uint16(ip)
		if cc.Verbose {
			log.Printf("scc: %v %v: %d words at %d", fn.Name, fn.Kind, fn.Len(), ip)
		}
		ip += fn.Len()
	}

	return
}

// Generate emits the assembly text of the parsed and resolved functions.
func (cc *Compiler) Generate() (text string, err error) {
	var out strings.Builder

	fmt.Fprintf(&out, "SET %v %d\n", isa.REG_DATA_STACK, cc.DataStack)
	fmt.Fprintf(&out, "SET %v %d\n", isa.REG_CALL_STACK, cc.CallStack)

	for _, fn := range cc.Function {
		var code string
		code, err = fn.Compile(cc.Symbol)
		if err != nil {
			return
		}
		out.WriteString(code)
	}

	text = out.String()
	return
}

// Compile parses, resolves and generates a whole program.
func (cc *Compiler) Compile(input io.Reader) (text string, err error) {
	err = cc.Parse(input)
	if err != nil {
		return
	}

	err = cc.Resolve()
	if err != nil {
		return
	}

	return cc.Generate()
}
