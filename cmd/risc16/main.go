// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command risc16 is the risc16 toolchain: SCC compiler, assembler,
// disassembler and emulator.
//
//	risc16 scc [-v] <in.scc> <out.asm>
//	risc16 compile [-v] <in.asm> <out.bin>
//	risc16 run [-v] [--worker] <prog.bin>
//	risc16 disasm <prog.bin>
package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/risc16/translate"
)

// Exit status of each failure class.
const (
	EXIT_OK      = 0
	EXIT_USAGE   = 1
	EXIT_COMPILE = 2
	EXIT_IO      = 3
	EXIT_FAULT   = 4
)

// exitError carries the exit status of a failed command.
type exitError struct {
	code int
	err  error
}

func (err *exitError) Error() string {
	return err.err.Error()
}

func (err *exitError) Unwrap() error {
	return err.err
}

func exit(code int, err error) error {
	return &exitError{code: code, err: err}
}

var verbose bool

var errUsage = errors.New(translate.From("command required"))

func newRootCmd(stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "risc16",
		Short:         "risc16 SCC compiler, assembler and emulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errUsage
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	root.SetOut(stdout)

	root.AddCommand(
		newSccCmd(),
		newCompileCmd(),
		newRunCmd(stdout),
		newDisasmCmd(stdout),
	)

	return root
}

// run executes a command line, returning the process exit status.
func run(args []string, stdout io.Writer) int {
	verbose = false

	if args == nil {
		args = []string{}
	}

	root := newRootCmd(stdout)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return EXIT_OK
	}

	log.Printf("risc16: %v", err)

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return EXIT_USAGE
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
