package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/risc16/asm"
	"github.com/ezrec/risc16/scc"
)

func newSccCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scc in.scc out.asm",
		Short: "Compile SCC source to assembly",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := args[0], args[1]

			inf, err := os.Open(input)
			if err != nil {
				return exit(EXIT_IO, err)
			}
			defer inf.Close()

			cc := scc.NewCompiler()
			cc.Verbose = verbose
			text, err := cc.Compile(inf)
			if err != nil {
				return exit(EXIT_COMPILE, fmt.Errorf("%v: %w", input, err))
			}

			err = os.WriteFile(output, []byte(text), 0o644)
			if err != nil {
				return exit(EXIT_IO, err)
			}

			return nil
		},
	}
}

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile in.asm out.bin",
		Short: "Assemble to a binary image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := args[0], args[1]

			inf, err := os.Open(input)
			if err != nil {
				return exit(EXIT_IO, err)
			}
			defer inf.Close()

			as := &asm.Assembler{Verbose: verbose}
			prog, err := as.Parse(inf)
			if err != nil {
				return exit(EXIT_COMPILE, fmt.Errorf("%v: %w", input, err))
			}

			err = os.WriteFile(output, prog.Marshal(), 0o644)
			if err != nil {
				return exit(EXIT_IO, err)
			}

			return nil
		},
	}
}
