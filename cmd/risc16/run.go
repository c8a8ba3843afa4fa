package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/risc16/asm"
	"github.com/ezrec/risc16/emulator"
	mio "github.com/ezrec/risc16/io"
)

func newRunCmd(stdout io.Writer) *cobra.Command {
	var worker bool

	cmd := &cobra.Command{
		Use:   "run prog.bin",
		Short: "Run a binary image to halt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			data, err := os.ReadFile(input)
			if err != nil {
				return exit(EXIT_IO, err)
			}
			image := asm.Unmarshal(data)

			if worker {
				m := emulator.NewMachine(1)
				m.Verbose = verbose
				m.Reset(image)
				m.Memory.Console.Output = stdout

				err = m.Run()
				if verbose {
					log.Printf("\n%v", m.Cpu[0])
				}
			} else {
				emu := emulator.NewEmulator()
				emu.Verbose = verbose
				emu.Reset(image)
				emu.Memory.Console.Output = stdout

				err = emu.Run()
				if verbose {
					log.Printf("\n%v", emu.Cpu)
				}
			}

			if errors.Is(err, mio.ErrConsoleWrite) {
				return exit(EXIT_IO, err)
			}
			if err != nil {
				return exit(EXIT_FAULT, fmt.Errorf("%v: %w", input, err))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&worker, "worker", "w", false, "Run the processor on a worker")

	return cmd
}

func newDisasmCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "disasm prog.bin",
		Short: "Disassemble a binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return exit(EXIT_IO, err)
			}

			_, err = io.WriteString(stdout, asm.Disassemble(asm.Unmarshal(data)))
			if err != nil {
				return exit(EXIT_IO, err)
			}

			return nil
		},
	}
}
