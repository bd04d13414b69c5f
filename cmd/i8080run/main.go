// Command i8080run loads a flat 8080 binary and drives it in real time,
// wired to one of a handful of example buses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	i8080 "github.com/user-none/go-chip-8080"
	"github.com/user-none/go-chip-8080/internal/arcade"
	"github.com/user-none/go-chip-8080/internal/cpm"
	"github.com/user-none/go-chip-8080/internal/pacer"
)

func main() {
	var busName string
	var start uint16
	var frames int

	rootCmd := &cobra.Command{
		Use:   "i8080run <binary>",
		Short: "Run a flat 8080 binary paced at the nominal clock rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var mem [i8080.MemSize]byte
			copy(mem[start:], program)

			var bus i8080.Bus
			switch busName {
			case "null":
				bus = i8080.NullBus{}
			case "cpm":
				cpm.Install(&mem)
				bus = cpm.NewBus(os.Stdout)
			case "arcade":
				bus = &arcade.Bus{}
			default:
				return fmt.Errorf("unknown -bus %q (want null, cpm, or arcade)", busName)
			}

			cpu := i8080.NewFromStart(mem, start)
			budget := pacer.FrameBudget{ClockHz: i8080.ClockHz, FrameHz: 60}
			budget.RunRealtime(func() uint8 {
				return cpu.Step(bus)
			}, frames)

			fmt.Printf("ran %d frames, halted=%t, pc=%#04x\n", frames, cpu.Halted(), cpu.PC())
			return nil
		},
	}
	rootCmd.Flags().StringVar(&busName, "bus", "null", "I/O bus to wire: null, cpm, or arcade")
	rootCmd.Flags().Uint16Var(&start, "start", 0, "load/start address")
	rootCmd.Flags().IntVar(&frames, "frames", 60, "number of 60Hz frames to run")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
