// Command i8080diag runs a CP/M-style 8080 diagnostic ROM (TST8080,
// CPUTEST, 8080PRE, 8080EXM and friends) to completion and reports
// whether it signaled success.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	i8080 "github.com/user-none/go-chip-8080"
	"github.com/user-none/go-chip-8080/internal/cpm"
)

func main() {
	var verbose bool
	var maxSteps int

	rootCmd := &cobra.Command{
		Use:   "i8080diag <rom.com>",
		Short: "Run a CP/M-style 8080 diagnostic ROM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := cpm.LoadComImage(args[0])
			if err != nil {
				return fmt.Errorf("loading ROM: %w", err)
			}

			cpu := i8080.NewFromStart(mem, 0x100)
			bus := cpm.NewBus(os.Stdout)

			runErr := cpm.Run(cpu, bus, maxSteps)
			if runErr != nil && verbose {
				fmt.Fprintln(os.Stderr, "\n--- final CPU state ---")
				cpu.Debug(os.Stderr)
				fmt.Fprintln(os.Stderr, cpu.DumpState())
			}
			return runErr
		},
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "dump full CPU state on failure")
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 50_000_000, "abort after this many instructions without completion")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
