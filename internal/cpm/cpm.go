// Package cpm implements the minimal CP/M BDOS surface that classic 8080
// diagnostic ROMs (TST8080, CPUTEST, 8080PRE, 8080EXM) are built against:
// programs load at 0x0100 and CALL 5 to print, expecting BDOS console
// functions 2 and 9, and signal completion through a warm-boot jump to
// 0x0000.
package cpm

import (
	"fmt"
	"io"
	"os"

	i8080 "github.com/user-none/go-chip-8080"
)

// Install writes the fixed trampoline a CP/M diagnostic ROM expects to
// already exist in low memory: OUT 0,A at the warm-boot vector (0x0000),
// and OUT 1,A; RET at the BDOS entry point (0x0005). The ROM itself never
// provides this code — CP/M's real BDOS would live there instead.
func Install(mem *[i8080.MemSize]byte) {
	mem[0x0000] = 0xD3 // OUT 0,A
	mem[0x0001] = 0x00
	mem[0x0005] = 0xD3 // OUT 1,A
	mem[0x0006] = 0x01
	mem[0x0007] = 0xC9 // RET
}

// LoadComImage reads a flat CP/M .COM file into a fresh memory image at
// the conventional transient program area (0x0100) and installs the BDOS
// trampoline around it.
func LoadComImage(path string) ([i8080.MemSize]byte, error) {
	var mem [i8080.MemSize]byte

	program, err := os.ReadFile(path)
	if err != nil {
		return mem, err
	}
	if len(program) > i8080.MemSize-0x100 {
		return mem, fmt.Errorf("cpm: %s (%d bytes) does not fit below the top of memory", path, len(program))
	}

	copy(mem[0x100:], program)
	Install(&mem)
	return mem, nil
}

// Bus traps the two ports the trampoline in Install routes BDOS calls
// through. Port 0 marks the run as finished (the warm-boot vector a ROM
// jumps to when it is done). Port 1 implements BDOS console functions 2
// (print the character in register E) and 9 (print the '$'-terminated
// string DE points at); every other function code falls through to the
// string form, matching what the diagnostic ROMs in this family actually
// call.
type Bus struct {
	Out  io.Writer
	done bool
}

// NewBus returns a Bus that writes BDOS console output to out.
func NewBus(out io.Writer) *Bus {
	return &Bus{Out: out}
}

func (b *Bus) Read(*i8080.CPU, uint8) uint8 { return 0 }

func (b *Bus) Write(cpu *i8080.CPU, port uint8, data uint8) {
	switch port {
	case 0:
		b.done = true
	case 1:
		b.bdosCall(cpu)
	}
}

func (b *Bus) bdosCall(cpu *i8080.CPU) {
	if cpu.Register(i8080.RegC) == 2 {
		fmt.Fprintf(b.Out, "%c", cpu.Register(i8080.RegE))
		return
	}

	mem := cpu.Memory()
	addr := uint16(cpu.Register(i8080.RegD))<<8 | uint16(cpu.Register(i8080.RegE))
	for mem[addr] != '$' {
		fmt.Fprintf(b.Out, "%c", mem[addr])
		addr++
	}
}

// Done reports whether the ROM has signaled completion via port 0.
func (b *Bus) Done() bool {
	return b.done
}

// Run steps cpu against bus until the ROM signals completion, the CPU
// halts without having signaled completion, or maxSteps instructions
// have executed, whichever comes first. The latter two are reported as
// errors so a stuck or wedged diagnostic ROM cannot hang a caller.
func Run(cpu *i8080.CPU, bus *Bus, maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		cpu.Step(bus)
		if bus.Done() {
			return nil
		}
		if cpu.Halted() {
			return fmt.Errorf("cpm: CPU halted at pc=%#04x before the ROM signaled completion", cpu.PC())
		}
	}
	return fmt.Errorf("cpm: exceeded %d steps without the ROM signaling completion", maxSteps)
}
