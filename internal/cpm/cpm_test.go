package cpm_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	i8080 "github.com/user-none/go-chip-8080"
	"github.com/user-none/go-chip-8080/internal/cpm"
)

func TestBdosPrintChar(t *testing.T) {
	var mem [i8080.MemSize]byte
	cpm.Install(&mem)

	prog := []byte{
		0x1E, 'A', // MVI E,'A'
		0x0E, 0x02, // MVI C,2
		0xCD, 0x05, 0x00, // CALL 0x0005
		0x76, // HLT
	}
	copy(mem[0x100:], prog)

	cpu := i8080.NewFromStart(mem, 0x100)
	var out bytes.Buffer
	bus := cpm.NewBus(&out)

	// The program only HLTs; it never touches port 0, so Run must report
	// the halt rather than pretend the ROM finished.
	err := cpm.Run(cpu, bus, 100)
	require.Error(t, err)
	assert.Equal(t, "A", out.String())
}

func TestBdosPrintStringAndExit(t *testing.T) {
	var mem [i8080.MemSize]byte
	cpm.Install(&mem)

	const msgAddr = 0x0300
	copy(mem[msgAddr:], []byte("HI$"))

	prog := []byte{
		0x11, byte(msgAddr), byte(msgAddr >> 8), // LXI D,msgAddr
		0x0E, 0x09, // MVI C,9
		0xCD, 0x05, 0x00, // CALL 0x0005
		0xD3, 0x00, // OUT 0,A
		0x76, // HLT
	}
	copy(mem[0x100:], prog)

	cpu := i8080.NewFromStart(mem, 0x100)
	var out bytes.Buffer
	bus := cpm.NewBus(&out)

	require.NoError(t, cpm.Run(cpu, bus, 100))
	assert.Equal(t, "HI", out.String())
	assert.True(t, bus.Done())
}

func TestRunReportsStuckProgram(t *testing.T) {
	var mem [i8080.MemSize]byte
	cpm.Install(&mem)
	mem[0x100] = 0x00 // NOP, forever

	cpu := i8080.NewFromStart(mem, 0x100)
	var out bytes.Buffer
	bus := cpm.NewBus(&out)

	err := cpm.Run(cpu, bus, 10)
	require.Error(t, err)
}
