package i8080

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugWritesRegisterSnapshot(t *testing.T) {
	c := newCPU(0x3E, 0x42, 0x76) // MVI A,0x42; HLT
	c.run(2)

	var buf bytes.Buffer
	c.Debug(&buf)

	out := buf.String()
	if !strings.Contains(out, "A: 0x42") {
		t.Errorf("Debug output missing A register: %q", out)
	}
	if !strings.Contains(out, "HALT: true") {
		t.Errorf("Debug output missing halt state: %q", out)
	}
}

func TestDumpStateIncludesFullState(t *testing.T) {
	c := newCPU(0x3E, 0x7F) // MVI A,0x7F
	c.run(1)

	dump := c.DumpState()
	for _, want := range []string{"PC:", "SP:", "IE:", "127"} {
		if !strings.Contains(dump, want) {
			t.Errorf("DumpState missing %q in:\n%s", want, dump)
		}
	}
}
