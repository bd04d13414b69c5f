// Package sst parses the community single-step-test fixture format for
// the 8080 (one JSON file per opcode, each holding a list of randomized
// before/after CPU-state cases) and reports mismatches between an actual
// and expected state.
package sst

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
)

// State is one side (initial or final) of a test case.
type State struct {
	PC, SP                 uint16
	A, B, C, D, E, H, L, F uint8
	RAM                    [][2]int
}

type jsonState struct {
	PC  uint16   `json:"pc"`
	SP  uint16   `json:"sp"`
	A   uint8    `json:"a"`
	B   uint8    `json:"b"`
	C   uint8    `json:"c"`
	D   uint8    `json:"d"`
	E   uint8    `json:"e"`
	H   uint8    `json:"h"`
	L   uint8    `json:"l"`
	F   uint8    `json:"f"`
	RAM [][2]int `json:"ram"`
}

func (s jsonState) toState() State {
	return State{
		PC: s.PC, SP: s.SP,
		A: s.A, B: s.B, C: s.C, D: s.D, E: s.E, H: s.H, L: s.L, F: s.F,
		RAM: s.RAM,
	}
}

// Case is one named before/after scenario from a fixture file.
type Case struct {
	Name    string
	Initial State
	Final   State
}

type jsonCase struct {
	Name    string    `json:"name"`
	Initial jsonState `json:"initial"`
	Final   jsonState `json:"final"`
}

// LoadFile parses one fixture file, which holds every generated case for
// a single opcode.
func LoadFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []jsonCase
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("sst: parsing %s: %w", path, err)
	}

	cases := make([]Case, len(raw))
	for i, jc := range raw {
		cases[i] = Case{Name: jc.Name, Initial: jc.Initial.toState(), Final: jc.Final.toState()}
	}
	return cases, nil
}

// Mismatch is a single field disagreement between an actual and an
// expected State.
type Mismatch struct {
	Field     string
	Got, Want any
}

// Diff compares got against want and returns every field that disagrees.
// RAM is compared against want.RAM's address list only; got.RAM is
// expected to have been built from the same address list by the caller.
func Diff(got, want State) []Mismatch {
	var mismatches []Mismatch
	add := func(field string, g, w any) {
		if g != w {
			mismatches = append(mismatches, Mismatch{field, g, w})
		}
	}

	add("pc", got.PC, want.PC)
	add("sp", got.SP, want.SP)
	add("a", got.A, want.A)
	add("b", got.B, want.B)
	add("c", got.C, want.C)
	add("d", got.D, want.D)
	add("e", got.E, want.E)
	add("h", got.H, want.H)
	add("l", got.L, want.L)
	add("f", got.F, want.F)

	for i, w := range want.RAM {
		if i >= len(got.RAM) || got.RAM[i][1] != w[1] {
			field := fmt.Sprintf("ram[%#04x]", w[0])
			var g any = "(missing)"
			if i < len(got.RAM) {
				g = got.RAM[i][1]
			}
			mismatches = append(mismatches, Mismatch{field, g, w[1]})
		}
	}

	return mismatches
}

// Report renders a structured dump of a failing case: its name, the full
// actual and expected states, and the specific fields that disagreed.
func Report(name string, got, want State, mismatches []Mismatch) string {
	return fmt.Sprintf("case %q:\n%s\n%s",
		name,
		spew.Sdump(struct{ Got, Want State }{got, want}),
		spew.Sdump(mismatches),
	)
}
