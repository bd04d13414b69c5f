// Command i8080debug is an interactive single-step 8080 debugger: a
// memory view of the four 16-byte rows starting at the row that holds
// PC, a PC/SP/HALT/register panel (flags are not shown), and a
// space-to-step keybinding.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	i8080 "github.com/user-none/go-chip-8080"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

type model struct {
	cpu    *i8080.CPU
	bus    i8080.Bus
	lastPC uint16
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "s":
			m.lastPC = m.cpu.PC()
			m.cpu.Step(m.bus)
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	mem := m.cpu.Memory()
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := fmt.Sprintf("%02x", mem[addr])
		if addr == m.cpu.PC() {
			b = cursorStyle.Render(b)
		}
		s += b + " "
	}
	return s
}

func (m model) View() string {
	pc := m.cpu.PC()
	page := pc &^ 0x0F

	var pages []string
	for p := 0; p < 4; p++ {
		pages = append(pages, m.renderPage(page+uint16(p)*16))
	}

	status := fmt.Sprintf(
		"PC %#04x (was %#04x)  SP %#04x  HALT %t\nB:%02x C:%02x D:%02x E:%02x H:%02x L:%02x A:%02x",
		pc, m.lastPC, m.cpu.SP(), m.cpu.Halted(),
		m.cpu.Register(i8080.RegB), m.cpu.Register(i8080.RegC), m.cpu.Register(i8080.RegD),
		m.cpu.Register(i8080.RegE), m.cpu.Register(i8080.RegH), m.cpu.Register(i8080.RegL),
		m.cpu.Register(i8080.RegA),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("i8080debug — space/s to step, q to quit"),
		strings.Join(pages, "\n"),
		"",
		status,
	)
}

func main() {
	var start uint16

	rootCmd := &cobra.Command{
		Use:   "i8080debug <binary>",
		Short: "Interactive single-step 8080 debugger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var mem [i8080.MemSize]byte
			copy(mem[start:], program)

			m := model{cpu: i8080.NewFromStart(mem, start), bus: i8080.NullBus{}}
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}
	rootCmd.Flags().Uint16Var(&start, "start", 0, "load/start address")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
