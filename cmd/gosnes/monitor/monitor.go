// Package monitor is a non-blocking bubbletea debugger that replaces
// gintendo's blocking fmt.Scanf BIOS REPL with the same command set:
// breakpoint, clear, run, step, reset, memory, stack, instruction, PC,
// quit (grounded on hejops-gone's cpu/debugger.go bubbletea Model shape).
package monitor

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/bdwalton/gosnes/emu"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// Model is the bubbletea model driving the monitor. It never blocks on
// input the way gintendo's BIOS() did: commands are typed lines run on
// Enter (q or ctrl+c quits at once), and the emulator takes one CPU step
// per Update message while in run mode, so the UI stays responsive.
type Model struct {
	console *emu.Emu

	breakpoints map[uint16]struct{}
	running     bool
	input       string
	status      string
	lastErr     error
}

func New(console *emu.Emu) Model {
	return Model{console: console, breakpoints: map[uint16]struct{}{}}
}

func (m Model) Init() tea.Cmd { return nil }

type stepMsg struct{}

func stepCmd() tea.Cmd {
	return func() tea.Msg { return stepMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			m.status = m.runCommand(m.input)
			m.input = ""
			if m.running {
				return m, stepCmd()
			}
			return m, nil
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}
	case stepMsg:
		if !m.running {
			return m, nil
		}
		if err := m.console.Cpu.Step(); err != nil {
			m.lastErr = err
			m.running = false
			return m, nil
		}
		if _, hit := m.breakpoints[m.console.Cpu.Regs.PC]; hit {
			m.running = false
			return m, nil
		}
		return m, stepCmd()
	}
	return m, nil
}

// runCommand parses one line of monitor input, mirroring gintendo's BIOS
// letter commands ((B)reak, (C)lear, (R)un, (S)tep, r(E)set, (M)emory,
// s(T)ack, (I)nstruction, (P)C, (Q)uit).
func (m *Model) runCommand(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	switch strings.ToLower(fields[0]) {
	case "b":
		if len(fields) < 2 {
			return "usage: b <addr>"
		}
		addr, err := parseAddr(fields[1])
		if err != nil {
			return err.Error()
		}
		m.breakpoints[addr] = struct{}{}
		return fmt.Sprintf("breakpoint set at %04x", addr)
	case "c":
		m.breakpoints = map[uint16]struct{}{}
		return "breakpoints cleared"
	case "r":
		m.running = true
		return "running"
	case "s":
		if err := m.console.Cpu.Step(); err != nil {
			m.lastErr = err
			return err.Error()
		}
		return m.registerDump()
	case "e":
		m.console.SoftReset()
		return "reset"
	case "m":
		if len(fields) < 3 {
			return "usage: m <low> <high>"
		}
		low, err := parseAddr(fields[1])
		if err != nil {
			return err.Error()
		}
		high, err := parseAddr(fields[2])
		if err != nil {
			return err.Error()
		}
		return m.memoryDump(low, high)
	case "t":
		return m.stackDump()
	case "i":
		return m.registerDump()
	case "p":
		if len(fields) < 2 {
			return "usage: p <addr>"
		}
		addr, err := parseAddr(fields[1])
		if err != nil {
			return err.Error()
		}
		m.console.Cpu.Regs.PC = addr
		return fmt.Sprintf("PC set to %04x", addr)
	case "q":
		return "quit with ctrl+c"
	}
	return "unknown command: " + fields[0]
}

func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", s, err)
	}
	return uint16(v), nil
}

func (m Model) registerDump() string {
	return spew.Sdump(m.console.Cpu.Regs)
}

func (m Model) stackDump() string {
	var b strings.Builder
	for i := 0; i < 3; i++ {
		addr := m.console.Cpu.Regs.StackAddr() + uint16(i)
		fmt.Fprintf(&b, "%04x: %02x\n", addr, m.console.Read(0, addr))
	}
	return b.String()
}

func (m Model) memoryDump(low, high uint16) string {
	var b strings.Builder
	for addr := uint32(low); addr <= uint32(high); addr++ {
		fmt.Fprintf(&b, "%02x ", m.console.Read(0, uint16(addr)))
		if addr%16 == 15 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) View() string {
	reg := fmt.Sprintf("PC:%04x A:%04x X:%04x Y:%04x SP:%04x", m.console.Cpu.Regs.PC,
		m.console.Cpu.Regs.A, m.console.Cpu.Regs.X, m.console.Cpu.Regs.Y, m.console.Cpu.Regs.SP)

	lines := []string{
		headerStyle.Render("gosnes monitor"),
		reg,
		"(b)reak (c)lear (r)un (s)tep r(e)set (m)emory s(t)ack (i)nstruction (p)c (q)uit",
		"> " + m.input,
		m.status,
	}
	if m.lastErr != nil {
		lines = append(lines, "error: "+m.lastErr.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
