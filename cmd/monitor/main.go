// Command monitor is an interactive terminal debugger for the nes6502 core:
// a disassembly listing, CPU/flags/stack/memory panes, breakpoints, and
// single-step/run control, built the way the wider 6502-in-Go ecosystem
// builds these (a Bubble Tea program over bubbles/lipgloss) rather than a
// windowed GUI — no pixels are drawn here, only register and memory state.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brindlefield/nes6502/nes"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM file")
	startPC := flag.String("pc", "", "force PC to this hex address instead of the reset vector (e.g. C000)")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "usage: monitor -rom <path> [-pc C000]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open %v: %v\n", *romPath, err)
		os.Exit(1)
	}

	emu, err := nes.New(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load cartridge: %v\n", err)
		os.Exit(1)
	}

	if *startPC != "" {
		pc, perr := strconv.ParseUint(strings.TrimPrefix(*startPC, "$"), 16, 16)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "bad -pc value %q: %v\n", *startPC, perr)
			os.Exit(1)
		}
		emu.SetPC(uint16(pc))
	}

	if _, err := tea.NewProgram(newModel(emu)).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "monitor exited: %v\n", err)
		os.Exit(1)
	}
}

type stepTick struct{}

func doStep() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(time.Time) tea.Msg { return stepTick{} })
}

type regSnapshot struct {
	a, x, y, sp byte
	p           nes.Flags
	pc          uint16
}

type model struct {
	emu *nes.Emulator

	locations []nes.DisasmLine
	locIndex  int

	breakpoints map[uint16]bool
	last        regSnapshot
	stepErr     error

	memAddr    uint16
	activePane string // "disasm" or "memory"

	gotoInput   textinput.Model
	showingGoto bool
}

func newModel(emu *nes.Emulator) model {
	ti := textinput.New()
	ti.Placeholder = "hex address, e.g. 8000"
	ti.CharLimit = 4
	ti.Width = 8

	m := model{
		emu:         emu,
		breakpoints: make(map[uint16]bool),
		activePane:  "disasm",
		gotoInput:   ti,
	}
	m.disassembleAround(emu.CPU().PC)
	m.last = m.snapshot()
	return m
}

func (m model) snapshot() regSnapshot {
	cpu := m.emu.CPU()
	return regSnapshot{cpu.A, cpu.X, cpu.Y, cpu.SP, cpu.P, cpu.PC}
}

// disassembleAround rebuilds the listing as a contiguous run of instructions
// starting at addr, stopping once the 16-bit address space wraps. Static
// linear disassembly over code+data mixed ROMs can desync at data bytes —
// the same limitation the teacher's own Disassemble map-builder has.
func (m *model) disassembleAround(addr uint16) {
	const maxLines = 4096
	lines := make([]nes.DisasmLine, 0, maxLines)
	cur := addr
	for i := 0; i < maxLines; i++ {
		line := m.emu.Disassemble(cur, 1)[0]
		lines = append(lines, line)
		next := cur + uint16(line.Length)
		if next < cur { // wrapped past 0xFFFF
			break
		}
		cur = next
	}
	m.locations = lines
	m.relocate()
}

func (m *model) relocate() {
	pc := m.emu.CPU().PC
	for i, l := range m.locations {
		if l.Addr == pc {
			m.locIndex = i
			return
		}
	}
	m.locIndex = 0
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepTick:
		if m.breakpoints[m.emu.CPU().PC] {
			return m, nil
		}
		m.doOneStep()
		return m, doStep()

	case tea.KeyMsg:
		if m.showingGoto {
			switch msg.Type {
			case tea.KeyEnter:
				if addr, err := strconv.ParseUint(m.gotoInput.Value(), 16, 16); err == nil {
					m.memAddr = uint16(addr)
				}
				m.showingGoto = false
				return m, nil
			case tea.KeyEsc:
				m.showingGoto = false
				return m, nil
			}
			var cmd tea.Cmd
			m.gotoInput, cmd = m.gotoInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s", " ":
			m.doOneStep()
		case "r":
			return m, doStep()
		case "b":
			if m.locIndex < len(m.locations) {
				addr := m.locations[m.locIndex].Addr
				if m.breakpoints[addr] {
					delete(m.breakpoints, addr)
				} else {
					m.breakpoints[addr] = true
				}
			}
		case "g":
			m.showingGoto = true
			m.gotoInput.Focus()
			return m, textinput.Blink
		case "tab":
			if m.activePane == "disasm" {
				m.activePane = "memory"
			} else {
				m.activePane = "disasm"
			}
		case "up":
			if m.activePane == "disasm" {
				if m.locIndex > 0 {
					m.locIndex--
				}
			} else if m.memAddr >= 8 {
				m.memAddr -= 8
			}
		case "down":
			if m.activePane == "disasm" {
				if m.locIndex < len(m.locations)-1 {
					m.locIndex++
				}
			} else if m.memAddr <= 0xFFF7 {
				m.memAddr += 8
			}
		}
	}
	return m, nil
}

func (m *model) doOneStep() {
	m.last = m.snapshot()
	_, err := m.emu.Step()
	m.stepErr = err
	m.disassembleAround(m.emu.CPU().PC)
}

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	changed   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}

	helpStyle = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1).
			Width(34)

	stackPanelStyle = panelStyle.BorderForeground(special)

	disasmStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1).
			Width(42)

	currentLineStyle   = lipgloss.NewStyle().Background(highlight).Foreground(lipgloss.Color("#ffffff"))
	selectedLineStyle  = lipgloss.NewStyle().Foreground(highlight)
	breakpointStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	changedValueStyle  = lipgloss.NewStyle().Foreground(changed).Bold(true)
)

func (m model) fmtReg8(name string, cur, prev byte) string {
	s := fmt.Sprintf("%s:%02X", name, cur)
	if cur != prev {
		return changedValueStyle.Render(s)
	}
	return s
}

func (m model) fmtFlags() string {
	p := m.emu.CPU().P
	names := []struct {
		label string
		bit   nes.Flags
	}{
		{"N", nes.FlagNegative}, {"V", nes.FlagOverflow}, {"U", nes.FlagUnused},
		{"B", nes.FlagBreak}, {"D", nes.FlagDecimal}, {"I", nes.FlagInterrupt},
		{"Z", nes.FlagZero}, {"C", nes.FlagCarry},
	}
	var sb strings.Builder
	for _, n := range names {
		set := p.Contains(n.bit)
		prevSet := m.last.p.Contains(n.bit)
		label := "-"
		if set {
			label = n.label
		}
		if set != prevSet {
			sb.WriteString(changedValueStyle.Render(label) + " ")
		} else {
			sb.WriteString(label + " ")
		}
	}
	return sb.String()
}

func (m model) disasmView() string {
	const window = 18
	start := m.locIndex - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(m.locations) {
		end = len(m.locations)
	}

	var sb strings.Builder
	pc := m.emu.CPU().PC
	for i := start; i < end; i++ {
		l := m.locations[i]
		line := fmt.Sprintf("%02X %s", l.Opcode, l.Text)
		switch {
		case m.breakpoints[l.Addr] && l.Addr == pc:
			line = currentLineStyle.Render("● " + line)
		case m.breakpoints[l.Addr]:
			line = breakpointStyle.Render("● " + line)
		case l.Addr == pc:
			line = currentLineStyle.Render("  " + line)
		case i == m.locIndex:
			line = selectedLineStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m model) stackView() string {
	cpu := m.emu.CPU()
	var sb strings.Builder
	const maxRows = 12
	for i, shown := uint16(0xFF), 0; i > uint16(cpu.SP) && shown < maxRows; i, shown = i-1, shown+1 {
		sb.WriteString(fmt.Sprintf("$01%02X: %02X\n", i, m.emu.Read(0x0100+i)))
	}
	return sb.String()
}

func (m model) memoryView() string {
	var sb strings.Builder
	addr := m.memAddr
	for row := 0; row < 8; row++ {
		sb.WriteString(fmt.Sprintf("$%04X: ", addr))
		for col := 0; col < 8; col++ {
			sb.WriteString(fmt.Sprintf("%02X ", m.emu.Read(addr+uint16(col))))
		}
		sb.WriteString("\n")
		addr += 8
	}
	return sb.String()
}

func (m model) ppuView() string {
	ppu := m.emu.PPU()
	return fmt.Sprintf("scanline:%d dot:%d\nvblank:%v nmi-pending:%v",
		ppu.Scanline(), ppu.Dot(),
		ppu.StatusByte()&0x80 != 0, m.emu.NMIPending())
}

func (m model) View() string {
	cpu := m.emu.CPU()

	cpuPane := panelStyle.Render(fmt.Sprintf(
		"CPU\n\n%s  %s  %s\nPC:%04X  SP:%02X  CYC:%d\n\nFlags: %s",
		m.fmtReg8("A", cpu.A, m.last.a),
		m.fmtReg8("X", cpu.X, m.last.x),
		m.fmtReg8("Y", cpu.Y, m.last.y),
		cpu.PC, cpu.SP, m.emu.Cycles(),
		m.fmtFlags(),
	))

	stackPane := stackPanelStyle.Render("Stack\n\n" + m.stackView())
	memPane := panelStyle.Render(fmt.Sprintf("Memory (tab to focus, ↑↓ scroll)\n\n%s", m.memoryView()))
	ppuPane := panelStyle.Render("PPU\n\n" + m.ppuView())

	disasmPane := disasmStyle.Render("Disassembly\n\n" + m.disasmView())

	right := lipgloss.JoinVertical(lipgloss.Left, cpuPane, stackPane, ppuPane, memPane)

	if m.stepErr != nil {
		right = lipgloss.JoinVertical(lipgloss.Left, right,
			breakpointStyle.Render("step error: "+m.stepErr.Error()))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, disasmPane, right)

	help := helpStyle.Render(
		"s/space: step • r: run • b: breakpoint • ↑↓: scroll • tab: pane • g: goto • q: quit",
	)

	if m.showingGoto {
		dialog := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1).Width(30).
			Render("Go to address:\n\n" + m.gotoInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, content, help, dialog)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, help)
}
