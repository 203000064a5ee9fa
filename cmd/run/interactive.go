package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/stdlib"
	"github.com/wippyai/host-bridge/value"
	"github.com/wippyai/host-bridge/wasmhost"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// selectWindow bounds how many entries the function list shows at once.
const selectWindow = 15

type interactiveModel struct {
	err      error
	host     *wasmhost.Runtime
	rt       *bridge.Runtime
	wasmFile string
	result   string
	entries  []entryInfo
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type entryInfo struct {
	entry  *stdlib.Entry
	params []paramInfo
}

type paramInfo struct {
	name string
	hint string
	def  value.Value
}

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(wasmFile string) *interactiveModel {
	return &interactiveModel{
		wasmFile: wasmFile,
		state:    stateSelectFunc,
	}
}

type loadedMsg struct {
	err     error
	host    *wasmhost.Runtime
	entries []entryInfo
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadRegistry
}

func (m *interactiveModel) loadRegistry() tea.Msg {
	ctx := context.Background()

	reg := stdlib.Default()

	var host *wasmhost.Runtime
	if m.wasmFile != "" {
		data, err := os.ReadFile(m.wasmFile)
		if err != nil {
			return loadedMsg{err: err}
		}

		host = wasmhost.New(ctx)
		mod, err := host.Load(ctx, moduleName(m.wasmFile), data)
		if err != nil {
			host.Close(ctx)
			return loadedMsg{err: err}
		}
		reg.Add(mod.Entries(ctx))
	}

	var entries []entryInfo
	for _, mod := range reg.Modules() {
		for _, e := range mod.Entries() {
			entries = append(entries, entryInfo{entry: e, params: describeParams(e.Params)})
		}
	}

	return loadedMsg{host: host, entries: entries}
}

// describeParams reads the descriptor tuple: placeholder parameters carry
// their description as the hint, bound ones their default value.
func describeParams(params value.Tuple) []paramInfo {
	infos := make([]paramInfo, 0, params.Len())
	for _, v := range params.Values() {
		n, ok := v.(value.Named)
		if !ok {
			continue
		}
		p := paramInfo{name: textOf(n.Key())}
		if u, ok := n.Value().(value.Undefined); ok {
			p.hint = u.Reason()
		} else {
			p.def = n.Value()
			p.hint = "default " + renderValue(p.def)
		}
		infos = append(infos, p)
	}
	return infos
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateInputArgs && msg.String() == "q" {
				break
			}
			if m.host != nil {
				m.host.Close(context.Background())
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.entries)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callFunction
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callFunction

			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectFunc
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.host = msg.host
		m.entries = msg.entries

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	info := m.entries[m.selected]
	m.inputs = make([]textinput.Model, len(info.params))
	for i, p := range info.params {
		ti := textinput.New()
		ti.Placeholder = p.hint
		ti.Prompt = p.name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) callFunction() tea.Msg {
	ctx := context.Background()

	if m.rt == nil {
		m.rt = bridge.NewRuntime()
	}

	info := m.entries[m.selected]
	var arg value.Value
	if len(m.inputs) > 0 {
		elems := make([]value.Value, len(m.inputs))
		for i, input := range m.inputs {
			raw := input.Value()
			var v value.Value
			switch {
			case raw != "":
				v = parseValue(raw)
			case info.params[i].def != nil:
				v = info.params[i].def
			default:
				v = value.UndefinedOf("unbound parameter " + info.params[i].name)
			}
			elems[i] = value.NamedOf(info.params[i].name, v)
		}
		arg = value.NewTuple(elems...)
	}

	result, err := info.entry.Call(ctx, m.rt, arg)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: renderValue(result)}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.entries) == 0 {
		return "Loading registry..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Host Bridge"))
	if m.wasmFile != "" {
		b.WriteString(" ")
		b.WriteString(m.wasmFile)
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		b.WriteString("Select a function to call:\n\n")
		start, end := m.window()
		if start > 0 {
			b.WriteString(helpStyle.Render("  ..."))
			b.WriteString("\n")
		}
		for i := start; i < end; i++ {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + m.formatEntry(m.entries[i])))
			} else {
				b.WriteString("  " + m.formatEntry(m.entries[i]))
			}
			b.WriteString("\n")
		}
		if end < len(m.entries) {
			b.WriteString(helpStyle.Render("  ..."))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • q quit"))

	case stateInputArgs:
		info := m.entries[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", funcStyle.Render(info.entry.Signature)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(info.params[i].hint))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		info := m.entries[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", funcStyle.Render(info.entry.Signature)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

// window clamps the visible slice of the function list around the selection.
func (m *interactiveModel) window() (int, int) {
	if len(m.entries) <= selectWindow {
		return 0, len(m.entries)
	}
	start := m.selected - selectWindow/2
	if start < 0 {
		start = 0
	}
	end := start + selectWindow
	if end > len(m.entries) {
		end = len(m.entries)
		start = end - selectWindow
	}
	return start, end
}

func (m *interactiveModel) formatEntry(info entryInfo) string {
	var params []string
	for _, p := range info.params {
		if p.def != nil {
			params = append(params, p.name+" = "+typeStyle.Render(renderValue(p.def)))
		} else {
			params = append(params, p.name)
		}
	}
	s := funcStyle.Render(info.entry.Signature) + "(" + strings.Join(params, ", ") + ")"
	if info.entry.Async {
		s += typeStyle.Render(" async")
	}
	return s
}

func runInteractive(wasmFile string) error {
	p := tea.NewProgram(newInteractiveModel(wasmFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
