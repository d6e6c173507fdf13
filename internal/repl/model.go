// File: model.go
// Title: REPL Bubbletea Model
// Description: Implements the interactive REPL model: prompt input
//              with block continuation, transpile-and-eval commands,
//              debug dumps, colon commands, and history recall.
// Author: brahmic-lang maintainers
// Version: v0.1.1
// Created: 2026-06-21
// Modified: 2026-08-29
//
// Change History:
// - 2026-06-21 v0.1.0: Initial implementation
// - 2026-08-29 v0.1.1: Debug dump keeps the token stream on lexical
//                      errors

package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	coreerror "github.com/brahmic-lang/brahmic/internal/core/error"
	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
	"github.com/brahmic-lang/brahmic/internal/history"
	"github.com/brahmic-lang/brahmic/internal/runner"
	"github.com/brahmic-lang/brahmic/pkg/teng"
	"github.com/brahmic-lang/brahmic/pkg/teng/ast"
)

// Version is set during build
var Version = "0.1.0"

const (
	promptMain = ">>> "
	promptCont = "... "
)

// Config holds REPL configuration
type Config struct {
	// HistoryPath is the SQLite history database. Empty disables
	// persistence.
	HistoryPath string
	// HistorySize bounds how many stored inputs are recalled.
	HistorySize int
	// Logger receives REPL diagnostics; nil uses the default logger.
	Logger *corelog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		HistoryPath: history.DefaultPath(),
		HistorySize: 50,
	}
}

// Model is the Bubbletea model for the REPL
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	debug   bool
	err     error

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Evaluation
	transpiler *teng.Transpiler
	session    *runner.Session
	store      *history.Store
	logger     *corelog.Logger

	// Input state
	pending    []string // collected block lines in continuation mode
	transcript []string
	recall     []string // stored inputs for arrow-key recall, newest first
	recallIdx  int      // -1 when not recalling
	histSize   int
}

// New creates a REPL model. The history store may be nil.
func New(cfg Config, transpiler *teng.Transpiler, session *runner.Session, store *history.Store) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = corelog.GetDefault()
	}

	ti := textinput.New()
	ti.Prompt = promptMain
	ti.PromptStyle = PromptStyle
	ti.Placeholder = `("Namaste")cheppu`
	ti.Focus()

	histSize := cfg.HistorySize
	if histSize <= 0 {
		histSize = DefaultConfig().HistorySize
	}

	return Model{
		input:      ti,
		transpiler: transpiler,
		session:    session,
		store:      store,
		logger:     logger.WithField("component", "repl"),
		recallIdx:  -1,
		histSize:   histSize,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadHistory,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 3
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - len(promptMain) - 6
		m.updateViewportContent()

	case evalDoneMsg:
		m.loading = false
		m.appendResult(msg)
		m.updateViewportContent()
		m.viewport.GotoBottom()
		cmds = append(cmds, m.saveHistory(msg))

	case historyLoadedMsg:
		if msg.err == nil {
			m.recall = msg.inputs
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		return m, tea.Quit

	case tea.KeyEnter:
		return m.handleSubmit()

	case tea.KeyUp:
		if m.input.Value() == "" || m.recallIdx >= 0 {
			m.recallPrev()
			return m, nil
		}

	case tea.KeyDown:
		if m.recallIdx >= 0 {
			m.recallNext()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit processes the current input line
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	m.recallIdx = -1

	if len(m.pending) > 0 {
		// Continuation mode: an empty line submits the block.
		if strings.TrimSpace(line) == "" {
			source := strings.Join(m.pending, "\n")
			m.pending = nil
			m.input.Prompt = promptMain
			return m.submit(source)
		}
		m.pending = append(m.pending, line)
		m.echo(promptCont + line)
		m.updateViewportContent()
		return m, nil
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return m, nil
	}

	if strings.HasPrefix(trimmed, ":") {
		return m.handleCommand(trimmed)
	}

	if needsContinuation(line) {
		m.pending = []string{line}
		m.input.Prompt = promptCont
		m.echo(promptMain + line)
		m.updateViewportContent()
		return m, nil
	}

	return m.submit(line)
}

// handleCommand executes a colon command
func (m Model) handleCommand(cmd string) (tea.Model, tea.Cmd) {
	m.echo(promptMain + cmd)

	switch cmd {
	case ":quit", ":q", ":exit":
		return m, tea.Quit

	case ":debug":
		m.debug = !m.debug
		state := "off"
		if m.debug {
			state = "on"
		}
		m.transcript = append(m.transcript, DebugStyle.Render("debug mode "+state))

	case ":history":
		if len(m.recall) == 0 {
			m.transcript = append(m.transcript, DebugStyle.Render("history is empty"))
		}
		// Oldest of the recalled window first, like a shell history.
		for i := len(m.recall) - 1; i >= 0; i-- {
			m.transcript = append(m.transcript,
				DebugStyle.Render(fmt.Sprintf("%3d  ", len(m.recall)-i))+EchoStyle.Render(m.recall[i]))
		}

	case ":help":
		m.transcript = append(m.transcript,
			HelpKeyStyle.Render(":debug")+HelpDescStyle.Render("    toggle token/tree dumps"),
			HelpKeyStyle.Render(":history")+HelpDescStyle.Render("  show recent inputs"),
			HelpKeyStyle.Render(":quit")+HelpDescStyle.Render("     leave the REPL"),
			HelpDescStyle.Render("end a block header line with ':' and finish the block with an empty line"))

	default:
		m.transcript = append(m.transcript, ErrorStyle.Render("unknown command: "+cmd))
	}

	m.updateViewportContent()
	m.viewport.GotoBottom()
	return m, nil
}

// submit transpiles and evaluates a completed input
func (m Model) submit(source string) (tea.Model, tea.Cmd) {
	if len(strings.Split(source, "\n")) == 1 {
		m.echo(promptMain + source)
	}
	m.loading = true
	m.updateViewportContent()
	return m, m.eval(source)
}

// echo appends an input echo line to the transcript
func (m *Model) echo(line string) {
	m.transcript = append(m.transcript, EchoStyle.Render(line))
}

// eval returns the command that transpiles and evaluates source
func (m Model) eval(source string) tea.Cmd {
	transpiler := m.transpiler
	session := m.session
	debug := m.debug

	return func() tea.Msg {
		done := evalDoneMsg{source: source}

		if debug {
			if tokens, lexErrs, err := transpiler.DebugTokens(source); err == nil ||
				coreerror.GetCode(err) == coreerror.CodeTengLexical {
				var b strings.Builder
				for _, tok := range tokens {
					fmt.Fprintf(&b, "%s ", tok.String())
				}
				for _, le := range lexErrs {
					fmt.Fprintf(&b, "\n%s", le)
				}
				done.tokens = strings.TrimSpace(b.String())
			}
			if tree, err := transpiler.DebugTree(source); err == nil {
				done.tree = dumpTree(tree)
			}
		}

		python, err := transpiler.Transpile(source)
		if err != nil {
			done.err = err
			return done
		}
		done.python = python

		res, err := session.Eval(wrapExpression(python))
		if res != nil {
			done.stdout = res.Stdout
			done.value = res.Value
		}
		if err != nil {
			done.err = err
		}
		return done
	}
}

// appendResult renders an evaluation outcome into the transcript
func (m *Model) appendResult(msg evalDoneMsg) {
	if msg.tokens != "" {
		m.transcript = append(m.transcript, DebugStyle.Render("tokens: "+msg.tokens))
	}
	if msg.tree != "" {
		for _, line := range strings.Split(strings.TrimRight(msg.tree, "\n"), "\n") {
			m.transcript = append(m.transcript, DebugStyle.Render(line))
		}
	}
	if msg.python != "" && (m.debug || msg.err == nil) {
		for _, line := range strings.Split(strings.TrimRight(msg.python, "\n"), "\n") {
			m.transcript = append(m.transcript, PythonStyle.Render("py| "+line))
		}
	}

	if msg.err != nil {
		m.transcript = append(m.transcript, ErrorStyle.Render(msg.err.Error()))
		return
	}

	if msg.stdout != "" {
		for _, line := range strings.Split(strings.TrimRight(msg.stdout, "\n"), "\n") {
			m.transcript = append(m.transcript, OutputStyle.Render(line))
		}
	}
	if msg.value != "" {
		m.transcript = append(m.transcript, ValueStyle.Render(msg.value))
	}
}

// loadHistory reads stored inputs for arrow-key recall
func (m Model) loadHistory() tea.Msg {
	if m.store == nil {
		return historyLoadedMsg{}
	}

	entries, err := m.store.Recent(context.Background(), m.histSize)
	if err != nil {
		return historyLoadedMsg{err: err}
	}

	inputs := make([]string, 0, len(entries))
	for _, e := range entries {
		inputs = append(inputs, e.Source)
	}
	return historyLoadedMsg{inputs: inputs}
}

// saveHistory records an evaluated input in the store and in the
// in-memory recall list
func (m *Model) saveHistory(msg evalDoneMsg) tea.Cmd {
	m.recall = append([]string{msg.source}, m.recall...)
	if len(m.recall) > m.histSize {
		m.recall = m.recall[:m.histSize]
	}

	if m.store == nil {
		return nil
	}

	store := m.store
	logger := m.logger
	return func() tea.Msg {
		err := store.Add(context.Background(), &history.Entry{
			Source: msg.source,
			Python: msg.python,
			OK:     msg.err == nil,
		})
		if err != nil {
			logger.WarnWithErr("cannot record history entry", err)
		}
		return nil
	}
}

// recallPrev moves backwards through stored inputs
func (m *Model) recallPrev() {
	if len(m.recall) == 0 || m.recallIdx+1 >= len(m.recall) {
		return
	}
	m.recallIdx++
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

// recallNext moves forwards through stored inputs, clearing the prompt
// past the newest entry
func (m *Model) recallNext() {
	if m.recallIdx < 0 {
		return
	}
	m.recallIdx--
	if m.recallIdx < 0 {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

// updateViewportContent refreshes the transcript viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Starting REPL..."
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("Brahmic REPL"))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render("Tenglish → Python, v" + Version))
	if m.debug {
		b.WriteString("  ")
		b.WriteString(DebugStyle.Render("[debug]"))
	}
	b.WriteString("\n\n")

	b.WriteString(TranscriptPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(InputLineStyle.Render(m.input.View()))
	b.WriteString("\n")

	help := []string{
		HelpKeyStyle.Render("Enter") + HelpDescStyle.Render(" eval"),
		HelpKeyStyle.Render("↑/↓") + HelpDescStyle.Render(" history"),
		HelpKeyStyle.Render(":help") + HelpDescStyle.Render(" commands"),
		HelpKeyStyle.Render("Ctrl+C") + HelpDescStyle.Render(" quit"),
	}
	b.WriteString(strings.Join(help, "  "))

	return b.String()
}

// needsContinuation reports whether a line opens a block and therefore
// switches the prompt into continuation mode.
func needsContinuation(line string) bool {
	return strings.HasSuffix(strings.TrimSpace(line), ":")
}

// wrapExpression routes a bare single-line expression through the
// session's result sentinel so its repr is echoed after evaluation.
// Statements and multi-line programs pass through untouched.
func wrapExpression(python string) string {
	if strings.Contains(python, "\n") {
		return python
	}
	trimmed := strings.TrimSpace(python)
	if trimmed == "" {
		return python
	}

	for _, prefix := range []string{"print(", "def ", "if ", "for ", "while ", "return", "break", "continue"} {
		if strings.HasPrefix(trimmed, prefix) {
			return python
		}
	}
	if isAssignment(trimmed) {
		return python
	}

	return runner.ResultName + " = " + trimmed
}

// isAssignment reports whether a single line is a plain name
// assignment rather than a comparison.
func isAssignment(line string) bool {
	i := strings.Index(line, "=")
	if i <= 0 || i+1 >= len(line) {
		return i > 0
	}
	if line[i+1] == '=' {
		return false
	}
	name := strings.TrimSpace(line[:i])
	for j, r := range name {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			continue
		}
		if j > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return name != ""
}

// dumpTree renders a parse tree as an indented outline
func dumpTree(program *ast.Program) string {
	tv := ast.NewTreeVisitor()
	program.Accept(tv)
	return tv.String()
}
