package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docparse/docparse/internal/document"
	"github.com/docparse/docparse/internal/history"
	"github.com/docparse/docparse/internal/render"
	"github.com/docparse/docparse/internal/submit"
)

// View represents the current view/screen
type View int

const (
	ViewPicker View = iota
	ViewOptions
	ViewResult
	ViewHelp
)

// Focusable option lists on the options screen.
const (
	focusMethods = iota
	focusOptions
)

// Model is the main TUI model
type Model struct {
	// Core state
	ctrl  *submit.Controller
	store history.Store // nil when history is disabled

	// UI components
	picker   filepicker.Model
	spinner  spinner.Model
	viewport viewport.Model

	// Options screen state
	focus     int
	methodIdx int
	optionIdx int

	// View state
	view       View
	prevView   View
	width      int
	height     int
	ready      bool
	submitting bool
	err        error
}

// submitDoneMsg is sent when a submission resolves, success or failure.
type submitDoneMsg struct{}

// fileReadErrMsg is sent when the selected file cannot be read.
type fileReadErrMsg struct{ err error }

// NewModel creates the panel model. store may be nil to disable history.
func NewModel(ctrl *submit.Controller, store history.Store) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".pdf", ".md"}
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctrl:    ctrl,
		store:   store,
		picker:  fp,
		spinner: sp,
		view:    ViewPicker,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

// submitCmd runs one submission in the background. The controller refuses
// reentry on its own; the submitting flag only drives the spinner.
func (m Model) submitCmd() tea.Cmd {
	ctrl, store := m.ctrl, m.store
	return func() tea.Msg {
		if ctrl.File() == nil {
			_ = ctrl.Submit(context.Background())
			return submitDoneMsg{}
		}
		record := history.NewRecord(
			ctrl.File().Name,
			string(ctrl.FileType()),
			ctrl.LoadingMethod(),
			ctrl.ParsingOption(),
		)

		_ = ctrl.Submit(context.Background())

		if store != nil {
			if doc := ctrl.Result(); doc != nil {
				record.Succeeded(doc.Metadata.TotalPages, ctrl.Status())
			} else {
				record.Failed(ctrl.Status())
			}
			_ = store.Save(record)
		}
		return submitDoneMsg{}
	}
}

// selectFileCmd reads the picked file into the controller.
func (m Model) selectFileCmd(path string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return fileReadErrMsg{err: err}
		}
		ctrl.SelectFile(filepath.Base(path), data)
		return nil
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.view == ViewHelp {
				m.view = m.prevView
				return m, nil
			}
			if !m.submitting {
				return m, tea.Quit
			}

		case "esc":
			switch m.view {
			case ViewOptions:
				m.view = ViewPicker
				return m, nil
			case ViewResult:
				m.view = ViewOptions
				return m, nil
			case ViewHelp:
				m.view = m.prevView
				return m, nil
			}

		case "?":
			if m.view != ViewHelp {
				m.prevView = m.view
				m.view = ViewHelp
				return m, nil
			}

		case "tab":
			if m.view == ViewOptions {
				if m.focus == focusMethods {
					m.focus = focusOptions
				} else {
					m.focus = focusMethods
				}
			}

		case "up", "k":
			if m.view == ViewOptions {
				m.moveSelection(-1)
			}

		case "down", "j":
			if m.view == ViewOptions {
				m.moveSelection(1)
			}

		case "enter", "s":
			if m.view == ViewOptions && !m.submitting {
				m.applySelection()
				m.submitting = true
				return m, tea.Batch(m.spinner.Tick, m.submitCmd())
			}

		case "n":
			if m.view == ViewResult {
				m.view = ViewPicker
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.picker.Height = msg.Height - 8
		m.viewport = viewport.New(msg.Width-4, msg.Height-10)
		if m.view == ViewResult {
			m.setResultContent()
		}

	case fileReadErrMsg:
		m.err = msg.err

	case submitDoneMsg:
		m.submitting = false
		if m.ctrl.State() == submit.StateSucceeded {
			m.view = ViewResult
			m.setResultContent()
		}

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.view == ViewPicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)

		if ok, path := m.picker.DidSelectFile(msg); ok {
			m.err = nil
			m.view = ViewOptions
			m.focus = focusMethods
			m.methodIdx = 0
			m.optionIdx = 0
			cmds = append(cmds, m.selectFileCmd(path))
		}
	}

	if m.view == ViewResult && m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// moveSelection moves the cursor in the focused option list, clamped to the
// list bounds.
func (m *Model) moveSelection(delta int) {
	if m.focus == focusMethods {
		methods := document.LoadingMethods(m.ctrl.FileType())
		m.methodIdx = clamp(m.methodIdx+delta, 0, len(methods)-1)
	} else {
		m.optionIdx = clamp(m.optionIdx+delta, 0, len(document.ParsingOptions())-1)
	}
}

// applySelection pushes the highlighted choices into the controller.
func (m *Model) applySelection() {
	methods := document.LoadingMethods(m.ctrl.FileType())
	m.ctrl.SetLoadingMethod(methods[m.methodIdx].Value)
	m.ctrl.SetParsingOption(document.ParsingOptions()[m.optionIdx].Value)
}

func (m *Model) setResultContent() {
	if doc := m.ctrl.Result(); doc != nil {
		m.viewport.SetContent(render.DocumentWidth(doc, m.viewport.Width))
		m.viewport.GotoTop()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.view {
	case ViewPicker:
		return m.viewPicker()
	case ViewOptions:
		return m.viewOptions()
	case ViewResult:
		return m.viewResult()
	case ViewHelp:
		return m.viewHelp()
	default:
		return "Unknown view"
	}
}

func (m Model) viewPicker() string {
	var b strings.Builder

	b.WriteString(Logo())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Select a PDF or Markdown document to parse"))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • ?: help • q: quit"))

	return b.String()
}

func (m Model) viewOptions() string {
	var b strings.Builder

	ft := m.ctrl.FileType()

	header := titleStyle.Render("DocParse") + " " +
		dimStyle.Render(fmt.Sprintf("- %s (%s)", m.ctrl.DisplayName(), ft))
	b.WriteString(header)
	b.WriteString("\n\n")

	// Loading methods, valid for the current file type only.
	methodHeader := "Loading Method"
	if m.focus == focusMethods {
		methodHeader = focusedHeaderStyle.Render(methodHeader)
	} else {
		methodHeader = dimStyle.Render(methodHeader)
	}
	b.WriteString(methodHeader)
	b.WriteString("\n")

	for i, opt := range document.LoadingMethods(ft) {
		cursor := "  "
		style := normalStyle
		if i == m.methodIdx {
			cursor = "▸ "
			if m.focus == focusMethods {
				style = selectedStyle
			}
		}
		b.WriteString(style.Render(cursor + opt.Label))
		b.WriteString("\n")
		if i == m.methodIdx && opt.Value == document.MethodAuto {
			if desc := document.AutoDescription(ft); desc != "" {
				b.WriteString(dimStyle.Render("    " + desc))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")

	optionHeader := "Parsing Option"
	if m.focus == focusOptions {
		optionHeader = focusedHeaderStyle.Render(optionHeader)
	} else {
		optionHeader = dimStyle.Render(optionHeader)
	}
	b.WriteString(optionHeader)
	b.WriteString("\n")

	for i, opt := range document.ParsingOptions() {
		cursor := "  "
		style := normalStyle
		if i == m.optionIdx {
			cursor = "▸ "
			if m.focus == focusOptions {
				style = selectedStyle
			}
		}
		b.WriteString(style.Render(cursor + opt.Label))
		b.WriteString("\n")
		if i == m.optionIdx {
			if desc := document.OptionDescription(opt.Value); desc != "" {
				b.WriteString(dimStyle.Render("    " + desc))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")

	if m.submitting {
		b.WriteString(m.spinner.View())
		b.WriteString(dimStyle.Render(" " + m.ctrl.Status()))
	} else {
		b.WriteString(m.statusLine())
	}
	b.WriteString("\n\n")

	status := statusKeyStyle.Render(" OPTIONS ") +
		statusValueStyle.Render(" tab: switch list • ↑/↓: select • enter: parse • esc: back • q: quit ")
	b.WriteString(status)

	return b.String()
}

func (m Model) viewResult() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Parsed Result"))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(resultBoxStyle.Width(m.width - 4).Render(m.viewport.View()))
	b.WriteString("\n")

	status := statusKeyStyle.Render(" RESULT ") +
		statusValueStyle.Render(" ↑/↓: scroll • n: new file • esc: options • q: quit ")
	b.WriteString(status)

	return b.String()
}

// statusLine renders the persistent status banner. The "Error" prefix set by
// the controller discriminates failures from successes.
func (m Model) statusLine() string {
	status := m.ctrl.Status()
	if status == "" {
		return dimStyle.Render("Ready")
	}
	if strings.HasPrefix(status, "Error") {
		return errorStyle.Render(status)
	}
	return successStyle.Render(status)
}

func (m Model) viewHelp() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Help"))
	b.WriteString("\n\n")

	help := `
Keyboard Shortcuts:

  File Picker:
    ↑/↓        Navigate
    enter      Select file
    q          Quit

  Options:
    tab        Switch between method and option lists
    ↑/↓        Move selection
    enter/s    Submit for parsing
    esc        Back to file picker

  Result:
    ↑/↓        Scroll
    n          Parse another file
    esc        Back to options

  General:
    ?          Toggle this help
    ctrl+c     Quit

Commands (CLI):
    docparse parse [file]      One-shot parse and render
    docparse methods [type]    List loading methods per file type
    docparse options           List parsing options
    docparse history           Show past submissions
    docparse tui               Launch this panel
`
	b.WriteString(help)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Press esc or ? to close"))

	return b.String()
}

// Run starts the TUI application.
func Run(ctrl *submit.Controller, store history.Store) error {
	m := NewModel(ctrl, store)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
