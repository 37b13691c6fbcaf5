package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/watchfire-io/scratchpad/internal/config"
	"github.com/watchfire-io/scratchpad/internal/format"
	"github.com/watchfire-io/scratchpad/internal/log"
	"github.com/watchfire-io/scratchpad/internal/models"
)

// Minimum terminal size.
const (
	minWidth  = 60
	minHeight = 16
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	state *config.State
	prefs *models.Preferences
	logs  []*models.ConsoleLog

	// UI state
	focusedPanel  int // panelEditor or panelConsole
	activeOverlay overlayKind
	splitRatio    float64
	width         int
	height        int
	palette       palette

	// Run state
	running bool
	lastRun time.Duration

	// Pending code save
	codeSeq   int
	codeDirty bool

	// Status display
	err       error
	notice    string
	noticeSeq int

	// Child components
	editor       *Editor
	console      *Console
	settingsForm *SettingsForm

	// Dragging state
	dragging bool
}

// NewModel creates the initial TUI model from persisted state.
func NewModel(state *config.State, darkBackground bool) Model {
	prefs := state.LoadPreferences(darkBackground)
	logs := state.LoadLogs()

	m := Model{
		state:        state,
		prefs:        prefs,
		logs:         logs,
		splitRatio:   defaultSplitRatio,
		editor:       NewEditor(state.LoadCode()),
		console:      NewConsole(),
		settingsForm: NewSettingsForm(),
	}
	m.settingsForm.Load(prefs)
	m.applyTheme()
	m.console.SetLogs(logs)
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.editor.Focus(),
		tea.EnableMouseCellMotion,
	)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	// ── Mouse events ───────────────────────────────────────────────
	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	// ── Execution ──────────────────────────────────────────────────
	case RunFinishedMsg:
		m.running = false
		m.lastRun = msg.Duration
		if len(msg.Logs) == 0 {
			return m, nil
		}
		m.logs = append(m.logs, msg.Logs...)
		m.console.SetLogs(m.logs)
		cmd := m.persist("console output", func() error { return m.state.SaveLogs(m.logs) })
		return m, cmd

	// ── Persistence ────────────────────────────────────────────────
	case saveCodeTickMsg:
		if msg.seq != m.codeSeq || !m.codeDirty {
			return m, nil
		}
		m.codeDirty = false
		code := m.editor.Value()
		cmd := m.persist("code", func() error { return m.state.SaveCode(code) })
		return m, cmd

	// ── Status ─────────────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case NoticeMsg:
		cmd := m.showNotice(msg.Text)
		return m, cmd

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	// Everything else (cursor blink etc.) goes to the editor.
	return m, m.editor.Update(msg)
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Overlay captures everything
	if m.activeOverlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m.doQuit()

	case key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp
		return nil

	case key.Matches(msg, globalKeys.Run):
		return m.runCode()

	case key.Matches(msg, globalKeys.Clear):
		return m.clearConsole()

	case key.Matches(msg, globalKeys.Format):
		return m.formatCode()

	case key.Matches(msg, globalKeys.Settings):
		m.settingsForm.Load(m.prefs)
		m.activeOverlay = overlaySettings
		return nil
	}

	if m.focusedPanel == panelConsole {
		return m.handleConsoleKey(msg)
	}
	return m.handleEditorKey(msg)
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	before := m.editor.Value()

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, editorKeys.Leave):
		return m.focus(panelConsole)
	case key.Matches(msg, editorKeys.Indent):
		m.editor.Indent()
	default:
		cmd = m.editor.Update(msg)
	}

	if m.editor.Value() != before {
		return tea.Batch(cmd, m.codeChanged())
	}
	return cmd
}

func (m *Model) handleConsoleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, consoleKeys.Up):
		m.console.ScrollUp(1)
	case key.Matches(msg, consoleKeys.Down):
		m.console.ScrollDown(1)
	case key.Matches(msg, consoleKeys.PageUp):
		m.console.PageUp()
	case key.Matches(msg, consoleKeys.PageDown):
		m.console.PageDown()
	case key.Matches(msg, consoleKeys.Top):
		m.console.GotoTop()
	case key.Matches(msg, consoleKeys.Bottom):
		m.console.GotoBottom()
	case key.Matches(msg, consoleKeys.Edit):
		return m.focus(panelEditor)
	}
	return nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch m.activeOverlay {
	case overlayHelp:
		if key.Matches(msg, overlayKeys.Cancel) || key.Matches(msg, globalKeys.Help) {
			m.activeOverlay = overlayNone
		}
		return nil

	case overlaySettings:
		return m.handleSettingsKey(msg)
	}
	return nil
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	var action settingsAction
	switch {
	case key.Matches(msg, settingsKeys.Cancel):
		m.activeOverlay = overlayNone
		return nil
	case key.Matches(msg, globalKeys.Quit):
		return m.doQuit()
	case key.Matches(msg, settingsKeys.Up):
		m.settingsForm.MoveUp()
	case key.Matches(msg, settingsKeys.Down):
		m.settingsForm.MoveDown()
	case key.Matches(msg, settingsKeys.Left):
		action = m.settingsForm.Left()
	case key.Matches(msg, settingsKeys.Right):
		action = m.settingsForm.Right()
	case key.Matches(msg, settingsKeys.Enter):
		action = m.settingsForm.Enter()
	}
	return m.applySettingsAction(action)
}

func (m *Model) applySettingsAction(action settingsAction) tea.Cmd {
	switch action {
	case settingsThemeChanged:
		return m.setTheme(m.settingsForm.Theme())
	case settingsFontSizeChanged:
		return m.setFontSize(m.settingsForm.FontSize())
	case settingsFormat:
		return m.formatCode()
	case settingsClear:
		m.activeOverlay = overlayNone
		return m.clearConsole()
	}
	return nil
}

// ── Actions ──────────────────────────────────────────────────────

func (m *Model) runCode() tea.Cmd {
	if m.running {
		return m.showNotice("Already running")
	}
	m.running = true
	return runCodeCmd(m.editor.Value())
}

func (m *Model) clearConsole() tea.Cmd {
	m.logs = nil
	m.console.SetLogs(nil)
	return m.persist("console output", m.state.ClearLogs)
}

func (m *Model) formatCode() tea.Cmd {
	code := m.editor.Value()
	formatted := format.Format(code)
	if formatted == code {
		return m.showNotice("Already formatted")
	}
	m.editor.SetValue(formatted)
	return tea.Batch(m.codeChanged(), m.showNotice("Formatted"))
}

func (m *Model) setTheme(theme string) tea.Cmd {
	if theme == m.prefs.Theme {
		return nil
	}
	m.prefs.Theme = theme
	m.applyTheme()
	return m.persist("theme", func() error { return m.state.SaveTheme(theme) })
}

func (m *Model) setFontSize(size int) tea.Cmd {
	if size == m.prefs.FontSize {
		return nil
	}
	m.prefs.FontSize = size
	return m.persist("font size", func() error { return m.state.SaveFontSize(size) })
}

func (m *Model) applyTheme() {
	m.palette = paletteFor(m.prefs.Theme)
	m.editor.SetPalette(m.palette)
	m.console.SetPalette(m.palette)
}

// persist writes to the store on the update goroutine, so saves and
// clears reach disk in the order they were issued.
func (m *Model) persist(what string, write func() error) tea.Cmd {
	if err := write(); err != nil {
		log.GetLogger().Errorf("Failed to save %s: %v", what, err)
		m.err = fmt.Errorf("failed to save %s: %w", what, err)
		return clearErrorAfter(5 * time.Second)
	}
	return nil
}

// codeChanged schedules a debounced save of the editor text.
func (m *Model) codeChanged() tea.Cmd {
	m.codeSeq++
	m.codeDirty = true
	return saveCodeAfter(m.codeSeq)
}

func (m *Model) focus(panel int) tea.Cmd {
	m.focusedPanel = panel
	if panel == panelEditor {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

func (m *Model) showNotice(text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	return clearNoticeAfter(m.noticeSeq, 2*time.Second)
}

// doQuit flushes a pending code save and quits.
func (m *Model) doQuit() tea.Cmd {
	if m.codeDirty {
		m.codeDirty = false
		if err := m.state.SaveCode(m.editor.Value()); err != nil {
			log.GetLogger().Errorf("Failed to save code on exit: %v", err)
		}
	}
	return tea.Quit
}

// ── Mouse handling ───────────────────────────────────────────────

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.activeOverlay != overlayNone {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		layout := computeLayout(m.width, m.height, m.splitRatio)
		x := msg.X

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if x >= layout.dividerCol {
				m.console.ScrollUp(3)
			}
			return nil
		case tea.MouseButtonWheelDown:
			if x >= layout.dividerCol {
				m.console.ScrollDown(3)
			}
			return nil
		}

		if x >= layout.dividerCol-1 && x <= layout.dividerCol+1 {
			m.dragging = true
			return nil
		}
		if x < layout.dividerCol {
			return m.focus(panelEditor)
		}
		return m.focus(panelConsole)

	case tea.MouseActionRelease:
		m.dragging = false

	case tea.MouseActionMotion:
		if m.dragging && m.width > 0 {
			m.splitRatio = clampSplit(float64(msg.X) / float64(m.width))
			m.updateDimensions()
		}
	}
	return nil
}

// ── Dimension helpers ────────────────────────────────────────────

func (m *Model) updateDimensions() {
	leftInner, rightInner, innerHeight := computeLayout(m.width, m.height, m.splitRatio).inner()
	m.editor.SetSize(leftInner, innerHeight)
	m.console.SetSize(rightInner, innerHeight)
	m.settingsForm.SetWidth(m.width - 10)
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					fmt.Sprintf("Need %dx%d, have ", minWidth, minHeight)+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	layout := computeLayout(m.width, m.height, m.splitRatio)

	header := renderHeader(m.prefs, m.focusedPanel, len(m.logs), m.running, m.width)
	panels := renderPanels(m.editor.View(), m.console.View(), layout, m.focusedPanel, m.palette)
	statusBar := renderStatusBar(&m, m.width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, panels, statusBar)

	var overlayContent string
	switch m.activeOverlay {
	case overlayHelp:
		overlayContent = renderHelp(m.width)
	case overlaySettings:
		overlayContent = m.settingsForm.View()
	}
	if overlayContent != "" {
		view = renderOverlay(view, overlayContent, m.width, m.height)
	}

	return view
}

// Logs returns the current console entries.
func (m Model) Logs() []*models.ConsoleLog {
	return m.logs
}

// Preferences returns the current appearance preferences.
func (m Model) Preferences() models.Preferences {
	return *m.prefs
}

// Code returns the current editor text.
func (m Model) Code() string {
	return m.editor.Value()
}
