package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/scratchpad/internal/config"
	"github.com/watchfire-io/scratchpad/internal/models"
	"github.com/watchfire-io/scratchpad/internal/runner"
)

func newTestModel(t *testing.T) (Model, *config.State) {
	t.Helper()
	state := config.NewState(config.OpenStore(filepath.Join(t.TempDir(), "storage.yaml")))
	m := NewModel(state, true)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, state
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// execCmd runs cmd and any batched children. Only use it for commands
// that do not sleep.
func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, execCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runesMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, models.DefaultCode, m.Code())
	assert.Empty(t, m.Logs())
	assert.Equal(t, models.ThemeDark, m.Preferences().Theme)
	assert.Equal(t, models.DefaultFontSize, m.Preferences().FontSize)
	assert.Equal(t, panelEditor, m.focusedPanel)
	assert.Equal(t, overlayNone, m.activeOverlay)
}

func TestNewModelRestoresState(t *testing.T) {
	state := config.NewState(config.OpenStore(filepath.Join(t.TempDir(), "storage.yaml")))
	require.NoError(t, state.SaveCode("console.log(1)"))
	require.NoError(t, state.SaveTheme(models.ThemeHighLight))
	require.NoError(t, state.SaveFontSize(20))
	require.NoError(t, state.SaveLogs(models.NewConsoleLogs(runner.Execute("console.log(1)"), time.Now())))

	m := NewModel(state, true)
	assert.Equal(t, "console.log(1)", m.Code())
	assert.Len(t, m.Logs(), 1)
	assert.Equal(t, models.ThemeHighLight, m.Preferences().Theme)
	assert.Equal(t, 20, m.Preferences().FontSize)
}

func TestRunAppendsAndPersistsLogs(t *testing.T) {
	m, state := newTestModel(t)

	m, cmd := updateCmd(t, m, keyMsg(tea.KeyCtrlR))
	require.NotNil(t, cmd)
	assert.True(t, m.running)

	// A second run while the first is in flight is refused.
	m = update(t, m, keyMsg(tea.KeyCtrlR))
	assert.Equal(t, "Already running", m.notice)

	msg := runCodeCmd(`console.log("hi"); console.warn("careful")`)()
	finished, ok := msg.(RunFinishedMsg)
	require.True(t, ok)
	require.Len(t, finished.Logs, 2)

	m, cmd = updateCmd(t, m, finished)
	assert.False(t, m.running)
	require.Len(t, m.Logs(), 2)
	assert.Equal(t, runner.KindWarn, m.Logs()[1].Type)
	assert.Equal(t, 2, m.console.Len())

	assert.Nil(t, cmd, "logs are written before Update returns")
	assert.Len(t, state.LoadLogs(), 2)

	// Runs accumulate.
	m = update(t, m, runCodeCmd(`throw new Error("boom")`)())
	require.Len(t, m.Logs(), 3)
	assert.Equal(t, runner.KindError, m.Logs()[2].Type)
	assert.Equal(t, "boom", m.Logs()[2].Message)
}

func TestRunWithNoOutputKeepsLogs(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := updateCmd(t, m, runCodeCmd("let x = 1")())
	assert.Nil(t, cmd)
	assert.Empty(t, m.Logs())
}

func TestClearConsole(t *testing.T) {
	m, state := newTestModel(t)
	m = update(t, m, runCodeCmd(`console.log(1)`)())
	require.Len(t, state.LoadLogs(), 1)

	m, cmd := updateCmd(t, m, keyMsg(tea.KeyCtrlL))
	assert.Empty(t, m.Logs())
	assert.Equal(t, 0, m.console.Len())
	assert.Empty(t, execCmd(cmd))
	assert.Empty(t, state.LoadLogs())
}

func TestClearRightAfterRunStaysCleared(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.yaml")
	state := config.NewState(config.OpenStore(path))
	m := NewModel(state, true)

	m, saveCmd := updateCmd(t, m, runCodeCmd(`console.log("a"); console.log("b")`)())
	m, clearCmd := updateCmd(t, m, keyMsg(tea.KeyCtrlL))

	// Whatever the returned commands do, they must run after the clear
	// without bringing the entries back.
	execCmd(clearCmd)
	execCmd(saveCmd)

	assert.Empty(t, m.Logs())
	assert.Empty(t, state.LoadLogs())

	reopened := config.NewState(config.OpenStore(path))
	assert.Empty(t, reopened.LoadLogs(), "cleared logs must not come back on the next launch")
}

func TestPersistFailureShowsError(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := m.persist("theme", func() error { return assert.AnError })
	require.NotNil(t, cmd)
	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, assert.AnError)
	assert.Contains(t, m.err.Error(), "failed to save theme")

	assert.Nil(t, m.persist("theme", func() error { return nil }))
}

func TestFormatCode(t *testing.T) {
	m, state := newTestModel(t)
	m.editor.SetValue("let a=1;console.log(a)")

	m = update(t, m, keyMsg(tea.KeyCtrlF))
	assert.Equal(t, "let a = 1; console.log(a)", m.Code())
	assert.Equal(t, "Formatted", m.notice)
	assert.True(t, m.codeDirty)

	// Stale ticks are ignored.
	_, cmd := updateCmd(t, m, saveCodeTickMsg{seq: m.codeSeq - 1})
	assert.Nil(t, cmd)

	m, cmd = updateCmd(t, m, saveCodeTickMsg{seq: m.codeSeq})
	assert.False(t, m.codeDirty)
	assert.Nil(t, cmd)
	assert.Equal(t, "let a = 1; console.log(a)", state.LoadCode())

	m = update(t, m, keyMsg(tea.KeyCtrlF))
	assert.Equal(t, "Already formatted", m.notice)
}

func TestTypingSchedulesSave(t *testing.T) {
	m, state := newTestModel(t)

	m, cmd := updateCmd(t, m, runesMsg("x"))
	require.NotNil(t, cmd)
	assert.True(t, m.codeDirty)
	assert.Equal(t, 1, m.codeSeq)
	assert.Contains(t, m.Code(), "x")

	// Quitting flushes the pending save.
	_, cmd = updateCmd(t, m, keyMsg(tea.KeyCtrlQ))
	require.NotNil(t, cmd)
	assert.Equal(t, m.Code(), state.LoadCode())
}

func TestFocusSwitching(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, panelConsole, m.focusedPanel)
	assert.False(t, m.editor.Focused())

	// Console keys do not edit the code.
	m = update(t, m, runesMsg("j"))
	assert.Equal(t, models.DefaultCode, m.Code())

	m = update(t, m, keyMsg(tea.KeyTab))
	assert.Equal(t, panelEditor, m.focusedPanel)
	assert.True(t, m.editor.Focused())
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, keyMsg(tea.KeyF1))
	assert.Equal(t, overlayHelp, m.activeOverlay)

	// Keys do not reach the editor while an overlay is open.
	m = update(t, m, runesMsg("z"))
	assert.Equal(t, models.DefaultCode, m.Code())

	m = update(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, overlayNone, m.activeOverlay)
}

func TestSettingsOverlay(t *testing.T) {
	m, state := newTestModel(t)

	m = update(t, m, keyMsg(tea.KeyCtrlO))
	require.Equal(t, overlaySettings, m.activeOverlay)

	// Theme: vs-dark -> vs-light.
	m, cmd := updateCmd(t, m, keyMsg(tea.KeyRight))
	assert.Equal(t, models.ThemeLight, m.Preferences().Theme)
	assert.Empty(t, execCmd(cmd))
	assert.Equal(t, models.ThemeLight, state.LoadPreferences(true).Theme)

	// Font size: 15 -> 16.
	m = update(t, m, keyMsg(tea.KeyDown))
	m, cmd = updateCmd(t, m, keyMsg(tea.KeyRight))
	assert.Equal(t, 16, m.Preferences().FontSize)
	execCmd(cmd)
	assert.Equal(t, 16, state.LoadPreferences(true).FontSize)

	m = update(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, overlayNone, m.activeOverlay)
}

func TestSettingsActions(t *testing.T) {
	m, _ := newTestModel(t)
	m.editor.SetValue("if(a){b=1}")
	m = update(t, m, runCodeCmd(`console.log(1)`)())
	require.Len(t, m.Logs(), 1)

	m = update(t, m, keyMsg(tea.KeyCtrlO))
	m = update(t, m, keyMsg(tea.KeyDown))
	m = update(t, m, keyMsg(tea.KeyDown))
	m = update(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, overlaySettings, m.activeOverlay, "formatting keeps the settings open")
	assert.Equal(t, "if (a){b = 1}", m.Code())

	m = update(t, m, keyMsg(tea.KeyDown))
	m = update(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, overlayNone, m.activeOverlay)
	assert.Empty(t, m.Logs())
}

func TestMouseDragAndFocus(t *testing.T) {
	m, _ := newTestModel(t)
	layout := computeLayout(m.width, m.height, m.splitRatio)

	m = update(t, m, tea.MouseMsg{X: layout.dividerCol, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.dragging)

	m = update(t, m, tea.MouseMsg{X: 60, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.InDelta(t, 0.5, m.splitRatio, 0.001)

	m = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Equal(t, minSplitRatio, m.splitRatio)

	m = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, m.dragging)

	m = update(t, m, tea.MouseMsg{X: 110, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, panelConsole, m.focusedPanel)

	m = update(t, m, tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, panelEditor, m.focusedPanel)
}

func TestErrorAndNoticeMessages(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := updateCmd(t, m, ErrorMsg{Err: assert.AnError})
	assert.Equal(t, assert.AnError, m.err)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), assert.AnError.Error())

	m = update(t, m, ClearErrorMsg{})
	assert.Nil(t, m.err)

	m = update(t, m, NoticeMsg{Text: "Saved"})
	assert.Equal(t, "Saved", m.notice)
	m = update(t, m, clearNoticeMsg{seq: m.noticeSeq - 1})
	assert.Equal(t, "Saved", m.notice)
	m = update(t, m, clearNoticeMsg{seq: m.noticeSeq})
	assert.Empty(t, m.notice)
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Scratchpad")
	assert.Contains(t, view, "Console (0)")
	assert.Contains(t, view, "No output yet.")

	small := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, small.View(), "Terminal too small")
}
