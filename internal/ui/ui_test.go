package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"planner/internal/config"
	"planner/internal/content"
	"planner/internal/progress"
	"planner/internal/session"
	"planner/internal/storage"
)

func newModel(t *testing.T, kv storage.KV) (Model, *session.Controller) {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	ctrl := session.NewController(c, progress.New(kv, content.TotalDays), zap.NewNop())
	ctrl.Hydrate()
	return New(ctrl, config.Default(t.TempDir())), ctrl
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, string(r))
	}
	return m
}

func TestNavigationClampsAtBoundaries(t *testing.T) {
	m, ctrl := newModel(t, storage.NewMemory())

	m = press(t, m, "h")
	assert.Equal(t, 1, ctrl.CurrentDay())
	assert.Equal(t, "Already on the first day", m.status)

	m = press(t, m, "l", "right", "down")
	assert.Equal(t, 4, ctrl.CurrentDay())

	m = press(t, m, "G", "l")
	assert.Equal(t, 30, ctrl.CurrentDay())
	assert.Equal(t, "Already on the last day", m.status)

	press(t, m, "g")
	assert.Equal(t, 1, ctrl.CurrentDay())
}

func TestToggleCompletionFromKeyboard(t *testing.T) {
	kv := storage.NewMemory()
	m, ctrl := newModel(t, kv)

	m = press(t, m, "l", " ")
	assert.True(t, ctrl.IsCompleted(2))
	assert.Equal(t, "Day 2 completed", m.status)
	assert.Contains(t, m.View(), "1 / 30 days completed")
	assert.Contains(t, m.View(), "Completed")

	raw, ok, err := kv.Get(progress.CompletedKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[2]`, raw)

	m = press(t, m, " ")
	assert.False(t, ctrl.IsCompleted(2))
	assert.Contains(t, m.View(), "Mark Complete")
}

func TestReflectionSavesOnEveryKeystroke(t *testing.T) {
	kv := storage.NewMemory()
	m, ctrl := newModel(t, kv)

	m = press(t, m, "e")
	require.Equal(t, modeEdit, m.mode)

	m = typeText(t, m, "hi")
	assert.Equal(t, "hi", ctrl.Reflection(1))

	raw, ok, err := kv.Get(progress.ResponsesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"1":"hi"}`, raw)

	// Navigation keys are text while editing.
	m = press(t, m, "l")
	assert.Equal(t, 1, ctrl.CurrentDay())
	assert.Equal(t, "hil", ctrl.Reflection(1))

	m = press(t, m, "esc")
	assert.Equal(t, modeNavigate, m.mode)
	assert.Contains(t, m.View(), "hil")
}

func TestEditStartsFromStoredReflection(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(progress.ResponsesKey, `{"3":"hello"}`))
	m, ctrl := newModel(t, kv)

	m = press(t, m, "l", "l", "e")
	m = typeText(t, m, " world")
	assert.Equal(t, "hello world", ctrl.Reflection(3))
	press(t, m, "esc")
}

func TestMenuJumpsAndCloses(t *testing.T) {
	m, ctrl := newModel(t, storage.NewMemory())

	m = press(t, m, "m")
	require.True(t, ctrl.MenuOpen())
	assert.Contains(t, m.View(), "Jump to Day")

	// Day 1 -> down a row (6) -> right (7) -> enter.
	m = press(t, m, "j", "l", "enter")
	assert.Equal(t, 7, ctrl.CurrentDay())
	assert.False(t, ctrl.MenuOpen())
	assert.NotContains(t, m.View(), "Jump to Day")

	m = press(t, m, "m", "esc")
	assert.False(t, ctrl.MenuOpen())
	assert.Equal(t, 7, ctrl.CurrentDay())

	m = press(t, m, "m", "k", "k", "h", "h", "enter")
	assert.Equal(t, 1, ctrl.CurrentDay())
	_ = m
}

func TestViewShowsDayContent(t *testing.T) {
	m, _ := newModel(t, storage.NewMemory())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "The 7 Intimacies")
	assert.Contains(t, out, "Emotional Intimacy")
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "Naming the Now")
	assert.Contains(t, out, "How to Use This Planner")
	assert.Contains(t, out, "0 / 30 days completed")
	assert.Contains(t, out, "Day 30", "sidebar lists every day when wide")

	m = press(t, m, "l", "l")
	out = m.View()
	assert.Contains(t, out, "What do you need from your partner")
	assert.NotContains(t, out, "How to Use This Planner")
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t, storage.NewMemory())
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = press(t, m, "e")
	_, cmd = m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 1, clampCursor(0, 30))
	assert.Equal(t, 1, clampCursor(-4, 30))
	assert.Equal(t, 30, clampCursor(35, 30))
	assert.Equal(t, 12, clampCursor(12, 30))
	assert.Equal(t, 1, clampCursor(5, 0))
}
