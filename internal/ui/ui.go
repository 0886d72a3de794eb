package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"planner/internal/config"
	"planner/internal/session"
)

type mode int

const (
	modeNavigate mode = iota
	modeEdit
)

// wideLayout is the width from which the day sidebar is shown next to the
// content instead of only through the day menu.
const wideLayout = 90

const menuColumns = 5

type Model struct {
	ctrl       *session.Controller
	cfg        config.Config
	mode       mode
	editor     textarea.Model
	menuCursor int
	width      int
	height     int
	status     string
}

func New(ctrl *session.Controller, cfg config.Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Write your thoughts here..."
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(6)

	return Model{
		ctrl:       ctrl,
		cfg:        cfg,
		mode:       modeNavigate,
		editor:     ta,
		menuCursor: ctrl.CurrentDay(),
		status:     fmt.Sprintf("Press '%s' to write, %s to mark complete, '%s' for days.", cfg.Keys.Edit, keyLabel(cfg.Keys.Toggle), cfg.Keys.Menu),
	}
}

func Run(ctrl *session.Controller, cfg config.Config) error {
	program := tea.NewProgram(New(ctrl, cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeEdit {
			return m.updateEditMode(msg)
		}
		if m.ctrl.MenuOpen() {
			return m.updateMenu(msg.String())
		}
		return m.updateNavigate(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(m.editorWidth())
	}
	return m, nil
}

func (m Model) updateNavigate(key string) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	switch key {
	case "ctrl+c", k.Quit:
		return m, tea.Quit
	case k.Prev, k.Up, "left", "up":
		if m.ctrl.CurrentDay() == 1 {
			m.status = "Already on the first day"
			return m, nil
		}
		m.ctrl.StepDay(-1)
		m.status = ""
	case k.Next, k.Down, "right", "down":
		if m.ctrl.CurrentDay() == m.ctrl.TotalDays() {
			m.status = "Already on the last day"
			return m, nil
		}
		m.ctrl.StepDay(1)
		m.status = ""
	case k.First:
		m.ctrl.SelectDay(1)
		m.status = ""
	case k.Last:
		m.ctrl.SelectDay(m.ctrl.TotalDays())
		m.status = ""
	case k.Toggle:
		day := m.ctrl.CurrentDay()
		m.ctrl.ToggleCompletion(day)
		if m.ctrl.IsCompleted(day) {
			m.status = fmt.Sprintf("Day %d completed", day)
		} else {
			m.status = fmt.Sprintf("Day %d marked incomplete", day)
		}
	case k.Edit, k.Confirm:
		return m.startEdit()
	case k.Menu:
		m.ctrl.ToggleMenu()
		m.menuCursor = m.ctrl.CurrentDay()
		m.status = "Jump to day: move, enter to open, esc to close"
	}
	return m, nil
}

func (m Model) updateMenu(key string) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	last := m.ctrl.TotalDays()
	switch key {
	case "ctrl+c", k.Quit:
		return m, tea.Quit
	case k.Menu, k.Cancel:
		m.ctrl.ToggleMenu()
		m.status = ""
	case k.Prev, "left":
		m.menuCursor = clampCursor(m.menuCursor-1, last)
	case k.Next, "right":
		m.menuCursor = clampCursor(m.menuCursor+1, last)
	case k.Up, "up":
		m.menuCursor = clampCursor(m.menuCursor-menuColumns, last)
	case k.Down, "down":
		m.menuCursor = clampCursor(m.menuCursor+menuColumns, last)
	case k.Confirm, k.Toggle:
		m.ctrl.SelectDay(m.menuCursor)
		m.status = fmt.Sprintf("Day %d", m.ctrl.CurrentDay())
	}
	return m, nil
}

func (m Model) startEdit() (tea.Model, tea.Cmd) {
	m.mode = modeEdit
	m.editor.SetValue(m.ctrl.Reflection(m.ctrl.CurrentDay()))
	m.status = fmt.Sprintf("Writing day %d reflection, %s to finish", m.ctrl.CurrentDay(), m.cfg.Keys.Cancel)
	cmd := m.editor.Focus()
	return m, cmd
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case m.cfg.Keys.Cancel, "esc":
		m.mode = modeNavigate
		m.editor.Blur()
		m.status = "Reflection saved"
		return m, nil
	}
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		m.ctrl.SetReflection(m.ctrl.CurrentDay(), after)
	}
	return m, cmd
}

func (m Model) editorWidth() int {
	w := m.width - 6
	if m.width >= wideLayout {
		w -= sidebarWidth + 2
	}
	if w < 20 {
		w = 20
	}
	return w
}

// clampCursor keeps a 1-based cursor within 1..n.
func clampCursor(cur, n int) int {
	if n <= 0 || cur < 1 {
		return 1
	}
	if cur > n {
		return n
	}
	return cur
}
