package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"planner/internal/config"
	"planner/internal/session"
)

const sidebarWidth = 16

func (m Model) View() string {
	v := m.ctrl.View()
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if v.MenuOpen {
		b.WriteString(m.renderMenu(v))
		b.WriteString("\n")
	}

	body := m.renderContent(v)
	if m.width >= wideLayout {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(v), " ", body)
	}
	b.WriteString(body)
	b.WriteString("\n")

	if v.ShowHowTo {
		b.WriteString(m.renderHowTo())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(renderHelp(m.cfg.Keys, m.mode)))
	return b.String()
}

func (m Model) renderHeader() string {
	c := m.ctrl.Content()
	lines := []string{titleStyle.Render("♥ " + c.Title())}
	if c.Subtitle() != "" {
		lines = append(lines, subtitleStyle.Render(c.Subtitle()))
	}
	if c.Tagline() != "" {
		lines = append(lines, mutedStyle.Render(c.Tagline()))
	}
	return strings.Join(lines, "\n")
}

// renderMenu is the compact jump grid.
func (m Model) renderMenu(v session.View) string {
	var b strings.Builder
	b.WriteString(themeStyle.Render("Jump to Day"))
	b.WriteString("\n")
	for i, badge := range v.Badges {
		cell := badgeStyle(badge.State).Render(fmt.Sprintf("%3d", badge.Day))
		if badge.Day == m.menuCursor {
			cell = cursorDayStyle.Render(">") + cell
		} else {
			cell = " " + cell
		}
		b.WriteString(cell)
		if (i+1)%menuColumns == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return paneActiveStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderSidebar(v session.View) string {
	var b strings.Builder
	b.WriteString(themeStyle.Render("Days"))
	b.WriteString("\n")
	for _, w := range m.ctrl.Content().Weeks() {
		b.WriteString(mutedStyle.Render(w.Week))
		b.WriteString("\n")
		for _, d := range w.Days {
			if d.Day < 1 || d.Day > len(v.Badges) {
				continue
			}
			badge := v.Badges[d.Day-1]
			mark := "○"
			if badge.Completed {
				mark = "✓"
			}
			b.WriteString(badgeStyle(badge.State).Render(fmt.Sprintf("%s Day %d", mark, badge.Day)))
			b.WriteString("\n")
		}
	}
	return paneStyle.Width(sidebarWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderContent(v session.View) string {
	var b strings.Builder

	if v.WeekFound {
		b.WriteString(weekStyle.Render(v.Week.Week))
		b.WriteString("\n")
		b.WriteString(themeStyle.Render(v.Week.Theme))
		b.WriteString("\n")
		if v.Week.Description != "" {
			b.WriteString(mutedStyle.Render(v.Week.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("Day %d", v.CurrentDay)))
	b.WriteString("  ")
	b.WriteString(completionButton(v.Completed))
	b.WriteString("\n\n")

	if !v.DayFound {
		b.WriteString(mutedStyle.Render("Nothing planned for this day."))
		b.WriteString("\n")
	} else {
		b.WriteString(themeStyle.Render(v.Day.Title))
		b.WriteString("\n")
		b.WriteString(italicStyle.Render(v.Day.Prompt))
		b.WriteString("\n")
		for _, sub := range v.Day.SubPrompts {
			b.WriteString(subPromptStyle.Render("  • " + sub))
			b.WriteString("\n")
		}
		b.WriteString("\n")

		b.WriteString(subtitleStyle.Render("Your Reflections"))
		b.WriteString("\n")
		b.WriteString(m.renderReflection(v))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderNav(v))

	style := paneStyle
	if m.mode == modeEdit {
		style = paneActiveStyle
	}
	return style.Render(b.String())
}

func (m Model) renderReflection(v session.View) string {
	if m.mode == modeEdit {
		return m.editor.View()
	}
	if v.Reflection == "" {
		return mutedStyle.Render("Write your thoughts here...")
	}
	return v.Reflection
}

func (m Model) renderHowTo() string {
	bullets, note := m.ctrl.Content().HowToUse()
	if len(bullets) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(themeStyle.Render("How to Use This Planner"))
	b.WriteString("\n")
	for _, line := range bullets {
		b.WriteString(weekStyle.Render("• "))
		b.WriteString(line)
		b.WriteString("\n")
	}
	if note != "" {
		b.WriteString(italicStyle.Render(note))
	}
	return paneStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderNav(v session.View) string {
	prev := "‹ Previous"
	if v.CanPrev {
		prev = navStyle.Render(prev)
	} else {
		prev = mutedStyle.Render(prev)
	}
	next := "Next ›"
	if v.CanNext {
		next = navStyle.Render(next)
	} else {
		next = mutedStyle.Render(next)
	}
	progress := mutedStyle.Render(v.ProgressLabel())
	return prev + "   " + progress + "   " + next
}

func completionButton(done bool) string {
	if done {
		return doneButtonStyle.Render("✓ Completed")
	}
	return pendingButtonStyle.Render("○ Mark Complete")
}

func badgeStyle(s session.BadgeState) lipgloss.Style {
	switch s {
	case session.BadgeActive:
		return activeDayStyle
	case session.BadgeCompleted:
		return completedDayStyle
	default:
		return plainDayStyle
	}
}

func renderHelp(k config.Keymap, md mode) string {
	if md == modeEdit {
		return fmt.Sprintf("type to write • changes save as you type • %s done • ctrl+c quit", k.Cancel)
	}
	return fmt.Sprintf("%s/%s prev/next • %s/%s first/last • %s complete • %s write • %s days • %s quit",
		k.Prev, k.Next, k.First, k.Last, keyLabel(k.Toggle), k.Edit, k.Menu, k.Quit)
}

func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
