package session

import "planner/internal/content"

type BadgeState int

const (
	BadgePlain BadgeState = iota
	BadgeCompleted
	BadgeActive
)

type Badge struct {
	Day   int
	State BadgeState
	// Completed is kept separately so the active day can still show its mark.
	Completed bool
}

// View is everything a renderer needs for one frame, derived from the
// current state on each call.
type View struct {
	Week      content.Week
	WeekFound bool
	Day       content.Day
	DayFound  bool

	CurrentDay int
	Completed  bool
	Reflection string
	MenuOpen   bool

	Badges    []Badge
	Progress  int
	TotalDays int

	CanPrev   bool
	CanNext   bool
	ShowHowTo bool
}

func (c *Controller) View() View {
	cur := c.state.CurrentDay
	last := c.lastDay()

	v := View{
		CurrentDay: cur,
		Completed:  c.state.Completed.Has(cur),
		Reflection: c.state.Responses[cur],
		MenuOpen:   c.state.MenuOpen,
		Progress:   c.state.Completed.Len(),
		TotalDays:  last,
		CanPrev:    cur > 1,
		CanNext:    cur < last,
		ShowHowTo:  cur == 1,
		Badges:     make([]Badge, 0, last),
	}
	v.Week, v.WeekFound = c.content.LookupWeek(cur)
	v.Day, v.DayFound = c.content.LookupDay(cur)

	for d := 1; d <= last; d++ {
		b := Badge{Day: d, Completed: c.state.Completed.Has(d)}
		switch {
		case d == cur:
			b.State = BadgeActive
		case b.Completed:
			b.State = BadgeCompleted
		}
		v.Badges = append(v.Badges, b)
	}
	return v
}

func (v View) ProgressLabel() string { return progressLabel(v.Progress, v.TotalDays) }
