// Package session owns the planner's in-memory state and every transition a
// user action can cause. Each transition runs to completion synchronously and
// writes through to the persister before returning.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"planner/internal/content"
	"planner/internal/progress"
)

// Persister is the persistence surface the controller depends on.
type Persister interface {
	LoadCompleted() progress.Result[progress.DaySet]
	SaveCompleted(progress.DaySet) error
	LoadResponses() progress.Result[map[int]string]
	SaveResponses(map[int]string) error
}

type State struct {
	CurrentDay int
	Completed  progress.DaySet
	Responses  map[int]string
	MenuOpen   bool
}

func initialState() State {
	return State{
		CurrentDay: 1,
		Completed:  progress.NewDaySet(),
		Responses:  map[int]string{},
	}
}

func (s State) clone() State {
	responses := make(map[int]string, len(s.Responses))
	for d, text := range s.Responses {
		responses[d] = text
	}
	s.Completed = s.Completed.Clone()
	s.Responses = responses
	return s
}

// HydrateReport records how each persisted record was read.
type HydrateReport struct {
	Completed progress.Status
	Responses progress.Status
}

type Controller struct {
	content *content.Store
	store   Persister
	logger  *zap.Logger
	state   State
}

func NewController(c *content.Store, store Persister, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		content: c,
		store:   store,
		logger:  logger,
		state:   initialState(),
	}
}

func (c *Controller) lastDay() int { return content.TotalDays }

// TotalDays is the last selectable day.
func (c *Controller) TotalDays() int { return c.lastDay() }

// Hydrate loads persisted completion and reflections once. Any record that is
// not cleanly loaded leaves its empty default in place.
func (c *Controller) Hydrate() HydrateReport {
	completed := c.store.LoadCompleted()
	if completed.OK() {
		c.state.Completed = completed.Value
	} else {
		c.logLoad(progress.CompletedKey, completed.Status, completed.Err)
	}

	responses := c.store.LoadResponses()
	if responses.OK() {
		c.state.Responses = responses.Value
	} else {
		c.logLoad(progress.ResponsesKey, responses.Status, responses.Err)
	}

	c.logger.Info("session hydrated",
		zap.Stringer("completed", completed.Status),
		zap.Stringer("responses", responses.Status),
		zap.Int("completed_days", c.state.Completed.Len()),
		zap.Int("reflections", len(c.state.Responses)))
	return HydrateReport{Completed: completed.Status, Responses: responses.Status}
}

func (c *Controller) logLoad(key string, status progress.Status, err error) {
	if status == progress.Absent {
		c.logger.Debug("no stored record", zap.String("key", key))
		return
	}
	c.logger.Warn("using empty defaults", zap.String("key", key), zap.Stringer("status", status), zap.Error(err))
}

// SelectDay clamps n into the planner's range and closes the day menu.
func (c *Controller) SelectDay(n int) {
	c.state.CurrentDay = clampDay(n, c.lastDay())
	c.state.MenuOpen = false
}

// StepDay moves relative to the current day; it never wraps.
func (c *Controller) StepDay(delta int) {
	c.SelectDay(c.state.CurrentDay + delta)
}

// ToggleCompletion flips n in the completion set and writes the whole set.
// Days outside the planner are ignored.
func (c *Controller) ToggleCompletion(n int) {
	if !c.inRange(n) {
		return
	}
	done := c.state.Completed.Toggle(n)
	c.logger.Debug("completion toggled", zap.Int("day", n), zap.Bool("done", done))
	if err := c.store.SaveCompleted(c.state.Completed); err != nil {
		c.logger.Warn("completion not persisted", zap.Int("day", n), zap.Error(err))
	}
}

// SetReflection stores text verbatim for day n and writes every reflection.
func (c *Controller) SetReflection(n int, text string) {
	if !c.inRange(n) {
		return
	}
	c.state.Responses[n] = text
	if err := c.store.SaveResponses(c.state.Responses); err != nil {
		c.logger.Warn("reflection not persisted", zap.Int("day", n), zap.Error(err))
	}
}

func (c *Controller) ToggleMenu() {
	c.state.MenuOpen = !c.state.MenuOpen
}

func (c *Controller) CurrentDay() int { return c.state.CurrentDay }
func (c *Controller) MenuOpen() bool  { return c.state.MenuOpen }

func (c *Controller) IsCompleted(n int) bool { return c.state.Completed.Has(n) }

// Reflection returns "" for a day without a written reflection.
func (c *Controller) Reflection(n int) string { return c.state.Responses[n] }

// Progress is the number of completed days.
func (c *Controller) Progress() int { return c.state.Completed.Len() }

func (c *Controller) ProgressLabel() string {
	return progressLabel(c.Progress(), c.lastDay())
}

func progressLabel(done, total int) string {
	return fmt.Sprintf("%d / %d days completed", done, total)
}

// State returns a copy the caller may keep.
func (c *Controller) State() State { return c.state.clone() }

func (c *Controller) Content() *content.Store { return c.content }

func (c *Controller) inRange(n int) bool { return n >= 1 && n <= c.lastDay() }

func clampDay(n, last int) int {
	if n < 1 {
		return 1
	}
	if n > last {
		return last
	}
	return n
}
