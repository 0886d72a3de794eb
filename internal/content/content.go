// Package content holds the static planner content: an ordered list of themed
// weeks, each with its ordered days.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TotalDays is the number of days a planner must cover.
const TotalDays = 30

var (
	ErrInvalidContent = errors.New("invalid content")
	ErrDayNotFound    = errors.New("day not found")
)

//go:embed planner.yaml
var defaultContent []byte

type Day struct {
	Day        int      `yaml:"day"`
	Title      string   `yaml:"title"`
	Prompt     string   `yaml:"prompt"`
	SubPrompts []string `yaml:"sub_prompts,omitempty"`
}

type Week struct {
	Week        string `yaml:"week"`
	Theme       string `yaml:"theme"`
	Description string `yaml:"description"`
	Days        []Day  `yaml:"days"`
}

// FirstDay and LastDay return 0 for a week without days.
func (w Week) FirstDay() int {
	if len(w.Days) == 0 {
		return 0
	}
	return w.Days[0].Day
}

func (w Week) LastDay() int {
	if len(w.Days) == 0 {
		return 0
	}
	return w.Days[len(w.Days)-1].Day
}

func (w Week) Contains(day int) bool {
	return len(w.Days) > 0 && day >= w.FirstDay() && day <= w.LastDay()
}

type document struct {
	Title        string   `yaml:"title"`
	Subtitle     string   `yaml:"subtitle"`
	Tagline      string   `yaml:"tagline"`
	HowToUse     []string `yaml:"how_to_use"`
	HowToUseNote string   `yaml:"how_to_use_note"`
	Weeks        []Week   `yaml:"weeks"`
}

// Store is the immutable content set. It is safe to share after Load returns.
type Store struct {
	doc   document
	byDay map[int]Day
}

// Default decodes the content compiled into the binary.
func Default() (*Store, error) {
	return Load(defaultContent)
}

// LoadFile decodes content from a YAML file on disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return Load(data)
}

// Load decodes and validates YAML content.
func Load(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	s := newStore(doc)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func newStore(doc document) *Store {
	byDay := make(map[int]Day, TotalDays)
	for _, w := range doc.Weeks {
		for _, d := range w.Days {
			if _, dup := byDay[d.Day]; !dup {
				byDay[d.Day] = d
			}
		}
	}
	return &Store{doc: doc, byDay: byDay}
}

// Validate checks that the weeks' days, concatenated in order, are exactly
// 1..TotalDays and that every day carries a title and a prompt.
func (s *Store) Validate() error {
	if len(s.doc.Weeks) == 0 {
		return fmt.Errorf("%w: no weeks", ErrInvalidContent)
	}
	next := 1
	for _, w := range s.doc.Weeks {
		if len(w.Days) == 0 {
			return fmt.Errorf("%w: %q has no days", ErrInvalidContent, w.Week)
		}
		for _, d := range w.Days {
			if d.Day != next {
				return fmt.Errorf("%w: expected day %d in %q, got %d", ErrInvalidContent, next, w.Week, d.Day)
			}
			if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Prompt) == "" {
				return fmt.Errorf("%w: day %d needs a title and a prompt", ErrInvalidContent, d.Day)
			}
			next++
		}
	}
	if total := next - 1; total != TotalDays {
		return fmt.Errorf("%w: %d days defined, want %d", ErrInvalidContent, total, TotalDays)
	}
	return nil
}

// LookupWeek returns the week whose day range contains day.
func (s *Store) LookupWeek(day int) (Week, bool) {
	for _, w := range s.doc.Weeks {
		if w.Contains(day) {
			return cloneWeek(w), true
		}
	}
	return Week{}, false
}

// LookupDay returns the day numbered day.
func (s *Store) LookupDay(day int) (Day, bool) {
	d, ok := s.byDay[day]
	if !ok {
		return Day{}, false
	}
	return cloneDay(d), true
}

// Day is LookupDay for callers that want an error.
func (s *Store) Day(day int) (Day, error) {
	d, ok := s.LookupDay(day)
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrDayNotFound, day)
	}
	return d, nil
}

func (s *Store) Weeks() []Week {
	out := make([]Week, 0, len(s.doc.Weeks))
	for _, w := range s.doc.Weeks {
		out = append(out, cloneWeek(w))
	}
	return out
}

func (s *Store) TotalDays() int { return len(s.byDay) }

func (s *Store) Title() string    { return s.doc.Title }
func (s *Store) Subtitle() string { return s.doc.Subtitle }
func (s *Store) Tagline() string  { return s.doc.Tagline }

// HowToUse returns the getting-started bullets and their closing note.
func (s *Store) HowToUse() ([]string, string) {
	return append([]string(nil), s.doc.HowToUse...), s.doc.HowToUseNote
}

func cloneWeek(w Week) Week {
	days := make([]Day, len(w.Days))
	for i, d := range w.Days {
		days[i] = cloneDay(d)
	}
	w.Days = days
	return w
}

func cloneDay(d Day) Day {
	if d.SubPrompts != nil {
		d.SubPrompts = append([]string(nil), d.SubPrompts...)
	}
	return d
}
