package progress

import "sort"

// DaySet is a set of day numbers. The zero value is an empty, usable set only
// for reads; use NewDaySet before adding.
type DaySet map[int]struct{}

func NewDaySet(days ...int) DaySet {
	s := make(DaySet, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

func (s DaySet) Has(day int) bool {
	_, ok := s[day]
	return ok
}

func (s DaySet) Add(day int)    { s[day] = struct{}{} }
func (s DaySet) Remove(day int) { delete(s, day) }

// Toggle flips membership and reports whether day is now in the set.
func (s DaySet) Toggle(day int) bool {
	if s.Has(day) {
		s.Remove(day)
		return false
	}
	s.Add(day)
	return true
}

func (s DaySet) Len() int { return len(s) }

func (s DaySet) Sorted() []int {
	out := make([]int, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

func (s DaySet) Clone() DaySet {
	out := make(DaySet, len(s))
	for d := range s {
		out[d] = struct{}{}
	}
	return out
}
