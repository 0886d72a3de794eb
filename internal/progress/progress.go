// Package progress persists the completion set and the reflections map under
// two fixed keys of a storage.KV, JSON encoded.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"

	"planner/internal/storage"
)

const (
	CompletedKey = "7intimacies_completed"
	ResponsesKey = "7intimacies_responses"
)

var ErrMalformed = errors.New("malformed record")

// Status explains where a loaded value came from.
type Status int

const (
	// Loaded means the record existed and decoded.
	Loaded Status = iota
	// Absent means nothing was stored yet.
	Absent
	// Malformed means the record existed but did not decode.
	Malformed
	// Unavailable means the backend could not be read.
	Unavailable
)

func (s Status) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Absent:
		return "absent"
	case Malformed:
		return "malformed"
	case Unavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result always carries a usable Value; on any Status other than Loaded it is
// the empty default and Err holds the cause, if any.
type Result[T any] struct {
	Value  T
	Status Status
	Err    error
}

func (r Result[T]) OK() bool { return r.Status == Loaded }

type Adapter struct {
	kv     storage.KV
	maxDay int
}

// New binds an adapter to kv. Days outside 1..maxDay found in storage are
// dropped on load.
func New(kv storage.KV, maxDay int) *Adapter {
	return &Adapter{kv: kv, maxDay: maxDay}
}

func (a *Adapter) inRange(day int) bool {
	return day >= 1 && day <= a.maxDay
}

func (a *Adapter) LoadCompleted() Result[DaySet] {
	empty := NewDaySet()
	raw, status, err := a.read(CompletedKey)
	if status != Loaded {
		return Result[DaySet]{Value: empty, Status: status, Err: err}
	}
	var days []int
	if err := json.Unmarshal([]byte(raw), &days); err != nil {
		return Result[DaySet]{Value: empty, Status: Malformed, Err: fmt.Errorf("%w: %s: %v", ErrMalformed, CompletedKey, err)}
	}
	set := NewDaySet()
	for _, d := range days {
		if a.inRange(d) {
			set.Add(d)
		}
	}
	return Result[DaySet]{Value: set, Status: Loaded}
}

func (a *Adapter) SaveCompleted(days DaySet) error {
	payload, err := json.Marshal(days.Sorted())
	if err != nil {
		return fmt.Errorf("marshal completed days: %w", err)
	}
	if err := a.kv.Set(CompletedKey, string(payload)); err != nil {
		return fmt.Errorf("write %s: %w", CompletedKey, err)
	}
	return nil
}

func (a *Adapter) LoadResponses() Result[map[int]string] {
	raw, status, err := a.read(ResponsesKey)
	if status != Loaded {
		return Result[map[int]string]{Value: map[int]string{}, Status: status, Err: err}
	}
	var decoded map[int]string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return Result[map[int]string]{Value: map[int]string{}, Status: Malformed, Err: fmt.Errorf("%w: %s: %v", ErrMalformed, ResponsesKey, err)}
	}
	out := make(map[int]string, len(decoded))
	for d, text := range decoded {
		if a.inRange(d) {
			out[d] = text
		}
	}
	return Result[map[int]string]{Value: out, Status: Loaded}
}

func (a *Adapter) SaveResponses(responses map[int]string) error {
	payload, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}
	if err := a.kv.Set(ResponsesKey, string(payload)); err != nil {
		return fmt.Errorf("write %s: %w", ResponsesKey, err)
	}
	return nil
}

func (a *Adapter) read(key string) (string, Status, error) {
	raw, ok, err := a.kv.Get(key)
	if err != nil {
		return "", Unavailable, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return "", Absent, nil
	}
	return raw, Loaded, nil
}
