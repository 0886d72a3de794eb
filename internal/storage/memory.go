package storage

import (
	"errors"
	"sort"
)

var (
	ErrUnavailable   = errors.New("storage unavailable")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Memory keeps values in process. It stands in when the database cannot be
// opened, and in tests. Nothing survives the process.
type Memory struct {
	values map[string]string

	// ReadErr and WriteErr, when set, are returned by every Get or Set.
	ReadErr  error
	WriteErr error
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool, error) {
	if m.ReadErr != nil {
		return "", false, m.ReadErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.values[key] = value
	return nil
}

func (m *Memory) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
