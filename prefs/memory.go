package prefs

// MemoryStore holds the preference for the life of the process. Used by
// tests and --no-save runs.
type MemoryStore struct {
	value float64
	saved bool
}

func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LastMaxLoss() (float64, bool, error) {
	return s.value, s.saved, nil
}

func (s *MemoryStore) SaveMaxLoss(value float64) error {
	s.value = value
	s.saved = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.value = 0
	s.saved = false
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
