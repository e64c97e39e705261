package planner

import "sync"

// PlanStore holds the plan generated most recently for the active session.
// Setting a new value fully replaces the prior one; there is no history and
// nothing is durably persisted.
type PlanStore struct {
	mu      sync.RWMutex
	current Outcome
	loading bool
}

// NewPlanStore creates an empty store.
func NewPlanStore() *PlanStore {
	return &PlanStore{}
}

// Set replaces the held value unconditionally.
func (s *PlanStore) Set(o Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = o
}

// Clear resets the store to the no-plan state.
func (s *PlanStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Outcome{}
}

// Current returns the latest written value.
func (s *PlanStore) Current() Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// BeginGeneration marks a generation as in flight. It returns false when one
// is already running, so the caller can reject the duplicate submission.
func (s *PlanStore) BeginGeneration() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return false
	}
	s.loading = true
	return true
}

// EndGeneration clears the in-flight flag.
func (s *PlanStore) EndGeneration() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

// Loading reports whether a generation is currently in flight.
func (s *PlanStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
