package draft

import (
	"errors"
	"sync"

	"workoutlogger/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("draft session not found")
	ErrUnsavedChanges  = errors.New("draft has unsaved changes")
)

// Manager owns the live drafts, one per UI session, keyed by an opaque
// session id. A session holds exactly one draft at a time; beginning a new
// draft for the same id replaces nothing — the old session must be ended
// first.
type Manager struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewManager creates an empty draft manager.
func NewManager() *Manager {
	return &Manager{drafts: make(map[string]*Draft)}
}

// Begin starts a blank draft and returns its session id.
func (m *Manager) Begin() (string, *Draft) {
	d := New()
	id := uuid.NewString()

	m.mu.Lock()
	m.drafts[id] = d
	m.mu.Unlock()
	return id, d
}

// BeginEdit starts a draft seeded from a persisted workout.
func (m *Manager) BeginEdit(w *domain.Workout) (string, *Draft) {
	d := NewFromWorkout(w)
	id := uuid.NewString()

	m.mu.Lock()
	m.drafts[id] = d
	m.mu.Unlock()
	return id, d
}

// Get returns the draft for a session id.
func (m *Manager) Get(id string) (*Draft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.drafts[id]
	return d, ok
}

// End drops a session's draft. A dirty draft is refused; callers either save
// it first or discard it through RequestDiscard.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.drafts[id]
	if !ok {
		return ErrSessionNotFound
	}
	if d.Dirty() {
		return ErrUnsavedChanges
	}
	delete(m.drafts, id)
	return nil
}

// RequestDiscard stages dropping a session's draft regardless of unsaved
// changes. No store call is involved; the draft simply ceases to exist once
// confirmed.
func (m *Manager) RequestDiscard(id string) (*Confirmation, error) {
	m.mu.Lock()
	d, ok := m.drafts[id]
	m.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	return newConfirmation(d, func() error {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.drafts[id]; !ok {
			return ErrSessionNotFound
		}
		delete(m.drafts, id)
		return nil
	}), nil
}
