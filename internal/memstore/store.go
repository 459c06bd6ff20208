package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/mergington/activities/internal/domain/activity"
	"github.com/mergington/activities/internal/repository"
)

// Store is an in-memory activity repository. Activities are held in seed
// order; a single mutex guards check-then-mutate sequences so roster
// uniqueness holds under concurrent requests.
type Store struct {
	mu     sync.Mutex
	order  []string
	byName map[string]*activity.Activity
	seed   []activity.Activity
}

// New creates a store seeded with the given activities. The seed is copied
// and kept so Reset can restore it.
func New(seed []activity.Activity) *Store {
	s := &Store{seed: cloneAll(seed)}
	s.load(s.seed)
	return s
}

// Reset restores the store to its seed snapshot. Used by test fixtures.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(s.seed)
}

func (s *Store) load(acts []activity.Activity) {
	s.order = make([]string, 0, len(acts))
	s.byName = make(map[string]*activity.Activity, len(acts))
	for _, act := range acts {
		copied := clone(act)
		s.order = append(s.order, copied.Name)
		s.byName[copied.Name] = &copied
	}
}

// List returns copies of all activities in seed order.
func (s *Store) List(_ context.Context) ([]activity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acts := make([]activity.Activity, 0, len(s.order))
	for _, name := range s.order {
		acts = append(acts, clone(*s.byName[name]))
	}
	return acts, nil
}

// Get returns a copy of the named activity. Names are case-sensitive.
func (s *Store) Get(_ context.Context, name string) (*activity.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.byName[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := clone(*act)
	return &copied, nil
}

// AddParticipant appends email to the roster of the named activity.
func (s *Store) AddParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.byName[name]
	if !ok {
		return repository.ErrNotFound
	}
	if slices.Contains(act.Participants, email) {
		return repository.ErrDuplicate
	}
	act.Participants = append(act.Participants, email)
	return nil
}

// RemoveParticipant removes email from the roster of the named activity,
// keeping the remaining entries in order.
func (s *Store) RemoveParticipant(_ context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.byName[name]
	if !ok {
		return repository.ErrNotFound
	}
	i := slices.Index(act.Participants, email)
	if i < 0 {
		return repository.ErrNotMember
	}
	act.Participants = slices.Delete(act.Participants, i, i+1)
	return nil
}

func clone(act activity.Activity) activity.Activity {
	act.Participants = slices.Clone(act.Participants)
	if act.Participants == nil {
		act.Participants = []string{}
	}
	return act
}

func cloneAll(acts []activity.Activity) []activity.Activity {
	copied := make([]activity.Activity, len(acts))
	for i, act := range acts {
		copied[i] = clone(act)
	}
	return copied
}
