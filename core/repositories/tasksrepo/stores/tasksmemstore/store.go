// Package tasksmemstore keeps tasks in process memory.
package tasksmemstore

import (
	"context"
	"slices"
	"sync"

	"github.com/jrazmi/taskd/core/repositories"
	"github.com/jrazmi/taskd/core/repositories/tasksrepo"
)

// Store is an insertion-ordered task collection guarded by one lock.
type Store struct {
	mu    sync.RWMutex
	tasks []*tasksrepo.Task
}

func NewStore() *Store {
	return &Store{
		tasks: make([]*tasksrepo.Task, 0),
	}
}

func (s *Store) Create(ctx context.Context, task *tasksrepo.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(task.ID()) >= 0 {
		return repositories.ErrAlreadyExists
	}
	s.tasks = append(s.tasks, task)
	return nil
}

// List returns a copy of the collection.
func (s *Store) List(ctx context.Context) ([]*tasksrepo.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.tasks), nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*tasksrepo.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	return s.tasks[i], nil
}

// Update holds the write lock across lookup and Apply, so a concurrent
// Remove cannot slip in between.
func (s *Store) Update(ctx context.Context, id string, u tasksrepo.UpdateTask) (*tasksrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}

	task := s.tasks[i]
	if err := task.Apply(u); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Store) Remove(ctx context.Context, id string) (*tasksrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}

	task := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return task, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks), nil
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.tasks, func(t *tasksrepo.Task) bool {
		return t.ID() == id
	})
}
