// Package tasksrepo holds the Task entity and its repository.
package tasksrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/taskd/core/repositories"
	"github.com/jrazmi/taskd/sdk/logger"
)

// ========================================
// STORER INTERFACE
// ========================================

// Storer defines the data storage interface for Task. Implementations keep
// tasks in insertion order and report missing ids with
// repositories.ErrNotFound.
type Storer interface {
	Create(ctx context.Context, task *Task) error
	List(ctx context.Context) ([]*Task, error)
	GetByID(ctx context.Context, id string) (*Task, error)
	// Update finds the task and applies u to it as one step.
	Update(ctx context.Context, id string, u UpdateTask) (*Task, error)
	Remove(ctx context.Context, id string) (*Task, error)
	Count(ctx context.Context) (int, error)
}

// ========================================
// REPOSITORY
// ========================================

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Create stores task. The task is not validated again; it must have been
// built by NewTask.
func (r *Repository) Create(ctx context.Context, task *Task) (*Task, error) {
	if task == nil || task.ID() == "" {
		return nil, fmt.Errorf("task repository create: %w", repositories.ErrInvalidRecord)
	}

	if err := r.storer.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("task repository create %s: %w", task.ID(), err)
	}

	r.log.DebugContext(ctx, "task created", "task_id", task.ID())
	return task, nil
}

// List returns the stored tasks in insertion order. The slice is never nil.
func (r *Repository) List(ctx context.Context) ([]*Task, error) {
	tasks, err := r.storer.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("task repository list: %w", err)
	}
	if tasks == nil {
		tasks = []*Task{}
	}
	return tasks, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Task, error) {
	task, err := r.storer.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("task repository get by id %q: %w", id, err)
	}
	return task, nil
}

// Update applies u to the task with the given id. The lookup happens before
// any field is checked, so an unknown id reports ErrNotFound even when u is
// invalid.
func (r *Repository) Update(ctx context.Context, id string, u UpdateTask) (*Task, error) {
	task, err := r.storer.Update(ctx, id, u)
	if err != nil {
		return nil, fmt.Errorf("task repository update %q: %w", id, err)
	}

	r.log.DebugContext(ctx, "task updated", "task_id", id)
	return task, nil
}

// Remove deletes the task with the given id and returns it. The remaining
// tasks keep their relative order.
func (r *Repository) Remove(ctx context.Context, id string) (*Task, error) {
	task, err := r.storer.Remove(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("task repository remove %q: %w", id, err)
	}

	r.log.DebugContext(ctx, "task removed", "task_id", id)
	return task, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	n, err := r.storer.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("task repository count: %w", err)
	}
	return n, nil
}
