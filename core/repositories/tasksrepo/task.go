package tasksrepo

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MinTextLength is the minimum number of characters in a subject or
// description.
const MinTextLength = 4

// Field names as they appear on the wire and in validation errors.
const (
	FieldSubject     = "subject"
	FieldDescription = "description"
)

// ValidationError reports a field that breaks the task rules.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// CheckText validates a candidate subject or description. v is whatever the
// caller received; anything that is not a string of at least MinTextLength
// characters is rejected, nil included.
func CheckText(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok || utf8.RuneCountInString(s) < MinTextLength {
		return "", &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("must be string field with at least %d characters", MinTextLength),
		}
	}
	return s, nil
}

// Task is a unit of work. Its fields are only reachable through methods so
// the subject and description rules always hold.
type Task struct {
	mu          sync.RWMutex
	id          string
	subject     string
	description string
}

// NewTask builds a task with a fresh id.
func NewTask(subject, description string) (*Task, error) {
	s, err := CheckText(FieldSubject, subject)
	if err != nil {
		return nil, err
	}
	d, err := CheckText(FieldDescription, description)
	if err != nil {
		return nil, err
	}

	return &Task{
		id:          uuid.NewString(),
		subject:     s,
		description: d,
	}, nil
}

func (t *Task) ID() string {
	return t.id
}

func (t *Task) Subject() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.subject
}

func (t *Task) Description() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.description
}

// SetSubject replaces the subject. On error the old value is kept.
func (t *Task) SetSubject(v string) error {
	s, err := CheckText(FieldSubject, v)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.subject = s
	t.mu.Unlock()
	return nil
}

// SetDescription replaces the description. On error the old value is kept.
func (t *Task) SetDescription(v string) error {
	d, err := CheckText(FieldDescription, v)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.description = d
	t.mu.Unlock()
	return nil
}

// Apply validates every field present in u and only then assigns them, so a
// rejected update leaves the task untouched.
func (t *Task) Apply(u UpdateTask) error {
	subject, hasSubject := u.Subject.Get()
	if hasSubject {
		if _, err := CheckText(FieldSubject, subject); err != nil {
			return err
		}
	}
	description, hasDescription := u.Description.Get()
	if hasDescription {
		if _, err := CheckText(FieldDescription, description); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if hasSubject {
		t.subject = subject
	}
	if hasDescription {
		t.description = description
	}
	return nil
}

// Snapshot returns a detached copy of the task's current values.
func (t *Task) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Snapshot{
		ID:          t.id,
		Subject:     t.subject,
		Description: t.description,
	}
}
