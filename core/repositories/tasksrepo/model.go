package tasksrepo

import "github.com/samber/mo"

// Snapshot is the plain record form of a Task.
type Snapshot struct {
	ID          string `json:"_id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// UpdateTask carries the fields to change. A None field is left as is.
type UpdateTask struct {
	Subject     mo.Option[string]
	Description mo.Option[string]
}

// IsEmpty reports whether no field is present.
func (u UpdateTask) IsEmpty() bool {
	return u.Subject.IsAbsent() && u.Description.IsAbsent()
}
