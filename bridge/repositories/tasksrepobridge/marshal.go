package tasksrepobridge

import (
	"github.com/samber/mo"

	"github.com/jrazmi/taskd/core/repositories/tasksrepo"
)

func MarshalToBridge(task *tasksrepo.Task) Task {
	snap := task.Snapshot()
	return Task{
		ID:          snap.ID,
		Subject:     snap.Subject,
		Description: snap.Description,
	}
}

// MarshalListToBridge converts a list of core models to bridge models
func MarshalListToBridge(tasks []*tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalUpdateToRepository converts the present fields of a request body
// into a repository update. Validation is left to the task.
func MarshalUpdateToRepository(input taskInput) tasksrepo.UpdateTask {
	var update tasksrepo.UpdateTask
	if s, ok := input.text(tasksrepo.FieldSubject); ok {
		update.Subject = mo.Some(s)
	}
	if d, ok := input.text(tasksrepo.FieldDescription); ok {
		update.Description = mo.Some(d)
	}
	return update
}
