package tasksmemstore_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/samber/mo"

	"github.com/jrazmi/taskd/core/repositories"
	"github.com/jrazmi/taskd/core/repositories/tasksrepo"
	"github.com/jrazmi/taskd/core/repositories/tasksrepo/stores/tasksmemstore"
)

func mustTask(t *testing.T, subject string) *tasksrepo.Task {
	t.Helper()
	task, err := tasksrepo.NewTask(subject, "description")
	if err != nil {
		t.Fatal(err)
	}
	return task
}

func TestStore_OrderAndRemove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := tasksmemstore.NewStore()

	a, b, c := mustTask(t, "aaaa"), mustTask(t, "bbbb"), mustTask(t, "cccc")
	for _, task := range []*tasksrepo.Task{a, b, c} {
		if err := s.Create(ctx, task); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := s.Remove(ctx, b.ID())
	if err != nil || removed != b {
		t.Fatalf("Remove = %v, %v", removed, err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0] != a || list[1] != c {
		t.Errorf("list after remove has wrong order")
	}

	list[0] = nil
	again, _ := s.List(ctx)
	if again[0] != a {
		t.Error("List returned the internal slice")
	}
}

func TestStore_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := tasksmemstore.NewStore()

	task := mustTask(t, "abcd")
	if err := s.Create(ctx, task); err != nil {
		t.Fatal(err)
	}
	if err := s.Create(ctx, task); !errors.Is(err, repositories.ErrAlreadyExists) {
		t.Errorf("duplicate Create err = %v", err)
	}
	if _, err := s.GetByID(ctx, "invalid-id"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("GetByID err = %v", err)
	}
	if _, err := s.Update(ctx, "invalid-id", tasksrepo.UpdateTask{Subject: mo.Some("x")}); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Update err = %v", err)
	}
	if _, err := s.Remove(ctx, ""); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Remove err = %v", err)
	}
}

func TestStore_ConcurrentUpdateAndRemove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := tasksmemstore.NewStore()

	const n = 40
	tasks := make([]*tasksrepo.Task, n)
	for i := range n {
		tasks[i] = mustTask(t, fmt.Sprintf("task-%d", i))
		if err := s.Create(ctx, tasks[i]); err != nil {
			t.Fatal(err)
		}
	}

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Update(ctx, task.ID(), tasksrepo.UpdateTask{Description: mo.Some("changed")})
		}()
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = s.Remove(ctx, task.ID())
			}
			_, _ = s.List(ctx)
		}()
	}
	wg.Wait()

	if got, _ := s.Count(ctx); got != n/2 {
		t.Errorf("Count = %d, want %d", got, n/2)
	}
}
