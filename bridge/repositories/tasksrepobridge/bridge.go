package tasksrepobridge

import (
	"context"
	"errors"
	"net/http"

	"github.com/jrazmi/taskd/bridge/scaffolding/errs"
	"github.com/jrazmi/taskd/bridge/scaffolding/metrics"
	"github.com/jrazmi/taskd/core/repositories"
	"github.com/jrazmi/taskd/core/repositories/tasksrepo"
	"github.com/jrazmi/taskd/infrastructure/web"
	"github.com/jrazmi/taskd/sdk/logger"
)

// ========================================
// BRIDGE STRUCT
// ========================================

// bridge provides HTTP handlers for Task operations.
type bridge struct {
	log            *logger.Logger
	taskRepository *tasksrepo.Repository
}

func newBridge(log *logger.Logger, taskRepository *tasksrepo.Repository) *bridge {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &bridge{
		log:            log,
		taskRepository: taskRepository,
	}
}

// ========================================
// HANDLERS
// ========================================

func (b *bridge) httpList(ctx context.Context, r *http.Request) web.Encoder {
	tasks, err := b.taskRepository.List(ctx)
	if err != nil {
		return toAppError(err)
	}
	return web.NewJSONResponse(MarshalListToBridge(tasks))
}

func (b *bridge) httpGetByID(ctx context.Context, r *http.Request) web.Encoder {
	task, err := b.taskRepository.GetByID(ctx, web.Param(r, "task_id"))
	if err != nil {
		return toAppError(err)
	}
	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpCreate(ctx context.Context, r *http.Request) web.Encoder {
	input, err := decodeTaskInput(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	subject, hasSubject := input.text(tasksrepo.FieldSubject)
	description, hasDescription := input.text(tasksrepo.FieldDescription)
	if !hasSubject || !hasDescription {
		return errs.Newf(errs.InvalidArgument, "subject or description not provided")
	}

	task, err := tasksrepo.NewTask(subject, description)
	if err != nil {
		return toAppError(err)
	}
	if _, err := b.taskRepository.Create(ctx, task); err != nil {
		return toAppError(err)
	}
	b.recordCount(ctx)

	b.log.InfoContext(ctx, "task created", "task_id", task.ID())
	return web.NewJSONResponseWithStatus(MarshalToBridge(task), http.StatusCreated)
}

// httpUpdate checks for an empty update first. The repository then looks the
// task up before the task validates the supplied fields.
func (b *bridge) httpUpdate(ctx context.Context, r *http.Request) web.Encoder {
	input, err := decodeTaskInput(r)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	update := MarshalUpdateToRepository(input)
	if update.IsEmpty() {
		return errs.Newf(errs.InvalidArgument, "no task field provided")
	}

	task, err := b.taskRepository.Update(ctx, web.Param(r, "task_id"), update)
	if err != nil {
		return toAppError(err)
	}

	b.log.InfoContext(ctx, "task updated", "task_id", task.ID())
	return web.NewJSONResponse(MarshalToBridge(task))
}

func (b *bridge) httpDelete(ctx context.Context, r *http.Request) web.Encoder {
	task, err := b.taskRepository.Remove(ctx, web.Param(r, "task_id"))
	if err != nil {
		return toAppError(err)
	}
	b.recordCount(ctx)

	b.log.InfoContext(ctx, "task removed", "task_id", task.ID())
	return web.NewJSONResponse(MarshalToBridge(task))
}

// recordCount publishes the stored task count. A failed count is logged and
// the gauge keeps its last value.
func (b *bridge) recordCount(ctx context.Context) {
	n, err := b.taskRepository.Count(ctx)
	if err != nil {
		b.log.WarnContext(ctx, "task count", "err", err)
		return
	}
	metrics.SetTasks(ctx, n)
}

// toAppError maps repository and entity failures onto app error codes.
func toAppError(err error) *errs.Error {
	var verr *tasksrepo.ValidationError
	switch {
	case errors.As(err, &verr):
		return errs.Newf(errs.InvalidArgument, "%s", verr.Error())
	case errors.Is(err, repositories.ErrNotFound):
		return errs.Newf(errs.NotFound, "task not found")
	case errors.Is(err, repositories.ErrAlreadyExists):
		return errs.Newf(errs.AlreadyExists, "task already exists")
	default:
		return errs.Newf(errs.Internal, "%s", err)
	}
}
