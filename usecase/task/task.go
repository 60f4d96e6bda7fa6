package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskgo/task-service/domain"
	"github.com/taskgo/task-service/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.tasks.List(ctx, filter)
}

// GetTask fetches a task and enforces ownership. A missing task reports
// not-found before the owner check so callers cannot probe foreign ids.
func (uc *UseCase) GetTask(ctx context.Context, id, ownerID int64) (*domain.Task, error) {
	return uc.ownedTask(ctx, id, ownerID)
}

func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil || task.Title == "" {
		return nil, domain.ErrInvalidPayload
	}
	if task.Status == "" {
		task.Status = domain.StatusPending
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task created",
		zap.Int64("task_id", created.ID),
		zap.Int64("owner_id", created.OwnerID),
	)
	return created, nil
}

func (uc *UseCase) UpdateTask(ctx context.Context, id, ownerID int64, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := uc.ownedTask(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	task.Apply(patch)
	if task.Title == "" {
		return nil, domain.ErrInvalidPayload
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	uc.logger.Info("task updated", zap.Int64("task_id", task.ID))
	return task, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, id, ownerID int64) error {
	if _, err := uc.ownedTask(ctx, id, ownerID); err != nil {
		return err
	}

	if err := uc.tasks.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("task deleted", zap.Int64("task_id", id))
	return nil
}

func (uc *UseCase) ownedTask(ctx context.Context, id, ownerID int64) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !task.IsOwnedBy(ownerID) {
		return nil, domain.ErrTaskForbidden
	}
	return task, nil
}
