package repository

import (
	"context"

	"github.com/taskgo/task-service/domain"
)

// TaskFilter narrows List results. OwnerID is mandatory for callers that must
// not see foreign tasks; the repository applies it verbatim.
type TaskFilter struct {
	OwnerID int64
	Status  string
	Limit   int
	Offset  int
}

type TaskRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
}
