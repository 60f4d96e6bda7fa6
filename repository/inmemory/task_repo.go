package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taskgo/task-service/domain"
	"github.com/taskgo/task-service/repository"
)

type taskRepository struct {
	mu     sync.RWMutex
	tasks  map[int64]domain.Task
	nextID int64
}

// NewTaskRepository returns a map-backed TaskRepository. It mirrors the
// Postgres implementation's semantics (ids, ordering, clamping) so it can
// stand in for it in tests and local runs.
func NewTaskRepository() repository.TaskRepository {
	return &taskRepository{
		tasks:  make(map[int64]domain.Task),
		nextID: 1,
	}
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []domain.Task
	for _, task := range r.tasks {
		if task.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		tasks = append(tasks, task)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID > tasks[j].ID
	})

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(tasks) {
		return nil, nil
	}
	tasks = tasks[offset:]

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if limit < len(tasks) {
		tasks = tasks[:limit]
	}
	return tasks, nil
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	task.ID = r.nextID
	r.nextID++
	task.CreatedAt = now
	task.UpdatedAt = now

	r.tasks[task.ID] = *task
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.tasks[task.ID]
	if !ok {
		return domain.ErrTaskNotFound
	}

	task.OwnerID = current.OwnerID
	task.CreatedAt = current.CreatedAt
	task.UpdatedAt = time.Now()
	r.tasks[task.ID] = *task
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}
