package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/taskgo/task-service/domain"
	"github.com/taskgo/task-service/repository"
)

type taskCache struct {
	inner  repository.TaskRepository
	client *redislib.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewTaskCache decorates a TaskRepository with a Redis read-through cache for
// single-task lookups. Cache failures are logged and ignored; the inner
// repository stays the source of truth.
func NewTaskCache(inner repository.TaskRepository, client *redislib.Client, ttl time.Duration, logger *zap.Logger) repository.TaskRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &taskCache{
		inner:  inner,
		client: client,
		prefix: "task:",
		ttl:    ttl,
		logger: logger,
	}
}

func (c *taskCache) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	result, err := c.client.Get(ctx, c.key(id)).Result()
	if err == nil {
		var task domain.Task
		if err := json.Unmarshal([]byte(result), &task); err == nil {
			return &task, nil
		}
		// stale or corrupt entry, fall through to storage
		c.invalidate(ctx, id)
	} else if err != redislib.Nil {
		c.logger.Warn("task cache read failed", zap.Int64("task_id", id), zap.Error(err))
	}

	task, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, task)
	return task, nil
}

// List always hits storage; owner-scoped listings are not cached because
// write invalidation would have to cover every skip/limit slice.
func (c *taskCache) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return c.inner.List(ctx, filter)
}

func (c *taskCache) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	created, err := c.inner.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	c.store(ctx, created)
	return created, nil
}

func (c *taskCache) Update(ctx context.Context, task *domain.Task) error {
	if err := c.inner.Update(ctx, task); err != nil {
		return err
	}
	c.invalidate(ctx, task.ID)
	return nil
}

func (c *taskCache) Delete(ctx context.Context, id int64) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *taskCache) store(ctx context.Context, task *domain.Task) {
	if task == nil {
		return
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(task.ID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("task cache write failed", zap.Int64("task_id", task.ID), zap.Error(err))
	}
}

func (c *taskCache) invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.logger.Warn("task cache invalidation failed", zap.Int64("task_id", id), zap.Error(err))
	}
}

func (c *taskCache) key(id int64) string {
	return fmt.Sprintf("%s%d", c.prefix, id)
}
