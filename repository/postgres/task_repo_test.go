package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgo/task-service/domain"
	"github.com/taskgo/task-service/repository"
	"github.com/taskgo/task-service/repository/postgres"
)

// Integration tests: run only when TEST_DATABASE_URL points at a database
// with the tasks schema applied.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM tasks")
		pool.Close()
	})
	return pool
}

func TestTaskLifecycle(t *testing.T) {
	pool := newTestPool(t)
	repo := postgres.NewTaskRepository(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Task{
		OwnerID:     1,
		Title:       "integration",
		Description: "round trip",
		Status:      domain.StatusPending,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.OwnerID, fetched.OwnerID)

	fetched.Status = "completed"
	require.NoError(t, repo.Update(ctx, fetched))

	updated, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestListScopedByOwner(t *testing.T) {
	pool := newTestPool(t)
	repo := postgres.NewTaskRepository(pool)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &domain.Task{OwnerID: 10, Title: "mine", Status: domain.StatusPending})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &domain.Task{OwnerID: 11, Title: "foreign", Status: domain.StatusPending})
	require.NoError(t, err)

	tasks, err := repo.List(ctx, repository.TaskFilter{OwnerID: 10})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.Equal(t, int64(10), task.OwnerID)
	}

	page, err := repo.List(ctx, repository.TaskFilter{OwnerID: 10, Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestUpdateMissingRowIsNotFound(t *testing.T) {
	pool := newTestPool(t)
	repo := postgres.NewTaskRepository(pool)

	err := repo.Update(context.Background(), &domain.Task{ID: -1, Title: "x"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), -1), domain.ErrTaskNotFound)
}
