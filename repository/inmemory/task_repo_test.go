package inmemory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskgo/task-service/domain"
	"github.com/taskgo/task-service/repository"
	"github.com/taskgo/task-service/repository/inmemory"
)

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	repo := inmemory.NewTaskRepository()

	created, err := repo.Create(context.Background(), &domain.Task{OwnerID: 1, Title: "A", Status: "pending"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	second, err := repo.Create(context.Background(), &domain.Task{OwnerID: 1, Title: "B", Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestGetByIDUnknownIsNotFound(t *testing.T) {
	repo := inmemory.NewTaskRepository()

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestListScopesToOwner(t *testing.T) {
	repo := inmemory.NewTaskRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &domain.Task{OwnerID: 1, Title: fmt.Sprintf("mine %d", i), Status: "pending"})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, &domain.Task{OwnerID: 2, Title: "foreign", Status: "pending"})
	require.NoError(t, err)

	tasks, err := repo.List(ctx, repository.TaskFilter{OwnerID: 1})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for _, task := range tasks {
		assert.Equal(t, int64(1), task.OwnerID)
	}
}

func TestListAppliesOffsetAndLimit(t *testing.T) {
	repo := inmemory.NewTaskRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, &domain.Task{OwnerID: 1, Title: fmt.Sprintf("t%d", i), Status: "pending"})
		require.NoError(t, err)
	}

	tasks, err := repo.List(ctx, repository.TaskFilter{OwnerID: 1, Offset: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = repo.List(ctx, repository.TaskFilter{OwnerID: 1, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// negative values clamp instead of failing
	tasks, err = repo.List(ctx, repository.TaskFilter{OwnerID: 1, Offset: -1, Limit: -5})
	require.NoError(t, err)
	assert.Len(t, tasks, 5)
}

func TestListNewestFirst(t *testing.T) {
	repo := inmemory.NewTaskRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &domain.Task{OwnerID: 1, Title: fmt.Sprintf("t%d", i), Status: "pending"})
		require.NoError(t, err)
	}

	tasks, err := repo.List(ctx, repository.TaskFilter{OwnerID: 1})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.True(t, tasks[0].ID > tasks[1].ID && tasks[1].ID > tasks[2].ID)
}

func TestUpdatePreservesOwnerAndCreatedAt(t *testing.T) {
	repo := inmemory.NewTaskRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Task{OwnerID: 1, Title: "A", Status: "pending"})
	require.NoError(t, err)

	modified := *created
	modified.OwnerID = 99
	modified.Title = "B"
	require.NoError(t, repo.Update(ctx, &modified))

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.OwnerID)
	assert.Equal(t, "B", stored.Title)
	assert.Equal(t, created.CreatedAt, stored.CreatedAt)
}

func TestUpdateUnknownIsNotFound(t *testing.T) {
	repo := inmemory.NewTaskRepository()

	err := repo.Update(context.Background(), &domain.Task{ID: 42, Title: "x"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDeleteRemovesTask(t *testing.T) {
	repo := inmemory.NewTaskRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Task{OwnerID: 1, Title: "A", Status: "pending"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrTaskNotFound)
}
