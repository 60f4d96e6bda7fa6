package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskgo/task-service/domain"
)

func strPtr(s string) *string { return &s }

func TestApplyMergesOnlyProvidedFields(t *testing.T) {
	task := domain.Task{
		Title:       "write report",
		Description: "quarterly numbers",
		Status:      domain.StatusPending,
	}

	task.Apply(domain.TaskPatch{Status: strPtr("completed")})

	assert.Equal(t, "write report", task.Title)
	assert.Equal(t, "quarterly numbers", task.Description)
	assert.Equal(t, "completed", task.Status)
}

func TestApplyAllowsClearingDescription(t *testing.T) {
	task := domain.Task{Title: "a", Description: "b"}

	task.Apply(domain.TaskPatch{Description: strPtr("")})

	assert.Empty(t, task.Description)
	assert.Equal(t, "a", task.Title)
}

func TestIsOwnedBy(t *testing.T) {
	task := &domain.Task{OwnerID: 7}

	assert.True(t, task.IsOwnedBy(7))
	assert.False(t, task.IsOwnedBy(8))

	var nilTask *domain.Task
	assert.False(t, nilTask.IsOwnedBy(7))
}

func TestIsDomainError(t *testing.T) {
	err := domain.WrapError(domain.ErrCodeInternal, "query failed", assert.AnError)

	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInternal))
	assert.False(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.False(t, domain.IsDomainError(assert.AnError, domain.ErrCodeInternal))
}
