package domain

import "time"

// StatusPending is the status assigned to tasks created without one.
const StatusPending = "pending"

// Task represents a user-owned activity item.
type Task struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Task) IsOwnedBy(userID int64) bool {
	return t != nil && t.OwnerID == userID
}

// TaskPatch carries a partial update; nil fields keep their current value.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// Apply merges the patch into the task.
func (t *Task) Apply(patch TaskPatch) {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
}
