package transport

// TaskCreateRequest is the POST /tasks payload. Status is optional and
// defaults to "pending".
type TaskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TaskUpdateRequest is the PUT /tasks/{id} payload. Pointer fields
// distinguish "absent" from "set to zero value" for partial updates.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
