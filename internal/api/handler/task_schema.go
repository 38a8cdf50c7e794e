package handler

import "time"

// --- Request types ---

type createTaskRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"      validate:"required"`
	DueDate     *time.Time `json:"dueDate"`
}

// updateTaskRequest is a partial update; absent fields stay untouched.
// Owner is deliberately not bindable.
type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	Order       *int       `json:"order"`
}

// --- Response types ---

// taskResponse keeps the original API's field names (the client reads _id).
type taskResponse struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Order       int        `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type listTasksResponse struct {
	Tasks []taskResponse `json:"tasks"`
}
