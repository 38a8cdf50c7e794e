package ports

import (
	"context"
	"time"

	"github.com/Aman7097/taskie/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task. The owner is
// taken from the authenticated requester, never from the payload.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	DueDate     *time.Time
}

// ListTasksInput carries the query parameters of a listing request.
// SortBy is the raw client value; the service normalizes it.
type ListTasksInput struct {
	Search string
	SortBy string
}

// TaskService defines ownership-scoped use-case operations over tasks.
// Every method takes the requester's user id as resolved by the auth
// middleware; operations on another user's task fail with
// domain.ErrNotAuthorized.
type TaskService interface {
	Create(ctx context.Context, requester string, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, requester string, input ListTasksInput) ([]*domain.Task, error)
	Get(ctx context.Context, requester, id string) (*domain.Task, error)
	Update(ctx context.Context, requester, id string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, requester, id string) error
}
