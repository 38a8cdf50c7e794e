package ports

import (
	"context"
	"time"

	"github.com/Aman7097/taskie/internal/core/domain"
)

// ListTasksFilter carries all query parameters for listing tasks.
// Owner is always set by the service layer; repositories must never return
// a task belonging to anyone else.
type ListTasksFilter struct {
	Owner  string
	Search string // optional: case-insensitive substring on title or description
	Sort   domain.SortKey
}

// TaskPatch carries a partial task update. Nil fields are left unchanged.
// There is deliberately no owner field: ownership is immutable.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	DueDate     *time.Time
	Order       *int
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// FindByID returns the task regardless of owner; ownership checks are
	// the service's responsibility so not-found and not-authorized stay
	// distinguishable.
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
	Update(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
