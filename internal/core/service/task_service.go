package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aman7097/taskie/internal/core/domain"
	"github.com/Aman7097/taskie/internal/core/ports"
)

// TaskService implements ownership-scoped task operations. Authorization is
// uniform: look the task up first (missing id → ErrTaskNotFound), then check
// the owner (foreign task → ErrNotAuthorized, regardless of operation).
type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

func (s *TaskService) Create(ctx context.Context, requester string, input ports.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}
	if !input.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		DueDate:     input.DueDate,
		Owner:       requester,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("owner", requester).Msg("failed to create task")
		return nil, err
	}

	return created, nil
}

func (s *TaskService) List(ctx context.Context, requester string, input ports.ListTasksInput) ([]*domain.Task, error) {
	return s.repo.List(ctx, ports.ListTasksFilter{
		Owner:  requester,
		Search: input.Search,
		Sort:   domain.ParseSortKey(input.SortBy),
	})
}

func (s *TaskService) Get(ctx context.Context, requester, id string) (*domain.Task, error) {
	return s.authorize(ctx, requester, id)
}

func (s *TaskService) Update(ctx context.Context, requester, id string, patch ports.TaskPatch) (*domain.Task, error) {
	if _, err := s.authorize(ctx, requester, id); err != nil {
		return nil, err
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *TaskService) Delete(ctx context.Context, requester, id string) error {
	if _, err := s.authorize(ctx, requester, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// authorize fetches the task and enforces ownership. The foreign-owner case
// is reported as ErrNotAuthorized, never as not-found, and the task content
// is not returned to the caller path that fails.
func (s *TaskService) authorize(ctx context.Context, requester, id string) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Owner != requester {
		return nil, domain.ErrNotAuthorized
	}
	return task, nil
}
