package handler

import (
	"github.com/Aman7097/taskie/internal/core/domain"
	"github.com/Aman7097/taskie/internal/core/ports"
)

// --- Request → Service input ---

func toCreateTaskInput(req createTaskRequest) ports.CreateTaskInput {
	return ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		DueDate:     req.DueDate,
	}
}

func toTaskPatch(req updateTaskRequest) ports.TaskPatch {
	patch := ports.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Order:       req.Order,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	return patch
}

// --- Domain → HTTP response ---

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		Order:       t.Order,
		CreatedAt:   t.CreatedAt,
	}
}

func toListTasksResponse(tasks []*domain.Task) listTasksResponse {
	out := listTasksResponse{Tasks: make([]taskResponse, len(tasks))}
	for i, t := range tasks {
		out.Tasks[i] = toTaskResponse(t)
	}
	return out
}
