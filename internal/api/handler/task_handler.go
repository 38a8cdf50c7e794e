package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Aman7097/taskie/internal/api/metrics"
	"github.com/Aman7097/taskie/internal/api/middleware"
	"github.com/Aman7097/taskie/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. Every route is
// behind the auth middleware; the requester identity always comes from the
// context, never from the payload.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /tasks/create.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /tasks/create [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	requester, _ := c.Get(middleware.ContextUserID).(string)
	task, err := h.service.Create(c.Request().Context(), requester, toCreateTaskInput(req))
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Status)).Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// List handles GET /tasks/getAll?search=&sortBy=.
//
// @Summary      List the requester's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring matched against title or description"
// @Param        sortBy  query     string  false  "Recent | Due Date | Alphabetical"
// @Success      200     {object}  listTasksResponse
// @Router       /tasks/getAll [get]
func (h *TaskHandler) List(c echo.Context) error {
	requester, _ := c.Get(middleware.ContextUserID).(string)

	tasks, err := h.service.List(c.Request().Context(), requester, ports.ListTasksInput{
		Search: c.QueryParam("search"),
		SortBy: c.QueryParam("sortBy"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListTasksResponse(tasks))
}

// Get handles GET /tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	requester, _ := c.Get(middleware.ContextUserID).(string)

	task, err := h.service.Get(c.Request().Context(), requester, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PUT /tasks/update/:id. Partial: only the fields present in
// the payload change; this is also the drag-and-drop path (status only).
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  taskResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/update/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	requester, _ := c.Get(middleware.ContextUserID).(string)
	task, err := h.service.Update(c.Request().Context(), requester, c.Param("id"), toTaskPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /tasks/delete/:id. The record is purged; a repeat
// delete of the same id is a 404.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/delete/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	requester, _ := c.Get(middleware.ContextUserID).(string)

	if err := h.service.Delete(c.Request().Context(), requester, c.Param("id")); err != nil {
		return err
	}

	metrics.TasksDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
