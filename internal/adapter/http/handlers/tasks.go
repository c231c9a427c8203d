package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Jupiter-12/kanban/internal/adapter/http/dto"
	"github.com/Jupiter-12/kanban/internal/adapter/http/mapper"
	"github.com/Jupiter-12/kanban/internal/adapter/http/middleware"
	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c *gin.Context) {
	columnID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input := domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
	}
	if req.Priority != nil {
		input.Priority = domain.Priority(*req.Priority)
	}
	if req.DueDate != nil {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			respondInvalidPayload(c)
			return
		}
		input.DueDate = &due
	}

	task, err := h.taskService.Create(c.Request.Context(), middleware.CurrentUser(c), columnID, input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}

	// Re-read the cached body to tell "field absent" from "field: null" for
	// the nullable fields.
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}
	_, descriptionSet := raw["description"]
	_, assigneeSet := raw["assignee_id"]
	_, dueDateSet := raw["due_date"]

	input := domain.UpdateTaskInput{
		Title:          req.Title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		AssigneeID:     req.AssigneeID,
		AssigneeIDSet:  assigneeSet,
		DueDateSet:     dueDateSet,
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		input.Priority = &priority
	}
	if req.DueDate != nil {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			respondInvalidPayload(c)
			return
		}
		input.DueDate = &due
	}

	task, err := h.taskService.Update(c.Request.Context(), middleware.CurrentUser(c), id, input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) Move(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	task, err := h.taskService.Move(c.Request.Context(), middleware.CurrentUser(c), id, req.ColumnID, *req.Position)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}
