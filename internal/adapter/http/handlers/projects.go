package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Jupiter-12/kanban/internal/adapter/http/dto"
	"github.com/Jupiter-12/kanban/internal/adapter/http/mapper"
	"github.com/Jupiter-12/kanban/internal/adapter/http/middleware"
	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"
	"github.com/Jupiter-12/kanban/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), middleware.CurrentUser(c), domain.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	projects, total, err := h.projectService.List(c.Request.Context(), middleware.CurrentUser(c), page, pageSize)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	c.JSON(http.StatusOK, dto.ProjectList{
		Items:    mapper.ToProjectItems(projects),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) GetBoard(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	filter, ok := parseTaskFilter(c)
	if !ok {
		return
	}

	board, err := h.projectService.GetBoard(c.Request.Context(), middleware.CurrentUser(c), id, filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToBoardResponse(board))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), middleware.CurrentUser(c), id, domain.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseTaskFilter reads the board task filter from the query string. A due_to
// date is extended to the end of its day so the range is inclusive.
func parseTaskFilter(c *gin.Context) (domain.TaskFilter, bool) {
	lang := middleware.GetLang(c)
	badRequest := func() (domain.TaskFilter, bool) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return domain.TaskFilter{}, false
	}

	filter := domain.TaskFilter{Keyword: c.Query("keyword")}

	if raw := c.Query("assignee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return badRequest()
		}
		filter.AssigneeID = &id
	}
	if raw := c.Query("priority"); raw != "" {
		priority := domain.Priority(raw)
		if !priority.Valid() {
			return badRequest()
		}
		filter.Priority = &priority
	}
	if raw := c.Query("due_from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest()
		}
		filter.DueFrom = &from
	}
	if raw := c.Query("due_to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest()
		}
		endOfDay := to.Add(24*time.Hour - time.Second)
		filter.DueTo = &endOfDay
	}

	return filter, true
}
