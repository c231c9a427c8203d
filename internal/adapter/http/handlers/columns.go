package handlers

import (
	"net/http"

	"github.com/Jupiter-12/kanban/internal/adapter/http/dto"
	"github.com/Jupiter-12/kanban/internal/adapter/http/mapper"
	"github.com/Jupiter-12/kanban/internal/adapter/http/middleware"
	"github.com/Jupiter-12/kanban/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	columnService ports.ColumnService
}

func NewColumnHandler(columnService ports.ColumnService) *ColumnHandler {
	return &ColumnHandler{columnService: columnService}
}

func (h *ColumnHandler) Create(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	column, err := h.columnService.Create(c.Request.Context(), middleware.CurrentUser(c), projectID, req.Name)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToColumnItem(column))
}

func (h *ColumnHandler) Rename(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.RenameColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	column, err := h.columnService.Rename(c.Request.Context(), middleware.CurrentUser(c), id, req.Name)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToColumnItem(column))
}

func (h *ColumnHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.columnService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Reorder takes the complete new ordering of one project's columns and
// returns them renumbered.
func (h *ColumnHandler) Reorder(c *gin.Context) {
	var req dto.ReorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	columns, err := h.columnService.Reorder(c.Request.Context(), middleware.CurrentUser(c), req.ColumnIDs)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToColumnItems(columns))
}
