package handlers

import (
	"net/http"

	"github.com/Jupiter-12/kanban/internal/adapter/http/dto"
	"github.com/Jupiter-12/kanban/internal/adapter/http/mapper"
	"github.com/Jupiter-12/kanban/internal/adapter/http/middleware"
	"github.com/Jupiter-12/kanban/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListByTask(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListByTask(c.Request.Context(), middleware.CurrentUser(c), taskID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItems(comments))
}

func (h *CommentHandler) Create(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), middleware.CurrentUser(c), taskID, req.Content)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
