package mapper

import (
	"time"

	"github.com/Jupiter-12/kanban/internal/adapter/http/dto"
	"github.com/Jupiter-12/kanban/internal/core/domain"
)

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:        comment.ID,
		TaskID:    comment.TaskID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
}
