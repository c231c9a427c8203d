package service

import (
	"context"
	"strings"

	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	tasks    ports.TaskRepository
}

var _ ports.CommentService = (*CommentService)(nil)

func NewCommentService(comments ports.CommentRepository, tasks ports.TaskRepository) *CommentService {
	return &CommentService{comments: comments, tasks: tasks}
}

// ListByTask returns the task's comments, newest first.
func (s *CommentService) ListByTask(ctx context.Context, actor domain.User, taskID uint64) ([]domain.Comment, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.comments.ListByTask(ctx, taskID)
}

func (s *CommentService) Create(ctx context.Context, actor domain.User, taskID uint64, content string) (domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return domain.Comment{}, err
	}

	comment := domain.Comment{
		TaskID:  taskID,
		UserID:  actor.ID,
		Content: content,
	}
	if err := s.comments.Create(ctx, &comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

// Delete removes a comment. Only the author may delete it, regardless of role.
func (s *CommentService) Delete(ctx context.Context, actor domain.User, id uint64) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != actor.ID {
		return domain.ErrPermissionDenied
	}
	return s.comments.Delete(ctx, id)
}
