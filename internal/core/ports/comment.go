package ports

import (
	"context"

	"github.com/Jupiter-12/kanban/internal/core/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uint64) (domain.Comment, error)
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error)
	Delete(ctx context.Context, id uint64) error
}

type CommentService interface {
	ListByTask(ctx context.Context, actor domain.User, taskID uint64) ([]domain.Comment, error)
	Create(ctx context.Context, actor domain.User, taskID uint64, content string) (domain.Comment, error)
	Delete(ctx context.Context, actor domain.User, id uint64) error
}
