package ports

import (
	"context"

	"github.com/Jupiter-12/kanban/internal/core/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uint64) (domain.Project, error)
	ListByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]domain.Project, error)
	CountByOwner(ctx context.Context, ownerID uint64) (int, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Project, error)
	CountAll(ctx context.Context) (int, error)
	Update(ctx context.Context, project domain.Project) error
	Delete(ctx context.Context, id uint64) error
}

type ProjectService interface {
	Create(ctx context.Context, actor domain.User, input domain.CreateProjectInput) (domain.Project, error)
	Get(ctx context.Context, actor domain.User, id uint64) (domain.Project, error)
	GetBoard(ctx context.Context, actor domain.User, id uint64, filter domain.TaskFilter) (domain.Board, error)
	List(ctx context.Context, actor domain.User, page, pageSize int) ([]domain.Project, int, error)
	Update(ctx context.Context, actor domain.User, id uint64, input domain.UpdateProjectInput) (domain.Project, error)
	Delete(ctx context.Context, actor domain.User, id uint64) error
}
