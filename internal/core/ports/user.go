package ports

import (
	"context"

	"github.com/Jupiter-12/kanban/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context, onlyActive bool) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
	UpdateRole(ctx context.Context, id uint64, role domain.Role) error
	SetActive(ctx context.Context, id uint64, active bool) error
	Delete(ctx context.Context, id uint64) error
}

type UserService interface {
	ListActive(ctx context.Context) ([]domain.User, error)
	ListAll(ctx context.Context, actor domain.User) ([]domain.User, error)
	ChangeRole(ctx context.Context, actor domain.User, id uint64, role domain.Role) (domain.User, error)
	SetActive(ctx context.Context, actor domain.User, id uint64, active bool) (domain.User, error)
	Delete(ctx context.Context, actor domain.User, id uint64) error
}
