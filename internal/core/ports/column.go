package ports

import (
	"context"

	"github.com/Jupiter-12/kanban/internal/core/domain"
)

type ColumnRepository interface {
	Create(ctx context.Context, column *domain.Column) error
	GetByID(ctx context.Context, id uint64) (domain.Column, error)
	ListByProject(ctx context.Context, projectID uint64) ([]domain.Column, error)
	CountByProject(ctx context.Context, projectID uint64) (int, error)
	Rename(ctx context.Context, id uint64, name string) error
	Delete(ctx context.Context, id uint64) error

	// ShiftPositions adds delta to the position of every column of the
	// project whose position lies in [from, to]. A negative to means
	// unbounded above.
	ShiftPositions(ctx context.Context, projectID uint64, from, to, delta int) error
	// SetPositions assigns position = index to each column id in order.
	SetPositions(ctx context.Context, projectID uint64, orderedIDs []uint64) error
}

type ColumnService interface {
	Create(ctx context.Context, actor domain.User, projectID uint64, name string) (domain.Column, error)
	Rename(ctx context.Context, actor domain.User, id uint64, name string) (domain.Column, error)
	Delete(ctx context.Context, actor domain.User, id uint64) error
	Reorder(ctx context.Context, actor domain.User, orderedIDs []uint64) ([]domain.Column, error)
}
