package ports

import (
	"context"

	"github.com/Jupiter-12/kanban/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	ListByColumn(ctx context.Context, columnID uint64) ([]domain.Task, error)
	CountByColumn(ctx context.Context, columnID uint64) (int, error)
	ListByProject(ctx context.Context, projectID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id uint64) error

	// ShiftPositions adds delta to the position of every task of the column
	// whose position lies in [from, to]. A negative to means unbounded above.
	ShiftPositions(ctx context.Context, columnID uint64, from, to, delta int) error
	// SetColumnAndPosition relocates one task in a single statement.
	SetColumnAndPosition(ctx context.Context, id, columnID uint64, position int) error
}

type TaskService interface {
	Create(ctx context.Context, actor domain.User, columnID uint64, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, actor domain.User, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, actor domain.User, id uint64) error
	Move(ctx context.Context, actor domain.User, id, targetColumnID uint64, position int) (domain.Task, error)
}
