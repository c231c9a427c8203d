package service

import (
	"context"

	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"
)

// ColumnService maintains the dense zero-based position invariant for the
// columns of a project: after any operation the positions are exactly 0..n-1.
type ColumnService struct {
	columns  ports.ColumnRepository
	projects ports.ProjectRepository
	tx       ports.Transactor
}

var _ ports.ColumnService = (*ColumnService)(nil)

func NewColumnService(
	columns ports.ColumnRepository,
	projects ports.ProjectRepository,
	tx ports.Transactor,
) *ColumnService {
	return &ColumnService{columns: columns, projects: projects, tx: tx}
}

func (s *ColumnService) authorize(ctx context.Context, actor domain.User, projectID uint64) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !domain.CanEdit(actor, project.OwnerID) {
		return domain.ErrPermissionDenied
	}
	return nil
}

// Create appends a column at position count(columns in project); appending
// never renumbers siblings.
func (s *ColumnService) Create(ctx context.Context, actor domain.User, projectID uint64, name string) (domain.Column, error) {
	if err := s.authorize(ctx, actor, projectID); err != nil {
		return domain.Column{}, err
	}

	column := domain.Column{Name: name, ProjectID: projectID}
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		count, err := s.columns.CountByProject(ctx, projectID)
		if err != nil {
			return err
		}
		column.Position = count
		return s.columns.Create(ctx, &column)
	})
	if err != nil {
		return domain.Column{}, err
	}
	return column, nil
}

func (s *ColumnService) Rename(ctx context.Context, actor domain.User, id uint64, name string) (domain.Column, error) {
	column, err := s.columns.GetByID(ctx, id)
	if err != nil {
		return domain.Column{}, err
	}
	if err := s.authorize(ctx, actor, column.ProjectID); err != nil {
		return domain.Column{}, err
	}
	if err := s.columns.Rename(ctx, id, name); err != nil {
		return domain.Column{}, err
	}
	return s.columns.GetByID(ctx, id)
}

// Delete removes the column and closes the gap: every sibling past the
// deleted position shifts down by one, atomically with the delete.
func (s *ColumnService) Delete(ctx context.Context, actor domain.User, id uint64) error {
	column, err := s.columns.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actor, column.ProjectID); err != nil {
		return err
	}

	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.columns.Delete(ctx, id); err != nil {
			return err
		}
		return s.columns.ShiftPositions(ctx, column.ProjectID, column.Position+1, -1, -1)
	})
}

// Reorder assigns position = index for the supplied complete ordering of one
// project's columns. Every id must exist and belong to the same project.
func (s *ColumnService) Reorder(ctx context.Context, actor domain.User, orderedIDs []uint64) ([]domain.Column, error) {
	if len(orderedIDs) == 0 {
		return nil, domain.ErrEmptyReorderList
	}

	first, err := s.columns.GetByID(ctx, orderedIDs[0])
	if err != nil {
		return nil, err
	}
	for _, id := range orderedIDs[1:] {
		column, err := s.columns.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if column.ProjectID != first.ProjectID {
			return nil, domain.ErrReorderScope
		}
	}

	if err := s.authorize(ctx, actor, first.ProjectID); err != nil {
		return nil, err
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		return s.columns.SetPositions(ctx, first.ProjectID, orderedIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.columns.ListByProject(ctx, first.ProjectID)
}
