package service

import (
	"context"

	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type ProjectService struct {
	projects ports.ProjectRepository
	columns  ports.ColumnRepository
	tasks    ports.TaskRepository
	tx       ports.Transactor
}

var _ ports.ProjectService = (*ProjectService)(nil)

func NewProjectService(
	projects ports.ProjectRepository,
	columns ports.ColumnRepository,
	tasks ports.TaskRepository,
	tx ports.Transactor,
) *ProjectService {
	return &ProjectService{projects: projects, columns: columns, tasks: tasks, tx: tx}
}

// Create inserts the project together with its three default columns at
// positions 0..2, in one transaction.
func (s *ProjectService) Create(ctx context.Context, actor domain.User, input domain.CreateProjectInput) (domain.Project, error) {
	project := domain.Project{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     actor.ID,
	}

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.projects.Create(ctx, &project); err != nil {
			return err
		}
		for position, name := range domain.DefaultColumnNames {
			column := domain.Column{
				Name:      name,
				ProjectID: project.ID,
				Position:  position,
			}
			if err := s.columns.Create(ctx, &column); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, actor domain.User, id uint64) (domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if !domain.CanEdit(actor, project.OwnerID) {
		return domain.Project{}, domain.ErrPermissionDenied
	}
	return project, nil
}

// GetBoard returns the project's columns with their tasks in position order,
// optionally narrowed by a task filter.
func (s *ProjectService) GetBoard(ctx context.Context, actor domain.User, id uint64, filter domain.TaskFilter) (domain.Board, error) {
	project, err := s.Get(ctx, actor, id)
	if err != nil {
		return domain.Board{}, err
	}

	columns, err := s.columns.ListByProject(ctx, id)
	if err != nil {
		return domain.Board{}, err
	}
	tasks, err := s.tasks.ListByProject(ctx, id, filter)
	if err != nil {
		return domain.Board{}, err
	}

	byColumn := make(map[uint64][]domain.Task, len(columns))
	for _, task := range tasks {
		byColumn[task.ColumnID] = append(byColumn[task.ColumnID], task)
	}

	board := domain.Board{
		Project: project,
		Columns: make([]domain.BoardColumn, 0, len(columns)),
	}
	for _, column := range columns {
		board.Columns = append(board.Columns, domain.BoardColumn{
			Column: column,
			Tasks:  byColumn[column.ID],
		})
	}
	return board, nil
}

// List returns the actor's projects, or every project for owner/admin roles,
// newest first, paginated.
func (s *ProjectService) List(ctx context.Context, actor domain.User, page, pageSize int) ([]domain.Project, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	offset := (page - 1) * pageSize

	if actor.Role == domain.RoleOwner || actor.Role == domain.RoleAdmin {
		total, err := s.projects.CountAll(ctx)
		if err != nil {
			return nil, 0, err
		}
		projects, err := s.projects.ListAll(ctx, pageSize, offset)
		if err != nil {
			return nil, 0, err
		}
		return projects, total, nil
	}

	total, err := s.projects.CountByOwner(ctx, actor.ID)
	if err != nil {
		return nil, 0, err
	}
	projects, err := s.projects.ListByOwner(ctx, actor.ID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (s *ProjectService) Update(ctx context.Context, actor domain.User, id uint64, input domain.UpdateProjectInput) (domain.Project, error) {
	project, err := s.Get(ctx, actor, id)
	if err != nil {
		return domain.Project{}, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if err := s.projects.Update(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, actor domain.User, id uint64) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}
