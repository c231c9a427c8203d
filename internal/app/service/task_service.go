package service

import (
	"context"

	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"
)

// TaskService maintains the dense zero-based position invariant for the tasks
// of a column, including moves across columns of the same project.
type TaskService struct {
	tasks    ports.TaskRepository
	columns  ports.ColumnRepository
	projects ports.ProjectRepository
	tx       ports.Transactor
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(
	tasks ports.TaskRepository,
	columns ports.ColumnRepository,
	projects ports.ProjectRepository,
	tx ports.Transactor,
) *TaskService {
	return &TaskService{tasks: tasks, columns: columns, projects: projects, tx: tx}
}

func (s *TaskService) authorize(ctx context.Context, actor domain.User, projectID uint64) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !domain.CanEdit(actor, project.OwnerID) {
		return domain.ErrPermissionDenied
	}
	return nil
}

// Create appends a task at position count(tasks in column).
func (s *TaskService) Create(ctx context.Context, actor domain.User, columnID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	column, err := s.columns.GetByID(ctx, columnID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.authorize(ctx, actor, column.ProjectID); err != nil {
		return domain.Task{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	task := domain.Task{
		Title:       input.Title,
		Description: input.Description,
		ColumnID:    columnID,
		Priority:    priority,
		AssigneeID:  input.AssigneeID,
		DueDate:     input.DueDate,
	}
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		count, err := s.tasks.CountByColumn(ctx, columnID)
		if err != nil {
			return err
		}
		task.Position = count
		return s.tasks.Create(ctx, &task)
	})
	if err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, actor domain.User, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	column, err := s.columns.GetByID(ctx, task.ColumnID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.authorize(ctx, actor, column.ProjectID); err != nil {
		return domain.Task{}, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.AssigneeIDSet {
		task.AssigneeID = input.AssigneeID
	}
	if input.DueDateSet {
		task.DueDate = input.DueDate
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return s.tasks.GetByID(ctx, id)
}

// Delete removes the task and shifts every later sibling down by one,
// atomically with the delete.
func (s *TaskService) Delete(ctx context.Context, actor domain.User, id uint64) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	column, err := s.columns.GetByID(ctx, task.ColumnID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actor, column.ProjectID); err != nil {
		return err
	}

	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.tasks.Delete(ctx, id); err != nil {
			return err
		}
		return s.tasks.ShiftPositions(ctx, task.ColumnID, task.Position+1, -1, -1)
	})
}

// Move relocates a task to position in targetColumnID. Within one column the
// siblings between the old and new slot shift by one; across columns the
// source closes its gap and the target opens one. Both renumberings and the
// task's own update run in a single transaction.
func (s *TaskService) Move(ctx context.Context, actor domain.User, id, targetColumnID uint64, position int) (domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	sourceColumn, err := s.columns.GetByID(ctx, task.ColumnID)
	if err != nil {
		return domain.Task{}, err
	}
	if err := s.authorize(ctx, actor, sourceColumn.ProjectID); err != nil {
		return domain.Task{}, err
	}

	targetColumn, err := s.columns.GetByID(ctx, targetColumnID)
	if err != nil {
		return domain.Task{}, err
	}
	if targetColumn.ProjectID != sourceColumn.ProjectID {
		return domain.Task{}, domain.ErrCrossProjectMove
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if task.ColumnID == targetColumnID {
			switch {
			case task.Position < position:
				// Siblings between the old and new slot shift left.
				if err := s.tasks.ShiftPositions(ctx, task.ColumnID, task.Position+1, position, -1); err != nil {
					return err
				}
			case task.Position > position:
				// Siblings between the new and old slot shift right.
				if err := s.tasks.ShiftPositions(ctx, task.ColumnID, position, task.Position-1, +1); err != nil {
					return err
				}
			}
		} else {
			if err := s.tasks.ShiftPositions(ctx, task.ColumnID, task.Position+1, -1, -1); err != nil {
				return err
			}
			if err := s.tasks.ShiftPositions(ctx, targetColumnID, position, -1, +1); err != nil {
				return err
			}
		}
		return s.tasks.SetColumnAndPosition(ctx, id, targetColumnID, position)
	})
	if err != nil {
		return domain.Task{}, err
	}
	return s.tasks.GetByID(ctx, id)
}
