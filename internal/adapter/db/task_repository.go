package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"
)

const createTaskQuery = `
INSERT INTO tasks (title, description, column_id, position, priority, assignee_id, due_date)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	ColumnID    uint64         `db:"column_id"`
	Position    int            `db:"position"`
	Priority    string         `db:"priority"`
	AssigneeID  sql.NullInt64  `db:"assignee_id"`
	DueDate     sql.NullTime   `db:"due_date"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	q := queryerFrom(ctx, r.db)

	result, err := q.ExecContext(ctx, createTaskQuery,
		task.Title,
		nullString(task.Description),
		task.ColumnID,
		task.Position,
		string(task.Priority),
		nullUint64(task.AssigneeID),
		nullTime(task.DueDate),
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	created, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*task = created
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	q := queryerFrom(ctx, r.db)

	var row taskRow
	if err := q.GetContext(ctx, &row, `SELECT * FROM tasks WHERE id = ?;`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRow(row), nil
}

func (r *TaskRepository) ListByColumn(ctx context.Context, columnID uint64) ([]domain.Task, error) {
	q := queryerFrom(ctx, r.db)

	var rows []taskRow
	err := q.SelectContext(ctx, &rows,
		`SELECT * FROM tasks WHERE column_id = ? ORDER BY position;`,
		columnID,
	)
	if err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) CountByColumn(ctx context.Context, columnID uint64) (int, error) {
	q := queryerFrom(ctx, r.db)

	var count int
	if err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM tasks WHERE column_id = ?;`, columnID); err != nil {
		return 0, err
	}
	return count, nil
}

// ListByProject returns the project's tasks in column and position order,
// narrowed by the filter. The WHERE clause is assembled per set filter field.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	q := queryerFrom(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`
SELECT t.*
FROM tasks t
JOIN board_columns c ON c.id = t.column_id
WHERE c.project_id = ?`)
	args := []interface{}{projectID}

	if filter.Keyword != "" {
		sb.WriteString(` AND (t.title LIKE ? OR t.description LIKE ?)`)
		pattern := "%" + escapeLike(filter.Keyword) + "%"
		args = append(args, pattern, pattern)
	}
	if filter.AssigneeID != nil {
		sb.WriteString(` AND t.assignee_id = ?`)
		args = append(args, *filter.AssigneeID)
	}
	if filter.Priority != nil {
		sb.WriteString(` AND t.priority = ?`)
		args = append(args, string(*filter.Priority))
	}
	if filter.DueFrom != nil {
		sb.WriteString(` AND t.due_date >= ?`)
		args = append(args, *filter.DueFrom)
	}
	if filter.DueTo != nil {
		sb.WriteString(` AND t.due_date <= ?`)
		args = append(args, *filter.DueTo)
	}
	sb.WriteString(` ORDER BY t.column_id, t.position;`)

	var rows []taskRow
	if err := q.SelectContext(ctx, &rows, sb.String(), args...); err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	q := queryerFrom(ctx, r.db)

	_, err := q.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, priority = ?, assignee_id = ?, due_date = ? WHERE id = ?;`,
		task.Title,
		nullString(task.Description),
		string(task.Priority),
		nullUint64(task.AssigneeID),
		nullTime(task.DueDate),
		task.ID,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	q := queryerFrom(ctx, r.db)

	result, err := q.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrTaskNotFound)
}

func (r *TaskRepository) ShiftPositions(ctx context.Context, columnID uint64, from, to, delta int) error {
	q := queryerFrom(ctx, r.db)

	if to < 0 {
		_, err := q.ExecContext(ctx,
			`UPDATE tasks SET position = position + ? WHERE column_id = ? AND position >= ?;`,
			delta, columnID, from,
		)
		return err
	}
	_, err := q.ExecContext(ctx,
		`UPDATE tasks SET position = position + ? WHERE column_id = ? AND position >= ? AND position <= ?;`,
		delta, columnID, from, to,
	)
	return err
}

func (r *TaskRepository) SetColumnAndPosition(ctx context.Context, id, columnID uint64, position int) error {
	q := queryerFrom(ctx, r.db)

	_, err := q.ExecContext(ctx,
		`UPDATE tasks SET column_id = ?, position = ? WHERE id = ?;`,
		columnID, position, id,
	)
	return err
}

// escapeLike neutralizes LIKE metacharacters in user-supplied keywords.
func escapeLike(keyword string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(keyword)
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		ColumnID:  row.ColumnID,
		Position:  row.Position,
		Priority:  domain.Priority(row.Priority),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.AssigneeID.Valid {
		value := uint64(row.AssigneeID.Int64)
		task.AssigneeID = &value
	}
	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}

func mapTaskRows(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	return tasks
}
