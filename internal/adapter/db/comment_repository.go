package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"
)

type CommentRepository struct {
	db *sqlx.DB
}

type commentRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	UserID    uint64    `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	q := queryerFrom(ctx, r.db)

	result, err := q.ExecContext(ctx,
		`INSERT INTO comments (task_id, user_id, content) VALUES (?, ?, ?);`,
		comment.TaskID, comment.UserID, comment.Content,
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
	*comment = created
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint64) (domain.Comment, error) {
	q := queryerFrom(ctx, r.db)

	var row commentRow
	if err := q.GetContext(ctx, &row, `SELECT * FROM comments WHERE id = ?;`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, domain.ErrCommentNotFound
		}
		return domain.Comment{}, err
	}
	return mapCommentRow(row), nil
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	q := queryerFrom(ctx, r.db)

	var rows []commentRow
	err := q.SelectContext(ctx, &rows,
		`SELECT * FROM comments WHERE task_id = ? ORDER BY created_at DESC, id DESC;`,
		taskID,
	)
	if err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, mapCommentRow(row))
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint64) error {
	q := queryerFrom(ctx, r.db)

	result, err := q.ExecContext(ctx, `DELETE FROM comments WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrCommentNotFound)
}

func mapCommentRow(row commentRow) domain.Comment {
	return domain.Comment{
		ID:        row.ID,
		TaskID:    row.TaskID,
		UserID:    row.UserID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
	}
}
