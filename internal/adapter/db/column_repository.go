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

type ColumnRepository struct {
	db *sqlx.DB
}

type columnRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	ProjectID uint64    `db:"project_id"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.ColumnRepository = (*ColumnRepository)(nil)

func NewColumnRepository(db *sqlx.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) Create(ctx context.Context, column *domain.Column) error {
	q := queryerFrom(ctx, r.db)

	result, err := q.ExecContext(ctx,
		`INSERT INTO board_columns (name, project_id, position) VALUES (?, ?, ?);`,
		column.Name, column.ProjectID, column.Position,
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
	*column = created
	return nil
}

func (r *ColumnRepository) GetByID(ctx context.Context, id uint64) (domain.Column, error) {
	q := queryerFrom(ctx, r.db)

	var row columnRow
	if err := q.GetContext(ctx, &row, `SELECT * FROM board_columns WHERE id = ?;`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Column{}, domain.ErrColumnNotFound
		}
		return domain.Column{}, err
	}
	return mapColumnRow(row), nil
}

func (r *ColumnRepository) ListByProject(ctx context.Context, projectID uint64) ([]domain.Column, error) {
	q := queryerFrom(ctx, r.db)

	var rows []columnRow
	err := q.SelectContext(ctx, &rows,
		`SELECT * FROM board_columns WHERE project_id = ? ORDER BY position;`,
		projectID,
	)
	if err != nil {
		return nil, err
	}

	columns := make([]domain.Column, 0, len(rows))
	for _, row := range rows {
		columns = append(columns, mapColumnRow(row))
	}
	return columns, nil
}

func (r *ColumnRepository) CountByProject(ctx context.Context, projectID uint64) (int, error) {
	q := queryerFrom(ctx, r.db)

	var count int
	err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM board_columns WHERE project_id = ?;`, projectID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ColumnRepository) Rename(ctx context.Context, id uint64, name string) error {
	q := queryerFrom(ctx, r.db)

	_, err := q.ExecContext(ctx, `UPDATE board_columns SET name = ? WHERE id = ?;`, name, id)
	return err
}

func (r *ColumnRepository) Delete(ctx context.Context, id uint64) error {
	q := queryerFrom(ctx, r.db)

	result, err := q.ExecContext(ctx, `DELETE FROM board_columns WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrColumnNotFound)
}

func (r *ColumnRepository) ShiftPositions(ctx context.Context, projectID uint64, from, to, delta int) error {
	q := queryerFrom(ctx, r.db)

	if to < 0 {
		_, err := q.ExecContext(ctx,
			`UPDATE board_columns SET position = position + ? WHERE project_id = ? AND position >= ?;`,
			delta, projectID, from,
		)
		return err
	}
	_, err := q.ExecContext(ctx,
		`UPDATE board_columns SET position = position + ? WHERE project_id = ? AND position >= ? AND position <= ?;`,
		delta, projectID, from, to,
	)
	return err
}

func (r *ColumnRepository) SetPositions(ctx context.Context, projectID uint64, orderedIDs []uint64) error {
	q := queryerFrom(ctx, r.db)

	for index, id := range orderedIDs {
		_, err := q.ExecContext(ctx,
			`UPDATE board_columns SET position = ? WHERE id = ? AND project_id = ?;`,
			index, id, projectID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func mapColumnRow(row columnRow) domain.Column {
	return domain.Column{
		ID:        row.ID,
		Name:      row.Name,
		ProjectID: row.ProjectID,
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
