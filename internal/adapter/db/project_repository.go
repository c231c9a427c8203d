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

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	OwnerID     uint64         `db:"owner_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	q := queryerFrom(ctx, r.db)

	result, err := q.ExecContext(ctx,
		`INSERT INTO projects (name, description, owner_id) VALUES (?, ?, ?);`,
		project.Name, nullString(project.Description), project.OwnerID,
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
	*project = created
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint64) (domain.Project, error) {
	q := queryerFrom(ctx, r.db)

	var row projectRow
	if err := q.GetContext(ctx, &row, `SELECT * FROM projects WHERE id = ?;`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return mapProjectRow(row), nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]domain.Project, error) {
	q := queryerFrom(ctx, r.db)

	var rows []projectRow
	err := q.SelectContext(ctx, &rows,
		`SELECT * FROM projects WHERE owner_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?;`,
		ownerID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return mapProjectRows(rows), nil
}

func (r *ProjectRepository) CountByOwner(ctx context.Context, ownerID uint64) (int, error) {
	q := queryerFrom(ctx, r.db)

	var count int
	if err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM projects WHERE owner_id = ?;`, ownerID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProjectRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Project, error) {
	q := queryerFrom(ctx, r.db)

	var rows []projectRow
	err := q.SelectContext(ctx, &rows,
		`SELECT * FROM projects ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?;`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return mapProjectRows(rows), nil
}

func (r *ProjectRepository) CountAll(ctx context.Context) (int, error) {
	q := queryerFrom(ctx, r.db)

	var count int
	if err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM projects;`); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project domain.Project) error {
	q := queryerFrom(ctx, r.db)

	_, err := q.ExecContext(ctx,
		`UPDATE projects SET name = ?, description = ? WHERE id = ?;`,
		project.Name, nullString(project.Description), project.ID,
	)
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint64) error {
	q := queryerFrom(ctx, r.db)

	// Columns, tasks and comments go with it via ON DELETE CASCADE.
	result, err := q.ExecContext(ctx, `DELETE FROM projects WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrProjectNotFound)
}

func mapProjectRow(row projectRow) domain.Project {
	project := domain.Project{
		ID:        row.ID,
		Name:      row.Name,
		OwnerID:   row.OwnerID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}
	return project
}

func mapProjectRows(rows []projectRow) []domain.Project {
	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRow(row))
	}
	return projects
}
