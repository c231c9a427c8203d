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

const createUserQuery = `
INSERT INTO users (username, email, password_hash, display_name, avatar_url, role, active)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64         `db:"id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	DisplayName  sql.NullString `db:"display_name"`
	AvatarURL    sql.NullString `db:"avatar_url"`
	Role         string         `db:"role"`
	Active       bool           `db:"active"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	q := queryerFrom(ctx, r.db)

	result, err := q.ExecContext(ctx, createUserQuery,
		user.Username,
		user.Email,
		user.PasswordHash,
		nullString(user.DisplayName),
		nullString(user.AvatarURL),
		string(user.Role),
		user.Active,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	created, err := r.getBy(ctx, "id", uint64(id))
	if err != nil {
		return err
	}
	*user = created
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column string, value interface{}) (domain.User, error) {
	q := queryerFrom(ctx, r.db)

	var query string
	switch column {
	case "id":
		query = `SELECT * FROM users WHERE id = ?;`
	case "username":
		query = `SELECT * FROM users WHERE username = ?;`
	case "email":
		query = `SELECT * FROM users WHERE email = ?;`
	}

	var row userRow
	if err := q.GetContext(ctx, &row, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) List(ctx context.Context, onlyActive bool) ([]domain.User, error) {
	q := queryerFrom(ctx, r.db)

	query := `SELECT * FROM users ORDER BY id;`
	if onlyActive {
		query = `SELECT * FROM users WHERE active = 1 ORDER BY id;`
	}

	var rows []userRow
	if err := q.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRow(row))
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	q := queryerFrom(ctx, r.db)

	var count int
	if err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM users;`); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id uint64, role domain.Role) error {
	q := queryerFrom(ctx, r.db)

	// MySQL reports zero affected rows for a no-change update, so existence
	// cannot be inferred here; the services check it beforehand.
	_, err := q.ExecContext(ctx, `UPDATE users SET role = ? WHERE id = ?;`, string(role), id)
	return err
}

func (r *UserRepository) SetActive(ctx context.Context, id uint64, active bool) error {
	q := queryerFrom(ctx, r.db)

	_, err := q.ExecContext(ctx, `UPDATE users SET active = ? WHERE id = ?;`, active, id)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	q := queryerFrom(ctx, r.db)

	result, err := q.ExecContext(ctx, `DELETE FROM users WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	return requireAffected(result, domain.ErrUserNotFound)
}

func mapUserRow(row userRow) domain.User {
	user := domain.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		Active:       row.Active,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if row.DisplayName.Valid {
		value := row.DisplayName.String
		user.DisplayName = &value
	}
	if row.AvatarURL.Valid {
		value := row.AvatarURL.String
		user.AvatarURL = &value
	}

	return user
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullUint64(value *uint64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}

// requireAffected maps a zero-row UPDATE or DELETE to the given sentinel.
func requireAffected(result sql.Result, sentinel error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sentinel
	}
	return nil
}
