package postgres

import (
	"context"
	"database/sql"
	"errors"

	"privatemeetups/internal/domain"
)

type userDirectory struct {
	DB *sql.DB
}

func NewUserDirectory(db *sql.DB) domain.UserDirectory {
	return &userDirectory{
		DB: db,
	}
}

func (r *userDirectory) GetName(ctx context.Context, userID string) (string, error) {
	query := `SELECT name FROM users WHERE id = $1`
	var name string
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return name, nil
}
