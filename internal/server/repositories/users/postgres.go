package users

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/blogapi/internal/dbx"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

// PostgresRepository stores users over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a user. A duplicate email surfaces as common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, data models.UserCreateInput) (*models.User, error) {
	query :=
		`INSERT INTO users (email, name)
		 VALUES ($1, $2)
		 RETURNING id, email, name
		 `

	var (
		user models.User
		name sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, data.Email, data.Name).Scan(&user.ID, &user.Email, &name)
	if err != nil {
		return nil, dbx.Wrap(err)
	}

	if name.Valid {
		user.Name = &name.String
	}

	return &user, nil
}
