// Package users provides storage for user records.
package users

import (
	"context"

	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, data models.UserCreateInput) (*models.User, error)
}
