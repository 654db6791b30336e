package services

import (
	"context"

	"github.com/dmitrijs2005/blogapi/internal/logging"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/users"
)

type UserService struct {
	repo   users.Repository
	logger logging.Logger
}

func NewUserService(repo users.Repository, logger logging.Logger) *UserService {
	return &UserService{repo: repo, logger: logger.With("module", "user_service")}
}

// CreateUser inserts a user. Errors from the store, a duplicate email
// included, are returned as they are.
func (s *UserService) CreateUser(ctx context.Context, data models.UserCreateInput) (*models.User, error) {
	user, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "user created", "id", user.ID)
	return user, nil
}
