package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

// MemoryRepository keeps users in a map. Email is unique, as in the schema.
type MemoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, data models.UserCreateInput) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[data.Email]; ok {
		return nil, fmt.Errorf("email %q: %w", data.Email, common.ErrorAlreadyExists)
	}

	r.nextID++
	user := &models.User{ID: r.nextID, Email: data.Email}
	if data.Name != nil {
		name := *data.Name
		user.Name = &name
	}
	r.byEmail[data.Email] = user

	out := *user
	return &out, nil
}
