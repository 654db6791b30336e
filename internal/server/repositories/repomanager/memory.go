package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/blogapi/internal/dbx"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/posts"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/users"
)

// InMemoryRepositoryManager hands out one shared in-memory repository per
// entity; the db argument is ignored.
type InMemoryRepositoryManager struct {
	users *users.MemoryRepository
	posts *posts.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		posts: posts.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Posts(dbx.DBTX) posts.Repository {
	return m.posts
}
