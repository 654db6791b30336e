package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/blogapi/internal/dbx"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/posts"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a database handle and knows
// how to bring the schema up to date.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
}
