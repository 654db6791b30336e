// Package posts provides storage for blog posts: a PostgreSQL repository
// and an in-memory one with the same query semantics.
package posts

import (
	"context"

	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

// Repository is the persistence capability the post service depends on.
//
// FindUnique returns (nil, nil) when nothing matches. Update and Delete
// return an error wrapping common.ErrorNotFound in that case.
//
// FindMany applies Where, then the ordering (OrderBy terms followed by id as
// the final tie-breaker; plain id order when OrderBy is empty), then the
// cursor, then Skip and Take. The cursor record is included in the window and
// an unknown cursor yields no rows. Negative Skip or Take fail with
// common.ErrorInvalidQuery.
type Repository interface {
	FindUnique(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error)
	FindMany(ctx context.Context, params models.FindManyPostsParams) ([]*models.Post, error)
	Create(ctx context.Context, data models.PostCreateInput) (*models.Post, error)
	Update(ctx context.Context, where models.PostWhereUniqueInput, data models.PostUpdateInput) (*models.Post, error)
	Delete(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error)
}
