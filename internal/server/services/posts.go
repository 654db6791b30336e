// Package services holds the application services that sit between the HTTP
// handlers and the repositories. Each call issues exactly one store operation
// and hands the store's result or error back unchanged.
package services

import (
	"context"

	"github.com/dmitrijs2005/blogapi/internal/logging"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/dmitrijs2005/blogapi/internal/server/repositories/posts"
)

type PostService struct {
	repo   posts.Repository
	logger logging.Logger
}

func NewPostService(repo posts.Repository, logger logging.Logger) *PostService {
	return &PostService{repo: repo, logger: logger.With("module", "post_service")}
}

// Post returns the post matching where, or nil without an error when there
// is none.
func (s *PostService) Post(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error) {
	return s.repo.FindUnique(ctx, where)
}

// Posts forwards params to the store untouched; nil fields stay nil.
func (s *PostService) Posts(ctx context.Context, params models.FindManyPostsParams) ([]*models.Post, error) {
	return s.repo.FindMany(ctx, models.FindManyPostsParams{
		Skip:    params.Skip,
		Take:    params.Take,
		Cursor:  params.Cursor,
		Where:   params.Where,
		OrderBy: params.OrderBy,
	})
}

func (s *PostService) CreatePost(ctx context.Context, data models.PostCreateInput) (*models.Post, error) {
	post, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "post created", "id", post.ID)
	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, args models.PostUpdateArgs) (*models.Post, error) {
	return s.repo.Update(ctx, args.Where, args.Data)
}

// PublishPost sets published to true. Publishing twice still writes.
func (s *PostService) PublishPost(ctx context.Context, id int64) (*models.Post, error) {
	published := true
	return s.UpdatePost(ctx, models.PostUpdateArgs{
		Where: models.PostWhereUniqueInput{ID: id},
		Data:  models.PostUpdateInput{Published: &published},
	})
}

func (s *PostService) DeletePost(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error) {
	post, err := s.repo.Delete(ctx, where)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "post deleted", "id", post.ID)
	return post, nil
}
