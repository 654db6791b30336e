package services

import (
	"context"

	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

func ptr[T any](v T) *T { return &v }

// fakePostStore records every call and answers with canned values.
type fakePostStore struct {
	findUniqueCalls []models.PostWhereUniqueInput
	findUniqueOut   *models.Post
	findUniqueErr   error

	findManyCalls []models.FindManyPostsParams
	findManyOut   []*models.Post
	findManyErr   error

	createCalls []models.PostCreateInput
	createOut   *models.Post
	createErr   error

	updateCalls []models.PostUpdateArgs
	updateOut   *models.Post
	updateErr   error

	deleteCalls []models.PostWhereUniqueInput
	deleteOut   *models.Post
	deleteErr   error
}

func (f *fakePostStore) FindUnique(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error) {
	f.findUniqueCalls = append(f.findUniqueCalls, where)
	return f.findUniqueOut, f.findUniqueErr
}

func (f *fakePostStore) FindMany(ctx context.Context, params models.FindManyPostsParams) ([]*models.Post, error) {
	f.findManyCalls = append(f.findManyCalls, params)
	return f.findManyOut, f.findManyErr
}

func (f *fakePostStore) Create(ctx context.Context, data models.PostCreateInput) (*models.Post, error) {
	f.createCalls = append(f.createCalls, data)
	return f.createOut, f.createErr
}

func (f *fakePostStore) Update(ctx context.Context, where models.PostWhereUniqueInput, data models.PostUpdateInput) (*models.Post, error) {
	f.updateCalls = append(f.updateCalls, models.PostUpdateArgs{Where: where, Data: data})
	return f.updateOut, f.updateErr
}

func (f *fakePostStore) Delete(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error) {
	f.deleteCalls = append(f.deleteCalls, where)
	return f.deleteOut, f.deleteErr
}

type fakeUserStore struct {
	calls     []models.UserCreateInput
	createOut *models.User
	createErr error
}

func (f *fakeUserStore) Create(ctx context.Context, data models.UserCreateInput) (*models.User, error) {
	f.calls = append(f.calls, data)
	return f.createOut, f.createErr
}
