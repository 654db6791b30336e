package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/dmitrijs2005/blogapi/internal/dbx"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var (
		post     models.Post
		content  sql.NullString
		authorID sql.NullInt64
	)
	if err := row.Scan(&post.ID, &post.Title, &content, &post.Published, &authorID); err != nil {
		return nil, err
	}
	if content.Valid {
		post.Content = &content.String
	}
	if authorID.Valid {
		post.AuthorID = &authorID.Int64
	}
	return &post, nil
}

// FindUnique returns the post with the given id, or (nil, nil).
func (r *PostgresRepository) FindUnique(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error) {
	query := `SELECT id, title, content, published, author_id FROM posts
		 WHERE id = $1
		 `

	post, err := scanPost(r.db.QueryRowContext(ctx, query, where.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, dbx.Wrap(err)
	}

	return post, nil
}

// FindMany runs the listing described by params.
func (r *PostgresRepository) FindMany(ctx context.Context, params models.FindManyPostsParams) ([]*models.Post, error) {
	query, args, err := buildFindMany(params)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	result := []*models.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, dbx.Wrap(err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}

	return result, nil
}

// Create inserts a post. Published is always written explicitly.
func (r *PostgresRepository) Create(ctx context.Context, data models.PostCreateInput) (*models.Post, error) {
	query :=
		`INSERT INTO posts (title, content, published, author_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, content, published, author_id
		 `

	post, err := scanPost(r.db.QueryRowContext(ctx, query, data.Title, data.Content, data.Published, data.AuthorID))
	if err != nil {
		return nil, dbx.Wrap(err)
	}

	return post, nil
}

// Update changes the non-nil fields of data and returns the new state. An
// empty update still has to find the row.
func (r *PostgresRepository) Update(ctx context.Context, where models.PostWhereUniqueInput, data models.PostUpdateInput) (*models.Post, error) {
	if data.IsEmpty() {
		post, err := r.FindUnique(ctx, where)
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, fmt.Errorf("post %d: %w", where.ID, common.ErrorNotFound)
		}
		return post, nil
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if data.Title != nil {
		set("title", *data.Title)
	}
	if data.Content.Set {
		set("content", data.Content.Value)
	}
	if data.Published != nil {
		set("published", *data.Published)
	}
	if data.AuthorID.Set {
		set("author_id", data.AuthorID.Value)
	}
	args = append(args, where.ID)

	query := fmt.Sprintf(
		`UPDATE posts SET %s
		 WHERE id = $%d
		 RETURNING id, title, content, published, author_id`,
		strings.Join(sets, ", "), len(args))

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", where.ID, common.ErrorNotFound)
		}
		return nil, dbx.Wrap(err)
	}

	return post, nil
}

// Delete removes the post and returns the row as it was.
func (r *PostgresRepository) Delete(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error) {
	query :=
		`DELETE FROM posts
		 WHERE id = $1
		 RETURNING id, title, content, published, author_id
		 `

	post, err := scanPost(r.db.QueryRowContext(ctx, query, where.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %d: %w", where.ID, common.ErrorNotFound)
		}
		return nil, dbx.Wrap(err)
	}

	return post, nil
}
