package posts

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
)

// MemoryRepository keeps posts in a map and answers FindMany with the same
// filtering, ordering and windowing rules as the PostgreSQL repository,
// including NULLs sorting after values in ascending order and strings
// compared by byte value (the PostgreSQL side sorts text with COLLATE "C").
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	posts  map[int64]models.Post
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{posts: make(map[int64]models.Post)}
}

func clonePost(p models.Post) *models.Post {
	out := p
	if p.Content != nil {
		c := *p.Content
		out.Content = &c
	}
	if p.AuthorID != nil {
		a := *p.AuthorID
		out.AuthorID = &a
	}
	return &out
}

func (r *MemoryRepository) FindUnique(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[where.ID]
	if !ok {
		return nil, nil
	}
	return clonePost(p), nil
}

func (r *MemoryRepository) FindMany(ctx context.Context, params models.FindManyPostsParams) ([]*models.Post, error) {
	if params.Skip != nil && *params.Skip < 0 {
		return nil, fmt.Errorf("skip %d: %w", *params.Skip, common.ErrorInvalidQuery)
	}
	if params.Take != nil && *params.Take < 0 {
		return nil, fmt.Errorf("take %d: %w", *params.Take, common.ErrorInvalidQuery)
	}

	keys, err := sortKeys(params.OrderBy)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if matches(p, params.Where) {
			rows = append(rows, p)
		}
	}

	byKeys := compareByKeys(keys)
	slices.SortFunc(rows, byKeys)

	if params.Cursor != nil {
		start := slices.IndexFunc(rows, func(p models.Post) bool { return p.ID == params.Cursor.ID })
		if start < 0 {
			// the cursor may exist but be filtered out; position by its sort keys then
			cur, ok := r.posts[params.Cursor.ID]
			if !ok {
				return []*models.Post{}, nil
			}
			start, _ = slices.BinarySearchFunc(rows, cur, byKeys)
		}
		rows = rows[start:]
	}

	if params.Skip != nil {
		rows = rows[min(*params.Skip, len(rows)):]
	}
	if params.Take != nil {
		rows = rows[:min(*params.Take, len(rows))]
	}

	result := make([]*models.Post, len(rows))
	for i, p := range rows {
		result[i] = clonePost(p)
	}
	return result, nil
}

func matches(p models.Post, w *models.PostWhereInput) bool {
	if w == nil {
		return true
	}
	if w.ID != nil && p.ID != *w.ID {
		return false
	}
	if w.Title != nil && p.Title != *w.Title {
		return false
	}
	if w.Content != nil && (p.Content == nil || *p.Content != *w.Content) {
		return false
	}
	if w.Published != nil && p.Published != *w.Published {
		return false
	}
	if w.AuthorID != nil && (p.AuthorID == nil || *p.AuthorID != *w.AuthorID) {
		return false
	}
	return true
}

// compareNullable orders nil after every value.
func compareNullable[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareByKeys(keys []sortKey) func(a, b models.Post) int {
	return func(a, b models.Post) int {
		for _, k := range keys {
			c := compareColumn(a, b, k.column)
			if k.desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	}
}

func compareColumn(a, b models.Post, column string) int {
	switch column {
	case "title":
		return cmp.Compare(a.Title, b.Title)
	case "content":
		return compareNullable(a.Content, b.Content)
	case "published":
		return compareBool(a.Published, b.Published)
	case "author_id":
		return compareNullable(a.AuthorID, b.AuthorID)
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}

func (r *MemoryRepository) Create(ctx context.Context, data models.PostCreateInput) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p := models.Post{
		ID:        r.nextID,
		Title:     data.Title,
		Content:   data.Content,
		Published: data.Published,
		AuthorID:  data.AuthorID,
	}
	stored := clonePost(p)
	r.posts[p.ID] = *stored

	return clonePost(*stored), nil
}

func (r *MemoryRepository) Update(ctx context.Context, where models.PostWhereUniqueInput, data models.PostUpdateInput) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[where.ID]
	if !ok {
		return nil, fmt.Errorf("post %d: %w", where.ID, common.ErrorNotFound)
	}

	if data.Title != nil {
		p.Title = *data.Title
	}
	if data.Content.Set {
		p.Content = nil
		if data.Content.Value != nil {
			c := *data.Content.Value
			p.Content = &c
		}
	}
	if data.Published != nil {
		p.Published = *data.Published
	}
	if data.AuthorID.Set {
		p.AuthorID = nil
		if data.AuthorID.Value != nil {
			a := *data.AuthorID.Value
			p.AuthorID = &a
		}
	}
	r.posts[where.ID] = p

	return clonePost(p), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, where models.PostWhereUniqueInput) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[where.ID]
	if !ok {
		return nil, fmt.Errorf("post %d: %w", where.ID, common.ErrorNotFound)
	}
	delete(r.posts, where.ID)

	return clonePost(p), nil
}
